package cli

import (
	"fmt"
	"time"

	"github.com/rooted-app/rooted/internal/backup"
	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 3: record validation
	if storeReachable {
		if err := checkRecords(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'rooted backup create'")
	}
	return nil
}

// checkRecords runs the full cross-record validation suite and reports the
// combined conflict list as one error.
func checkRecords(ctx *Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}
	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return fmt.Errorf("failed to get currency: %w", err)
	}
	state, err := ctx.Store.GetPlant()
	if err != nil {
		return fmt.Errorf("failed to get plant: %w", err)
	}
	cooldowns, err := ctx.Store.GetItemCooldowns()
	if err != nil {
		return fmt.Errorf("failed to get item cooldowns: %w", err)
	}

	now := ctx.Now()
	validator := validation.New()

	var allConflicts []validation.Conflict
	for _, result := range []validation.ValidationResult{
		validator.ValidateEntries(entries),
		validator.ValidateGoals(goals),
		validator.ValidateCurrency(currency, constants.MaxTransactions),
		validator.ValidatePlant(state),
		validator.ValidateItemCooldowns(cooldowns, now),
	} {
		allConflicts = append(allConflicts, result.Conflicts...)
	}

	if len(allConflicts) > 0 {
		combined := validation.ValidationResult{Conflicts: allConflicts}
		return fmt.Errorf("%s", combined.FormatReport())
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// Streaks use local midnights; UTC might be intentional, so just note it.
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
