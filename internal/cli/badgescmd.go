package cli

import (
	"fmt"

	"github.com/rooted-app/rooted/internal/achievements"
	"github.com/rooted-app/rooted/internal/badges"
)

type BadgesCmd struct {
	EarnedOnly bool `help:"Only show earned badges."`
}

// Run re-evaluates the badge catalog and pays out any newly earned badge
// rewards, so checking your badges is itself part of the reward loop.
func (c *BadgesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetPlant()
	if err != nil {
		return err
	}
	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}

	now := ctx.Now()
	snap := achievements.Calculate(entries, now)
	evaluated := badges.Evaluate(snap, entries, state, now)

	currency, newlyEarned := badges.AwardNewlyEarned(currency, evaluated, now)
	if len(newlyEarned) > 0 {
		if err := ctx.Store.SaveCurrency(currency); err != nil {
			return err
		}
	}

	earned := 0
	for _, b := range evaluated {
		if b.Earned {
			earned++
		}
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Badges — %d/%d earned", earned, len(evaluated))))

	for _, b := range evaluated {
		if c.EarnedOnly && !b.Earned {
			continue
		}
		marker := " "
		if b.Earned {
			marker = "✓"
		}
		line := fmt.Sprintf("%s %s %-22s %s", marker, b.Icon, b.Name, b.Description)
		if !b.Earned {
			line = faintStyle.Render(line)
		}
		fmt.Println(line)
	}

	for _, b := range newlyEarned {
		fmt.Printf("\n%s New badge earned: %s!\n", b.Icon, b.Name)
	}
	return nil
}
