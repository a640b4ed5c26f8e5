package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/rooted-app/rooted/internal/cli"
	"github.com/rooted-app/rooted/internal/logger"
	"github.com/rooted-app/rooted/internal/plant"
	"github.com/rooted-app/rooted/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for a plain document)." type:"path" default:"~/.config/rooted/rooted.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize rooted storage."`
	Add     cli.AddCmd     `cmd:"" help:"Log a journal entry." default:"1"`
	Entries cli.EntriesCmd `cmd:"" help:"List journal entries."`
	Assess  cli.AssessCmd  `cmd:"" help:"Preview a stress assessment."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show wellness statistics."`
	Badges  cli.BadgesCmd  `cmd:"" help:"Show achievement badges."`
	Wallet  cli.WalletCmd  `cmd:"" help:"Show balance and transaction history."`
	Plant   cli.PlantCmd   `cmd:"" help:"Check on your plant companion."`
	Checkin cli.CheckinCmd `cmd:"" help:"Claim the weekly check-in bonus."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run storage diagnostics."`
	Shop    struct {
		List cli.ShopListCmd `cmd:"" help:"Browse the shop catalog." default:"1"`
		Buy  cli.ShopBuyCmd  `cmd:"" help:"Buy an item."`
	} `cmd:"" help:"Spend coins on your plant."`
	Goal struct {
		Add  cli.GoalAddCmd  `cmd:"" help:"Set a personal goal."`
		Done cli.GoalDoneCmd `cmd:"" help:"Mark a goal completed."`
		List cli.GoalListCmd `cmd:"" help:"List goals." default:"1"`
	} `cmd:"" help:"Manage personal goals."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rooted"),
		kong.Description("Wellness journal with a plant companion that grows as you do"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	// Storage backend follows the file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Now:   time.Now,
		Roll:  plant.DefaultRoll,
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
