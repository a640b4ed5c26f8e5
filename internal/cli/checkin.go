package cli

import (
	"fmt"

	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/ledger"
)

type CheckinCmd struct{}

// Run claims the weekly check-in bonus. The reward key is the ISO week, so
// checking in again in the same week is a friendly no-op.
func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}

	now := ctx.Now()
	weekID := ledger.WeekID(now)
	currency, granted := ledger.AwardWeeklyCheckIn(currency, weekID, now)
	if !granted {
		fmt.Printf("Already checked in for week %s. See you next week!\n", weekID)
		return nil
	}

	if err := ctx.Store.SaveCurrency(currency); err != nil {
		return err
	}

	fmt.Println(coinStyle.Render(fmt.Sprintf("✓ Weekly check-in complete: +%d %s", constants.RewardWeeklyCheckIn, constants.CurrencyName)))
	fmt.Printf("Balance: %s\n", formatCoins(currency.Balance))
	return nil
}
