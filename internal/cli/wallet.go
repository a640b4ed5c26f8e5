package cli

import (
	"fmt"
	"sort"

	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/models"
)

var txTypeLabels = map[models.TransactionType]string{
	models.TxGoalComplete:       "Goals completed",
	models.TxGoalCreate:         "Goals created",
	models.TxBadgeEarned:        "Badges earned",
	models.TxJournalEntry:       "Journal entries",
	models.TxStreakMilestone:    "Streak milestones",
	models.TxStressAssessment:   "Stress assessments",
	models.TxReflectionComplete: "Reflections",
	models.TxWeeklyCheckIn:      "Weekly check-ins",
	models.TxPlantPurchase:      "Shop purchases",
}

type WalletCmd struct {
	Limit    int  `short:"l" help:"Transactions to show." default:"10"`
	Earnings bool `short:"e" help:"Show earnings grouped by category."`
}

func (c *WalletCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}

	fmt.Println(cardStyle.Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Wallet"), formatCoins(currency.Balance))))

	if c.Earnings {
		categories := ledger.EarningsByCategory(currency)
		if len(categories) == 0 {
			fmt.Println("\nNo earnings yet.")
			return nil
		}

		types := make([]models.TransactionType, 0, len(categories))
		for t := range categories {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool {
			return categories[types[i]].Total > categories[types[j]].Total
		})

		fmt.Println("\nEarnings by category:")
		for _, t := range types {
			label := txTypeLabels[t]
			if label == "" {
				label = string(t)
			}
			earnings := categories[t]
			fmt.Printf("  %-20s %4d×  %s\n", label, earnings.Count, ledger.FormatAmount(earnings.Total))
		}
		return nil
	}

	recent := ledger.RecentTransactions(currency, c.Limit)
	if len(recent) == 0 {
		fmt.Println("\nNo transactions yet. Log an entry to start earning.")
		return nil
	}

	fmt.Println("\nRecent transactions:")
	for _, tx := range recent {
		sign := "+"
		if tx.Amount < 0 {
			sign = ""
		}
		fmt.Printf("  %s  %s%d  %s\n",
			tx.Timestamp.Format("2006-01-02 15:04"), sign, tx.Amount,
			faintStyle.Render(tx.Description))
	}
	if len(currency.Transactions) > len(recent) {
		fmt.Printf("\n%d more; use --limit to show more.\n", len(currency.Transactions)-len(recent))
	}
	return nil
}
