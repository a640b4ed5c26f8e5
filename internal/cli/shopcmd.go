package cli

import (
	"errors"
	"fmt"

	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/plant"
	"github.com/rooted-app/rooted/internal/shop"
)

type ShopListCmd struct{}

func (c *ShopListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetPlant()
	if err != nil {
		return err
	}
	cooldowns, err := ctx.Store.GetItemCooldowns()
	if err != nil {
		return err
	}

	now := ctx.Now()
	fmt.Println(titleStyle.Render("Shop"))
	fmt.Printf("Balance: %s\n", formatCoins(currency.Balance))

	sections := []struct {
		label    string
		category shop.Category
	}{
		{"Plant Care", shop.CategoryCare},
		{"Decorations", shop.CategoryDecorations},
		{"Special Items", shop.CategorySpecial},
	}

	for _, section := range sections {
		fmt.Printf("\n%s\n", section.label)
		for _, item := range shop.ItemsByCategory(section.category) {
			status := ""
			if err := shop.CanPurchase(item, currency, state, cooldowns, now); err != nil {
				switch {
				case errors.Is(err, ledger.ErrInsufficientBalance):
					status = faintStyle.Render("(can't afford)")
				case errors.Is(err, plant.ErrActionOnCooldown):
					status = faintStyle.Render("(on cooldown)")
				case errors.Is(err, plant.ErrAlreadyOwned):
					status = faintStyle.Render("(owned)")
				}
			}
			fmt.Printf("  %s %-18s %s %s\n", item.Emoji, item.ID, ledger.FormatAmount(item.Price), status)
			fmt.Println(faintStyle.Render("     " + item.Description))
		}
	}

	fmt.Println("\nBuy with 'rooted shop buy <item>'.")
	return nil
}

type ShopBuyCmd struct {
	Item string `arg:"" help:"Catalog item id (see 'rooted shop list')."`
}

func (c *ShopBuyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	item, err := shop.FindItem(c.Item)
	if err != nil {
		return err
	}

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetPlant()
	if err != nil {
		return err
	}
	cooldowns, err := ctx.Store.GetItemCooldowns()
	if err != nil {
		return err
	}

	result, err := shop.Purchase(item, currency, state, cooldowns, ctx.Now(), ctx.Roll)
	if err != nil {
		return err
	}

	if err := ctx.Store.SaveCurrency(result.Currency); err != nil {
		return err
	}
	if err := ctx.Store.SavePlant(result.Plant); err != nil {
		return err
	}
	if err := ctx.Store.SaveItemCooldowns(result.Cooldowns); err != nil {
		return err
	}

	fmt.Printf("%s Bought %s for %s. Remaining: %s\n",
		item.Emoji, item.Name, ledger.FormatAmount(item.Price), formatCoins(result.RemainingCoins))

	if item.Type == shop.TypeDecoration {
		fmt.Println("Your plant looks great with it!")
	} else {
		fmt.Printf("Plant health is now %.0f, size %.1f.\n", result.Plant.Health, result.Plant.Size)
	}
	return nil
}
