package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/logger"
	"github.com/rooted-app/rooted/internal/models"
)

type GoalAddCmd struct {
	Text []string `arg:"" help:"Goal text."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("goal text cannot be empty")
	}

	now := ctx.Now()
	goal := models.Goal{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: now,
	}
	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}
	currency, granted := ledger.AwardGoalCreation(currency, goal.ID, now)
	if granted {
		if err := ctx.Store.SaveCurrency(currency); err != nil {
			logger.Warn("Failed to save ledger after goal reward", "error", err)
		}
	}

	fmt.Printf("Added goal: %s\n", text)
	if granted {
		fmt.Println(coinStyle.Render(fmt.Sprintf("+%d for setting a goal!", constants.RewardGoalCreate)))
	}
	return nil
}

type GoalDoneCmd struct {
	ID string `arg:"" help:"Goal id (or unique prefix)."`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}

	goal, err := findGoal(goals, c.ID)
	if err != nil {
		return err
	}
	if goal.Completed {
		fmt.Printf("Goal already completed: %s\n", goal.Text)
		return nil
	}

	now := ctx.Now()
	goal.Completed = true
	goal.CompletedAt = &now
	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return err
	}
	currency, granted := ledger.AwardGoalCompletion(currency, goal.ID, now)
	if granted {
		if err := ctx.Store.SaveCurrency(currency); err != nil {
			logger.Warn("Failed to save ledger after goal reward", "error", err)
		}
	}

	fmt.Printf("✓ Completed: %s\n", goal.Text)
	if granted {
		fmt.Println(coinStyle.Render(fmt.Sprintf("+%d for completing a goal!", constants.RewardGoalComplete)))
	}
	return nil
}

type GoalListCmd struct {
	All bool `help:"Include completed goals."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet. Set one with 'rooted goal add'.")
		return nil
	}

	fmt.Println(titleStyle.Render("Goals"))
	shown := 0
	for _, g := range goals {
		if g.Completed && !c.All {
			continue
		}
		marker := "○"
		line := fmt.Sprintf("%s  %s", shortID(g.ID), g.Text)
		if g.Completed {
			marker = "✓"
			line = faintStyle.Render(line)
		}
		fmt.Printf("%s %s\n", marker, line)
		shown++
	}
	if shown == 0 {
		fmt.Println("All goals completed! Set a new one with 'rooted goal add'.")
	}
	return nil
}

// findGoal resolves a full id or a unique prefix.
func findGoal(goals []models.Goal, id string) (models.Goal, error) {
	var matches []models.Goal
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
		if strings.HasPrefix(g.ID, id) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Goal{}, fmt.Errorf("goal not found: %s", id)
	default:
		return models.Goal{}, fmt.Errorf("ambiguous goal id %s matches %d goals", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
