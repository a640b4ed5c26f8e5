package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rooted-app/rooted/internal/plant"
)

type PlantCmd struct{}

// Run shows the companion plant status card. Reading the plant applies lazy
// health decay, and the decayed state is persisted so the next read starts
// from the same baseline.
func (c *PlantCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetPlant()
	if err != nil {
		return err
	}

	now := ctx.Now()
	state = plant.UpdateHealth(state, now)
	if err := ctx.Store.SavePlant(state); err != nil {
		return err
	}

	stats := plant.GetStats(state, now)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", stats.Stage.Emoji, titleStyle.Render(settings.PlantName))
	fmt.Fprintf(&b, "%s, %d days old\n\n", stats.Stage.Name, stats.AgeDays)
	fmt.Fprintf(&b, "Mood:   %s %s\n", stats.Mood.Emoji, stats.Mood.Name)
	fmt.Fprintf(&b, "Health: %3.0f/100  %s\n", state.Health, progressBar(int(state.Health), 20))
	fmt.Fprintf(&b, "Size:   %.1f", state.Size)
	if stats.NextStageSize > 0 {
		fmt.Fprintf(&b, "  (%d%% toward size %.0f)", stats.Progress, stats.NextStageSize)
	}
	b.WriteString("\n")

	if len(state.Decorations) > 0 {
		b.WriteString("\nDecorations: ")
		for _, d := range state.Decorations {
			b.WriteString(d.Emoji + " ")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nWatered %d times, fertilized %d times", state.TotalWatering, state.TotalFertilizer)

	fmt.Println(cardStyle.Render(b.String()))

	if since := now.Sub(state.LastWatered); since > 24*time.Hour {
		fmt.Println(faintStyle.Render(fmt.Sprintf("Last watered %s ago — visit 'rooted shop' for supplies.", formatDuration(since))))
	}
	return nil
}
