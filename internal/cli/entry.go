package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/rooted-app/rooted/internal/models"
)

var moodEmoji = map[models.Mood]string{
	models.MoodStruggling: "😣",
	models.MoodLow:        "😟",
	models.MoodOkay:       "😐",
	models.MoodGood:       "🙂",
	models.MoodGreat:      "😄",
}

// reflectionPrompts are the optional journaling questions offered after an
// interactive assessment. Answering at least one counts as a reflection.
var reflectionPrompts = []struct {
	ID       string
	Question string
}{
	{"contributing", "What contributed most to how you're feeling today?"},
	{"tomorrow", "What's one small thing you could do tomorrow to support your wellbeing?"},
}

type AddCmd struct {
	Mood     string  `short:"m" help:"Mood (struggling|low|okay|good|great). Omit for an interactive form."`
	Notes    string  `short:"n" help:"Free-form notes."`
	Sleep    float64 `short:"s" help:"Hours slept last night." default:"-1"`
	Exercise int     `short:"e" help:"Minutes of exercise." default:"-1"`
	Assess   bool    `short:"a" help:"Attach a stress assessment."`

	Stress     int `help:"Stress level 0-5 (with --assess)." default:"-1"`
	Depression int `help:"Depression level 0-5 (with --assess)." default:"-1"`
	Anxiety    int `help:"Anxiety level 0-5 (with --assess)." default:"-1"`
}

func (c *AddCmd) Validate() error {
	if c.Mood != "" && models.Mood(c.Mood).Ordinal() == 0 {
		return fmt.Errorf("invalid mood: %s", c.Mood)
	}
	if c.Sleep != -1 && (c.Sleep < 0 || c.Sleep > 24) {
		return fmt.Errorf("sleep hours must be between 0 and 24")
	}
	if c.Exercise != -1 && c.Exercise < 0 {
		return fmt.Errorf("exercise minutes must not be negative")
	}
	for _, v := range []int{c.Stress, c.Depression, c.Anxiety} {
		if v != -1 && (v < 0 || v > 5) {
			return fmt.Errorf("assessment levels must be between 0 and 5")
		}
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Day:       now.Format("2006-01-02"),
		Time:      now.Format("15:04"),
		Notes:     c.Notes,
		CreatedAt: now,
	}
	if c.Sleep != -1 {
		sleep := c.Sleep
		entry.SleepHours = &sleep
	}
	if c.Exercise != -1 {
		exercise := c.Exercise
		entry.ExerciseMinutes = &exercise
	}

	interactive := c.Mood == ""
	if interactive {
		if err := c.runForm(&entry); err != nil {
			return err
		}
	} else {
		entry.Mood = models.Mood(c.Mood)
	}

	if c.Assess {
		stress, depression, anxiety := c.Stress, c.Depression, c.Anxiety
		if stress == -1 || depression == -1 || anxiety == -1 {
			var err error
			stress, depression, anxiety, err = assessmentForm()
			if err != nil {
				return err
			}
		}

		data, err := performAssessment(ctx, stress, depression, anxiety)
		if err != nil {
			return err
		}
		if interactive {
			data.ReflectionResponses = collectReflections()
		}
		entry.StressData = data
	}

	if err := ctx.Store.AddEntry(entry); err != nil {
		return err
	}

	fmt.Printf("%s Logged %s entry for %s\n", moodEmoji[entry.Mood], entry.Mood, entry.Day)
	if entry.HasAssessment() {
		printAssessment(entry.StressData.Result)
	}

	summary, err := runRewardPass(ctx, entry, now)
	if err != nil {
		return err
	}
	printRewardSummary(summary)
	return nil
}

func (c *AddCmd) runForm(entry *models.JournalEntry) error {
	var sleepStr, exerciseStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling today?").
				Options(
					huh.NewOption("😄 Great", models.MoodGreat),
					huh.NewOption("🙂 Good", models.MoodGood),
					huh.NewOption("😐 Okay", models.MoodOkay),
					huh.NewOption("😟 Low", models.MoodLow),
					huh.NewOption("😣 Struggling", models.MoodStruggling),
				).
				Value(&entry.Mood),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&entry.Notes),
			huh.NewInput().
				Title("Hours slept (optional)").
				Value(&sleepStr).
				Validate(optionalFloat(0, 24, "sleep hours")),
			huh.NewInput().
				Title("Exercise minutes (optional)").
				Value(&exerciseStr).
				Validate(optionalInt(0, "exercise minutes")),
			huh.NewConfirm().
				Title("Run a stress assessment?").
				Value(&c.Assess),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("entry form error: %w", err)
	}

	if sleepStr != "" {
		sleep, _ := strconv.ParseFloat(strings.TrimSpace(sleepStr), 64)
		entry.SleepHours = &sleep
	}
	if exerciseStr != "" {
		exercise, _ := strconv.Atoi(strings.TrimSpace(exerciseStr))
		entry.ExerciseMinutes = &exercise
	}
	return nil
}

func assessmentForm() (stress, depression, anxiety int, err error) {
	levels := []huh.Option[int]{
		huh.NewOption("0 — Not at all", 0),
		huh.NewOption("1 — A little", 1),
		huh.NewOption("2 — Somewhat", 2),
		huh.NewOption("3 — Moderately", 3),
		huh.NewOption("4 — Quite a bit", 4),
		huh.NewOption("5 — Extremely", 5),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("How stressed do you feel?").Options(levels...).Value(&stress),
			huh.NewSelect[int]().Title("How low or down do you feel?").Options(levels...).Value(&depression),
			huh.NewSelect[int]().Title("How anxious do you feel?").Options(levels...).Value(&anxiety),
		),
	)
	if err := form.Run(); err != nil {
		return 0, 0, 0, fmt.Errorf("assessment form error: %w", err)
	}
	return stress, depression, anxiety, nil
}

// collectReflections offers the reflection prompts; empty answers are
// dropped. Returns nil when nothing was answered.
func collectReflections() map[string]string {
	var wantReflect bool
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Take a moment to reflect?").
			Value(&wantReflect),
	))
	if err := confirm.Run(); err != nil || !wantReflect {
		return nil
	}

	answers := make([]string, len(reflectionPrompts))
	fields := make([]huh.Field, 0, len(reflectionPrompts))
	for i, prompt := range reflectionPrompts {
		fields = append(fields, huh.NewText().Title(prompt.Question).Value(&answers[i]))
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return nil
	}

	responses := make(map[string]string)
	for i, prompt := range reflectionPrompts {
		if strings.TrimSpace(answers[i]) != "" {
			responses[prompt.ID] = strings.TrimSpace(answers[i])
		}
	}
	if len(responses) == 0 {
		return nil
	}
	return responses
}

func optionalFloat(min, max float64, label string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		if v < min || v > max {
			return fmt.Errorf("%s must be between %g and %g", label, min, max)
		}
		return nil
	}
}

func optionalInt(min int, label string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s must be a whole number", label)
		}
		if v < min {
			return fmt.Errorf("%s must be at least %d", label, min)
		}
		return nil
	}
}

type EntriesCmd struct {
	Limit int  `short:"l" help:"Maximum entries to show." default:"10"`
	All   bool `help:"Show every entry."`
}

func (c *EntriesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet. Log one with 'rooted add'.")
		return nil
	}

	limit := c.Limit
	if c.All || limit > len(entries) {
		limit = len(entries)
	}

	fmt.Println(titleStyle.Render("Journal entries"))
	for _, e := range entries[:limit] {
		line := fmt.Sprintf("%s %s  %s %-10s", e.Day, e.Time, moodEmoji[e.Mood], e.Mood)
		var extras []string
		if e.SleepHours != nil {
			extras = append(extras, fmt.Sprintf("%.1fh sleep", *e.SleepHours))
		}
		if e.ExerciseMinutes != nil {
			extras = append(extras, fmt.Sprintf("%dmin exercise", *e.ExerciseMinutes))
		}
		if e.HasAssessment() {
			extras = append(extras, fmt.Sprintf("assessment %d%%", e.StressData.Result.Percentage))
		}
		if len(extras) > 0 {
			line += faintStyle.Render("  (" + strings.Join(extras, ", ") + ")")
		}
		fmt.Println(line)
		if e.Notes != "" {
			fmt.Println(faintStyle.Render("    " + e.Notes))
		}
	}

	if limit < len(entries) {
		fmt.Printf("\n%d more; use --all to show everything.\n", len(entries)-limit)
	}
	return nil
}
