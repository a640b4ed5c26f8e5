package cli

import (
	"fmt"

	"github.com/rooted-app/rooted/internal/logger"
	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/predictor"
)

type AssessCmd struct {
	Stress     int `help:"Stress level 0-5. Omit for an interactive form." default:"-1"`
	Depression int `help:"Depression level 0-5." default:"-1"`
	Anxiety    int `help:"Anxiety level 0-5." default:"-1"`
}

func (c *AssessCmd) Validate() error {
	for _, v := range []int{c.Stress, c.Depression, c.Anxiety} {
		if v != -1 && (v < 0 || v > 5) {
			return fmt.Errorf("assessment levels must be between 0 and 5")
		}
	}
	return nil
}

// Run previews an assessment without persisting anything. Recording one
// (and earning its reward) happens through 'rooted add --assess'.
func (c *AssessCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

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

	printAssessment(data.Result)
	fmt.Println(faintStyle.Render("Use 'rooted add --assess' to record an assessment with a journal entry."))
	return nil
}

// performAssessment runs the stress inputs through the bundled model, or
// falls back to a direct manual rating when the model file is unavailable.
func performAssessment(ctx *Context, stress, depression, anxiety int) (*models.StressData, error) {
	inputs := models.StressInputs{Stress: stress, Depression: depression, Anxiety: anxiety}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return nil, err
	}

	var result models.StressResult
	model, err := predictor.Load(settings.ModelPath)
	if err != nil {
		logger.Warn("Prediction model unavailable, using manual rating", "path", settings.ModelPath, "error", err)
		result = predictor.AssessManual(float64(stress+depression+anxiety) / 15.0)
	} else {
		wellbeing, err := model.Predict(stress, depression, anxiety)
		if err != nil {
			return nil, err
		}
		result = predictor.Assess(wellbeing)
	}

	return &models.StressData{Inputs: inputs, Result: result}, nil
}

func printAssessment(result models.StressResult) {
	fmt.Println()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Wellbeing: %d%% — %s", result.Percentage, result.Category)))
	fmt.Println(result.Message)
	if result.ManualRating {
		fmt.Println(faintStyle.Render("(manual rating — no prediction model loaded)"))
	}
	fmt.Println()
}
