package predictor

import (
	"fmt"

	"github.com/rooted-app/rooted/internal/models"
)

// Assess converts the model's wellbeing output into the stored result. The
// lifelong anxiety score inverts the model output (1.0 = high anxiety).
func Assess(wellbeing float64) models.StressResult {
	return buildResult(1.0-wellbeing, wellbeing, false)
}

// AssessManual categorizes a self-rated anxiety score directly, with no
// inversion: the user is rating anxiety, not wellbeing.
func AssessManual(anxietyScore float64) models.StressResult {
	return buildResult(clampUnit(anxietyScore), clampUnit(anxietyScore), true)
}

func buildResult(lifelong, raw float64, manual bool) models.StressResult {
	category, message := categorize(lifelong)
	return models.StressResult{
		Percentage:     int(lifelong*100 + 0.5),
		Category:       category,
		Message:        message,
		LifelongScore:  fmt.Sprintf("%.3f", lifelong),
		RawModelOutput: fmt.Sprintf("%.4f", raw),
		ManualRating:   manual,
	}
}

func categorize(lifelong float64) (category, message string) {
	switch {
	case lifelong >= 0.80:
		return "High Anxiety (Seek Support)",
			"Your anxiety levels are quite high. Consider reaching out for professional support - you don't have to go through this alone."
	case lifelong >= 0.60:
		return "Moderate Anxiety (Building Resilience)",
			"You're experiencing some anxiety, but you're building resilience. Focus on healthy coping strategies and self-care."
	case lifelong >= 0.40:
		return "Balanced State (Steady Progress)",
			"You're in a balanced emotional state. This is a good foundation for continued growth and wellbeing."
	case lifelong >= 0.20:
		return "Low Anxiety (Thriving)",
			"You're managing anxiety well and thriving! Keep nurturing the positive habits that support your mental health."
	default:
		return "Optimal Mental Health (Flourishing)",
			"You're in an optimal mental health state! Consider how you can maintain this and perhaps support others on their journey."
	}
}
