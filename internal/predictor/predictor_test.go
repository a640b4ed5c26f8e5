package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// identityModel passes the mean of the three normalized inputs through a
// linear output layer: out = (s + d + a) / 15.
const identityModel = `{
	"layers": [
		{
			"weights": [[0.3333333333], [0.3333333333], [0.3333333333]],
			"biases": [0],
			"activation": "linear"
		}
	]
}`

func TestLoad(t *testing.T) {
	model, err := Load(writeModel(t, identityModel))
	require.NoError(t, err)
	assert.Len(t, model.Layers, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read model file")
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := Load(writeModel(t, "not json"))
	assert.ErrorContains(t, err, "failed to parse model file")
}

func TestLoad_ShapeChecks(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wantErr string
	}{
		{
			"no layers",
			`{"layers": []}`,
			"model has no layers",
		},
		{
			"wrong input count",
			`{"layers": [{"weights": [[1], [1]], "biases": [0], "activation": "linear"}]}`,
			"model expects 3 inputs",
		},
		{
			"ragged rows",
			`{"layers": [{"weights": [[1, 1], [1], [1, 1]], "biases": [0, 0], "activation": "linear"}]}`,
			"ragged weight rows",
		},
		{
			"bias width mismatch",
			`{"layers": [{"weights": [[1], [1], [1]], "biases": [0, 0], "activation": "linear"}]}`,
			"biases for",
		},
		{
			"multiple outputs",
			`{"layers": [{"weights": [[1, 1], [1, 1], [1, 1]], "biases": [0, 0], "activation": "linear"}]}`,
			"single output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeModel(t, tt.model))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPredict(t *testing.T) {
	model, err := Load(writeModel(t, identityModel))
	require.NoError(t, err)

	score, err := model.Predict(5, 5, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 0.001)

	score, err = model.Predict(0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 0.001)

	score, err = model.Predict(3, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, score, 0.001)
}

func TestPredict_InputRange(t *testing.T) {
	model, err := Load(writeModel(t, identityModel))
	require.NoError(t, err)

	_, err = model.Predict(-1, 0, 0)
	assert.Error(t, err)
	_, err = model.Predict(0, 6, 0)
	assert.Error(t, err)
}

func TestPredict_ClampsOutput(t *testing.T) {
	// Large positive weights push the raw output well above 1.
	model, err := Load(writeModel(t, `{
		"layers": [
			{"weights": [[10], [10], [10]], "biases": [5], "activation": "linear"}
		]
	}`))
	require.NoError(t, err)

	score, err := model.Predict(5, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestPredict_Activations(t *testing.T) {
	// relu hidden layer zeroes a negative pre-activation, sigmoid output
	// of exactly zero input is 0.5.
	model, err := Load(writeModel(t, `{
		"layers": [
			{"weights": [[-1, 1], [-1, 1], [-1, 1]], "biases": [0, -3], "activation": "relu"},
			{"weights": [[1], [1]], "biases": [0], "activation": "sigmoid"}
		]
	}`))
	require.NoError(t, err)

	score, err := model.Predict(5, 5, 5)
	require.NoError(t, err)
	// Hidden: relu(-3)=0, relu(3-3)=0; sigmoid(0)=0.5.
	assert.InDelta(t, 0.5, score, 0.001)
}

func TestAssess(t *testing.T) {
	// Wellbeing 0.9 inverts to lifelong 0.1.
	result := Assess(0.9)
	assert.Equal(t, 10, result.Percentage)
	assert.Equal(t, "Optimal Mental Health (Flourishing)", result.Category)
	assert.Equal(t, "0.100", result.LifelongScore)
	assert.Equal(t, "0.9000", result.RawModelOutput)
	assert.False(t, result.ManualRating)
}

func TestAssessManual(t *testing.T) {
	// Manual ratings are anxiety directly, no inversion.
	result := AssessManual(0.9)
	assert.Equal(t, 90, result.Percentage)
	assert.Equal(t, "High Anxiety (Seek Support)", result.Category)
	assert.True(t, result.ManualRating)

	// Out-of-range inputs clamp.
	assert.Equal(t, 100, AssessManual(1.7).Percentage)
	assert.Equal(t, 0, AssessManual(-0.5).Percentage)
}

func TestCategorize_Boundaries(t *testing.T) {
	tests := []struct {
		lifelong float64
		want     string
	}{
		{0.80, "High Anxiety (Seek Support)"},
		{0.79, "Moderate Anxiety (Building Resilience)"},
		{0.60, "Moderate Anxiety (Building Resilience)"},
		{0.59, "Balanced State (Steady Progress)"},
		{0.40, "Balanced State (Steady Progress)"},
		{0.39, "Low Anxiety (Thriving)"},
		{0.20, "Low Anxiety (Thriving)"},
		{0.19, "Optimal Mental Health (Flourishing)"},
		{0.0, "Optimal Mental Health (Flourishing)"},
	}
	for _, tt := range tests {
		category, message := categorize(tt.lifelong)
		assert.Equal(t, tt.want, category, "lifelong %.2f", tt.lifelong)
		assert.NotEmpty(t, message)
	}
}

func TestPercentageRounding(t *testing.T) {
	// 0.666 -> 66.6 -> rounds to 67.
	assert.Equal(t, 67, AssessManual(0.666).Percentage)
	assert.Equal(t, 66, AssessManual(0.664).Percentage)
}
