// Package predictor loads the pre-trained wellbeing model and turns its
// scalar output into a categorized stress assessment.
//
// The model file is a JSON description of a small dense feed-forward
// network. The three inputs are the self-rated stress/depression/anxiety
// sliders (0-5), normalized by 5.0 before the forward pass, and the single
// output is a wellbeing score in [0,1] (1.0 = good).
package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Layer is one dense layer: out[j] = act(sum_i in[i]*W[i][j] + b[j]).
type Layer struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"` // "relu", "sigmoid", or "linear"
}

// Model is the loaded network.
type Model struct {
	Layers []Layer `json:"layers"`
}

// Load reads and sanity-checks a model file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}

	if len(m.Layers) == 0 {
		return nil, fmt.Errorf("model has no layers")
	}
	if len(m.Layers[0].Weights) != 3 {
		return nil, fmt.Errorf("model expects 3 inputs, first layer has %d", len(m.Layers[0].Weights))
	}
	for i, layer := range m.Layers {
		if len(layer.Weights) == 0 {
			return nil, fmt.Errorf("layer %d has no weights", i)
		}
		width := len(layer.Weights[0])
		for _, row := range layer.Weights {
			if len(row) != width {
				return nil, fmt.Errorf("layer %d has ragged weight rows", i)
			}
		}
		if len(layer.Biases) != width {
			return nil, fmt.Errorf("layer %d has %d biases for %d outputs", i, len(layer.Biases), width)
		}
	}
	last := m.Layers[len(m.Layers)-1]
	if len(last.Biases) != 1 {
		return nil, fmt.Errorf("model must have a single output, got %d", len(last.Biases))
	}

	return &m, nil
}

// Predict runs the forward pass and returns the wellbeing score in [0,1].
func (m *Model) Predict(stress, depression, anxiety int) (float64, error) {
	for _, v := range []int{stress, depression, anxiety} {
		if v < 0 || v > 5 {
			return 0, fmt.Errorf("inputs must be in 0-5, got %d", v)
		}
	}

	// Same normalization the model was trained with.
	vec := []float64{float64(stress) / 5.0, float64(depression) / 5.0, float64(anxiety) / 5.0}

	for i, layer := range m.Layers {
		width := len(layer.Biases)
		if len(layer.Weights) != len(vec) {
			return 0, fmt.Errorf("layer %d expects %d inputs, got %d", i, len(layer.Weights), len(vec))
		}
		next := make([]float64, width)
		for j := 0; j < width; j++ {
			sum := layer.Biases[j]
			for k, x := range vec {
				sum += x * layer.Weights[k][j]
			}
			next[j] = activate(layer.Activation, sum)
		}
		vec = next
	}

	return clampUnit(vec[0]), nil
}

func activate(name string, x float64) float64 {
	switch name {
	case "relu":
		return math.Max(0, x)
	case "sigmoid":
		return 1 / (1 + math.Exp(-x))
	default:
		return x
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
