//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package tuning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticPositions builds a training set that a single feature should
// predict perfectly: winner has the feature set, loser doesn't.
func syntheticPositions() []TrainingPosition {
	return []TrainingPosition{
		{Features: []float64{1}, Result: 1.0},
		{Features: []float64{1}, Result: 1.0},
		{Features: []float64{-1}, Result: 0.0},
		{Features: []float64{-1}, Result: 0.0},
	}
}

func TestOptimizeReducesError(t *testing.T) {
	positions := syntheticPositions()
	cfg := DefaultConfig()
	cfg.MaxIterations = 200

	tuner := NewTuner(positions, []float64{0}, cfg)
	startErr, _ := tuner.errorAndGradients()

	result := tuner.Optimize()
	require.NotEmpty(t, result.ErrorHistory)
	assert.Less(t, result.FinalError, startErr)
}

func TestOptimizeConvergesOnSeparableData(t *testing.T) {
	positions := syntheticPositions()
	cfg := DefaultConfig()
	cfg.KFactor = 4.0
	cfg.LearningRate = 0.5
	cfg.MaxIterations = 5000
	cfg.ConvergenceThreshold = 1e-4

	tuner := NewTuner(positions, []float64{0}, cfg)
	result := tuner.Optimize()

	assert.Greater(t, result.Weights[0], 0.0)
	assert.Less(t, result.FinalError, 0.05)
}

func TestCrossValidateReturnsOneResultPerFold(t *testing.T) {
	positions := syntheticPositions()
	cfg := DefaultConfig()
	cfg.MaxIterations = 50

	results := CrossValidate(positions, cfg, 2, rand.New(rand.NewSource(1)))
	require.Len(t, results, 2)
	total := 0
	for _, r := range results {
		total += r.SampleCount
	}
	assert.Equal(t, len(positions), total)
}
