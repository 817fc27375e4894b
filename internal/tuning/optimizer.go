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

import "math"

// Tuner fits a weight vector against a fixed set of training positions
// using gradient descent with momentum over a logistic (Texel) loss.
type Tuner struct {
	positions []TrainingPosition
	weights   []float64
	cfg       Config
}

// NewTuner builds a Tuner. initialWeights may be nil, in which case every
// weight starts at 1.0 (the conventional Texel-tuning starting point, a
// flat prior that lets gradient descent find every term's scale from
// scratch).
func NewTuner(positions []TrainingPosition, initialWeights []float64, cfg Config) *Tuner {
	numFeatures := 0
	if len(positions) > 0 {
		numFeatures = len(positions[0].Features)
	}
	weights := initialWeights
	if weights == nil {
		weights = make([]float64, numFeatures)
		for i := range weights {
			weights[i] = 1.0
		}
	}
	return &Tuner{positions: positions, weights: weights, cfg: cfg}
}

// Optimize runs gradient descent with momentum until convergence, early
// stopping or the iteration cap, whichever comes first.
func (t *Tuner) Optimize() Result {
	velocity := make([]float64, len(t.weights))
	errorHistory := make([]float64, 0, t.cfg.MaxIterations)

	bestError := math.Inf(1)
	patience := 0

	for iter := 0; iter < t.cfg.MaxIterations; iter++ {
		errVal, gradients := t.errorAndGradients()
		errorHistory = append(errorHistory, errVal)

		if errVal < t.cfg.ConvergenceThreshold {
			return Result{Weights: append([]float64(nil), t.weights...), FinalError: errVal,
				Iterations: iter + 1, Reason: ReasonConverged, ErrorHistory: errorHistory}
		}

		if errVal < bestError {
			bestError = errVal
			patience = 0
		} else {
			patience++
			if patience >= t.cfg.EarlyStoppingPatience {
				return Result{Weights: append([]float64(nil), t.weights...), FinalError: errVal,
					Iterations: iter + 1, Reason: ReasonEarlyStopping, ErrorHistory: errorHistory}
			}
		}

		for i := range t.weights {
			velocity[i] = t.cfg.Momentum*velocity[i] - t.cfg.LearningRate*gradients[i]
			t.weights[i] += velocity[i]
		}
		t.applyRegularization()
	}

	return Result{Weights: append([]float64(nil), t.weights...), FinalError: bestError,
		Iterations: t.cfg.MaxIterations, Reason: ReasonMaxIterations, ErrorHistory: errorHistory}
}

// errorAndGradients computes the mean squared error between each
// position's predicted win probability and its recorded result, along
// with the gradient of that error with respect to every weight.
func (t *Tuner) errorAndGradients() (float64, []float64) {
	gradients := make([]float64, len(t.weights))
	totalError := 0.0

	for _, pos := range t.positions {
		predicted := t.score(pos.Features)
		probability := t.sigmoid(predicted)
		err := pos.Result - probability
		totalError += err * err

		derivative := t.sigmoidDerivative(predicted)
		for i, feature := range pos.Features {
			if i < len(gradients) {
				gradients[i] += -2.0 * err * derivative * feature
			}
		}
	}

	n := float64(len(t.positions))
	if n == 0 {
		return 0, gradients
	}
	totalError /= n
	for i := range gradients {
		gradients[i] /= n
	}
	return totalError, gradients
}

func (t *Tuner) score(features []float64) float64 {
	sum := 0.0
	for i, feature := range features {
		if i < len(t.weights) {
			sum += t.weights[i] * feature
		}
	}
	return sum
}

func (t *Tuner) sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-t.cfg.KFactor*x))
}

func (t *Tuner) sigmoidDerivative(x float64) float64 {
	s := t.sigmoid(x)
	return t.cfg.KFactor * s * (1 - s)
}

// applyRegularization shrinks every weight towards zero by the configured
// L2 strength, penalizing large weights that memorize the training set
// rather than capturing a real evaluation signal.
func (t *Tuner) applyRegularization() {
	if t.cfg.L2Regularization == 0 {
		return
	}
	for i := range t.weights {
		t.weights[i] -= t.cfg.L2Regularization * t.weights[i]
	}
}
