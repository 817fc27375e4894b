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

// Package tuning implements an offline Texel-style optimizer that fits
// internal/evaluator's term weights against a set of recorded
// (feature vector, game result) training positions. It is not wired into
// search at runtime - its output is a weights file internal/evaluator's
// WeightsFile loader can pick up.
package tuning

// TrainingPosition is one recorded (feature vector, outcome) sample, the
// unit the optimizer trains on. Result is the game outcome from the
// position's side-to-move perspective: 1.0 win, 0.5 draw, 0.0 loss.
type TrainingPosition struct {
	Features []float64
	Result   float64
}

// Config holds the optimizer's tunable knobs, mirroring the conventional
// Texel-tuning parameter set: a logistic k-factor that maps a raw
// evaluation score onto a win-probability, and a gradient-descent-with-
// momentum schedule over the feature weights.
type Config struct {
	KFactor               float64
	LearningRate          float64
	Momentum              float64
	L2Regularization      float64
	MaxIterations         int
	ConvergenceThreshold  float64
	EarlyStoppingPatience int
}

// DefaultConfig returns the conventional starting parameters for Texel
// tuning over a fresh feature set.
func DefaultConfig() Config {
	return Config{
		KFactor:               1.0,
		LearningRate:          0.01,
		Momentum:              0.9,
		L2Regularization:      0.0,
		MaxIterations:         1000,
		ConvergenceThreshold:  1e-6,
		EarlyStoppingPatience: 50,
	}
}

// ConvergenceReason records why Optimize stopped iterating.
type ConvergenceReason int

const (
	ReasonMaxIterations ConvergenceReason = iota
	ReasonConverged
	ReasonEarlyStopping
)

func (r ConvergenceReason) String() string {
	switch r {
	case ReasonConverged:
		return "converged"
	case ReasonEarlyStopping:
		return "early-stopping"
	default:
		return "max-iterations"
	}
}

// Result is what Optimize returns: the fitted weights plus enough of its
// own run history to populate an evaluator.TuningMetadata when the
// weights are written out.
type Result struct {
	Weights      []float64
	FinalError   float64
	Iterations   int
	Reason       ConvergenceReason
	ErrorHistory []float64
}
