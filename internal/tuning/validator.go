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

import "math/rand"

// FoldResult records one k-fold cross-validation split's outcome.
type FoldResult struct {
	Fold            int
	ValidationError float64
	SampleCount     int
}

// CrossValidate runs k-fold cross-validation over positions: each fold
// trains a fresh Tuner on the other k-1 folds and measures its mean
// squared error against the held-out fold, giving an estimate of how well
// a weight vector fit on this data generalizes rather than overfits it.
func CrossValidate(positions []TrainingPosition, cfg Config, k int, rng *rand.Rand) []FoldResult {
	if len(positions) == 0 || k <= 0 {
		return nil
	}

	shuffled := append([]TrainingPosition(nil), positions...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	foldSize := len(shuffled) / k
	remainder := len(shuffled) % k

	results := make([]FoldResult, 0, k)
	start := 0
	for fold := 0; fold < k; fold++ {
		size := foldSize
		if fold < remainder {
			size++
		}
		end := start + size

		validation := shuffled[start:end]
		training := make([]TrainingPosition, 0, len(shuffled)-len(validation))
		training = append(training, shuffled[:start]...)
		training = append(training, shuffled[end:]...)

		tuner := NewTuner(training, nil, cfg)
		fitted := tuner.Optimize()

		results = append(results, FoldResult{
			Fold:            fold + 1,
			ValidationError: meanSquaredError(fitted.Weights, cfg.KFactor, validation),
			SampleCount:     len(validation),
		})

		start = end
	}
	return results
}

// meanSquaredError scores weights against a held-out set without
// mutating them further, the same loss Optimize's gradient descent
// minimizes.
func meanSquaredError(weights []float64, kFactor float64, positions []TrainingPosition) float64 {
	if len(positions) == 0 {
		return 0
	}
	tuner := &Tuner{weights: weights, cfg: Config{KFactor: kFactor}}
	total := 0.0
	for _, pos := range positions {
		predicted := tuner.sigmoid(tuner.score(pos.Features))
		diff := pos.Result - predicted
		total += diff * diff
	}
	return total / float64(len(positions))
}
