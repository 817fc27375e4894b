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
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/frankkopp/shogi-engine/internal/util"
)

// record is the on-disk shape of one training position: a pre-extracted
// feature vector (internal/evaluator.ExtractFeatures's output) plus the
// game's outcome from that position's side-to-move perspective.
type record struct {
	Features []float64 `json:"features"`
	Result   float64   `json:"result"`
}

// LoadTrainingPositions reads a newline-delimited JSON training set, one
// record object per line. Positions are expected to already carry
// extracted feature vectors rather than raw game notation - this rebuild
// does not carry the multi-format (KIF/CSA/PGN) game-database importer,
// only its own internal tuning pipeline's data shape.
func LoadTrainingPositions(path string) ([]TrainingPosition, error) {
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: resolving training set path %q: %w", path, err)
	}
	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("tuning: opening training set %q: %w", resolved, err)
	}
	defer file.Close()

	var positions []TrainingPosition
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(text, &r); err != nil {
			return nil, fmt.Errorf("tuning: parsing %q line %d: %w", resolved, line, err)
		}
		positions = append(positions, TrainingPosition{Features: r.Features, Result: r.Result})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tuning: reading %q: %w", resolved, err)
	}
	return positions, nil
}
