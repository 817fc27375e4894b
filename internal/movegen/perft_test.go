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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/shogi-engine/internal/position"
)

// Perft node counts for the standard Shogi starting position, depths 1-5.
// These are the long-established reference values used to validate move
// generators against (akin to the chess perft table from
// chessprogramming.org/Perft_Results, but for the 9x9 game with drops).
func TestStandardPerft(t *testing.T) {
	var results = [6]uint64{0, 30, 900, 25_470, 719_731, 19_861_490}

	maxDepth := 3
	if !testing.Short() {
		maxDepth = 4
	}

	for depth := 1; depth <= maxDepth; depth++ {
		p := position.NewPosition()
		var perft Perft
		perft.StartPerft(p, depth)
		assert.Equal(t, results[depth], perft.Nodes, "depth %d", depth)
	}
}

// TestStandardPerftDeep exercises depth 5, which takes noticeably longer
// than the shallow depths above - skipped under -short.
func TestStandardPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p := position.NewPosition()
	var perft Perft
	perft.StartPerft(p, 5)
	assert.Equal(t, uint64(19_861_490), perft.Nodes)
}

// TestPerftLeavesPositionUnchanged checks that a perft walk is fully
// reversible: the key before and after must match exactly.
func TestPerftLeavesPositionUnchanged(t *testing.T) {
	p := position.NewPosition()
	keyBefore := p.Key()
	var perft Perft
	perft.StartPerft(p, 3)
	assert.Equal(t, keyBefore, p.Key())
}
