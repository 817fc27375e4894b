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

package search

import (
	"math"

	. "github.com/frankkopp/shogi-engine/internal/types"
)

// MaxDepth bounds both the iterative-deepening loop and the ply-indexed
// scratch tables (principal variation lines, move generators) a search
// allocates up front.
const MaxDepth = 128

// nodeCheckInterval gates how often the search pays for a context.Done()
// channel read: every node is too often, so the cheap stopped flag is
// consulted on every node and the context is only actually polled every
// nodeCheckInterval nodes.
const nodeCheckInterval = 4096

// lmr is a lookup table for late move reductions, indexed by remaining
// depth and number of moves already searched at this node.
var lmr [32][64]int

// LmrReduction returns the depth reduction Late Move Reduction applies
// for a move at the given depth and search order.
func LmrReduction(depth, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 64 {
		movesSearched = 63
	}
	return lmr[depth][movesSearched]
}

func init() {
	for i := 0; i < 32; i++ {
		for j := 0; j < 64; j++ {
			switch {
			case i <= 3, j <= 3:
				lmr[i][j] = 1
			default:
				lmr[i][j] = int(math.Round((float64(i)*0.7)*(float64(j)*0.005) + 1.0))
			}
		}
	}
}

// rfp holds the reverse futility pruning margin per remaining depth.
var rfp = [4]Value{0, 200, 400, 800}
