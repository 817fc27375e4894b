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

// Package ordering holds the move-ordering state a search carries across an
// iterative-deepening run: history counters, killer moves, counter moves
// and a static-exchange-evaluation cache, plus the scoring function that
// combines them with the PV and TT move into a single sort key.
package ordering

import (
	. "github.com/frankkopp/shogi-engine/internal/types"
)

const numSquares = int(SqNone)

// History is a flat (side, from, to) success counter: every time a quiet
// move causes a beta cutoff its bucket is incremented by depth*depth. The
// orderer reads it as one of the lowest-priority tiebreakers so quiet
// moves that have repeatedly refuted a line sort ahead of moves that never
// have.
type History struct {
	counts [2][numSquares][numSquares]int64
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Add rewards a quiet move that caused a cutoff at depth.
func (h *History) Add(side Side, m Move, depth int) {
	if m.IsDrop() {
		return
	}
	bonus := int64(depth * depth)
	h.counts[side][m.From()][m.To()] += bonus
}

// Score returns the accumulated bonus for a quiet move.
func (h *History) Score(side Side, m Move) int64 {
	if m.IsDrop() {
		return 0
	}
	return h.counts[side][m.From()][m.To()]
}

// Age divides every counter by divisor (values below 1 count as 1), keeping long-lived counters from saturating
// across many searches while preserving their relative ordering.
func (h *History) Age(divisor int) {
	if divisor <= 0 {
		divisor = 1
	}
	for side := Black; side <= White; side++ {
		for from := 0; from < numSquares; from++ {
			for to := 0; to < numSquares; to++ {
				h.counts[side][from][to] /= int64(divisor)
			}
		}
	}
}

// Clear resets every counter to zero.
func (h *History) Clear() {
	*h = History{}
}

// CounterMoves records, for every (side-to-move-before-the-opponent-moved)
// opponent move, the most recent move that refuted it - the mover's reply
// that caused a beta cutoff right after that opponent move was played.
type CounterMoves struct {
	moves [numSquares][numSquares]Move
}

// NewCounterMoves creates an empty CounterMoves table.
func NewCounterMoves() *CounterMoves {
	cm := &CounterMoves{}
	cm.Clear()
	return cm
}

// Set records m as the refutation of the opponent's last move.
func (c *CounterMoves) Set(lastMove, m Move) {
	if lastMove == MoveNone || lastMove.IsDrop() {
		return
	}
	c.moves[lastMove.From()][lastMove.To()] = m.MoveOf()
}

// Get returns the recorded refutation of lastMove, or MoveNone.
func (c *CounterMoves) Get(lastMove Move) Move {
	if lastMove == MoveNone || lastMove.IsDrop() {
		return MoveNone
	}
	return c.moves[lastMove.From()][lastMove.To()]
}

// Clear resets every counter-move slot to MoveNone.
func (c *CounterMoves) Clear() {
	for from := 0; from < numSquares; from++ {
		for to := 0; to < numSquares; to++ {
			c.moves[from][to] = MoveNone
		}
	}
}
