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

package book

import (
	"strconv"

	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// Probe returns the best legal book move for p, if the position's
// signature is known to the book and at least one recorded candidate
// still matches a legal move (recorded candidates can go stale if the
// book was built against a different move generator version).
func (b *Book) Probe(p *position.Position, signature string) (Move, bool) {
	for _, m := range b.Candidates(signature) {
		if mv, ok := toMove(p, m); ok {
			return mv, true
		}
	}
	return MoveNone, false
}

// toMove resolves a BookMove against the position's actual legal move
// list, the same "trust the move generator, not the book" pattern a
// polyglot-book reader uses to recover captured-piece/promotion flags a
// bare from/to pair can't carry on its own.
func toMove(p *position.Position, bm BookMove) (Move, bool) {
	to, ok := parseSquare(bm.To)
	if !ok {
		return MoveNone, false
	}

	isDrop := bm.From == "drop" || bm.From == ""
	var from Square
	if !isDrop {
		from, ok = parseSquare(bm.From)
		if !ok {
			return MoveNone, false
		}
	}

	for _, m := range movegen.GenerateLegalMoves(p, movegen.GenAll) {
		if m.To() != to {
			continue
		}
		if m.Promotes() != bm.Promote {
			continue
		}
		if isDrop {
			if m.IsDrop() {
				return m, true
			}
			continue
		}
		if !m.IsDrop() && m.From() == from {
			return m, true
		}
	}
	return MoveNone, false
}

// parseSquare parses the compact "fileRank" notation used by Square.String.
func parseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	file, err := strconv.Atoi(s[:1])
	if err != nil {
		return SqNone, false
	}
	return SquareFromFileRank(file, s[1])
}
