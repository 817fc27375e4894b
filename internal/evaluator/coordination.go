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

package evaluator

import (
	"github.com/frankkopp/shogi-engine/internal/config"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// rookLanceSupportFor counts side's rooks and lances that stand directly
// behind a friendly pawn on the same file - the pawn clears the way while
// the rook or lance backs up its advance, a routine Shogi coordination
// pattern.
func (e *Evaluator) rookLanceSupportFor(side Side) int {
	pawns := e.pos.PiecesBb(side, Pawn)
	supporters := e.pos.PiecesBb(side, Rook).Or(e.pos.PiecesBb(side, Lance))

	count := 0
	supporters.ForEach(func(sq Square) {
		col := sq.Col()
		behind := advanceFromOwnRank(sq, side)
		pawns.ForEach(func(p Square) {
			if p.Col() == col && advanceFromOwnRank(p, side) > behind {
				count++
			}
		})
	})
	return count
}

// bishopPairFor reports whether side has at least two bishops (promoted
// or not) on the board. Each side starts with one, so this only holds
// once a captured bishop has been dropped back in.
func (e *Evaluator) bishopPairFor(side Side) bool {
	count := e.pos.PiecesBb(side, Bishop).PopCount() + e.pos.PiecesBb(side, PBishop).PopCount()
	return count >= 2
}

// coordination returns the Black-minus-White piece coordination score.
func (e *Evaluator) coordination() Score {
	support := e.rookLanceSupportFor(Black) - e.rookLanceSupportFor(White)

	bishopPair := 0
	if e.bishopPairFor(Black) {
		bishopPair += config.Settings.Eval.BishopPairBonus
	}
	if e.bishopPairFor(White) {
		bishopPair -= config.Settings.Eval.BishopPairBonus
	}

	d := support*config.Settings.Eval.RookLanceSupport + bishopPair
	return Score{Mg: d, Eg: d}
}
