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

// advanceFromOwnRank returns how many ranks sq sits forward of side's own
// back rank, 0 at the back rank climbing towards 8 at the far edge.
func advanceFromOwnRank(sq Square, side Side) int {
	if side == Black {
		return 8 - sq.Row()
	}
	return sq.Row()
}

// pawnStructureFor scores side's pawns: a bonus per pawn with a friendly
// pawn on an adjacent file (connected, hard to win outright), a malus per
// pawn with no friendly pawn on either adjacent file (isolated), and a
// small per-rank advancement bonus that only matters once the game phase
// has tapered towards the end-game.
func (e *Evaluator) pawnStructureFor(side Side) (mg, eg int) {
	pawns := e.pos.PiecesBb(side, Pawn)
	fileOcc := [FileCount]bool{}
	pawns.ForEach(func(sq Square) { fileOcc[sq.Col()] = true })

	pawns.ForEach(func(sq Square) {
		col := sq.Col()
		left := col > 0 && fileOcc[col-1]
		right := col < FileCount-1 && fileOcc[col+1]
		switch {
		case left || right:
			mg += config.Settings.Eval.ConnectedPawnBonus
		default:
			mg -= config.Settings.Eval.IsolatedPawnMalus
		}
		eg += advanceFromOwnRank(sq, side) * config.Settings.Eval.AdvancementBonusEg
	})
	return mg, eg
}

// pawnStructure returns the Black-minus-White pawn structure score. There
// is no dedicated pawn-hash cache here: computing this term directly from
// the (at most nine-per-side) pawn bitboard is already cheap enough that a
// cache would add bookkeeping without a measurable payoff.
func (e *Evaluator) pawnStructure() Score {
	bMg, bEg := e.pawnStructureFor(Black)
	wMg, wEg := e.pawnStructureFor(White)
	return Score{Mg: bMg - wMg, Eg: bEg - wEg}
}
