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
	"github.com/frankkopp/shogi-engine/internal/attacks"
	"github.com/frankkopp/shogi-engine/internal/config"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// pseudoMobility counts, for side, the number of squares its board pieces
// pseudo-attack that are not occupied by one of its own pieces. Drops are
// not counted - a hand full of pieces is not "mobile" the way a developed
// rook is.
func pseudoMobility(occ Bitboard, own Bitboard, piecesBb func(pt PieceType) Bitboard, side Side) int {
	count := 0
	for pt := Pawn; pt < King; pt++ {
		piecesBb(pt).ForEach(func(from Square) {
			count += attacks.AttacksBb(pt, from, side, occ).AndNot(own).PopCount()
		})
	}
	return count
}

// mobility returns the Black-minus-White pseudo-mobility score, scaled by
// the configured mid-game/end-game bonus per extra reachable square.
func (e *Evaluator) mobility() Score {
	occ := e.pos.OccupiedAll()

	blackCount := pseudoMobility(occ, e.pos.OccupiedBb(Black), func(pt PieceType) Bitboard {
		return e.pos.PiecesBb(Black, pt)
	}, Black)
	whiteCount := pseudoMobility(occ, e.pos.OccupiedBb(White), func(pt PieceType) Bitboard {
		return e.pos.PiecesBb(White, pt)
	}, White)

	diff := blackCount - whiteCount
	return Score{
		Mg: diff * config.Settings.Eval.MobilityBonusMg,
		Eg: diff * config.Settings.Eval.MobilityBonusEg,
	}
}
