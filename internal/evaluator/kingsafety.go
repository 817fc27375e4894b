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

// zone5x5 returns the bitboard of every square within two rows and two
// columns of sq (clamped to the board edge), used for the enemy-proximity
// half of the king safety term.
func zone5x5(sq Square) Bitboard {
	var bb Bitboard
	row, col := sq.Row(), sq.Col()
	for r := row - 2; r <= row+2; r++ {
		if r < 0 || r >= RankCount {
			continue
		}
		for c := col - 2; c <= col+2; c++ {
			if c < 0 || c >= FileCount {
				continue
			}
			bb = bb.PushSquare(NewSquare(r, c))
		}
	}
	return bb
}

// shieldValue returns a side's king-shield weighting for one friendly
// piece kind standing next to the king, golds being the most valuable
// shield piece and pawns the least (the conventional Shogi castle
// ordering: gold > silver > knight > lance > pawn).
func shieldValue(pt PieceType) int {
	switch pt.Demote() {
	case Gold:
		return config.Settings.Eval.KingShieldGold
	case Silver:
		return config.Settings.Eval.KingShieldSilver
	case Knight:
		return config.Settings.Eval.KingShieldKnight
	case Lance:
		return config.Settings.Eval.KingShieldLance
	case Pawn:
		return config.Settings.Eval.KingShieldPawn
	}
	return 0
}

// kingSafetyFor scores side's own king safety: a bonus for every friendly
// shield piece in the king's immediate 8-neighborhood, minus a flat malus
// per enemy piece occupying the wider 5x5 zone around the king.
func (e *Evaluator) kingSafetyFor(side Side) int {
	kingSq := e.blackKing
	if side == White {
		kingSq = e.whiteKing
	}
	neighborhood := attacks.King(kingSq)
	own := e.pos.OccupiedBb(side)

	shield := 0
	neighborhood.And(own).ForEach(func(sq Square) {
		shield += shieldValue(e.pos.PieceOn(sq).Type())
	})

	enemy := e.pos.OccupiedBb(side.Flip())
	danger := zone5x5(kingSq).And(enemy).PopCount() * config.Settings.Eval.KingDangerMalus

	return shield - danger
}

// kingSafety returns the Black-minus-White king-safety score. Safety
// matters more as pieces stay on the board - it is a mid-game term, not
// tapered towards the end-game where mating nets take over.
func (e *Evaluator) kingSafety() Score {
	d := e.kingSafetyFor(Black) - e.kingSafetyFor(White)
	return Score{Mg: d, Eg: 0}
}
