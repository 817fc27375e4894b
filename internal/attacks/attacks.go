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

// Package attacks precomputes the non-sliding piece attack tables (king,
// gold, silver, knight, lance step, pawn) and exposes a single AttacksBb
// dispatcher that also reaches into internal/magic for the sliding
// families (rook, bishop, and their promoted forms), per §4.2/§4.3.
// Tables are built once in init() and are immutable afterwards.
package attacks

import (
	"github.com/frankkopp/shogi-engine/internal/magic"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

var (
	kingTbl   [SqLength]Bitboard
	goldTbl   [SideLength][SqLength]Bitboard
	silverTbl [SideLength][SqLength]Bitboard
	knightTbl [SideLength][SqLength]Bitboard
	pawnTbl   [SideLength][SqLength]Bitboard
)

type step struct{ dr, dc int }

var kingSteps = [8]step{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// goldSteps/silverSteps/knightSteps/pawnSteps are given for Black (moving
// towards row 0); the White table is built by mirroring the row sign.
var goldStepsBlack = [6]step{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}}
var silverStepsBlack = [5]step{{-1, -1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 1}}
var knightStepsBlack = [2]step{{-2, -1}, {-2, 1}}
var pawnStepsBlack = [1]step{{-1, 0}}

func mirror(steps []step) []step {
	out := make([]step, len(steps))
	for i, s := range steps {
		out[i] = step{-s.dr, s.dc}
	}
	return out
}

func buildStepTable(tbl *[SideLength][SqLength]Bitboard, blackSteps []step) {
	whiteSteps := mirror(blackSteps)
	for sq := Square(0); sq < SqLength; sq++ {
		tbl[Black][sq] = fromSteps(sq, blackSteps)
		tbl[White][sq] = fromSteps(sq, whiteSteps)
	}
}

func fromSteps(sq Square, steps []step) Bitboard {
	bb := BbZero
	r0, c0 := sq.Row(), sq.Col()
	for _, s := range steps {
		r, c := r0+s.dr, c0+s.dc
		if r >= 0 && r < RankCount && c >= 0 && c < FileCount {
			bb = bb.PushSquare(NewSquare(r, c))
		}
	}
	return bb
}

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		kingTbl[sq] = fromSteps(sq, kingSteps[:])
	}
	buildStepTable(&goldTbl, goldStepsBlack[:])
	buildStepTable(&silverTbl, silverStepsBlack[:])
	buildStepTable(&knightTbl, knightStepsBlack[:])
	buildStepTable(&pawnTbl, pawnStepsBlack[:])
}

// King returns the king's (and promoted rook/bishop's king-step component)
// attack set from sq.
func King(sq Square) Bitboard { return kingTbl[sq] }

// Gold returns the gold general's (and every promoted minor's) attack set
// from sq for side.
func Gold(sq Square, side Side) Bitboard { return goldTbl[side][sq] }

// Silver returns the silver general's attack set from sq for side.
func Silver(sq Square, side Side) Bitboard { return silverTbl[side][sq] }

// Knight returns the knight's attack set from sq for side.
func Knight(sq Square, side Side) Bitboard { return knightTbl[side][sq] }

// Pawn returns the pawn's single-step attack set from sq for side.
func Pawn(sq Square, side Side) Bitboard { return pawnTbl[side][sq] }

// lanceDir returns the single forward direction for side, used to ray-cast
// the lance directly rather than through a magic table - a lance only ever
// slides in one direction so a full "fancy" magic table buys it nothing,
// consistent with §2 naming only rook/bishop (and their promotions) for
// magic lookups.
func lanceDir(side Side) step {
	if side == Black {
		return step{-1, 0}
	}
	return step{1, 0}
}

// Lance returns the lance's sliding attack set from sq for side given the
// current board occupancy.
func Lance(sq Square, side Side, occupied Bitboard) Bitboard {
	d := lanceDir(side)
	bb := BbZero
	r, c := sq.Row(), sq.Col()
	for {
		r += d.dr
		c += d.dc
		if r < 0 || r >= RankCount || c < 0 || c >= FileCount {
			break
		}
		s := NewSquare(r, c)
		bb = bb.PushSquare(s)
		if occupied.Has(s) {
			break
		}
	}
	return bb
}

// Bishop and Rook delegate straight to the magic tables.
func Bishop(sq Square, occupied Bitboard) Bitboard { return magic.BishopAttacks(sq, occupied) }
func Rook(sq Square, occupied Bitboard) Bitboard   { return magic.RookAttacks(sq, occupied) }

// PromotedBishop ("horse") combines the bishop's sliding attacks with the
// king-step table, per §4.2/§4.3.
func PromotedBishop(sq Square, occupied Bitboard) Bitboard {
	return Bishop(sq, occupied).Or(King(sq))
}

// PromotedRook ("dragon") combines the rook's sliding attacks with the
// king-step table, per §4.2/§4.3.
func PromotedRook(sq Square, occupied Bitboard) Bitboard {
	return Rook(sq, occupied).Or(King(sq))
}

// AttacksBb is the single dispatcher used by movegen/evaluator: given a
// piece kind, origin square, side and board occupancy, it returns that
// piece's pseudo-attack set. Side only matters for the direction-asymmetric
// kinds (pawn, lance, knight, silver, gold and the four promoted minors).
func AttacksBb(pt PieceType, sq Square, side Side, occupied Bitboard) Bitboard {
	switch pt {
	case King:
		return King(sq)
	case Gold, PPawn, PLance, PKnight, PSilver:
		return Gold(sq, side)
	case Silver:
		return Silver(sq, side)
	case Knight:
		return Knight(sq, side)
	case Pawn:
		return Pawn(sq, side)
	case Lance:
		return Lance(sq, side, occupied)
	case Bishop:
		return Bishop(sq, occupied)
	case Rook:
		return Rook(sq, occupied)
	case PBishop:
		return PromotedBishop(sq, occupied)
	case PRook:
		return PromotedRook(sq, occupied)
	}
	return BbZero
}
