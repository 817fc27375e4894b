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

package position

import (
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// psqTable holds a piece kind's square bonus, one entry per "step" (the
// distance forward from the piece's own back rank, 0..8) and per column.
type psqTable [RankCount][FileCount]int

// pstMg/pstEg hold one table per piece kind, indexed directly by
// PieceType. King's tables stay zero - king placement is scored entirely
// by the king-safety term, not a positional table.
var pstMg, pstEg [PtLength]psqTable

// buildTable combines a per-step advancement profile with a per-column
// center-preference profile: value(step, col) = stepProfile[step] +
// centerBonus(col, centerWeight). Every piece-square table in this
// package is built this way rather than spelled out as a literal grid,
// since the qualitative shape (advance for reward, prefer the center)
// is what carries the evaluation signal.
func buildTable(stepProfile [RankCount]int, centerWeight int) psqTable {
	var t psqTable
	for step := 0; step < RankCount; step++ {
		for col := 0; col < FileCount; col++ {
			t[step][col] = stepProfile[step] + centerBonus(col, centerWeight)
		}
	}
	return t
}

// centerBonus peaks at centerWeight on the middle file and falls off by 1
// per file moving outward, floored at 0.
func centerBonus(col, centerWeight int) int {
	d := col - 4
	if d < 0 {
		d = -d
	}
	b := centerWeight - d
	if b < 0 {
		b = 0
	}
	return b
}

func init() {
	pstMg[Pawn] = buildTable([RankCount]int{0, 4, 8, 12, 16, 20, 24, 28, 0}, 3)
	pstEg[Pawn] = buildTable([RankCount]int{0, 8, 16, 22, 28, 34, 40, 46, 0}, 2)

	pstMg[Lance] = buildTable([RankCount]int{0, 0, 0, 0, 0, 0, 0, 0, 0}, 6)
	pstEg[Lance] = buildTable([RankCount]int{0, 2, 4, 6, 8, 10, 12, 14, 0}, 4)

	pstMg[Knight] = buildTable([RankCount]int{-12, -6, 0, 4, 8, 4, 0, -8, -12}, 8)
	pstEg[Knight] = buildTable([RankCount]int{-8, -4, 0, 3, 6, 3, 0, -4, -8}, 5)

	silverMg := buildTable([RankCount]int{0, 4, 8, 12, 14, 12, 8, 4, 0}, 8)
	silverEg := buildTable([RankCount]int{0, 3, 6, 9, 11, 9, 6, 3, 0}, 5)
	pstMg[Silver] = silverMg
	pstEg[Silver] = silverEg

	goldMg := buildTable([RankCount]int{0, 3, 6, 9, 10, 9, 6, 3, 0}, 6)
	goldEg := buildTable([RankCount]int{0, 2, 4, 6, 7, 6, 4, 2, 0}, 4)
	pstMg[Gold] = goldMg
	pstEg[Gold] = goldEg

	pstMg[Bishop] = buildTable([RankCount]int{-8, -2, 4, 10, 14, 10, 4, -2, -8}, 10)
	pstEg[Bishop] = buildTable([RankCount]int{-4, 0, 3, 6, 9, 6, 3, 0, -4}, 6)

	pstMg[Rook] = buildTable([RankCount]int{0, 0, 3, 6, 9, 6, 3, 10, 0}, 8)
	pstEg[Rook] = buildTable([RankCount]int{0, 2, 4, 6, 8, 6, 4, 10, 0}, 6)

	// Promoted minors (tokin / +lance / +knight / +silver) all move like a
	// gold, so they inherit the gold profile.
	for _, pt := range []PieceType{PPawn, PLance, PKnight, PSilver} {
		pstMg[pt] = goldMg
		pstEg[pt] = goldEg
	}

	// Promoted sliders keep their base table plus the extra king-step
	// mobility is rewarded with a flat center bump.
	pstMg[PBishop] = addCenterBump(pstMg[Bishop], 4)
	pstEg[PBishop] = addCenterBump(pstEg[Bishop], 4)
	pstMg[PRook] = addCenterBump(pstMg[Rook], 4)
	pstEg[PRook] = addCenterBump(pstEg[Rook], 4)
}

func addCenterBump(t psqTable, bump int) psqTable {
	var out psqTable
	for step := 0; step < RankCount; step++ {
		for col := 0; col < FileCount; col++ {
			out[step][col] = t[step][col] + centerBonus(col, bump)
		}
	}
	return out
}

// stepFromOwnRank converts a square and side into "how far forward from
// the mover's own back rank" (0 = own back rank, 8 = the opponent's).
func stepFromOwnRank(sq Square, side Side) int {
	if side == Black {
		return 8 - sq.Row()
	}
	return sq.Row()
}

// psqMidValue returns the positional (middlegame) bonus for pc on sq.
func psqMidValue(sq Square, pc Piece) int {
	return pstMg[pc.Type()][stepFromOwnRank(sq, pc.Side())][sq.Col()]
}

// psqEndValue returns the positional (endgame) bonus for pc on sq.
func psqEndValue(sq Square, pc Piece) int {
	return pstEg[pc.Type()][stepFromOwnRank(sq, pc.Side())][sq.Col()]
}
