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

package types

// pieceValues holds the material worth of each kind in centipawns, the
// conventional baseline used throughout the engine for material counting,
// MVV/LVA ordering and SEE.
var pieceValues = [PtLength]int{
	PtNone: 0,
	Pawn:   100,
	Lance:  300,
	Knight: 320,
	Silver: 450,
	Gold:   500,
	Bishop: 800,
	Rook:   1000,
	King:   20000,
	PPawn:   500,
	PLance:  500,
	PKnight: 500,
	PSilver: 500,
	PBishop: 1200,
	PRook:   1300,
}

// Value returns pt's material worth in centipawns.
func (pt PieceType) Value() int { return pieceValues[pt] }

// gamePhaseValues holds each kind's contribution to the game-phase count;
// pawns and kings contribute nothing, promoted pieces count as their
// unpromoted base (captured or promoted, an officer leaving the board
// advances the game the same amount).
var gamePhaseValues = [PtLength]int{
	Knight:  1,
	Silver:  1,
	Gold:    2,
	Bishop:  2,
	Rook:    3,
	Lance:   1,
	PKnight: 1,
	PSilver: 1,
	PBishop: 2,
	PRook:   3,
	PLance:  1,
}

// GamePhaseValue returns pt's contribution to the game-phase count.
func (pt PieceType) GamePhaseValue() int { return gamePhaseValues[pt] }

// startingGamePhaseSum is the sum of GamePhaseValue() over every piece on
// the board at the start of a game: 4 knights (1 each) + 4 silvers (1) +
// 4 golds (2) + 2 bishops (2) + 2 rooks (3) + 4 lances (1) =
// 4+4+8+4+6+4 = 30. Raw phase sums are rescaled onto [0, PhaseMax] so
// tapering keeps PhaseMax's finer granularity regardless of this total.
const startingGamePhaseSum = 30

// ScaleGamePhase maps a raw phase sum (0..startingGamePhaseSum, clamped)
// onto [0, PhaseMax].
func ScaleGamePhase(raw int) int {
	if raw < 0 {
		raw = 0
	}
	if raw > startingGamePhaseSum {
		raw = startingGamePhaseSum
	}
	return raw * PhaseMax / startingGamePhaseSum
}
