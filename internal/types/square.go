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

// Package types holds the core value types shared by every other package
// in the engine: squares, sides, piece kinds, bitboards, moves, hands and
// tapered scores. Nothing in this package depends on position, movegen or
// search - it is the leaf of the dependency graph.
package types

import "fmt"

// Square is a square of the 9x9 board, numbered 0..80.
//  row = square / 9   (row 0 is White's back rank, row 8 is Black's)
//  col = square % 9
type Square int8

const (
	SqLength  = 81
	RankCount = 9
	FileCount = 9
)

// SqNone is used to indicate "no square", e.g. an empty from-square for drops.
const SqNone Square = 81

// NewSquare builds a Square from a 0-based row and column.
func NewSquare(row, col int) Square {
	return Square(row*9 + col)
}

// Row returns the 0-based row (0 = White's back rank).
func (s Square) Row() int { return int(s) / 9 }

// Col returns the 0-based column.
func (s Square) Col() int { return int(s) % 9 }

// IsValid reports whether s is one of the 81 board squares.
func (s Square) IsValid() bool { return s >= 0 && s < SqLength }

// File returns the Shogi file number 1..9, numbered right-to-left,
// i.e. column 0 is file 9 and column 8 is file 1.
func (s Square) File() int { return 9 - s.Col() }

// Rank returns the Shogi rank letter 'a'..'i', 'a' being row 0.
func (s Square) Rank() byte { return byte('a' + s.Row()) }

// String renders the square in "fileRank" notation, e.g. "7g".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d%c", s.File(), s.Rank())
}

// SquareFromFileRank parses the compact "fileRank" notation (§6).
func SquareFromFileRank(file int, rank byte) (Square, bool) {
	if file < 1 || file > 9 {
		return SqNone, false
	}
	if rank < 'a' || rank > 'i' {
		return SqNone, false
	}
	row := int(rank - 'a')
	col := 9 - file
	return NewSquare(row, col), true
}

// inPromotionZone reports whether row lies in side's promotion zone:
// Black promotes in rows 0..2, White in rows 6..8.
func inPromotionZone(row int, side Side) bool {
	if side == Black {
		return row <= 2
	}
	return row >= 6
}

// InPromotionZone reports whether the square lies in side's promotion zone
// (the three ranks nearest the opponent's back rank).
func (s Square) InPromotionZone(side Side) bool {
	return inPromotionZone(s.Row(), side)
}

// IsLastRank reports whether the square is the farthest rank a piece moving
// forward for side could ever reach (row 0 for White moving "forward" makes
// no sense - this is the mover's own forward last rank).
func (s Square) IsLastRank(side Side) bool {
	if side == Black {
		return s.Row() == 0
	}
	return s.Row() == 8
}

// IsLastTwoRanks reports whether the square is one of the two ranks nearest
// the forward edge for side - used for the knight's dead-square rule.
func (s Square) IsLastTwoRanks(side Side) bool {
	if side == Black {
		return s.Row() <= 1
	}
	return s.Row() >= 7
}
