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

// RankBb holds, per row (0..8), a bitboard of every square on that row.
var RankBb [RankCount]Bitboard

// FileBb holds, per column (0..8), a bitboard of every square on that column.
var FileBb [FileCount]Bitboard

// diagUpBb / diagDownBb hold, per diagonal index (0..16), a bitboard of
// every square on that diagonal. "Up" diagonals run from bottom-left to
// top-right (row-col constant); "down" diagonals run from top-left to
// bottom-right (row+col constant). A 9x9 board has 2*9-1 = 17 diagonals
// in each direction.
const DiagonalCount = 2*RankCount - 1

var diagUpBb [DiagonalCount]Bitboard
var diagDownBb [DiagonalCount]Bitboard

func diagUpIndex(row, col int) int { return row - col + (RankCount - 1) }
func diagDownIndex(row, col int) int { return row + col }

func init() {
	for row := 0; row < RankCount; row++ {
		for col := 0; col < FileCount; col++ {
			sq := NewSquare(row, col)
			RankBb[row] = RankBb[row].PushSquare(sq)
			FileBb[col] = FileBb[col].PushSquare(sq)
			diagUpBb[diagUpIndex(row, col)] = diagUpBb[diagUpIndex(row, col)].PushSquare(sq)
			diagDownBb[diagDownIndex(row, col)] = diagDownBb[diagDownIndex(row, col)].PushSquare(sq)
		}
	}
}

// RankOfBb returns the rank bitboard containing s.
func (s Square) RankOfBb() Bitboard { return RankBb[s.Row()] }

// FileOfBb returns the file bitboard containing s.
func (s Square) FileOfBb() Bitboard { return FileBb[s.Col()] }

// SameRank reports whether a and b share a row.
func SameRank(a, b Square) bool { return a.Row() == b.Row() }

// SameFile reports whether a and b share a column.
func SameFile(a, b Square) bool { return a.Col() == b.Col() }

// SameDiagonal reports whether a and b lie on a common up- or down-diagonal.
func SameDiagonal(a, b Square) bool {
	return diagUpIndex(a.Row(), a.Col()) == diagUpIndex(b.Row(), b.Col()) ||
		diagDownIndex(a.Row(), a.Col()) == diagDownIndex(b.Row(), b.Col())
}

// ValidateGeometry checks the static invariants the geometry tables must
// hold: rank masks cover disjoint 9-square groups, file masks are strided
// by 9, and diagonal masks partition the board into the 17 up- and
// 17 down-diagonals of a 9x9 board. Intended for use from init-time
// self-checks / tests, not from hot paths.
func ValidateGeometry() error {
	var all Bitboard
	for r := 0; r < RankCount; r++ {
		if RankBb[r].PopCount() != FileCount {
			return geometryError("rank", r)
		}
		all = all.Or(RankBb[r])
	}
	if all.PopCount() != SqLength {
		return geometryError("rank-union", -1)
	}
	all = BbZero
	for f := 0; f < FileCount; f++ {
		if FileBb[f].PopCount() != RankCount {
			return geometryError("file", f)
		}
		all = all.Or(FileBb[f])
	}
	if all.PopCount() != SqLength {
		return geometryError("file-union", -1)
	}
	var upTotal, downTotal int
	for d := 0; d < DiagonalCount; d++ {
		upTotal += diagUpBb[d].PopCount()
		downTotal += diagDownBb[d].PopCount()
	}
	if upTotal != SqLength || downTotal != SqLength {
		return geometryError("diagonal-union", -1)
	}
	return nil
}

type geometryErr struct {
	kind string
	idx  int
}

func (e *geometryErr) Error() string {
	return "types: geometry invariant violated for " + e.kind
}

func geometryError(kind string, idx int) error { return &geometryErr{kind, idx} }
