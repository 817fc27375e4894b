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

// Package magic builds and serves the magic-bitboard lookup tables for
// Shogi's two sliding piece families (rook-like and bishop-like) on the
// 9x9 board. Taken from the "fancy" magic bitboard approach long used in
// chess engines (see https://www.chessprogramming.org/Magic_Bitboards)
// and adapted here from the teacher's own Stockfish-derived
// internal/types/magic.go, generalized to a 9x9 board and to a
// 128-bit Bitboard that no longer fits a single machine word.
package magic

import (
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// Family identifies a sliding-piece attack pattern.
type Family int

const (
	RookFamily Family = iota
	BishopFamily
	familyLength
)

// direction is a (row-delta, col-delta) step.
type direction struct{ dr, dc int }

var rookDirs = [4]direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirs = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func dirsFor(f Family) [4]direction {
	if f == RookFamily {
		return rookDirs
	}
	return bishopDirs
}

func inBounds(r, c int) bool { return r >= 0 && r < RankCount && c >= 0 && c < FileCount }

// entry holds one square's magic record: the relevant-occupancy mask (as
// both a Bitboard and an ordered list of its squares, used to pack an
// occupancy into a dense index - see the package doc and DESIGN.md for why
// a 128-bit board needs this extra packing step that a 64-bit chessboard
// would not), the magic multiplier, the shift, and the square's slice of
// the shared attack array.
type entry struct {
	mask        Bitboard
	maskSquares []Square
	magicNum    uint64
	shift       uint
	attacks     []Bitboard
}

// index packs occupied (restricted to the mask) into the square's magic
// table slot.
func (e *entry) index(occupied Bitboard) uint64 {
	packed := pack(occupied, e.maskSquares)
	return (packed * e.magicNum) >> e.shift
}

// pack gathers the bits of occupied at the mask's square positions into a
// dense low-order uint64 - the PEXT-equivalent gather the package doc
// describes.
func pack(occupied Bitboard, maskSquares []Square) uint64 {
	var x uint64
	for i, s := range maskSquares {
		if occupied.Has(s) {
			x |= 1 << uint(i)
		}
	}
	return x
}

// relevantMask returns the squares a slider at sq would traverse in the
// given directions before reaching the board edge, excluding sq itself and
// the edge squares (§4.3 step 1).
func relevantMask(sq Square, dirs [4]direction) Bitboard {
	mask := BbZero
	r0, c0 := sq.Row(), sq.Col()
	for _, d := range dirs {
		r, c := r0, c0
		for {
			r += d.dr
			c += d.dc
			if !inBounds(r, c) {
				break
			}
			// stop (without including) when this square is the edge -
			// i.e. the next step along the ray would leave the board.
			if !inBounds(r+d.dr, c+d.dc) {
				break
			}
			mask = mask.PushSquare(NewSquare(r, c))
		}
	}
	return mask
}

// slidingAttack ray-traces from sq along dirs over the given occupancy,
// including the first blocker on each ray (§4.3 step 2).
func slidingAttack(sq Square, dirs [4]direction, occupied Bitboard) Bitboard {
	attack := BbZero
	r0, c0 := sq.Row(), sq.Col()
	for _, d := range dirs {
		r, c := r0, c0
		for {
			r += d.dr
			c += d.dc
			if !inBounds(r, c) {
				break
			}
			s := NewSquare(r, c)
			attack = attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

var tables [familyLength][SqLength]entry

var initialized = false

func init() {
	if !initialized {
		if err := Init(); err != nil {
			panic(err)
		}
		initialized = true
	}
}

// RookAttacks returns the rook's attack set from sq given the board
// occupancy, via O(1) magic lookup.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	e := &tables[RookFamily][sq]
	return e.attacks[e.index(occupied)]
}

// BishopAttacks returns the bishop's attack set from sq given the board
// occupancy, via O(1) magic lookup.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	e := &tables[BishopFamily][sq]
	return e.attacks[e.index(occupied)]
}

// Attacks returns the slider attack set for the given family.
func Attacks(f Family, sq Square, occupied Bitboard) Bitboard {
	e := &tables[f][sq]
	return e.attacks[e.index(occupied)]
}

// Validate re-derives every table entry by direct ray-casting and reports
// the first (square, occupancy) mismatch found, per §4.3's validation
// requirement. Intended for tests, not hot paths.
func Validate() error {
	for f := RookFamily; f < familyLength; f++ {
		dirs := dirsFor(f)
		for sq := Square(0); sq < SqLength; sq++ {
			e := &tables[f][sq]
			size := 1 << uint(len(e.maskSquares))
			for idx := 0; idx < size; idx++ {
				occ := occupancyFromIndex(idx, e.maskSquares)
				want := slidingAttack(sq, dirs, occ)
				got := e.attacks[e.index(occ)]
				if got != want {
					return &ValidationError{Square: sq, Family: f, Occupied: occ}
				}
			}
		}
	}
	return nil
}

// ValidationError names the offending (square, occupancy) per §4.3.
type ValidationError struct {
	Square   Square
	Family   Family
	Occupied Bitboard
}

func (e *ValidationError) Error() string {
	return "magic: lookup mismatch at square " + e.Square.String()
}

// occupancyFromIndex reconstructs the occupancy bitboard for the idx-th
// subset of maskSquares (idx in [0, 2^len(maskSquares))).
func occupancyFromIndex(idx int, maskSquares []Square) Bitboard {
	occ := BbZero
	for i, s := range maskSquares {
		if idx&(1<<uint(i)) != 0 {
			occ = occ.PushSquare(s)
		}
	}
	return occ
}
