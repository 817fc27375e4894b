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

import (
	"fmt"
	"math/bits"
	"strings"
)

// hiMask keeps only the 17 bits of the high word that correspond to
// squares 64..80; every Bitboard operation re-applies it so that bits
// 81..127 are always zero, as required by the data model invariant.
const hiMask = uint64(1<<17) - 1

// Bitboard is a 128-bit bitmap over the 81 board squares, represented as
// two 64-bit words: Lo holds squares 0..63, Hi holds squares 64..80 in its
// low 17 bits. Bits 81..127 (the unused high bits of Hi) are always zero.
type Bitboard struct {
	Lo uint64
	Hi uint64
}

// BbZero is the empty bitboard.
var BbZero = Bitboard{}

// sqBb is a precomputed single-bit Bitboard per square.
var sqBb [SqLength]Bitboard

func init() {
	for s := Square(0); s < SqLength; s++ {
		if s < 64 {
			sqBb[s] = Bitboard{Lo: 1 << uint(s)}
		} else {
			sqBb[s] = Bitboard{Hi: 1 << uint(s-64)}
		}
	}
}

// Bb returns the single-bit Bitboard for the square.
func (s Square) Bb() Bitboard {
	if !s.IsValid() {
		return BbZero
	}
	return sqBb[s]
}

// IsZero reports whether the bitboard has no bits set.
func (b Bitboard) IsZero() bool { return b.Lo == 0 && b.Hi == 0 }

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard { return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi} }

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard { return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi} }

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard { return Bitboard{b.Lo ^ o.Lo, b.Hi ^ o.Hi} }

// AndNot returns b with every bit set in o cleared (b &^ o).
func (b Bitboard) AndNot(o Bitboard) Bitboard { return Bitboard{b.Lo &^ o.Lo, b.Hi &^ o.Hi} }

// Not returns the complement of b restricted to the 81 valid squares.
func (b Bitboard) Not() Bitboard { return Bitboard{^b.Lo, ^b.Hi & hiMask} }

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool {
	return !b.And(s.Bb()).IsZero()
}

// PushSquare returns b with the square's bit set.
func (b Bitboard) PushSquare(s Square) Bitboard {
	return b.Or(s.Bb())
}

// PopSquare returns b with the square's bit cleared.
func (b Bitboard) PopSquare(s Square) Bitboard {
	return b.AndNot(s.Bb())
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// Lsb returns the least-significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b.Lo != 0 {
		return Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return SqNone
}

// PopLsb returns the least-significant set square and clears it in *b.
func (b *Bitboard) PopLsb() Square {
	s := b.Lsb()
	if s != SqNone {
		*b = b.PopSquare(s)
	}
	return s
}

// ForEach calls f once for every set square, in increasing order.
func (b Bitboard) ForEach(f func(Square)) {
	for t := b; !t.IsZero(); {
		f(t.PopLsb())
	}
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for row := 0; row < RankCount; row++ {
		for col := 0; col < FileCount; col++ {
			if b.Has(NewSquare(row, col)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GoString implements fmt.GoStringer for %#v debug printing.
func (b Bitboard) GoString() string {
	return fmt.Sprintf("Bitboard{Lo:%#016x,Hi:%#016x}", b.Lo, b.Hi)
}
