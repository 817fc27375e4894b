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

// Key is a 64-bit Zobrist hash of a position: board placement, both
// hands, and the side to move. Kept incrementally by DoMove/UndoMove
// rather than recomputed from scratch, the way the teacher's position
// package maintains its zobristKey field.
type Key uint64

const maxHandCount = 18 // more than enough copies of any kind to ever be held

var (
	zobristPiece [SideLength][PtLength][SqLength]Key
	zobristHand  [SideLength][HandKindLength][maxHandCount + 1]Key
	zobristSide  Key
)

// prng is the xorshift64star generator, seeded fixed so the Zobrist
// tables (and therefore every Key) are reproducible across runs - the
// same determinism requirement that governs the magic-table search.
type prng struct{ s uint64 }

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	r := &prng{s: 0x61C8864680B583EB}
	for side := Side(0); side < SideLength; side++ {
		for pt := PieceType(0); pt < PtLength; pt++ {
			for sq := Square(0); sq < SqLength; sq++ {
				zobristPiece[side][pt][sq] = Key(r.next())
			}
		}
		for k := 0; k < HandKindLength; k++ {
			for c := 0; c <= maxHandCount; c++ {
				zobristHand[side][k][c] = Key(r.next())
			}
		}
	}
	zobristSide = Key(r.next())
}

func pieceKey(sq Square, p Piece) Key {
	return zobristPiece[p.Side()][p.Type()][sq]
}

// handKey returns the key contribution for holding count copies of pt in
// side's hand, clamped to the precomputed table size (a position can
// never realistically hold more than 18 of one kind: two full sets of
// the unpromoted board plus fully demoted captures). Holding zero of a
// kind contributes nothing, matching the usual Zobrist convention that
// an empty slot has no key component.
func handKey(side Side, pt PieceType, count uint8) Key {
	if count == 0 {
		return 0
	}
	idx := pt.HandIndex()
	if idx < 0 {
		return 0
	}
	if int(count) > maxHandCount {
		count = maxHandCount
	}
	return zobristHand[side][idx][count]
}
