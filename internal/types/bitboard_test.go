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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardZeroIsEmpty(t *testing.T) {
	assert.True(t, BbZero.IsZero())
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, SqNone, BbZero.Lsb())
}

func TestBitboardPushAndPopSquare(t *testing.T) {
	var b Bitboard
	sq := NewSquare(4, 4)
	b = b.PushSquare(sq)
	assert.True(t, b.Has(sq))
	assert.Equal(t, 1, b.PopCount())
	b = b.PopSquare(sq)
	assert.False(t, b.Has(sq))
	assert.True(t, b.IsZero())
}

func TestBitboardCoversBothWords(t *testing.T) {
	low := NewSquare(0, 0)
	high := NewSquare(8, 8) // square 80, in the high word
	b := BbZero.PushSquare(low).PushSquare(high)
	assert.Equal(t, 2, b.PopCount())
	assert.True(t, b.Has(low))
	assert.True(t, b.Has(high))
}

func TestBitboardOrAndXorAndNot(t *testing.T) {
	a := NewSquare(0, 0).Bb().Or(NewSquare(1, 1).Bb())
	b := NewSquare(1, 1).Bb().Or(NewSquare(2, 2).Bb())

	assert.Equal(t, 3, a.Or(b).PopCount())
	assert.Equal(t, 1, a.And(b).PopCount())
	assert.Equal(t, 2, a.Xor(b).PopCount())
	assert.Equal(t, 1, a.AndNot(b).PopCount())
}

func TestBitboardNotStaysWithinTheBoard(t *testing.T) {
	all := BbZero.Not()
	assert.Equal(t, SqLength, all.PopCount())
	assert.True(t, all.Not().IsZero())
}

func TestBitboardLsbAndPopLsbWalkInIncreasingOrder(t *testing.T) {
	b := NewSquare(3, 0).Bb().Or(NewSquare(0, 0).Bb()).Or(NewSquare(8, 8).Bb())

	var seen []Square
	for !b.IsZero() {
		seen = append(seen, b.PopLsb())
	}
	assert.Equal(t, []Square{NewSquare(0, 0), NewSquare(3, 0), NewSquare(8, 8)}, seen)
}

func TestBitboardForEachVisitsEverySetSquareExactlyOnce(t *testing.T) {
	squares := []Square{NewSquare(0, 0), NewSquare(4, 4), NewSquare(8, 8)}
	var b Bitboard
	for _, sq := range squares {
		b = b.PushSquare(sq)
	}

	var visited []Square
	b.ForEach(func(s Square) { visited = append(visited, s) })
	assert.Equal(t, squares, visited)
}

func TestSquareBbOfAnInvalidSquareIsEmpty(t *testing.T) {
	assert.True(t, SqNone.Bb().IsZero())
}
