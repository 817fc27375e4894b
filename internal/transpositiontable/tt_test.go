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

package transpositiontable

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

func TestEntryIsCompact(t *testing.T) {
	var e Entry
	assert.LessOrEqual(t, unsafe.Sizeof(e), uintptr(24))
}

func TestResizeRoundsDownToPowerOfTwo(t *testing.T) {
	tt := NewTable(2)
	assert.Equal(t, 1, popcount(tt.maxEntries))
	assert.Equal(t, len(tt.data), int(tt.maxEntries))

	tt.Resize(100)
	assert.Equal(t, 1, popcount(tt.maxEntries))
}

func popcount(v uint64) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := NewTable(4)
	move := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)

	tt.Put(111, move, 4, Value(111), Value(50), VtUpper)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.Puts)

	e := tt.Probe(111)
	require.NotNil(t, e)
	assert.EqualValues(t, 111, e.Key())
	assert.True(t, e.Move().Equals(move))
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, VtUpper, e.Bound())
	assert.EqualValues(t, 0, e.Age())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 50, e.Eval())
}

func TestPutUpdatesSameKey(t *testing.T) {
	tt := NewTable(4)
	move := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)

	tt.Put(111, move, 4, Value(111), Value(50), VtUpper)
	tt.Put(111, move, 5, Value(112), Value(60), VtLower)

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.Puts)
	assert.EqualValues(t, 1, tt.Stats.Updates)
	assert.EqualValues(t, 0, tt.Stats.Collisions)

	e := tt.Probe(111)
	require.NotNil(t, e)
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, VtLower, e.Bound())
	assert.EqualValues(t, 112, e.Value())
}

func TestPutCollisionReplacesOnlyWhenDeeper(t *testing.T) {
	tt := NewTable(4)
	move := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)

	tt.Put(111, move, 6, Value(113), Value(0), VtExact)

	collision := position.Key(111 + tt.maxEntries)
	tt.Put(collision, move, 4, Value(114), Value(0), VtLower)

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.Collisions)
	assert.EqualValues(t, 0, tt.Stats.Overwrites)

	e := tt.Probe(collision)
	assert.Nil(t, e)
	e = tt.Probe(111)
	require.NotNil(t, e)
	assert.EqualValues(t, 113, e.Value())
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTable(1)
	move := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	tt.Put(7, move, 1, Value(1), Value(0), VtExact)
	require.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(7))
}

func TestAgeEntriesIncrementsEveryOccupiedSlot(t *testing.T) {
	tt := NewTable(1)
	move := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	tt.Put(5, move, 3, Value(1), Value(0), VtExact)
	tt.Put(9, move, 3, Value(1), Value(0), VtExact)

	tt.AgeEntries()

	assert.EqualValues(t, 1, tt.data[tt.index(5)].Age())
	assert.EqualValues(t, 1, tt.data[tt.index(9)].Age())
}

func TestHashfullReflectsFillRatio(t *testing.T) {
	tt := NewTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	move := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	// Hashfull is in integer permille, so at least maxEntries/1000+1
	// distinct entries are needed before it reads above zero.
	for k := uint64(1); k <= tt.maxEntries/1000+1; k++ {
		tt.Put(position.Key(k), move, 1, Value(1), Value(0), VtExact)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
