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
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// moveIdentityMask keeps only a Move's identity bits (to, from, drop,
// promote, piece, captured - bits 0-23), stripping the sort value a
// caller's Move may still be carrying from move ordering before it is
// packed into an entry.
const moveIdentityMask = uint32(0x00FFFFFF)

// Entry is one transposition-table slot. Each entry packs a 64-bit
// Zobrist key, a 24-bit move identity, a search value, a static eval and
// a depth/bound-type/age word into a single cache-friendly struct.
type Entry struct {
	key   position.Key
	move  uint32
	value int16
	eval  int16
	vmeta uint16
}

const (
	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)

	maxAge = int8(ageMask)
)

func (e *Entry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *Entry) increaseAge() {
	if e.Age() < maxAge {
		e.vmeta++
	}
}

// Key returns the entry's stored Zobrist key.
func (e *Entry) Key() position.Key { return e.key }

// Move returns the entry's stored best move, stripped of any sort value.
func (e *Entry) Move() Move { return Move(e.move) }

// Value returns the entry's stored search value.
func (e *Entry) Value() Value { return Value(e.value) }

// Eval returns the entry's stored static evaluation.
func (e *Entry) Eval() Value { return Value(e.eval) }

// Depth returns the search depth the entry was stored at.
func (e *Entry) Depth() int { return int((e.vmeta & depthMask) >> depthShift) }

// Age returns how many searches have passed since the entry was last
// refreshed - zero means it was touched during the current search.
func (e *Entry) Age() int8 { return int8(e.vmeta & ageMask) }

// Bound returns the entry's stored value type (exact/upper/lower).
func (e *Entry) Bound() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }

func packVmeta(depth int, bound ValueType) uint16 {
	return uint16(depth)<<depthShift | uint16(bound)<<vtypeShift
}
