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

package ordering

import . "github.com/frankkopp/shogi-engine/internal/types"

// MaxPly bounds the killer table - no legal Shogi search line plausibly
// exceeds this many plies of selective depth.
const MaxPly = 128

const killersPerPly = 2

// Killers holds, per search ply, the last two quiet moves that caused a
// beta cutoff at that ply. A killer move from one line is often still
// good in a sibling line that reaches the same ply, since both share the
// same set of pieces left to maneuver.
type Killers struct {
	moves [MaxPly][killersPerPly]Move
}

// NewKillers creates an empty Killers table.
func NewKillers() *Killers {
	return &Killers{}
}

// Add records m as a killer at ply, pushing out the older of the two
// slots. A move already in the first slot is left untouched; a move in
// the second slot swaps places with the first, so no move is duplicated.
func (k *Killers) Add(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	// captures are ordered by MVV/LVA and SEE already; killers are
	// reserved for quiet moves, so a capture never displaces one.
	if m.CapturedType() != PtNone {
		return
	}
	slot := &k.moves[ply]
	if slot[0].Equals(m) {
		return
	}
	slot[1] = slot[0]
	slot[0] = m.MoveOf()
}

// Are reports whether m is one of the two killers stored at ply.
func (k *Killers) Are(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	slot := k.moves[ply]
	return slot[0].Equals(m) || slot[1].Equals(m)
}

// Clear resets every ply's killer slots to MoveNone.
func (k *Killers) Clear() {
	*k = Killers{}
}
