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

import "fmt"

// Value is a centipawn-ish evaluation score from the mover's perspective.
type Value int32

const (
	// ValueZero is a neutral (drawn) evaluation.
	ValueZero Value = 0
	// ValueNA marks "no value computed yet".
	ValueNA Value = -32767
	// ValueCheckmate is the magnitude of a mate score: a side to move that
	// has been mated scores -ValueCheckmate; search return values near this
	// magnitude are adjusted by ply to prefer shorter mates.
	ValueCheckmate Value = 32000
	// ValueDraw is returned for a side to move with no legal moves that is
	// not in check (the search does not detect repetitions).
	ValueDraw Value = 0
	// ValueInfinite is the unreachable alpha/beta bound a fresh search
	// window starts from - one above ValueCheckmate so mate scores never
	// collide with it.
	ValueInfinite Value = 32001
	// ValueCheckmateThreshold marks how close to ValueCheckmate a value
	// has to be before it is treated as a forced mate rather than an
	// ordinary evaluation.
	ValueCheckmateThreshold Value = ValueCheckmate - 1000
)

// IsCheckmateValue reports whether v represents a forced mate (for either
// side) rather than a material/positional evaluation.
func (v Value) IsCheckmateValue() bool {
	return v >= ValueCheckmateThreshold || v <= -ValueCheckmateThreshold
}

// String renders v either as a plain centipawn score or, for a mate
// value, as "mate N" (N the number of full moves to deliver/receive it) -
// the conventional way a search reports a forced mate instead of a score.
func (v Value) String() string {
	if !v.IsCheckmateValue() {
		return fmt.Sprintf("cp %d", int(v))
	}
	pliesToMate := ValueCheckmate - v
	if v < 0 {
		pliesToMate = ValueCheckmate + v
	}
	movesToMate := (int(pliesToMate) + 1) / 2
	if v < 0 {
		movesToMate = -movesToMate
	}
	return fmt.Sprintf("mate %d", movesToMate)
}

// PhaseMax is the tapered-evaluation phase scale (§4.6): 256 at the
// initial position, 0 when only kings and pawns remain.
const PhaseMax = 256

// ValueType records what kind of alpha-beta bound a stored search value
// represents, the same distinction a transposition-table entry needs to
// know whether a cutoff was an exact score, an upper (alpha) bound, or a
// lower (beta) bound.
type ValueType int8

const (
	// VtNone marks an entry with no valid stored value.
	VtNone ValueType = iota
	// VtExact is a fully searched, exact score.
	VtExact
	// VtUpper is a fail-low upper bound (alpha was never raised).
	VtUpper
	// VtLower is a fail-high lower bound (beta was exceeded).
	VtLower
)

func (vt ValueType) String() string {
	switch vt {
	case VtExact:
		return "exact"
	case VtUpper:
		return "upper"
	case VtLower:
		return "lower"
	default:
		return "none"
	}
}

// Score is a pair of mid-game / end-game contributions for one evaluation
// term. The final score tapers between the two by the position's phase.
type Score struct {
	Mg int
	Eg int
}

// Add accumulates a into s.
func (s *Score) Add(a Score) {
	s.Mg += a.Mg
	s.Eg += a.Eg
}

// Sub removes a from s.
func (s *Score) Sub(a Score) {
	s.Mg -= a.Mg
	s.Eg -= a.Eg
}

// Negate returns the score from the opponent's point of view.
func (s Score) Negate() Score {
	return Score{-s.Mg, -s.Eg}
}

// Interpolate tapers (mg, eg) by phase in [0, PhaseMax] using integer
// arithmetic with round-half-to-zero, the one fixed rounding convention
// the evaluator uses for its only division (§9 design notes: "floating
// point determinism" - the interpolation itself stays integer-only).
//
//  Interpolate(s, 0)        == s.Eg
//  Interpolate(s, PhaseMax) == s.Mg
func Interpolate(s Score, phase int) Value {
	if phase < 0 {
		phase = 0
	}
	if phase > PhaseMax {
		phase = PhaseMax
	}
	num := s.Mg*phase + s.Eg*(PhaseMax-phase)
	return Value(divRoundHalfToZero(num, PhaseMax))
}

// divRoundHalfToZero divides num/den, rounding .5 towards zero rather than
// away from it (Go's integer division already truncates towards zero, so
// this only has to add the symmetric half-adjustment before truncating).
func divRoundHalfToZero(num, den int) int {
	if den == 0 {
		return 0
	}
	neg := (num < 0) != (den < 0)
	if neg {
		num = -num
	}
	if den < 0 {
		den = -den
	}
	q := num / den
	r := num % den
	if 2*r > den {
		q++
	}
	if neg {
		q = -q
	}
	return q
}

func (s Score) String() string {
	return fmt.Sprintf("{mg:%d eg:%d}", s.Mg, s.Eg)
}
