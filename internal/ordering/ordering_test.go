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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

func TestHistoryAgeHalves(t *testing.T) {
	h := NewHistory()
	m := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	h.Add(Black, m, 4)
	before := h.Score(Black, m)
	require.Greater(t, before, int64(0))
	h.Age(2)
	assert.Equal(t, before/2, h.Score(Black, m))
}

func TestKillersKeepTwoMostRecent(t *testing.T) {
	k := NewKillers()
	a := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	b := CreateMove(NewSquare(6, 3), NewSquare(5, 3), Pawn, false)
	c := CreateMove(NewSquare(6, 2), NewSquare(5, 2), Pawn, false)
	k.Add(3, a)
	k.Add(3, b)
	assert.True(t, k.Are(3, a))
	assert.True(t, k.Are(3, b))
	k.Add(3, c)
	assert.True(t, k.Are(3, c))
	assert.True(t, k.Are(3, b))
	assert.False(t, k.Are(3, a))
}

func TestKillersIgnoreCaptures(t *testing.T) {
	k := NewKillers()
	capture := CreateCapture(NewSquare(6, 4), NewSquare(2, 4), Pawn, false, Pawn)
	k.Add(0, capture)
	assert.False(t, k.Are(0, capture))
}

func TestCounterMovesRoundTrip(t *testing.T) {
	cm := NewCounterMoves()
	last := CreateMove(NewSquare(2, 4), NewSquare(3, 4), Pawn, false)
	reply := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	cm.Set(last, reply)
	assert.True(t, cm.Get(last).Equals(reply))
}

func TestOrderPutsPVAndTTFirst(t *testing.T) {
	p := position.NewPosition()
	moves := movegen.GeneratePseudoLegalMoves(p, movegen.GenAll)
	require.Greater(t, len(moves), 1)

	pv := moves[len(moves)-1].MoveOf()
	tt := moves[len(moves)-2].MoveOf()

	o := NewOrderer()
	list := append([]Move(nil), moves...)
	o.Order(p, list, pv, tt, 0, MoveNone)

	assert.True(t, list[0].Equals(pv))
	assert.True(t, list[1].Equals(tt))
}

func TestOrderRanksCapturesAboveQuietMoves(t *testing.T) {
	p := position.NewPosition()
	moves := movegen.GeneratePseudoLegalMoves(p, movegen.GenAll)

	o := NewOrderer()
	list := append([]Move(nil), moves...)
	o.Order(p, list, MoveNone, MoveNone, 0, MoveNone)

	sawQuiet := false
	for _, m := range list {
		if m.IsCapture() {
			assert.False(t, sawQuiet, "capture %s ordered after a quiet move", m.String())
		} else {
			sawQuiet = true
		}
	}
}

func TestRecordCutoffPopulatesTables(t *testing.T) {
	p := position.NewPosition()
	o := NewOrderer()
	quiet := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	lastMove := CreateMove(NewSquare(2, 4), NewSquare(3, 4), Pawn, false)

	o.RecordCutoff(p.SideToMove(), quiet, lastMove, 2, 4)

	assert.True(t, o.Killers.Are(2, quiet))
	assert.True(t, o.CounterMoves.Get(lastMove).Equals(quiet))
	assert.Greater(t, o.History.Score(p.SideToMove(), quiet), int64(0))
}

func TestSeeCacheMatchesUncachedEvaluation(t *testing.T) {
	p := position.NewPosition()
	capture := CreateCapture(NewSquare(7, 1), NewSquare(1, 7), Bishop, false, Bishop)

	cache := NewSeeCache()
	direct := see(p, capture)
	cached := cache.Evaluate(p, capture)
	assert.Equal(t, direct, cached)

	hits, misses := cache.Stats()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(1), misses)

	cache.Evaluate(p, capture)
	hits, _ = cache.Stats()
	assert.Equal(t, int64(1), hits)
}
