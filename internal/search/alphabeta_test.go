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

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

func TestSavePVPrependsMoveToChildLine(t *testing.T) {
	s := &Search{pv: make([][]Move, 4)}
	s.pv[1] = []Move{Move(2345), Move(3456)}

	s.savePV(0, Move(1234))

	assert.Equal(t, []Move{Move(1234), Move(2345), Move(3456)}, s.pv[0])
}

func TestValueToAndFromTTRoundTripsOrdinaryScores(t *testing.T) {
	v := Value(137)
	assert.Equal(t, v, valueFromTT(valueToTT(v, 5), 5))
}

func TestValueToTTAdjustsMateDistanceByPly(t *testing.T) {
	mateInTwo := ValueCheckmate - 2
	stored := valueToTT(mateInTwo, 4)
	assert.Equal(t, mateInTwo+4, stored)
	assert.Equal(t, mateInTwo, valueFromTT(stored, 4))
}

func TestValueToTTAdjustsGettingMatedDistanceByPly(t *testing.T) {
	gettingMated := -ValueCheckmate + 2
	stored := valueToTT(gettingMated, 4)
	assert.Equal(t, gettingMated-4, stored)
	assert.Equal(t, gettingMated, valueFromTT(stored, 4))
}

func TestRootSearchReturnsAMoveFromTheGeneratedList(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	s.pv = make([][]Move, MaxDepth+1)
	s.rootMoves = nil

	sl := NewSearchLimits()
	sl.Depth = 1
	s.searchLimits = sl

	s.iterativeDeepening(context.Background(), p)

	found := false
	for _, m := range s.rootMoves {
		if m.Equals(s.pv[0][0]) {
			found = true
			break
		}
	}
	assert.True(t, found)
}
