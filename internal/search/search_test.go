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

func TestNewSearchIsIdle(t *testing.T) {
	s := NewSearch()
	assert.False(t, s.IsSearching())
}

func TestStopSearchWithoutRunningSearchIsNoop(t *testing.T) {
	s := NewSearch()
	assert.NotPanics(t, func() { s.StopSearch() })
}

func TestStartSearchFindsAMoveAtShallowDepth(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Depth = 2

	s.StartSearch(context.Background(), *p, *sl)
	s.WaitWhileSearching()

	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Greater(t, s.NodesVisited(), uint64(0))
	assert.False(t, s.IsSearching())
}

func TestIterativeDeepeningIsDeterministicAtFixedDepth(t *testing.T) {
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Depth = 3

	s1 := NewSearch()
	s1.StartSearch(context.Background(), *p, *sl)
	s1.WaitWhileSearching()
	r1 := s1.LastSearchResult()

	s2 := NewSearch()
	s2.StartSearch(context.Background(), *p, *sl)
	s2.WaitWhileSearching()
	r2 := s2.LastSearchResult()

	assert.True(t, r1.BestMove.Equals(r2.BestMove))
	assert.Equal(t, r1.BestValue, r2.BestValue)
	assert.Equal(t, s1.NodesVisited(), s2.NodesVisited())
}

func TestStartSearchHonoursNodeLimit(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Depth = MaxDepth
	sl.Nodes = 500

	s.StartSearch(context.Background(), *p, *sl)
	s.WaitWhileSearching()

	assert.LessOrEqual(t, s.NodesVisited(), uint64(500+nodeCheckInterval))
}
