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

	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// iterativeDeepening runs successive full-width searches at depth
// 1, 2, 3, ... until stopConditions fires or the requested depth limit
// is reached, keeping the best move and score of the last fully
// completed iteration as the result.
func (s *Search) iterativeDeepening(ctx context.Context, p *position.Position) *Result {
	result := &Result{}

	s.rootMoves = movegen.GenerateLegalMoves(p, movegen.GenAll)
	if len(s.rootMoves) == 0 {
		if p.InCheck(p.SideToMove()) {
			result.BestValue = -ValueCheckmate
		}
		result.BestMove = MoveNone
		return result
	}
	if len(s.rootMoves) == 1 {
		result.BestMove = s.rootMoves[0]
		result.BestValue = s.evaluate(p)
		return result
	}

	maxDepth := s.searchLimits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	pvMove := MoveNone
	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.order.NewIteration()

		value := s.rootSearch(ctx, p, depth, pvMove)

		if s.stopped && depth > 1 {
			break
		}

		result.SearchDepth = depth
		result.BestValue = value
		if len(s.pv[0]) > 0 {
			result.BestMove = s.pv[0][0]
			pvMove = result.BestMove
			if len(s.pv[0]) > 1 {
				result.PonderMove = s.pv[0][1]
			}
		}

		s.log.Info(out.Sprintf("depth %d: %s nodes %d", depth, value.String(), s.nodesVisited))

		if s.searchLimits.Infinite {
			continue
		}
		if value.IsCheckmateValue() {
			break
		}
		if s.stopConditions(ctx) {
			break
		}
	}

	return result
}
