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

	"github.com/frankkopp/shogi-engine/internal/config"
	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// qsearch extends a leaf node with captures and promotions only, until
// the position is quiet, to avoid the horizon effect of cutting a search
// off in the middle of a capture sequence.
func (s *Search) qsearch(ctx context.Context, p *position.Position, ply int, alpha, beta Value) Value {
	if ply < len(s.pv) {
		s.pv[ply] = s.pv[ply][:0]
	}

	if s.stopConditions(ctx) {
		return s.evaluate(p)
	}

	inCheck := p.InCheck(p.SideToMove())

	var standPat Value
	if !inCheck {
		standPat = s.evaluate(p)
		if !config.Settings.Search.UseQSStandpat {
			standPat = -ValueInfinite
		} else {
			if standPat >= beta {
				s.statistics.StandpatCuts++
				return standPat
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	}

	var ttMove Move
	if config.Settings.Search.UseQSTT {
		if entry := s.tt.Probe(p.Key()); entry != nil {
			s.statistics.TTHit++
			if config.Settings.Search.UseTTMove {
				ttMove = entry.Move()
			}
			v := valueFromTT(entry.Value(), ply)
			switch entry.Bound() {
			case VtExact:
				s.statistics.TTCuts++
				return v
			case VtLower:
				if v >= beta {
					s.statistics.TTCuts++
					return v
				}
			case VtUpper:
				if v <= alpha {
					s.statistics.TTCuts++
					return v
				}
			}
		}
	}

	moves := s.tacticalMoves(p, inCheck)
	if len(moves) == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -ValueCheckmate + Value(ply)
		}
		s.statistics.LeafPositions++
		return standPat
	}

	s.order.Order(p, moves, MoveNone, ttMove, ply, MoveNone)

	best := standPat
	if inCheck {
		best = -ValueInfinite
	}

	for _, m := range moves {
		if !inCheck && config.Settings.Search.UseSEE && m.IsCapture() && !s.goodCapture(p, m) {
			continue
		}

		p.DoMove(m)
		s.nodesVisited++
		value := -s.qsearch(ctx, p, ply+1, -beta, -alpha)
		p.UndoMove()

		if s.stopped {
			return best
		}

		if value > best {
			best = value
			if value > alpha {
				alpha = value
				s.savePV(ply, m)
				if alpha >= beta {
					s.statistics.BetaCuts++
					break
				}
			}
		}
	}

	return best
}

// tacticalMoves returns the moves qsearch considers: every legal move
// while in check (there is no quiet way out of check), captures and
// promotions only otherwise.
func (s *Search) tacticalMoves(p *position.Position, inCheck bool) movegen.MoveList {
	if inCheck {
		return movegen.GenerateLegalMoves(p, movegen.GenAll)
	}
	pseudo := movegen.GeneratePseudoLegalMoves(p, movegen.GenAll)
	moves := make(movegen.MoveList, 0, len(pseudo))
	for _, m := range pseudo {
		if !m.IsCapture() && !m.Promotes() {
			continue
		}
		if movegen.IsLegalMove(p, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// goodCapture reports whether a capture's static exchange evaluation is
// non-negative, the usual qsearch gate against losing exchange sequences
// that would otherwise blow up the search tree.
func (s *Search) goodCapture(p *position.Position, m Move) bool {
	return s.order.SeeCache.Evaluate(p, m) >= 0
}
