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

// rootSearch runs one full-width iteration at the root, ordering
// s.rootMoves with the previous iteration's best move searched first and
// filling s.pv[0] with the resulting principal variation.
func (s *Search) rootSearch(ctx context.Context, p *position.Position, depth int, pvMove Move) Value {
	alpha, beta := -ValueInfinite, ValueInfinite

	s.order.Order(p, s.rootMoves, pvMove, MoveNone, 0, MoveNone)

	best := -ValueInfinite
	bestMove := MoveNone

	for i, m := range s.rootMoves {
		if s.stopConditions(ctx) && i > 0 {
			break
		}
		s.statistics.CurrentRootMove = m
		s.statistics.CurrentRootMoveIndex = i

		p.DoMove(m)
		s.nodesVisited++

		var value Value
		if i == 0 {
			value = -s.search(ctx, p, depth-1, 1, -beta, -alpha, true, m)
		} else {
			value = -s.search(ctx, p, depth-1, 1, -alpha-1, -alpha, false, m)
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.search(ctx, p, depth-1, 1, -beta, -alpha, true, m)
			}
		}

		p.UndoMove()

		if s.stopped && i > 0 {
			break
		}

		if value > best {
			best = value
			bestMove = m
			s.statistics.CurrentBestRootMove = m
			s.statistics.CurrentBestRootMoveVal = value
			if value > alpha {
				alpha = value
				s.savePV(0, m)
			}
		}
	}

	if bestMove != MoveNone && len(s.pv[0]) == 0 {
		s.pv[0] = []Move{bestMove}
	}

	return best
}

// search is the interior alpha-beta node: transposition table probe,
// reverse futility pruning, null-move pruning, internal iterative
// deepening, the PVS move loop with late move reductions, and
// transposition table storage of the result.
func (s *Search) search(ctx context.Context, p *position.Position, depth, ply int, alpha, beta Value, isPV bool, lastMove Move) Value {
	s.pv[ply] = s.pv[ply][:0]

	if depth <= 0 {
		if config.Settings.Search.UseQuiescence {
			return s.qsearch(ctx, p, ply, alpha, beta)
		}
		return s.evaluate(p)
	}

	if s.stopConditions(ctx) {
		return s.evaluate(p)
	}

	inCheck := p.InCheck(p.SideToMove())

	var ttMove Move
	if config.Settings.Search.UseTT {
		if entry := s.tt.Probe(p.Key()); entry != nil {
			s.statistics.TTHit++
			if config.Settings.Search.UseTTMove {
				ttMove = entry.Move()
			}
			if config.Settings.Search.UseTTValue && !isPV && entry.Depth() >= depth {
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
		} else {
			s.statistics.TTMiss++
		}
	}

	staticEval := s.evaluate(p)

	if config.Settings.Search.UseNullMove && !isPV && !inCheck && depth >= config.Settings.Search.NmpDepth &&
		staticEval >= beta && p.Phase() > 0 {
		r := config.Settings.Search.NmpReduction
		if r <= 0 {
			r = 2
		}
		p.DoNullMove()
		s.nodesVisited++
		value := -s.search(ctx, p, depth-1-r, ply+1, -beta, -beta+1, false, MoveNone)
		p.UndoNullMove()
		if s.stopped {
			return staticEval
		}
		if value >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	if !isPV && !inCheck && depth > 0 && depth < len(rfp) && staticEval-rfp[depth] >= beta {
		s.statistics.RfpPrunings++
		return staticEval - rfp[depth]
	}

	if config.Settings.Search.UseIID && isPV && ttMove == MoveNone && depth >= config.Settings.Search.IIDDepth {
		s.statistics.IIDSearches++
		s.search(ctx, p, depth-2, ply, alpha, beta, isPV, lastMove)
		if len(s.pv[ply]) > 0 {
			ttMove = s.pv[ply][0]
		}
	}

	moves := movegen.GenerateLegalMoves(p, movegen.GenAll)
	if len(moves) == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -ValueCheckmate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	pvMove := MoveNone
	if ply < len(s.pv) && len(s.pv[ply]) > 0 {
		pvMove = s.pv[ply][0]
	}
	s.order.Order(p, moves, pvMove, ttMove, ply, lastMove)

	bestValue := -ValueInfinite
	bestMove := MoveNone
	originalAlpha := alpha
	movesSearched := 0

	if config.Settings.Search.UseCheckExt && inCheck {
		depth++
		s.statistics.CheckExtensions++
	}

	for _, m := range moves {
		p.DoMove(m)
		s.nodesVisited++

		reduction := 0
		if config.Settings.Search.UseLmr && movesSearched >= config.Settings.Search.LmrMovesSearched &&
			depth >= config.Settings.Search.LmrDepth && !inCheck && !m.IsCapture() && !m.Promotes() && movesSearched > 0 {
			reduction = LmrReduction(depth, movesSearched)
			s.statistics.LmrReductions++
		}

		var value Value
		if movesSearched == 0 {
			value = -s.search(ctx, p, depth-1, ply+1, -beta, -alpha, isPV, m)
		} else {
			value = -s.search(ctx, p, depth-1-reduction, ply+1, -alpha-1, -alpha, false, m)
			if reduction > 0 && value > alpha {
				s.statistics.LmrResearches++
				value = -s.search(ctx, p, depth-1, ply+1, -alpha-1, -alpha, false, m)
			}
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.search(ctx, p, depth-1, ply+1, -beta, -alpha, true, m)
			}
		}

		p.UndoMove()
		movesSearched++

		if s.stopped {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.savePV(ply, m)
				if alpha >= beta {
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					s.statistics.BetaCuts++
					s.order.RecordCutoff(p.SideToMove(), m, lastMove, ply, depth)
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT {
		var bound ValueType
		switch {
		case bestValue <= originalAlpha:
			bound = VtUpper
		case bestValue >= beta:
			bound = VtLower
		default:
			bound = VtExact
		}
		s.tt.Put(p.Key(), bestMove, depth, valueToTT(bestValue, ply), staticEval, bound)
	}

	return bestValue
}

// savePV copies move followed by the already-computed child PV at
// ply+1 into s.pv[ply], the usual triangular-array bookkeeping for
// reconstructing the principal variation after a fail-high/raised-alpha
// move.
func (s *Search) savePV(ply int, move Move) {
	line := make([]Move, 0, len(s.pv[ply+1])+1)
	line = append(line, move)
	line = append(line, s.pv[ply+1]...)
	s.pv[ply] = line
}

// evaluate returns the static evaluation of p, counting it towards the
// evaluation statistic.
func (s *Search) evaluate(p *position.Position) Value {
	s.statistics.Evaluations++
	return s.eval.Evaluate(p)
}

// valueToTT adjusts a mate score found ply levels from the root into one
// measured from the position being stored, so the score stays correct
// however deep it is found again after a future probe.
func valueToTT(v Value, ply int) Value {
	if v >= ValueCheckmateThreshold {
		return v + Value(ply)
	}
	if v <= -ValueCheckmateThreshold {
		return v - Value(ply)
	}
	return v
}

// valueFromTT reverses valueToTT's adjustment when a stored mate score is
// read back out at a different ply than it was stored at.
func valueFromTT(v Value, ply int) Value {
	if v >= ValueCheckmateThreshold {
		return v - Value(ply)
	}
	if v <= -ValueCheckmateThreshold {
		return v + Value(ply)
	}
	return v
}
