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
	"sort"

	"github.com/frankkopp/shogi-engine/internal/config"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// score tiers keep every ordering category in its own disjoint value
// band, highest first, so a single integer sort key reproduces the
// priority list exactly: within a tier moves are further broken apart by
// a per-category score, never spilling into a neighboring tier.
const (
	tierPV         = 1_000_000
	tierTT         = 900_000
	tierGoodCap    = 800_000
	tierPromotion  = 700_000
	tierKiller     = 600_000
	tierCounter    = 500_000
	tierQuiet      = 0
	tierBadCapture = -100_000
)

// Statistics tracks how many moves each ordering category claimed while
// moves were being scored, plus the total number of moves ordered,
// letting a caller judge how often a table contributes to the order.
type Statistics struct {
	PVHits      int64
	TTHits      int64
	KillerHits  int64
	CounterHits int64
	HistoryHits int64
	TotalMoves  int64
}

// Orderer carries the move-ordering state a search accumulates across an
// iterative-deepening run: the killer table, history counters, counter
// moves and SEE cache all persist between successive rootSearch calls at
// increasing depth, while PV and TT moves are supplied fresh per node by
// the search itself.
type Orderer struct {
	Killers      *Killers
	History      *History
	CounterMoves *CounterMoves
	SeeCache     *SeeCache
	Stats        Statistics
}

// NewOrderer creates an Orderer with empty tables.
func NewOrderer() *Orderer {
	return &Orderer{
		Killers:      NewKillers(),
		History:      NewHistory(),
		CounterMoves: NewCounterMoves(),
		SeeCache:     NewSeeCache(),
	}
}

// NewIteration ages the history table between iterative-deepening
// iterations of the same search, rather than clearing it outright -
// moves that have repeatedly cut off stay ahead of ones that have not,
// while stale counts from early, shallow iterations slowly decay.
func (o *Orderer) NewIteration() {
	if config.Settings.Search.UseHistory {
		o.History.Age(config.Settings.Search.HistoryAgeDiv)
	}
}

// Reset clears every table - called between independent searches so a
// prior search's killers and history never leak into an unrelated one.
func (o *Orderer) Reset() {
	o.Killers.Clear()
	o.History.Clear()
	o.CounterMoves.Clear()
	o.SeeCache.Clear()
	o.Stats = Statistics{}
}

// Order sorts moves in place by descending priority: PV move, TT move,
// captures (MVV/LVA, refined by SEE when a capture would otherwise lose
// material), promotions, killers, counter moves, and finally history.
func (o *Orderer) Order(p *position.Position, moves []Move, pvMove, ttMove Move, ply int, lastMove Move) {
	side := p.SideToMove()
	scored := make([]Move, len(moves))
	for i, m := range moves {
		scored[i] = m.WithValue(o.scoreMove(p, m, pvMove, ttMove, side, ply, lastMove))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Value() > scored[j].Value()
	})
	copy(moves, scored)
	o.Stats.TotalMoves += int64(len(moves))
}

func (o *Orderer) scoreMove(p *position.Position, m Move, pvMove, ttMove Move, side Side, ply int, lastMove Move) int {
	bare := m.MoveOf()

	if config.Settings.Search.UsePVMove && pvMove != MoveNone && bare.Equals(pvMove) {
		o.Stats.PVHits++
		return tierPV
	}
	if config.Settings.Search.UseTTMove && ttMove != MoveNone && bare.Equals(ttMove) {
		o.Stats.TTHits++
		return tierTT
	}

	if m.Promotes() {
		gain := m.PieceType().Promote().Value() - m.PieceType().Value()
		if m.IsCapture() {
			gain += mvvLva(m)
		}
		return tierPromotion + gain
	}

	if m.IsCapture() {
		mvv := mvvLva(m)
		if config.Settings.Search.UseSEE {
			exchange := o.SeeCache.Evaluate(p, m)
			if exchange < 0 {
				return tierBadCapture + exchange
			}
			return tierGoodCap + mvv + exchange
		}
		return tierGoodCap + mvv
	}

	if config.Settings.Search.UseKiller && o.Killers.Are(ply, bare) {
		o.Stats.KillerHits++
		return tierKiller
	}

	if config.Settings.Search.UseCounterMove && lastMove != MoveNone {
		if o.CounterMoves.Get(lastMove).Equals(bare) {
			o.Stats.CounterHits++
			return tierCounter
		}
	}

	if config.Settings.Search.UseHistory {
		if bonus := o.History.Score(side, m); bonus > 0 {
			o.Stats.HistoryHits++
			return tierQuiet + clampHistory(bonus)
		}
	}
	return tierQuiet
}

// mvvLva scores a capture by most-valuable-victim, least-valuable-
// attacker: the victim's value dominates, and a cheaper attacker is
// preferred among captures of equally valuable victims.
func mvvLva(m Move) int {
	return m.CapturedType().Value()*16 - m.PieceType().Value()
}

// clampHistory keeps a history bonus from ever reaching into a
// neighboring tier, regardless of how large the raw counter has grown.
func clampHistory(v int64) int {
	const ceiling = tierKiller - 1
	if v > int64(ceiling) {
		return ceiling
	}
	return int(v)
}

// RecordCutoff updates killers, counter-moves and history after a beta
// cutoff at ply: m is the move that caused the cutoff, lastMove is the
// opponent's move that led to this node, and depth is the remaining
// search depth at the cutoff.
func (o *Orderer) RecordCutoff(side Side, m, lastMove Move, ply, depth int) {
	if m.IsCapture() || m.Promotes() {
		return
	}
	if config.Settings.Search.UseKiller {
		o.Killers.Add(ply, m)
	}
	if config.Settings.Search.UseCounterMove && lastMove != MoveNone {
		o.CounterMoves.Set(lastMove, m)
	}
	if config.Settings.Search.UseHistory {
		o.History.Add(side, m, depth)
	}
}
