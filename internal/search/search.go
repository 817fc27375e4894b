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

// Package search implements iterative deepening alpha-beta with
// quiescence, a transposition table and move ordering. One Search
// instance runs at most one search at a time, started asynchronously
// with StartSearch and stopped cooperatively with StopSearch; the
// caller is responsible for not starting a second search concurrently
// (enforced here with a semaphore, mirroring the teacher's own guard).
package search

import (
	"context"
	"path/filepath"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/shogi-engine/internal/book"
	"github.com/frankkopp/shogi-engine/internal/config"
	"github.com/frankkopp/shogi-engine/internal/endgame"
	"github.com/frankkopp/shogi-engine/internal/evaluator"
	myLogging "github.com/frankkopp/shogi-engine/internal/logging"
	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/notation"
	"github.com/frankkopp/shogi-engine/internal/ordering"
	"github.com/frankkopp/shogi-engine/internal/position"
	"github.com/frankkopp/shogi-engine/internal/transpositiontable"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

var out = message.NewPrinter(language.German)

// Search is the data structure owning one engine search. Create a new
// instance with NewSearch.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt      *transpositiontable.Table
	eval    *evaluator.Evaluator
	order   *ordering.Orderer
	book    *book.Book
	endgame *endgame.Registry

	lastSearchResult *Result

	cancel context.CancelFunc
	stopped bool

	startTime    time.Time
	searchLimits *Limits
	timeLimit    time.Duration
	extraTime    time.Duration
	nodesVisited uint64

	pv        [][]Move
	rootMoves movegen.MoveList

	statistics Statistics
}

// NewSearch creates a Search with its own transposition table (sized in
// megabytes per config.Settings.Search.TTSize), evaluator, move orderer
// and endgame solver registry.
func NewSearch() *Search {
	ttSize := config.Settings.Search.TTSize
	if ttSize <= 0 {
		ttSize = 64
	}
	s := &Search{
		log:           myLogging.GetLog("search"),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		tt:            transpositiontable.NewTable(ttSize),
		eval:          evaluator.NewEvaluator(),
		order:         ordering.NewOrderer(),
		endgame:       endgame.DefaultRegistry(),
	}

	if config.Settings.Search.UseBook && config.Settings.Search.BookPath != "" {
		path := filepath.Join(config.Settings.Search.BookPath, config.Settings.Search.BookFile)
		b, err := book.Load(path)
		if err != nil {
			s.log.Warning(out.Sprintf("could not load opening book %s: %v", path, err))
		} else {
			s.book = b
		}
	}

	return s
}

// NewGame stops any running search and clears every table that must not
// leak between independent games: the transposition table and the move
// ordering heuristics.
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	s.order.Reset()
}

// StartSearch begins a search on a copy of p under the given limits.
// ctx bounds the search's lifetime in addition to any time control
// computed from sl; cancelling ctx or calling StopSearch both end the
// search cooperatively. StartSearch returns once the search goroutine
// has been set up; use WaitWhileSearching to block for the result.
func (s *Search) StartSearch(ctx context.Context, p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.searchLimits = &sl
	go s.run(ctx, &p, &sl)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search to stop as soon as possible and
// blocks until it has. A no-op if no search is running.
func (s *Search) StopSearch() {
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// ClearHash clears the transposition table. Refused while a search is
// running, since the table is not safe for concurrent mutation and probe.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.log.Warning("cannot clear hash while searching")
		return
	}
	s.tt.Clear()
}

// LastSearchResult returns a copy of the most recently finished search's
// result.
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the last (or
// currently running) search.
func (s *Search) NodesVisited() uint64 { return s.nodesVisited }

// Statistics returns a pointer to the statistics of the last search.
func (s *Search) Statistics() *Statistics { return &s.statistics }

// run is started as a goroutine by StartSearch; it owns the entire
// lifecycle of one search.
func (s *Search) run(ctx context.Context, p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.stopped = false
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.order.Reset()
	s.tt.AgeEntries()

	searchCtx, cancel := s.deriveContext(ctx, p, sl)
	s.cancel = cancel
	defer cancel()

	s.pv = make([][]Move, MaxDepth+1)

	s.initSemaphore.Release(1)

	var result *Result
	if bookMove, ok := s.probeBook(p); ok {
		result = &Result{BestMove: bookMove, BookMove: true}
	} else if plan, ok := s.endgame.Solve(p); ok {
		result = &Result{
			BestMove:    plan.Move,
			BestValue:   ValueCheckmate - Value(plan.DistanceToMate),
			SearchDepth: plan.DistanceToMate,
		}
	} else {
		result = s.iterativeDeepening(searchCtx, p)
	}
	result.SearchTime = time.Since(s.startTime)
	if result.Pv == nil && len(s.pv) > 0 {
		result.Pv = s.pv[0]
	}
	result.Nodes = s.nodesVisited

	s.log.Info(out.Sprintf("search finished after %s, %d nodes (%d nps)",
		result.SearchTime, s.nodesVisited, nps(s.nodesVisited, result.SearchTime)))
	s.log.Debug(s.statistics.String())

	s.lastSearchResult = result
}

// deriveContext builds the context the search actually runs under: a
// deadline derived from time control when one applies, or a plain
// cancellable context otherwise.
func (s *Search) deriveContext(parent context.Context, p *position.Position, sl *Limits) (context.Context, context.CancelFunc) {
	if sl.TimeControl && !sl.Ponder {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
		s.log.Info(out.Sprintf("time control: limit %s", s.timeLimit))
		return context.WithTimeout(parent, s.timeLimit)
	}
	return context.WithCancel(parent)
}

// setupTimeControl estimates how long the current move should take,
// given remaining clock time (or a fixed per-move budget) and an
// estimate of moves remaining in the game derived from the position's
// material phase.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		d := sl.MoveTime - 20*time.Millisecond
		if d < 0 {
			return sl.MoveTime
		}
		return d
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = int64(15 + (25 * p.Phase() / PhaseMax))
	}

	var timeLeft, inc time.Duration
	switch p.SideToMove() {
	case Black:
		timeLeft, inc = sl.BlackTime, sl.BlackInc
	case White:
		timeLeft, inc = sl.WhiteTime, sl.WhiteInc
	}
	timeLeft += time.Duration(movesLeft) * inc

	limit := timeLeft / time.Duration(movesLeft)
	if limit.Milliseconds() < 100 {
		limit = time.Duration(float64(limit) * 0.8)
	} else {
		limit = time.Duration(float64(limit) * 0.9)
	}
	return limit
}

// stopConditions reports whether the search should unwind now. The
// context is only actually polled every nodeCheckInterval nodes; between
// polls the cheap stopped flag (set once the context fires, or by a
// direct StopSearch call) is consulted instead.
func (s *Search) stopConditions(ctx context.Context) bool {
	if s.stopped {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopped = true
		return true
	}
	if s.nodesVisited%nodeCheckInterval == 0 {
		select {
		case <-ctx.Done():
			s.stopped = true
			return true
		default:
		}
	}
	return false
}

// probeBook consults the loaded opening book for p, the root-only lookup
// spec.md describes: on a hit the search returns the first candidate
// immediately instead of running iterative deepening at all.
func (s *Search) probeBook(p *position.Position) (Move, bool) {
	if !config.Settings.Search.UseBook || s.book == nil {
		return MoveNone, false
	}
	return s.book.Probe(p, notation.Format(p))
}

func nps(nodes uint64, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(nodes) / d.Seconds())
}
