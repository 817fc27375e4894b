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

// Package endgame recognizes small material signatures the search would
// otherwise have to grind out move by move, and answers them directly
// with a hand-written mating plan. A Registry holds every known Solver
// and arbitrates between them by priority when more than one claims the
// same position.
package endgame

import (
	"sort"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// Result is a solver's answer for a position: the move to play now and
// an estimate of how many of the solver's own moves remain until mate.
type Result struct {
	Move           Move
	DistanceToMate int
}

// Solver recognizes one material signature and plays it out. CanSolve
// must be cheap; it is called on every position the registry is asked
// about, including ones far outside the solver's signature.
type Solver interface {
	Name() string
	Priority() int
	CanSolve(p *position.Position) bool
	Solve(p *position.Position) (Result, bool)
}

// Registry holds every known Solver, tried in descending priority order.
type Registry struct {
	solvers []Solver
}

// NewRegistry builds a Registry from solvers, sorted by descending
// priority once so Solve never has to re-sort.
func NewRegistry(solvers ...Solver) *Registry {
	sorted := append([]Solver(nil), solvers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Registry{solvers: sorted}
}

// DefaultRegistry returns the registry of solvers the engine ships with.
func DefaultRegistry() *Registry {
	return NewRegistry(NewKingGoldVsKing())
}

// Solve asks every registered solver, in priority order, whether it
// recognizes p, and returns the first plan offered.
func (r *Registry) Solve(p *position.Position) (Result, bool) {
	for _, s := range r.solvers {
		if !s.CanSolve(p) {
			continue
		}
		if res, ok := s.Solve(p); ok {
			return res, true
		}
	}
	return Result{}, false
}
