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

package endgame

import (
	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// KingGoldVsKing solves the most basic material win in Shogi: a lone
// king plus a single gold against a bare king, neither side holding
// anything in hand. The plan is the textbook one - walk the attacking
// king in to restrict the defender, then let the gold deliver mate
// along the edge or in the corner.
type KingGoldVsKing struct {
	maxDistance int
}

// NewKingGoldVsKing returns a solver capped at maxDistance-to-mate
// reports of 30 of its own moves, matching the "don't pretend to know more than
// we do" distance cutoff the plan below actually supports.
func NewKingGoldVsKing() *KingGoldVsKing {
	return &KingGoldVsKing{maxDistance: 30}
}

func (s *KingGoldVsKing) Name() string  { return "KingGoldVsKing" }
func (s *KingGoldVsKing) Priority() int { return 100 }

// CanSolve reports whether p is exactly a king+gold vs king position
// with both hands empty, regardless of which side is attacking.
func (s *KingGoldVsKing) CanSolve(p *position.Position) bool {
	_, _, ok := attackingSide(p)
	return ok
}

// Solve plays attackingSide's next move. It only answers when
// attackingSide is the side actually on move; the defender's replies
// are left to the ordinary search, since this solver only ever claims
// the attacker's half of the game tree.
func (s *KingGoldVsKing) Solve(p *position.Position) (Result, bool) {
	attacker, defender, ok := attackingSide(p)
	if !ok || p.SideToMove() != attacker {
		return Result{}, false
	}

	moves := movegen.GenerateLegalMoves(p, movegen.GenAll)
	if len(moves) == 0 {
		return Result{}, false
	}

	for _, m := range moves {
		p.DoMove(m)
		mate := p.InCheck(defender) && !movegen.HasLegalMove(p)
		p.UndoMove()
		if mate {
			return Result{Move: m, DistanceToMate: 1}, true
		}
	}

	best := moves[0]
	bestScore := -1
	for _, m := range moves {
		p.DoMove(m)
		stalemate := !p.InCheck(defender) && !movegen.HasLegalMove(p)
		score := approachScore(p, attacker, defender)
		p.UndoMove()
		if stalemate {
			continue
		}
		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = m
		}
	}
	if bestScore < 0 {
		// Every legal move stalemates the defender, which the search
		// scores as a draw, so there is no winning plan to report.
		return Result{}, false
	}

	distance := bestScore/2 + 1
	if distance > s.maxDistance {
		distance = s.maxDistance
	}
	return Result{Move: best, DistanceToMate: distance}, true
}

// attackingSide reports which side holds king+gold against a bare king
// with both hands empty, and false if p is not such a position.
func attackingSide(p *position.Position) (attacker, defender Side, ok bool) {
	if !p.Hand(Black).IsEmpty() || !p.Hand(White).IsEmpty() {
		return Black, White, false
	}
	blackKingOnly, blackKingAndGold := classify(p, Black)
	whiteKingOnly, whiteKingAndGold := classify(p, White)
	switch {
	case blackKingAndGold && whiteKingOnly:
		return Black, White, true
	case whiteKingAndGold && blackKingOnly:
		return White, Black, true
	default:
		return Black, White, false
	}
}

// classify reports whether side's remaining board pieces are exactly a
// lone king, or exactly a king and a gold.
func classify(p *position.Position, side Side) (kingOnly, kingAndGold bool) {
	if p.PiecesBb(side, King).PopCount() != 1 {
		return false, false
	}
	total := 0
	for pt := PieceType(1); pt < PtLength; pt++ {
		total += p.PiecesBb(side, pt).PopCount()
	}
	kingOnly = total == 1
	kingAndGold = total == 2 && p.PiecesBb(side, Gold).PopCount() == 1
	return
}

// approachScore estimates remaining work after a candidate move: the
// king-step distance from the attacking king to the defending king,
// plus the gold's distance to the defending king. Smaller is better.
func approachScore(p *position.Position, attacker, defender Side) int {
	attackerKing := p.PiecesBb(attacker, King).Lsb()
	attackerGold := p.PiecesBb(attacker, Gold)
	defenderKing := p.PiecesBb(defender, King).Lsb()

	score := manhattanDistance(attackerKing, defenderKing)
	if attackerGold.PopCount() == 1 {
		score += manhattanDistance(attackerGold.Lsb(), defenderKing)
	}
	return score
}

func manhattanDistance(a, b Square) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col() - b.Col()
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
