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

// Package movegen generates pseudo-legal and legal moves for a position:
// per-kind board moves with Shogi's promotion rules, hand drops with the
// nifu/dead-square/uchifuzume restrictions, and the legality filter that
// turns pseudo-legal moves into legal ones by simulating them.
package movegen

import (
	myLogging "github.com/frankkopp/shogi-engine/internal/logging"
	"github.com/frankkopp/shogi-engine/internal/attacks"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

var log = myLogging.GetLog("movegen")

// MaxMoves is a generous upper bound on the number of moves in any legal
// Shogi position, used only to presize move slices.
const MaxMoves = 600

// GenMode selects which half of move generation to run, mirroring the
// teacher's capture/non-capture split used to interleave move-ordering
// phases.
type GenMode int

const (
	GenCaptures    GenMode = 1 << iota
	GenNonCaptures
	GenAll = GenCaptures | GenNonCaptures
)

// MoveList is a plain, reusable slice of moves.
type MoveList []Move

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side
// to move: board moves (with mandatory/optional promotion per the
// dead-square rules) and hand drops (with nifu/dead-square/uchifuzume
// filtering applied at generation time, since those are move-shape
// rules rather than "does this leave my king in check" rules).
func GeneratePseudoLegalMoves(p *position.Position, mode GenMode) MoveList {
	list := make(MoveList, 0, MaxMoves)
	side := p.SideToMove()
	generateBoardMoves(p, side, mode, &list)
	if mode&GenNonCaptures != 0 {
		generateDrops(p, side, &list)
	}
	return list
}

// GenerateLegalMoves generates pseudo-legal moves and filters out any
// that leave the mover's own king in check.
func GenerateLegalMoves(p *position.Position, mode GenMode) MoveList {
	pseudo := GeneratePseudoLegalMoves(p, mode)
	legal := make(MoveList, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegalMove(p, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegalMove reports whether m (assumed pseudo-legal) leaves the mover's
// king safe, by actually applying and undoing it.
func IsLegalMove(p *position.Position, m Move) bool {
	mover := p.SideToMove()
	p.DoMove(m)
	legal := !p.InCheck(mover)
	p.UndoMove()
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, stopping at the first one found rather than generating the full
// list - used by the uchifuzume check and by internal/endgame to detect
// checkmate/stalemate.
func HasLegalMove(p *position.Position) bool {
	side := p.SideToMove()
	occ := p.OccupiedAll()
	own := p.OccupiedBb(side)

	for pt := Pawn; pt < PtLength; pt++ {
		pieces := p.PiecesBb(side, pt)
		found := false
		pieces.ForEach(func(from Square) {
			if found {
				return
			}
			targets := attacks.AttacksBb(pt, from, side, occ).AndNot(own)
			targets.ForEach(func(to Square) {
				if found {
					return
				}
				for _, m := range expandBoardMove(p, side, pt, from, to) {
					if IsLegalMove(p, m) {
						found = true
						return
					}
				}
			})
		})
		if found {
			return true
		}
	}

	hand := p.Hand(side)
	empty := occ.Not()
	for _, pt := range HandKinds {
		if hand.Count(pt) == 0 {
			continue
		}
		found := false
		empty.ForEach(func(to Square) {
			if found {
				return
			}
			if !dropAllowed(p, side, pt, to) {
				return
			}
			m := CreateDrop(to, pt)
			if IsLegalMove(p, m) {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}

// generateBoardMoves enumerates per-kind pseudo attacks for every piece
// of side, filters out squares occupied by side's own pieces, and emits
// plain/capture/promotion variants per the promotion rules.
func generateBoardMoves(p *position.Position, side Side, mode GenMode, list *MoveList) {
	occ := p.OccupiedAll()
	own := p.OccupiedBb(side)
	opp := p.OccupiedBb(side.Flip())

	for pt := Pawn; pt < PtLength; pt++ {
		pieces := p.PiecesBb(side, pt)
		pieces.ForEach(func(from Square) {
			targets := attacks.AttacksBb(pt, from, side, occ).AndNot(own)
			targets.ForEach(func(to Square) {
				isCapture := opp.Has(to)
				if isCapture && mode&GenCaptures == 0 {
					return
				}
				if !isCapture && mode&GenNonCaptures == 0 {
					return
				}
				for _, m := range buildBoardMove(p, side, pt, from, to, isCapture) {
					*list = append(*list, m)
				}
			})
		})
	}
}

// expandBoardMove is buildBoardMove restricted to a single (from, to)
// pair, used by HasLegalMove so it doesn't need to know whether the
// target square is a capture.
func expandBoardMove(p *position.Position, side Side, pt PieceType, from, to Square) []Move {
	isCapture := p.OccupiedBb(side.Flip()).Has(to)
	return buildBoardMove(p, side, pt, from, to, isCapture)
}

// buildBoardMove returns the one or two moves (promote/non-promote)
// produced by moving pt from `from` to `to`, honouring the mandatory
// promotion ("dead square") rule for pawns, lances and knights.
func buildBoardMove(p *position.Position, side Side, pt PieceType, from, to Square, isCapture bool) []Move {
	var captured PieceType
	if isCapture {
		captured = p.PieceOn(to).Type()
	}

	deadSquare := false
	switch pt {
	case Pawn, Lance:
		deadSquare = to.IsLastRank(side)
	case Knight:
		deadSquare = to.IsLastTwoRanks(side)
	}

	canPromote := pt.CanPromote() && (from.InPromotionZone(side) || to.InPromotionZone(side))

	var moves []Move
	if !deadSquare {
		moves = append(moves, makeBoardMove(from, to, pt, false, isCapture, captured))
	}
	if canPromote {
		moves = append(moves, makeBoardMove(from, to, pt, true, isCapture, captured))
	}
	return moves
}

func makeBoardMove(from, to Square, pt PieceType, promote, isCapture bool, captured PieceType) Move {
	if isCapture {
		return CreateCapture(from, to, pt, promote, captured)
	}
	return CreateMove(from, to, pt, promote)
}

// generateDrops enumerates legal-shape drops (nifu, dead-square and
// uchifuzume already filtered) for every hand kind side holds at least
// one copy of.
func generateDrops(p *position.Position, side Side, list *MoveList) {
	hand := p.Hand(side)
	empty := p.OccupiedAll().Not()
	for _, pt := range HandKinds {
		if hand.Count(pt) == 0 {
			continue
		}
		empty.ForEach(func(to Square) {
			if dropAllowed(p, side, pt, to) {
				*list = append(*list, CreateDrop(to, pt))
			}
		})
	}
}

// dropAllowed checks the move-shape restrictions on dropping pt onto an
// empty square `to` for side: the dead-square rule (pawn/lance on the
// last rank, knight on the last two ranks), nifu (no second unpromoted
// pawn on a file that already holds one), and uchifuzume (a pawn drop
// may not deliver an unescapable checkmate).
func dropAllowed(p *position.Position, side Side, pt PieceType, to Square) bool {
	switch pt {
	case Pawn, Lance:
		if to.IsLastRank(side) {
			return false
		}
	case Knight:
		if to.IsLastTwoRanks(side) {
			return false
		}
	}

	if pt == Pawn {
		if hasPawnOnFile(p, side, to.Col()) {
			return false
		}
		if isUchifuzume(p, side, to) {
			return false
		}
	}

	return true
}

func hasPawnOnFile(p *position.Position, side Side, col int) bool {
	pawns := p.PiecesBb(side, Pawn)
	found := false
	pawns.ForEach(func(sq Square) {
		if sq.Col() == col {
			found = true
		}
	})
	return found
}

// isUchifuzume reports whether dropping a pawn on `to` would deliver a
// checkmate - the one drop shape Shogi's rules forbid outright, unlike
// every other way of giving check.
func isUchifuzume(p *position.Position, side Side, to Square) bool {
	defender := side.Flip()
	m := CreateDrop(to, Pawn)
	p.DoMove(m)
	defer p.UndoMove()
	if !p.InCheck(defender) {
		return false
	}
	return !HasLegalMove(p)
}
