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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/frankkopp/shogi-engine/internal/attacks"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// see runs a static exchange evaluation of a capture (or drop - which
// never starts an exchange, so it is never passed here) on its
// destination square: every attacker of either side recaptures in
// increasing value order until no attacker remains or recapturing would
// not improve on standing pat, and the net material swing is returned
// from the mover's point of view.
func see(p *position.Position, m Move) int {
	if m.IsDrop() || !m.IsCapture() {
		return 0
	}

	toSquare := m.To()
	fromSquare := m.From()
	movedPiece := m.PieceType()
	sideToMove := p.SideToMove()

	occupied := p.OccupiedAll()
	attackers := p.AttackersTo(toSquare, Black).Or(p.AttackersTo(toSquare, White))

	var gain [32]int
	ply := 0
	gain[ply] = m.CapturedType().Value()

	for {
		ply++
		sideToMove = sideToMove.Flip()

		if m.Promotes() && ply == 1 {
			gain[ply] = movedPiece.Promote().Value() - movedPiece.Value() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.Value() - gain[ply-1]
		}

		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		attackers = attackers.PopSquare(fromSquare)
		occupied = occupied.PopSquare(fromSquare)
		attackers = attackers.Or(revealedAttackers(p, toSquare, occupied))

		fromSquare = leastValuableAttacker(p, attackers, sideToMove)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.PieceOn(fromSquare).Type().Demote()
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
		ply--
	}
	return gain[0]
}

// revealedAttackers re-derives slider attacks to square once a piece has
// been removed from occupied, uncovering lance/bishop/rook x-rays that
// were blocked before.
func revealedAttackers(p *position.Position, square Square, occupied Bitboard) Bitboard {
	var result Bitboard
	for _, side := range [2]Side{Black, White} {
		result = result.Or(attacks.Lance(square, side.Flip(), occupied).
			And(p.PiecesBb(side, Lance)).And(occupied))
		result = result.Or(attacks.Bishop(square, occupied).
			And(p.PiecesBb(side, Bishop)).And(occupied))
		result = result.Or(attacks.PromotedBishop(square, occupied).
			And(p.PiecesBb(side, PBishop)).And(occupied))
		result = result.Or(attacks.Rook(square, occupied).
			And(p.PiecesBb(side, Rook)).And(occupied))
		result = result.Or(attacks.PromotedRook(square, occupied).
			And(p.PiecesBb(side, PRook)).And(occupied))
	}
	return result
}

// leastValuableAttacker returns side's cheapest attacker in bitboard, or
// SqNone if side has none left.
func leastValuableAttacker(p *position.Position, bitboard Bitboard, side Side) Square {
	order := [...]PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook, King}
	for _, pt := range order {
		own := p.PiecesBb(side, pt)
		if pt != Gold {
			own = own.Or(p.PiecesBb(side, pt.Promote()))
		}
		if candidates := bitboard.And(own); !candidates.IsZero() {
			return candidates.Lsb()
		}
	}
	return SqNone
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// seeCacheSize is a fixed, direct-mapped table size rather than a
// growable map - each key maps to exactly one slot and a colliding entry
// is simply replaced, so the cache never grows unbounded.
const seeCacheSize = 1 << 14

type seeCacheEntry struct {
	key   uint64
	value int
	valid bool
}

// SeeCache memoizes see() results keyed by a hash of the position's
// Zobrist key and the capture move, avoiding repeated swap simulation
// when the same capture is ordered again in the same position.
type SeeCache struct {
	entries [seeCacheSize]seeCacheEntry
	hits    int64
	misses  int64
}

// NewSeeCache creates an empty SeeCache.
func NewSeeCache() *SeeCache {
	return &SeeCache{}
}

// Evaluate returns the static exchange evaluation of m, consulting the
// cache first.
func (c *SeeCache) Evaluate(p *position.Position, m Move) int {
	if m.IsDrop() || !m.IsCapture() {
		return 0
	}
	key := seeCacheKey(p, m)
	idx := key % seeCacheSize
	entry := &c.entries[idx]
	if entry.valid && entry.key == key {
		c.hits++
		return entry.value
	}
	c.misses++
	value := see(p, m)
	*entry = seeCacheEntry{key: key, value: value, valid: true}
	return value
}

// Clear empties the cache and resets its statistics.
func (c *SeeCache) Clear() {
	*c = SeeCache{}
}

// Stats returns the cache's lifetime hit and miss counts.
func (c *SeeCache) Stats() (hits, misses int64) { return c.hits, c.misses }

// seeCacheKey hashes the position's Zobrist key together with the move
// being evaluated using xxhash rather than folding them with XOR directly
// into the Zobrist key - so a SEE-cache collision has nothing to do with
// a Zobrist collision at the same occupancy.
func seeCacheKey(p *position.Position, m Move) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(p.Key()))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(m))
	return xxhash.Sum64(buf[:])
}
