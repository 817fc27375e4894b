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

package magic

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	. "github.com/frankkopp/shogi-engine/internal/types"
)

const maxMagicAttempts = 1_000_000

// Init (re)builds the magic tables for both sliding families. It runs once
// at startup (§5: "Precomputation of attack and magic tables happens once
// at startup"); the per-square, per-family searches are independent of one
// another so they fan out across an errgroup, the one place in the engine
// allowed to parallelize because it produces purely read-only tables
// before any search state exists.
func Init() error {
	var g errgroup.Group
	for f := RookFamily; f < familyLength; f++ {
		f := f
		dirs := dirsFor(f)
		for sq := Square(0); sq < SqLength; sq++ {
			sq := sq
			g.Go(func() error {
				e, err := buildEntry(sq, dirs)
				if err != nil {
					return err
				}
				tables[f][sq] = *e
				return nil
			})
		}
	}
	return g.Wait()
}

// buildEntry computes the relevant mask, the reference attack table for
// every occupancy subset, and searches for a magic multiplier that indexes
// that table without collisions (§4.3 steps 1-3).
func buildEntry(sq Square, dirs [4]direction) (*entry, error) {
	mask := relevantMask(sq, dirs)
	var maskSquares []Square
	mask.ForEach(func(s Square) { maskSquares = append(maskSquares, s) })

	bits := len(maskSquares)
	size := 1 << uint(bits)
	shift := uint(64 - bits)

	reference := make([]Bitboard, size)
	for idx := 0; idx < size; idx++ {
		occ := occupancyFromIndex(idx, maskSquares)
		reference[idx] = slidingAttack(sq, dirs, occ)
	}

	rng := newPrnG(seedFor(sq))
	attacksTbl := make([]Bitboard, size)
	used := make([]bool, size)

	for attempt := 0; attempt < maxMagicAttempts; attempt++ {
		m := rng.sparseRand()
		for i := range used {
			used[i] = false
		}
		attacksTbl = attacksTbl[:0]
		attacksTbl = append(attacksTbl, make([]Bitboard, size)...)

		ok := true
		for idx := 0; idx < size && ok; idx++ {
			slot := (uint64(idx) * m) >> shift
			if used[slot] {
				if attacksTbl[slot] != reference[idx] {
					ok = false
					break
				}
				continue
			}
			used[slot] = true
			attacksTbl[slot] = reference[idx]
		}
		if ok {
			return &entry{
				mask:        mask,
				maskSquares: maskSquares,
				magicNum:    m,
				shift:       shift,
				attacks:     attacksTbl,
			}, nil
		}
	}
	return nil, fmt.Errorf("magic: failed to find collision-free magic for square %s after %d attempts", sq, maxMagicAttempts)
}

func seedFor(sq Square) uint64 {
	// Arbitrary but fixed per-square seeds so runs are deterministic;
	// any magic that passes the collision-free check in buildEntry is
	// conformant (§9 open question: "specific magic seeds ... not part
	// of the spec").
	return 0x9E3779B97F4A7C15 ^ (uint64(sq) * 0x2545F4914F6CDD1D)
}

// prnG is the Stockfish-derived xorshift64star pseudo-random generator,
// ported from the teacher's internal/types/magic.go PrnG.
type prnG struct{ s uint64 }

func newPrnG(seed uint64) *prnG { return &prnG{s: seed} }

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces values with roughly 1/8th of their bits set on
// average, which tend to make better magic-multiplier candidates.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
