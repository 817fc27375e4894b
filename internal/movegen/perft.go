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

package movegen

import (
	"time"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// Perft counts leaf nodes of the full-width game tree to a fixed depth, the
// standard cross-check that move generation produces exactly the right
// moves - neither missing nor inventing any.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	PromotionCounter uint64
	DropCounter      uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	Elapsed          time.Duration
	stopFlag         bool
}

// NewPerft creates a new, zeroed Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running perft abort at the next opportunity, for use
// when StartPerft has been launched in its own goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft resets the counters and walks the tree rooted at p to depth,
// leaving p unchanged (every recursive DoMove is undone on the way back up).
func (perft *Perft) StartPerft(p *position.Position, depth int) uint64 {
	perft.stopFlag = false
	perft.resetCounters()
	if depth <= 0 {
		depth = 1
	}

	start := time.Now()
	perft.Nodes = perft.miniMax(depth, p)
	perft.Elapsed = time.Since(start)
	return perft.Nodes
}

func (perft *Perft) miniMax(depth int, p *position.Position) uint64 {
	var total uint64
	moves := GeneratePseudoLegalMoves(p, GenAll)
	mover := p.SideToMove()

	for _, m := range moves {
		if perft.stopFlag {
			return 0
		}

		isCapture := m.IsCapture()
		isPromotion := m.Promotes()
		isDrop := m.IsDrop()

		p.DoMove(m)
		if p.InCheck(mover) {
			p.UndoMove()
			continue
		}

		if depth > 1 {
			total += perft.miniMax(depth-1, p)
		} else {
			total++
			if isCapture {
				perft.CaptureCounter++
			}
			if isPromotion {
				perft.PromotionCounter++
			}
			if isDrop {
				perft.DropCounter++
			}
			if p.InCheck(p.SideToMove()) {
				perft.CheckCounter++
				if !HasLegalMove(p) {
					perft.CheckMateCounter++
				}
			}
		}
		p.UndoMove()
	}
	return total
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CaptureCounter = 0
	perft.PromotionCounter = 0
	perft.DropCounter = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
}
