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

package evaluator

import (
	"github.com/frankkopp/shogi-engine/internal/config"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// centerZone is the central 3x3 block of the board (rows 3-5, cols 3-5),
// the squares every piece wants a say over.
var centerZone = func() Bitboard {
	var bb Bitboard
	for r := 3; r <= 5; r++ {
		for c := 3; c <= 5; c++ {
			bb = bb.PushSquare(NewSquare(r, c))
		}
	}
	return bb
}()

// centerControl returns the Black-minus-White center-occupation score: a
// flat bonus per unpromoted officer (lance through rook, pawns and king
// excluded) sitting in the central 3x3 block.
func (e *Evaluator) centerControl() Score {
	countIn := func(side Side) int {
		total := 0
		for pt := Lance; pt < King; pt++ {
			total += e.pos.PiecesBb(side, pt).And(centerZone).PopCount()
		}
		return total
	}

	d := (countIn(Black) - countIn(White)) * config.Settings.Eval.CenterControlBonus
	return Score{Mg: d, Eg: d}
}
