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

// developmentKinds are the pieces whose starting square is a known
// liability - a rook, bishop, silver or gold left at home is a piece that
// hasn't entered the game yet. homeRank gives how many ranks forward of
// side's own back rank each kind starts at in the hirate array: gold and
// silver start on the back rank itself, rook and bishop one rank in front
// of it.
var developmentKinds = map[PieceType]int{
	Gold:   0,
	Silver: 0,
	Rook:   1,
	Bishop: 1,
}

// developedFor counts side's developmentKinds pieces that have moved
// beyond their starting rank.
func (e *Evaluator) developedFor(side Side) int {
	count := 0
	for pt, homeRank := range developmentKinds {
		e.pos.PiecesBb(side, pt).ForEach(func(sq Square) {
			if advanceFromOwnRank(sq, side) != homeRank {
				count++
			}
		})
	}
	return count
}

// development returns the Black-minus-White development score, a
// mid-game-only term - by the end-game every surviving piece has long
// since left its starting square.
func (e *Evaluator) development() Score {
	d := (e.developedFor(Black) - e.developedFor(White)) * config.Settings.Eval.DevelopmentBonus
	return Score{Mg: d, Eg: 0}
}
