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
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// NumFeatures is the length of the vector ExtractFeatures returns: one
// material count per unpromoted piece kind (7, hand pieces fold into
// their unpromoted kind), one per promoted kind (6, King excluded), and
// one scalar apiece for the remaining evaluation terms (positional
// middlegame, positional endgame, mobility, king safety, pawn
// connectivity and isolation together, pawn advancement, rook/lance
// support, bishop pair, center control, development).
const NumFeatures = 13 + 10

// ExtractFeatures returns a fixed-length, side-relative feature vector for
// p, intended for internal/tuning's offline weight optimizer: each entry
// is the same Black-minus-White quantity the matching evaluation term
// would compute, left unweighted and untapered so the optimizer can fit
// its own coefficients against real game outcomes. Unlike the original
// per-square piece-square features this collapses each term to a single
// scalar, since the procedural tables here have far fewer free parameters
// than the original's literal 81-entry grids.
func ExtractFeatures(p *position.Position) []float64 {
	e := NewEvaluator()
	e.InitEval(p)

	f := make([]float64, 0, NumFeatures)

	for pt := Pawn; pt < PtLength; pt++ {
		if pt == King {
			continue
		}
		count := p.PiecesBb(Black, pt).PopCount() - p.PiecesBb(White, pt).PopCount()
		count += int(p.Hand(Black).Count(pt)) - int(p.Hand(White).Count(pt))
		f = append(f, float64(count))
	}

	positional := e.positional()
	f = append(f, float64(positional.Mg), float64(positional.Eg))

	f = append(f, float64(e.mobility().Mg))
	f = append(f, float64(e.kingSafety().Mg))

	bMg, bEg := e.pawnStructureFor(Black)
	wMg, wEg := e.pawnStructureFor(White)
	f = append(f, float64(bMg-wMg), float64(bEg-wEg))

	f = append(f, float64(e.rookLanceSupportFor(Black)-e.rookLanceSupportFor(White)))
	f = append(f, float64(boolDiff(e.bishopPairFor(Black), e.bishopPairFor(White))))

	f = append(f, float64(e.centerControl().Mg))
	f = append(f, float64(e.developedFor(Black)-e.developedFor(White)))

	return f
}

func boolDiff(a, b bool) int {
	return boolToInt(a) - boolToInt(b)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
