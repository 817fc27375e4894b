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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/shogi-engine/internal/config"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

func TestStartPosZeroEval(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	p := position.NewPosition()
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(p))
}

func TestMaterialAndPositionalAreZeroSumAtStart(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	e.InitEval(p)
	assert.EqualValues(t, Score{}, e.material())
	assert.EqualValues(t, Score{}, e.positional())
	assert.EqualValues(t, Score{}, e.mobility())
	assert.EqualValues(t, Score{Mg: 0}, e.kingSafety())
	assert.EqualValues(t, Score{}, e.development())
}

func TestTempoFavorsSideToMove(t *testing.T) {
	config.Settings.Eval.Tempo = 20
	p := position.NewPosition()
	e := NewEvaluator()
	v := e.Evaluate(p)
	assert.Greater(t, int(v), 0)
}

func TestIsolatedPawnIsPenalized(t *testing.T) {
	p := position.NewEmptyPosition()
	bKingSq, _ := SquareFromFileRank(5, 'i')
	wKingSq, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKingSq, MakePiece(Black, King))
	p.PlacePiece(wKingSq, MakePiece(White, King))

	lonely, _ := SquareFromFileRank(5, 'g')
	p.PlacePiece(lonely, MakePiece(Black, Pawn))
	p.RecomputeKey()

	e := NewEvaluator()
	e.InitEval(p)
	mg, _ := e.pawnStructureFor(Black)
	assert.Equal(t, -config.Settings.Eval.IsolatedPawnMalus, mg)
}

func TestConnectedPawnsAreRewarded(t *testing.T) {
	p := position.NewEmptyPosition()
	bKingSq, _ := SquareFromFileRank(5, 'i')
	wKingSq, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKingSq, MakePiece(Black, King))
	p.PlacePiece(wKingSq, MakePiece(White, King))

	a, _ := SquareFromFileRank(4, 'g')
	b, _ := SquareFromFileRank(5, 'g')
	p.PlacePiece(a, MakePiece(Black, Pawn))
	p.PlacePiece(b, MakePiece(Black, Pawn))
	p.RecomputeKey()

	e := NewEvaluator()
	e.InitEval(p)
	mg, _ := e.pawnStructureFor(Black)
	assert.Equal(t, 2*config.Settings.Eval.ConnectedPawnBonus, mg)
}

func TestExtractFeaturesLength(t *testing.T) {
	p := position.NewPosition()
	f := ExtractFeatures(p)
	assert.Len(t, f, NumFeatures)
}

func TestExtractFeaturesZeroAtStart(t *testing.T) {
	p := position.NewPosition()
	f := ExtractFeatures(p)
	for i, v := range f {
		assert.Zero(t, v, "feature %d should be zero at the symmetric start position", i)
	}
}
