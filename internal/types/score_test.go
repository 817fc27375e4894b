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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCheckmateValue(t *testing.T) {
	assert.False(t, ValueZero.IsCheckmateValue())
	assert.False(t, Value(500).IsCheckmateValue())
	assert.False(t, (ValueCheckmateThreshold - 1).IsCheckmateValue())
	assert.True(t, ValueCheckmateThreshold.IsCheckmateValue())
	assert.True(t, ValueCheckmate.IsCheckmateValue())
	assert.True(t, (-ValueCheckmateThreshold).IsCheckmateValue())
	assert.True(t, (-ValueCheckmate).IsCheckmateValue())
}

func TestValueStringRendersPlainCentipawns(t *testing.T) {
	assert.Equal(t, "cp 0", ValueZero.String())
	assert.Equal(t, "cp 123", Value(123).String())
	assert.Equal(t, "cp -45", Value(-45).String())
}

func TestValueStringRendersMateZeroAtTheMateValueItself(t *testing.T) {
	assert.Equal(t, "mate 0", ValueCheckmate.String())
	assert.Equal(t, "mate 0", (-ValueCheckmate).String())
}

func TestValueStringRendersMateInOneOnePlyOut(t *testing.T) {
	v := ValueCheckmate - 1
	assert.Equal(t, "mate 1", v.String())
	assert.Equal(t, "mate -1", (-v).String())
}

func TestValueStringRendersMateCountsFurtherOut(t *testing.T) {
	// Four plies from the mate value itself is two full moves away.
	v := ValueCheckmate - 4
	assert.Equal(t, "mate 2", v.String())
	assert.Equal(t, "mate -2", (-v).String())
}

func TestScoreAddSubAndNegate(t *testing.T) {
	s := Score{Mg: 10, Eg: 20}
	s.Add(Score{Mg: 5, Eg: -5})
	assert.Equal(t, Score{Mg: 15, Eg: 15}, s)

	s.Sub(Score{Mg: 15, Eg: 5})
	assert.Equal(t, Score{Mg: 0, Eg: 10}, s)

	assert.Equal(t, Score{Mg: 0, Eg: -10}, s.Negate())
}

func TestInterpolateAtTheExtremesOfPhase(t *testing.T) {
	s := Score{Mg: 100, Eg: -40}
	assert.Equal(t, Value(100), Interpolate(s, PhaseMax))
	assert.Equal(t, Value(-40), Interpolate(s, 0))
}

func TestInterpolateClampsOutOfRangePhase(t *testing.T) {
	s := Score{Mg: 100, Eg: 0}
	assert.Equal(t, Interpolate(s, PhaseMax), Interpolate(s, PhaseMax+50))
	assert.Equal(t, Interpolate(s, 0), Interpolate(s, -50))
}

func TestInterpolateTapersBetweenMgAndEg(t *testing.T) {
	s := Score{Mg: 200, Eg: 0}
	half := Interpolate(s, PhaseMax/2)
	assert.Greater(t, int(half), 0)
	assert.Less(t, int(half), 200)
}

func TestScaleGamePhaseMapsRawSumOntoPhaseMax(t *testing.T) {
	assert.Equal(t, 0, ScaleGamePhase(0))
	assert.Equal(t, PhaseMax, ScaleGamePhase(startingGamePhaseSum))
	assert.Equal(t, PhaseMax, ScaleGamePhase(startingGamePhaseSum+10))
	assert.Equal(t, 0, ScaleGamePhase(-10))
}

func TestPieceTypeValueAndGamePhaseValue(t *testing.T) {
	assert.Equal(t, 100, Pawn.Value())
	assert.Equal(t, 20000, King.Value())
	assert.Equal(t, 0, Pawn.GamePhaseValue())
	assert.Equal(t, 3, Rook.GamePhaseValue())
	assert.Equal(t, Rook.GamePhaseValue(), PRook.GamePhaseValue())
}

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "none", VtNone.String())
	assert.Equal(t, "exact", VtExact.String())
	assert.Equal(t, "upper", VtUpper.String())
	assert.Equal(t, "lower", VtLower.String())
}
