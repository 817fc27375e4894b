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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

func TestParseAndFormatRoundTripTheStartingPosition(t *testing.T) {
	start := position.NewPosition()
	s := Format(start)

	p, err := Parse(s)
	assert.NoError(t, err)
	assert.Equal(t, s, Format(p))
	assert.Equal(t, Black, p.SideToMove())
}

func TestParsePlacesPiecesOnTheRightSquares(t *testing.T) {
	p, err := Parse("9/9/4k4/9/9/9/4G4/4K4/9 b - 1")
	assert.NoError(t, err)

	assert.Equal(t, MakePiece(White, King), p.PieceOn(NewSquare(2, 4)))
	assert.Equal(t, MakePiece(Black, Gold), p.PieceOn(NewSquare(6, 4)))
	assert.Equal(t, MakePiece(Black, King), p.PieceOn(NewSquare(7, 4)))
	assert.True(t, p.PieceOn(NewSquare(0, 0)).IsNone())
	assert.Equal(t, Black, p.SideToMove())
}

func TestParseHandlesPromotedPiecesOnTheBoard(t *testing.T) {
	p, err := Parse("4+p4/9/9/9/9/9/9/9/4K3k b - 1")
	assert.NoError(t, err)
	assert.Equal(t, MakePiece(White, PPawn), p.PieceOn(NewSquare(0, 4)))
}

func TestParseReadsHandCounts(t *testing.T) {
	p, err := Parse("9/9/4k4/9/9/9/4G4/4K4/9 b 2Pr 1")
	assert.NoError(t, err)
	assert.Equal(t, uint8(2), p.Hand(Black).Count(Pawn))
	assert.Equal(t, uint8(1), p.Hand(White).Count(Rook))
}

func TestParseReadsSideToMoveAndMoveNumber(t *testing.T) {
	p, err := Parse("9/9/4k4/9/9/9/4G4/4K4/9 w - 15")
	assert.NoError(t, err)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, 14, p.Ply())
}

func TestParseRejectsTooFewFields(t *testing.T) {
	_, err := Parse("9/9/9/9/9/9/9/9/9")
	assert.Error(t, err)
}

func TestParseRejectsWrongRankCount(t *testing.T) {
	_, err := Parse("9/9/9 b - 1")
	assert.Error(t, err)
}

func TestParseRejectsARankThatDoesNotCoverNineFiles(t *testing.T) {
	_, err := Parse("8/9/9/9/9/9/9/9/9 b - 1")
	assert.Error(t, err)
}

func TestParseRejectsAnUnknownPieceLetter(t *testing.T) {
	_, err := Parse("9/9/9/9/9/4X4/9/9/9 b - 1")
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseRejectsAnInvalidSideToMove(t *testing.T) {
	_, err := Parse("9/9/9/9/9/9/9/9/9 x - 1")
	assert.Error(t, err)
}

func TestParseRejectsADanglingPromotionMarker(t *testing.T) {
	_, err := Parse("8+/9/9/9/9/9/9/9/9 b - 1")
	assert.Error(t, err)
}

func TestParseRejectsPromotingAKindThatCannotPromote(t *testing.T) {
	_, err := Parse("4+g4/9/9/9/9/9/9/9/9 b - 1")
	assert.Error(t, err)
}

func TestFormatOmitsTheHandFieldWhenEmpty(t *testing.T) {
	p, err := Parse("9/9/4k4/9/9/9/4G4/4K4/9 b - 1")
	assert.NoError(t, err)
	assert.Contains(t, Format(p), " - ")
}

func TestFormatLowercasesWhitesHandAndKeepsBlacksUppercase(t *testing.T) {
	p, err := Parse("9/9/4k4/9/9/9/4G4/4K4/9 b Pp 1")
	assert.NoError(t, err)
	assert.Contains(t, Format(p), "Pp")
}
