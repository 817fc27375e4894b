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

func TestCreateMoveRoundTripsItsFields(t *testing.T) {
	from := NewSquare(6, 4)
	to := NewSquare(5, 4)
	m := CreateMove(from, to, Pawn, false)

	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, Pawn, m.PieceType())
	assert.False(t, m.IsDrop())
	assert.False(t, m.Promotes())
	assert.False(t, m.IsCapture())
}

func TestCreateMoveWithPromotion(t *testing.T) {
	m := CreateMove(NewSquare(2, 4), NewSquare(1, 4), Silver, true)
	assert.True(t, m.Promotes())
}

func TestCreateCaptureRecordsTheDemotedCapturedKind(t *testing.T) {
	m := CreateCapture(NewSquare(4, 4), NewSquare(3, 4), Rook, false, PPawn)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Pawn, m.CapturedType())
}

func TestCreateDropHasNoOrigin(t *testing.T) {
	m := CreateDrop(NewSquare(4, 4), Gold)
	assert.True(t, m.IsDrop())
	assert.Equal(t, Gold, m.PieceType())
	assert.Equal(t, NewSquare(4, 4), m.To())
	assert.False(t, m.IsCapture())
}

func TestMoveValueDoesNotAffectIdentity(t *testing.T) {
	m := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	withValue := m.WithValue(123)

	assert.NotEqual(t, m, withValue)
	assert.True(t, m.Equals(withValue))
	assert.Equal(t, m, withValue.MoveOf())
	assert.Equal(t, 123, withValue.Value())
}

func TestMoveValueRoundTripsNegativeValues(t *testing.T) {
	m := MoveNone.WithValue(-500)
	assert.Equal(t, -500, m.Value())
}

func TestMoveStringRendersBoardMovesAndDrops(t *testing.T) {
	board := CreateMove(NewSquare(6, 4), NewSquare(5, 4), Pawn, false)
	promoting := CreateMove(NewSquare(2, 4), NewSquare(1, 4), Silver, true)
	drop := CreateDrop(NewSquare(4, 4), Gold)

	assert.Equal(t, board.From().String()+board.To().String(), board.String())
	assert.Equal(t, promoting.From().String()+promoting.To().String()+"+", promoting.String())
	assert.Equal(t, "G*"+drop.To().String(), drop.String())
	assert.Equal(t, "none", MoveNone.String())
}
