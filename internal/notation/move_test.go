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
)

func TestParseMoveResolvesAnOrdinaryBoardMove(t *testing.T) {
	p := position.NewPosition()
	m, err := ParseMove(p, "7g7f")
	assert.NoError(t, err)
	assert.False(t, m.IsDrop())
	assert.Equal(t, "7g7f", m.String())
}

func TestParseMoveResolvesADrop(t *testing.T) {
	p, err := Parse("9/9/4k4/9/9/9/9/4K4/9 b P 1")
	assert.NoError(t, err)

	m, err := ParseMove(p, "P*5e")
	assert.NoError(t, err)
	assert.True(t, m.IsDrop())
	assert.Equal(t, "P*5e", m.String())
}

func TestParseMoveRejectsAMoveNotInTheLegalMoveList(t *testing.T) {
	p := position.NewPosition()
	_, err := ParseMove(p, "1a1b")
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseMoveRejectsMalformedNotation(t *testing.T) {
	p := position.NewPosition()

	_, err := ParseMove(p, "7g7")
	assert.Error(t, err)

	_, err = ParseMove(p, "PP*5e")
	assert.Error(t, err)

	_, err = ParseMove(p, "X*5e")
	assert.Error(t, err)
}
