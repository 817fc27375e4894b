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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/shogi-engine/internal/types"
)

// TestKingAttacksCenter covers §8 scenario 2: king at the center square
// (square 40, row 4 col 4) must see all 8 neighbours; at square 0 (corner)
// only 3.
func TestKingAttacksCenter(t *testing.T) {
	require.Equal(t, 8, King(Square(40)).PopCount())
	require.Equal(t, 3, King(Square(0)).PopCount())
}

// TestKnightAttacksEdge covers §8 scenario 3.
func TestKnightAttacksEdge(t *testing.T) {
	assert.LessOrEqual(t, Knight(Square(4), Black).PopCount(), 2)
	assert.LessOrEqual(t, Knight(Square(0), Black).PopCount(), 1)
}

// TestNonSliderCountBounds checks the §4.2 sanity table for a sample of
// center, edge and corner squares.
func TestNonSliderCountBounds(t *testing.T) {
	center := Square(40)
	edge := Square(4)   // top edge, center file
	corner := Square(0) // top-left corner

	assert.Equal(t, 8, King(center).PopCount())
	assert.InDelta(t, 5, King(edge).PopCount(), 3)
	assert.Equal(t, 3, King(corner).PopCount())

	assert.InDelta(t, 6, Gold(center, Black).PopCount(), 1)
	assert.GreaterOrEqual(t, Gold(edge, Black).PopCount(), 2)
	assert.LessOrEqual(t, Gold(edge, Black).PopCount(), 5)

	assert.InDelta(t, 5, Silver(center, Black).PopCount(), 1)
	assert.GreaterOrEqual(t, Silver(edge, Black).PopCount(), 1)
	assert.LessOrEqual(t, Silver(edge, Black).PopCount(), 4)
}

// TestPromotedMinorsMirrorGold verifies §3/§4.2: every promoted minor
// attacks exactly like gold.
func TestPromotedMinorsMirrorGold(t *testing.T) {
	for _, pt := range []PieceType{PPawn, PLance, PKnight, PSilver} {
		for _, side := range []Side{Black, White} {
			for sq := Square(0); sq < SqLength; sq++ {
				assert.Equal(t, Gold(sq, side), AttacksBb(pt, sq, side, BbZero))
			}
		}
	}
}

func TestPromotedSlidersIncludeKingStep(t *testing.T) {
	sq := Square(40)
	occ := BbZero
	assert.Equal(t, Bishop(sq, occ).Or(King(sq)), PromotedBishop(sq, occ))
	assert.Equal(t, Rook(sq, occ).Or(King(sq)), PromotedRook(sq, occ))
}
