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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

func TestGenerateLegalMovesHirateCount(t *testing.T) {
	p := position.NewPosition()
	moves := GenerateLegalMoves(p, GenAll)
	assert.Len(t, moves, 30)
}

func TestHasLegalMoveHirate(t *testing.T) {
	p := position.NewPosition()
	assert.True(t, HasLegalMove(p))
}

func TestNifuBlocksSecondPawnDrop(t *testing.T) {
	p := position.NewEmptyPosition()
	bKing, _ := SquareFromFileRank(5, 'i')
	wKing, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKing, MakePiece(Black, King))
	p.PlacePiece(wKing, MakePiece(White, King))

	pawnSq, _ := SquareFromFileRank(3, 'e')
	p.PlacePiece(pawnSq, MakePiece(Black, Pawn))
	p.SetHandCount(Black, Pawn, 1)
	p.RecomputeKey()

	moves := GeneratePseudoLegalMoves(p, GenAll)
	for _, m := range moves {
		if m.IsDrop() && m.PieceType() == Pawn {
			require.NotEqual(t, 3, m.To().Col(), "drop must avoid file already holding a pawn")
		}
	}
}

func TestDeadSquareForbidsPawnDropOnLastRank(t *testing.T) {
	p := position.NewEmptyPosition()
	bKing, _ := SquareFromFileRank(5, 'i')
	wKing, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKing, MakePiece(Black, King))
	p.PlacePiece(wKing, MakePiece(White, King))
	p.SetHandCount(Black, Pawn, 1)
	p.RecomputeKey()

	lastRankSq, _ := SquareFromFileRank(3, 'a')
	assert.False(t, dropAllowed(p, Black, Pawn, lastRankSq))
}

func TestPromotionEmittedOnZoneEntry(t *testing.T) {
	p := position.NewEmptyPosition()
	bKing, _ := SquareFromFileRank(5, 'i')
	wKing, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKing, MakePiece(Black, King))
	p.PlacePiece(wKing, MakePiece(White, King))

	from, _ := SquareFromFileRank(1, 'd')
	p.PlacePiece(from, MakePiece(Black, Silver))
	p.RecomputeKey()

	moves := GeneratePseudoLegalMoves(p, GenAll)
	to, _ := SquareFromFileRank(1, 'c')
	var sawPlain, sawPromote bool
	for _, m := range moves {
		if m.IsDrop() || m.From() != from || m.To() != to {
			continue
		}
		if m.Promotes() {
			sawPromote = true
		} else {
			sawPlain = true
		}
	}
	assert.True(t, sawPlain)
	assert.True(t, sawPromote)
}

func TestMandatoryPromotionOnDeadSquare(t *testing.T) {
	p := position.NewEmptyPosition()
	bKing, _ := SquareFromFileRank(5, 'i')
	wKing, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKing, MakePiece(Black, King))
	p.PlacePiece(wKing, MakePiece(White, King))

	from, _ := SquareFromFileRank(1, 'b')
	p.PlacePiece(from, MakePiece(Black, Pawn))
	p.RecomputeKey()

	moves := GeneratePseudoLegalMoves(p, GenAll)
	to, _ := SquareFromFileRank(1, 'a')
	count := 0
	for _, m := range moves {
		if m.IsDrop() || m.From() != from || m.To() != to {
			continue
		}
		count++
		assert.True(t, m.Promotes())
	}
	assert.Equal(t, 1, count)
}

func TestIsLegalMoveRejectsSelfCheck(t *testing.T) {
	p := position.NewEmptyPosition()
	bKing, _ := SquareFromFileRank(5, 'i')
	wKing, _ := SquareFromFileRank(5, 'a')
	p.PlacePiece(bKing, MakePiece(Black, King))
	p.PlacePiece(wKing, MakePiece(White, King))

	wRookSq, _ := SquareFromFileRank(5, 'd')
	p.PlacePiece(wRookSq, MakePiece(White, Rook))

	pinnedSq, _ := SquareFromFileRank(5, 'g')
	p.PlacePiece(pinnedSq, MakePiece(Black, Silver))
	p.RecomputeKey()
	require.False(t, p.InCheck(Black))

	// backward-diagonal silver move off the file, exposing the king to
	// the rook behind it
	offFileSq, _ := SquareFromFileRank(4, 'h')
	m := CreateMove(pinnedSq, offFileSq, Silver, false)
	assert.False(t, IsLegalMove(p, m), "moving the pinned silver off the file must expose check")
}
