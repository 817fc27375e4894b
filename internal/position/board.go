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

// Package position implements the Shogi board, hands and position state:
// piece placement, side to move, captured-piece hands, Zobrist hashing,
// and make/unmake. It is the one package below search/movegen/evaluator in
// the dependency order that everything else is built on.
package position

import (
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// Board holds piece placement as both a square-indexed array and the
// redundant per-side, per-kind bitboards (plus aggregates), which every
// update keeps mutually consistent - the invariant from §3's data model.
// It also tracks material, game phase and piece-square totals
// incrementally, updated alongside the bitboards in placePiece/removePiece
// rather than recomputed from scratch on every evaluation.
type Board struct {
	squares    [SqLength]Piece
	piecesBb   [SideLength][PtLength]Bitboard
	occupiedBb [SideLength]Bitboard
	kingSquare [SideLength]Square

	boardMaterial [SideLength]int
	gamePhaseRaw  int
	psqMid        [SideLength]int
	psqEnd        [SideLength]int
}

// PieceOn returns the piece occupying sq, or PieceNone.
func (b *Board) PieceOn(sq Square) Piece { return b.squares[sq] }

// PiecesBb returns the bitboard of side's pieces of kind pt.
func (b *Board) PiecesBb(side Side, pt PieceType) Bitboard { return b.piecesBb[side][pt] }

// OccupiedBb returns the bitboard of every square occupied by side.
func (b *Board) OccupiedBb(side Side) Bitboard { return b.occupiedBb[side] }

// OccupiedAll returns the bitboard of every occupied square.
func (b *Board) OccupiedAll() Bitboard { return b.occupiedBb[Black].Or(b.occupiedBb[White]) }

// KingSquare returns side's king square.
func (b *Board) KingSquare(side Side) Square { return b.kingSquare[side] }

// BoardMaterial returns the on-board (hand pieces excluded) material total
// for side, in centipawns.
func (b *Board) BoardMaterial(side Side) int { return b.boardMaterial[side] }

// GamePhaseRaw returns the unscaled game-phase sum (officers on board,
// pawns and kings excluded).
func (b *Board) GamePhaseRaw() int { return b.gamePhaseRaw }

// PsqMid returns side's accumulated middlegame piece-square bonus.
func (b *Board) PsqMid(side Side) int { return b.psqMid[side] }

// PsqEnd returns side's accumulated endgame piece-square bonus.
func (b *Board) PsqEnd(side Side) int { return b.psqEnd[side] }

// placePiece puts p on sq, which must currently be empty, updating every
// redundant bitboard together.
func (b *Board) placePiece(sq Square, p Piece) {
	b.squares[sq] = p
	side, pt := p.Side(), p.Type()
	b.piecesBb[side][pt] = b.piecesBb[side][pt].PushSquare(sq)
	b.occupiedBb[side] = b.occupiedBb[side].PushSquare(sq)
	if pt == King {
		b.kingSquare[side] = sq
	}
	b.boardMaterial[side] += pt.Value()
	b.gamePhaseRaw += pt.GamePhaseValue()
	b.psqMid[side] += psqMidValue(sq, p)
	b.psqEnd[side] += psqEndValue(sq, p)
}

// removePiece clears sq, which must hold p, updating every redundant
// bitboard together.
func (b *Board) removePiece(sq Square, p Piece) {
	b.squares[sq] = PieceNone
	side, pt := p.Side(), p.Type()
	b.piecesBb[side][pt] = b.piecesBb[side][pt].PopSquare(sq)
	b.occupiedBb[side] = b.occupiedBb[side].PopSquare(sq)
	b.boardMaterial[side] -= pt.Value()
	b.gamePhaseRaw -= pt.GamePhaseValue()
	b.psqMid[side] -= psqMidValue(sq, p)
	b.psqEnd[side] -= psqEndValue(sq, p)
}

// movePiece relocates p from `from` to `to`, both of which must be
// consistent with the board's current state (from occupied by p, to
// empty).
func (b *Board) movePiece(from, to Square, p Piece) {
	b.removePiece(from, p)
	b.placePiece(to, p)
}
