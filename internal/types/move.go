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

import "fmt"

// Move is a 64-bit unsigned int encoding a Shogi move as a primitive data
// type - a board move, or a drop from hand - plus a 32-bit move-ordering
// sort value carried alongside it, the same way the move generator packs a
// sort value into the high bits of a chess move.
//
//  BITMAP 64-bit
//  |-- unused --|-------- value --------|-capt-|-piece|d|p|---from--|--to---|
//  63        56  55                   24 23   20 19  16 15 14 13   7 6     0
//                                                           |  |
//                                                           |  +- promote flag
//                                                           +---- drop flag
//
//  to:        bits 0-6   (0..80)
//  from:      bits 7-13  (0..80, or fromNone for a drop)
//  drop flag: bit 15
//  promote:   bit 14
//  piece:     bits 16-19 (moved piece kind for a board move, dropped kind for a drop)
//  captured:  bits 20-23 (PtNone if the move is not a capture)
//  value:     bits 24-55 (signed sort value, bias-encoded)
type Move uint64

const (
	toShift       = 0
	fromShift     = 7
	promoteShift  = 14
	dropShift     = 15
	pieceShift    = 16
	capturedShift = 20
	valueShift    = 24

	toMask       = Move(0x7F) << toShift
	fromMask     = Move(0x7F) << fromShift
	promoteMask  = Move(1) << promoteShift
	dropMask     = Move(1) << dropShift
	pieceMask    = Move(0xF) << pieceShift
	capturedMask = Move(0xF) << capturedShift
	valueMask    = Move(0xFFFFFFFF) << valueShift

	valueBias = 1 << 31

	// fromNone is the sentinel "from" field for a drop move.
	fromNone = Square(0x7F)
)

// MoveNone is the empty, invalid move.
const MoveNone Move = 0

// CreateMove builds a board move.
func CreateMove(from, to Square, pt PieceType, promote bool) Move {
	m := Move(to)<<toShift | Move(from)<<fromShift | Move(pt)<<pieceShift
	if promote {
		m |= promoteMask
	}
	return m
}

// CreateCapture builds a capturing board move, recording the captured kind
// (unpromoted, as it will be stored in the mover's hand) for ordering and
// unmake.
func CreateCapture(from, to Square, pt PieceType, promote bool, captured PieceType) Move {
	return CreateMove(from, to, pt, promote) | Move(captured.Demote())<<capturedShift
}

// CreateDrop builds a drop move.
func CreateDrop(to Square, pt PieceType) Move {
	return Move(to)<<toShift | Move(fromNone)<<fromShift | dropMask | Move(pt)<<pieceShift
}

// To returns the destination square.
func (m Move) To() Square { return Square((m & toMask) >> toShift) }

// From returns the origin square (undefined for a drop).
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// IsDrop reports whether the move is a hand drop rather than a board move.
func (m Move) IsDrop() bool { return m&dropMask != 0 }

// Promotes reports whether the move promotes the moving piece.
func (m Move) Promotes() bool { return m&promoteMask != 0 }

// PieceType returns the moved (board move) or dropped (drop) piece kind.
func (m Move) PieceType() PieceType { return PieceType((m & pieceMask) >> pieceShift) }

// CapturedType returns the captured piece's unpromoted kind, or PtNone.
func (m Move) CapturedType() PieceType { return PieceType((m & capturedMask) >> capturedShift) }

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool { return m.CapturedType() != PtNone }

// MoveOf strips the sort value, leaving only the move identity - used for
// move-equality comparisons (e.g. matching a TT/PV move against generated
// moves, which may carry a different or no sort value).
func (m Move) MoveOf() Move { return m &^ valueMask }

// Equals compares two moves ignoring their sort value.
func (m Move) Equals(o Move) bool { return m.MoveOf() == o.MoveOf() }

// Value returns the move's sort value.
func (m Move) Value() int {
	return int(int64((m&valueMask)>>valueShift) - valueBias)
}

// WithValue returns m with its sort value replaced.
func (m Move) WithValue(v int) Move {
	biased := Move(int64(v)+valueBias) & 0xFFFFFFFF
	return (m &^ valueMask) | biased<<valueShift
}

// String renders the move in the compact §6 notation: board moves as
// "fileRankfileRank[+]", drops as "Kind*fileRank".
func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.PieceType().String(), m.To().String())
	}
	suffix := ""
	if m.Promotes() {
		suffix = "+"
	}
	return fmt.Sprintf("%s%s%s", m.From().String(), m.To().String(), suffix)
}
