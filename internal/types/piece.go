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

import "strings"

// PieceType is a tagged kind of piece, unpromoted or promoted. Table-driven
// dispatch (arrays indexed by PieceType) is used throughout the engine
// instead of virtual-method hierarchies, per the design notes on dynamic
// dispatch over piece types.
type PieceType int8

const (
	PtNone PieceType = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	PPawn  // tokin
	PLance
	PKnight
	PSilver
	PBishop // horse
	PRook   // dragon
	PtLength
)

var ptLetters = [PtLength]byte{0, 'P', 'L', 'N', 'S', 'G', 'B', 'R', 'K', 'P', 'L', 'N', 'S', 'B', 'R'}

// promoteOf maps an unpromoted kind to its promoted form, or PtNone if the
// kind cannot promote (Gold, King) or is already promoted.
var promoteOf = [PtLength]PieceType{
	PtNone, PPawn, PLance, PKnight, PSilver, PtNone, PBishop, PRook, PtNone,
	PtNone, PtNone, PtNone, PtNone, PtNone, PtNone,
}

// demoteOf maps a promoted kind back to its unpromoted base, or itself if
// the kind is already unpromoted.
var demoteOf = [PtLength]PieceType{
	PtNone, Pawn, Lance, Knight, Silver, Gold, Bishop, Rook, King,
	Pawn, Lance, Knight, Silver, Bishop, Rook,
}

// CanPromote reports whether pt has a promoted form.
func (pt PieceType) CanPromote() bool { return promoteOf[pt] != PtNone }

// IsPromoted reports whether pt is itself a promoted kind.
func (pt PieceType) IsPromoted() bool { return pt >= PPawn && pt < PtLength }

// Promote returns the promoted form of pt, or pt unchanged if it cannot
// promote.
func (pt PieceType) Promote() PieceType {
	if p := promoteOf[pt]; p != PtNone {
		return p
	}
	return pt
}

// Demote returns the unpromoted base kind of pt.
func (pt PieceType) Demote() PieceType {
	return demoteOf[pt]
}

// IsSlider reports whether pt (in either promotion state) moves as a
// sliding piece requiring a magic-bitboard lookup.
func (pt PieceType) IsSlider() bool {
	switch pt {
	case Lance, Bishop, Rook, PBishop, PRook:
		return true
	}
	return false
}

// GoldLike reports whether pt moves exactly like a Gold general - true for
// Gold itself and for all four promoted minor pieces.
func (pt PieceType) GoldLike() bool {
	switch pt {
	case Gold, PPawn, PLance, PKnight, PSilver:
		return true
	}
	return false
}

func (pt PieceType) String() string {
	if pt <= PtNone || pt >= PtLength {
		return "-"
	}
	if pt.IsPromoted() {
		return "+" + string(ptLetters[pt])
	}
	return string(ptLetters[pt])
}

// PieceTypeFromLetter parses a single unpromoted-kind SFEN letter
// ('P','L','N','S','G','B','R','K', case insensitive).
func PieceTypeFromLetter(l byte) (PieceType, bool) {
	up := l
	if up >= 'a' && up <= 'z' {
		up -= 'a' - 'A'
	}
	for pt := Pawn; pt <= King; pt++ {
		if ptLetters[pt] == up {
			return pt, true
		}
	}
	return PtNone, false
}

// HandKinds lists the seven unpromoted kinds that can sit in a player's
// hand, in the conventional donation order (most to least common).
var HandKinds = [7]PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

const HandKindLength = 7

// HandIndex returns the index of pt (which must be an unpromoted,
// non-king kind) within Hand's per-side count array, or -1.
func (pt PieceType) HandIndex() int {
	for i, k := range HandKinds {
		if k == pt {
			return i
		}
	}
	return -1
}

// Piece packs a Side and a PieceType into a single byte value:
// bit 4 is the side, bits 0-3 are the piece type (PtLength <= 16).
//  PieceNone = 0
type Piece uint8

const PieceNone Piece = 0

// MakePiece builds a Piece from a side and kind.
func MakePiece(side Side, pt PieceType) Piece {
	return Piece(side)<<4 | Piece(pt)
}

// Side returns the owning side of the piece.
func (p Piece) Side() Side { return Side(p >> 4) }

// Type returns the piece kind.
func (p Piece) Type() PieceType { return PieceType(p & 0x0F) }

// IsNone reports whether the piece slot is empty.
func (p Piece) IsNone() bool { return p.Type() == PtNone }

func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	s := p.Type().String()
	if p.Side() == White {
		return strings.ToLower(s)
	}
	return s
}
