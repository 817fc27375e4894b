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

package position

import (
	"github.com/frankkopp/shogi-engine/assert"
	"github.com/frankkopp/shogi-engine/internal/attacks"
	myLogging "github.com/frankkopp/shogi-engine/internal/logging"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

var log = myLogging.GetLog("position")

// undoState carries everything DoMove needs in order for UndoMove to put
// the position back exactly as it was, the same shape as the teacher's
// position package's internal history entry.
type undoState struct {
	move     Move
	mover    Side
	prevKey  Key
	prevPly  int
}

// Position is the single mutable piece of engine state: board placement,
// both hands, side to move, ply counter and Zobrist key. Every other
// package (movegen, evaluator, search, ...) is built against *Position.
type Position struct {
	Board
	hands      [SideLength]Hand
	sideToMove Side
	ply        int
	key        Key
	history    []undoState
}

// NewEmptyPosition returns a position with an empty board, Black to move
// and empty hands - the starting point for internal/notation's SFEN
// parser to place pieces onto before calling RecomputeKey.
func NewEmptyPosition() *Position {
	return &Position{sideToMove: Black}
}

// hirateRows is the standard Shogi starting array, row 0 (White's back
// rank) through row 8 (Black's back rank), one rune per column using the
// familiar SFEN letters; '.' is empty. This is the one place a literal
// board layout is spelled out instead of parsed, mirroring how a chess
// engine typically hardcodes its own starting position rather than
// parsing it out of its own FEN reader at startup.
var hirateRows = [RankCount]string{
	"lnsgkgsnl",
	".r.....b.",
	"ppppppppp",
	".........",
	".........",
	".........",
	"PPPPPPPPP",
	".B.....R.",
	"LNSGKGSNL",
}

// NewPosition returns the standard Shogi starting position.
func NewPosition() *Position {
	p := NewEmptyPosition()
	for row := 0; row < RankCount; row++ {
		for col, r := range hirateRows[row] {
			if r == '.' {
				continue
			}
			side := Black
			if r >= 'a' && r <= 'z' {
				side = White
			}
			pt, ok := PieceTypeFromLetter(byte(r))
			if !ok {
				continue
			}
			p.PlacePiece(NewSquare(row, col), MakePiece(side, pt))
		}
	}
	p.RecomputeKey()
	return p
}

// PlacePiece places p on sq (which must be empty) and folds it into the
// Zobrist key. Exported for internal/notation's position builder.
func (p *Position) PlacePiece(sq Square, pc Piece) {
	p.Board.placePiece(sq, pc)
	p.key ^= pieceKey(sq, pc)
}

// RemovePiece clears sq (which must hold pc) and folds the removal into
// the Zobrist key.
func (p *Position) RemovePiece(sq Square, pc Piece) {
	p.Board.removePiece(sq, pc)
	p.key ^= pieceKey(sq, pc)
}

// SetHandCount sets side's count of pt directly, updating the Zobrist
// key. Exported for internal/notation's position builder.
func (p *Position) SetHandCount(side Side, pt PieceType, count uint8) {
	idx := pt.HandIndex()
	if idx < 0 {
		return
	}
	p.key ^= handKey(side, pt, p.hands[side][idx])
	p.hands[side][idx] = count
	p.key ^= handKey(side, pt, count)
}

// SetSideToMove forces the side to move, updating the Zobrist key.
// Exported for internal/notation's position builder.
func (p *Position) SetSideToMove(side Side) {
	if side != p.sideToMove {
		p.key ^= zobristSide
		p.sideToMove = side
	}
}

// SetPly forces the position's ply counter, e.g. to the move number a
// parsed notation string carried. Never affects the Zobrist key, since
// ply is not part of a position's identity for repetition/TT purposes.
// Exported for internal/notation's position builder.
func (p *Position) SetPly(ply int) {
	p.ply = ply
}

// RecomputeKey rebuilds the Zobrist key from scratch. Used once by a
// position builder (internal/notation) after placing pieces directly,
// and available as a consistency check against the incrementally
// maintained key.
func (p *Position) RecomputeKey() {
	var k Key
	for sq := Square(0); sq < SqLength; sq++ {
		if pc := p.squares[sq]; !pc.IsNone() {
			k ^= pieceKey(sq, pc)
		}
	}
	for side := Side(0); side < SideLength; side++ {
		for _, pt := range HandKinds {
			k ^= handKey(side, pt, p.hands[side].Count(pt))
		}
	}
	if p.sideToMove == White {
		k ^= zobristSide
	}
	p.key = k
}

// SideToMove returns the player on move.
func (p *Position) SideToMove() Side { return p.sideToMove }

// Ply returns the number of half-moves played since the position was
// created (0 at the starting position or any position built fresh).
func (p *Position) Ply() int { return p.ply }

// Key returns the current Zobrist key.
func (p *Position) Key() Key { return p.key }

// Hand returns side's current hand (a small value copy, safe to retain).
func (p *Position) Hand(side Side) Hand { return p.hands[side] }

// Material returns side's total centipawn material - board pieces plus
// hand pieces, each hand piece counted at its unpromoted value.
func (p *Position) Material(side Side) int {
	return p.BoardMaterial(side) + p.hands[side].Material()
}

// Phase returns the current game phase in [0, PhaseMax], PhaseMax at the
// initial position and falling towards 0 as officers come off the board.
func (p *Position) Phase() int {
	return ScaleGamePhase(p.GamePhaseRaw())
}

// PsqMidValue returns side's accumulated middlegame piece-square bonus.
func (p *Position) PsqMidValue(side Side) int { return p.PsqMid(side) }

// PsqEndValue returns side's accumulated endgame piece-square bonus.
func (p *Position) PsqEndValue(side Side) int { return p.PsqEnd(side) }

// DoMove applies m, which must be pseudo-legal for the side to move, and
// pushes an undo record onto the history stack.
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(m != MoveNone, "Position DoMove: move must not be MoveNone")
	}

	mover := p.sideToMove
	p.history = append(p.history, undoState{move: m, mover: mover, prevKey: p.key, prevPly: p.ply})

	to := m.To()
	pt := m.PieceType()

	if m.IsDrop() {
		if assert.DEBUG {
			assert.Assert(p.Hand(mover).Count(pt) > 0, "Position DoMove: drop of %s but hand is empty", pt.String())
		}
		p.dropHandPiece(mover, pt)
		p.PlacePiece(to, MakePiece(mover, pt))
	} else {
		from := m.From()
		movingPiece := MakePiece(mover, pt)
		if assert.DEBUG {
			assert.Assert(p.squares[from] == movingPiece, "Position DoMove: %s does not hold %s", from.String(), movingPiece.String())
		}

		if m.IsCapture() {
			capturedPt := m.CapturedType()
			capturedPiece := p.squares[to]
			if assert.DEBUG {
				assert.Assert(capturedPiece.Side() != mover, "Position DoMove: capture of own piece on %s", to.String())
			}
			p.RemovePiece(to, capturedPiece)
			p.addHandPiece(mover, capturedPt)
		}

		p.RemovePiece(from, movingPiece)
		finalType := pt
		if m.Promotes() {
			finalType = pt.Promote()
		}
		p.PlacePiece(to, MakePiece(mover, finalType))
	}

	p.key ^= zobristSide
	p.sideToMove = mover.Flip()
	p.ply++
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	n := len(p.history)
	st := p.history[n-1]
	p.history = p.history[:n-1]

	m := st.move
	mover := st.mover
	to := m.To()
	pt := m.PieceType()

	if m.IsDrop() {
		p.Board.removePiece(to, MakePiece(mover, pt))
		idx := pt.HandIndex()
		p.hands[mover][idx]++
	} else {
		from := m.From()
		finalType := pt
		if m.Promotes() {
			finalType = pt.Promote()
		}
		p.Board.removePiece(to, MakePiece(mover, finalType))
		p.Board.placePiece(from, MakePiece(mover, pt))

		if m.IsCapture() {
			capturedPt := m.CapturedType()
			p.Board.placePiece(to, MakePiece(mover.Flip(), capturedPt))
			idx := capturedPt.HandIndex()
			p.hands[mover][idx]--
		}
	}

	p.sideToMove = mover
	p.ply = st.prevPly
	p.key = st.prevKey
}

// DoNullMove passes the turn to the opponent without moving a piece, for
// null-move pruning: everything but side to move and ply is left as is,
// and UndoNullMove restores exactly that.
func (p *Position) DoNullMove() {
	mover := p.sideToMove
	p.history = append(p.history, undoState{move: MoveNone, mover: mover, prevKey: p.key, prevPly: p.ply})
	p.key ^= zobristSide
	p.sideToMove = mover.Flip()
	p.ply++
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.history)
	st := p.history[n-1]
	p.history = p.history[:n-1]
	p.sideToMove = st.mover
	p.ply = st.prevPly
	p.key = st.prevKey
}

func (p *Position) addHandPiece(side Side, pt PieceType) {
	idx := pt.HandIndex()
	if idx < 0 {
		return
	}
	p.key ^= handKey(side, pt, p.hands[side][idx])
	p.hands[side][idx]++
	p.key ^= handKey(side, pt, p.hands[side][idx])
}

func (p *Position) dropHandPiece(side Side, pt PieceType) {
	idx := pt.HandIndex()
	if idx < 0 {
		return
	}
	p.key ^= handKey(side, pt, p.hands[side][idx])
	p.hands[side][idx]--
	p.key ^= handKey(side, pt, p.hands[side][idx])
}

// AttackersTo returns every square occupied by a bySide piece that
// attacks sq given the current board occupancy.
func (p *Position) AttackersTo(sq Square, bySide Side) Bitboard {
	occ := p.OccupiedAll()
	attackers := BbZero

	attackers = attackers.Or(attacks.Gold(sq, bySide.Flip()).And(
		p.PiecesBb(bySide, Gold).Or(p.PiecesBb(bySide, PPawn)).Or(p.PiecesBb(bySide, PLance)).
			Or(p.PiecesBb(bySide, PKnight)).Or(p.PiecesBb(bySide, PSilver))))
	attackers = attackers.Or(attacks.Silver(sq, bySide.Flip()).And(p.PiecesBb(bySide, Silver)))
	attackers = attackers.Or(attacks.Knight(sq, bySide.Flip()).And(p.PiecesBb(bySide, Knight)))
	attackers = attackers.Or(attacks.Pawn(sq, bySide.Flip()).And(p.PiecesBb(bySide, Pawn)))
	attackers = attackers.Or(attacks.Lance(sq, bySide.Flip(), occ).And(p.PiecesBb(bySide, Lance)))
	attackers = attackers.Or(attacks.King(sq).And(p.PiecesBb(bySide, King)))
	attackers = attackers.Or(attacks.Bishop(sq, occ).And(p.PiecesBb(bySide, Bishop)))
	attackers = attackers.Or(attacks.PromotedBishop(sq, occ).And(p.PiecesBb(bySide, PBishop)))
	attackers = attackers.Or(attacks.Rook(sq, occ).And(p.PiecesBb(bySide, Rook)))
	attackers = attackers.Or(attacks.PromotedRook(sq, occ).And(p.PiecesBb(bySide, PRook)))

	return attackers
}

// IsAttacked reports whether any bySide piece attacks sq.
func (p *Position) IsAttacked(sq Square, bySide Side) bool {
	return !p.AttackersTo(sq, bySide).IsZero()
}

// InCheck reports whether side's king is currently attacked.
func (p *Position) InCheck(side Side) bool {
	return p.IsAttacked(p.KingSquare(side), side.Flip())
}
