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
	"strconv"
	"strings"

	"github.com/frankkopp/shogi-engine/internal/movegen"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// ParseMove parses a move in the compact §6 notation ("fileRankfileRank[+]"
// for a board move, "Kind*fileRank" for a drop) and resolves it against
// p's legal moves, the only way to recover the captured-piece tag a bare
// from/to/drop triple cannot carry on its own.
func ParseMove(p *position.Position, s string) (Move, error) {
	if idx := strings.IndexByte(s, '*'); idx >= 0 {
		return parseDrop(p, s, idx)
	}
	return parseBoardMove(p, s)
}

func parseDrop(p *position.Position, s string, starIdx int) (Move, error) {
	if starIdx != 1 {
		return MoveNone, &ParseError{Token: s, Msg: "expected single-letter piece kind before '*'"}
	}
	pt, _, err := pieceLetter(rune(s[0]))
	if err != nil {
		return MoveNone, err
	}
	to, err := parseSq(s[starIdx+1:])
	if err != nil {
		return MoveNone, &ParseError{Token: s, Msg: "invalid destination square"}
	}
	for _, m := range movegen.GenerateLegalMoves(p, movegen.GenAll) {
		if m.IsDrop() && m.To() == to && m.PieceType() == pt {
			return m, nil
		}
	}
	return MoveNone, &ParseError{Token: s, Msg: "not a legal drop"}
}

func parseBoardMove(p *position.Position, s string) (Move, error) {
	promotes := false
	body := s
	if strings.HasSuffix(s, "+") {
		promotes = true
		body = s[:len(s)-1]
	}
	if len(body) != 4 {
		return MoveNone, &ParseError{Token: s, Msg: "expected fileRankfileRank[+]"}
	}
	from, err := parseSq(body[:2])
	if err != nil {
		return MoveNone, &ParseError{Token: s, Msg: "invalid origin square"}
	}
	to, err := parseSq(body[2:])
	if err != nil {
		return MoveNone, &ParseError{Token: s, Msg: "invalid destination square"}
	}
	for _, m := range movegen.GenerateLegalMoves(p, movegen.GenAll) {
		if !m.IsDrop() && m.From() == from && m.To() == to && m.Promotes() == promotes {
			return m, nil
		}
	}
	return MoveNone, &ParseError{Token: s, Msg: "not a legal move"}
}

func parseSq(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, &ParseError{Token: s, Msg: "expected 2-character square"}
	}
	file, err := strconv.Atoi(s[:1])
	if err != nil {
		return SqNone, &ParseError{Token: s, Msg: "invalid file digit"}
	}
	sq, ok := SquareFromFileRank(file, s[1])
	if !ok {
		return SqNone, &ParseError{Token: s, Msg: "square out of range"}
	}
	return sq, nil
}
