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

// Package notation parses and formats positions in the engine's compact
// text form: nine rank strings separated by '/', a side-to-move letter,
// a hand string and a move number - the Shogi analogue of chess FEN.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// ParseError names the offending token of a rejected notation string.
type ParseError struct {
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: %s: %q", e.Msg, e.Token)
}

// Format renders p in the engine's compact notation.
func Format(p *position.Position) string {
	var ranks [RankCount]string
	for row := 0; row < RankCount; row++ {
		ranks[row] = formatRank(p, row)
	}

	side := "b"
	if p.SideToMove() == White {
		side = "w"
	}

	hand := formatHand(p)

	return fmt.Sprintf("%s %s %s %d", strings.Join(ranks[:], "/"), side, hand, p.Ply()+1)
}

func formatRank(p *position.Position, row int) string {
	var sb strings.Builder
	empty := 0
	flush := func() {
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
			empty = 0
		}
	}
	for col := 0; col < FileCount; col++ {
		pc := p.PieceOn(NewSquare(row, col))
		if pc.IsNone() {
			empty++
			continue
		}
		flush()
		sb.WriteString(pc.String())
	}
	flush()
	return sb.String()
}

func formatHand(p *position.Position) string {
	black := p.Hand(Black).String()
	white := strings.ToLower(p.Hand(White).String())
	if black == "" && white == "" {
		return "-"
	}
	return black + white
}

// Parse builds a Position from its compact notation. Unparseable input
// fails with a *ParseError naming the offending token.
func Parse(s string) (*position.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, &ParseError{Token: s, Msg: "expected at least board and side fields"}
	}

	p := position.NewEmptyPosition()

	if err := parseBoard(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "b":
		p.SetSideToMove(Black)
	case "w":
		p.SetSideToMove(White)
	default:
		return nil, &ParseError{Token: fields[1], Msg: "invalid side to move"}
	}

	if len(fields) >= 3 {
		if err := parseHand(p, fields[2]); err != nil {
			return nil, err
		}
	}

	if len(fields) >= 4 {
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, &ParseError{Token: fields[3], Msg: "invalid move number"}
		}
		p.SetPly(n - 1)
	}

	p.RecomputeKey()
	return p, nil
}

func parseBoard(p *position.Position, board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != RankCount {
		return &ParseError{Token: board, Msg: "expected 9 ranks"}
	}
	for row, rank := range ranks {
		if err := parseRank(p, row, rank); err != nil {
			return err
		}
	}
	return nil
}

func parseRank(p *position.Position, row int, rank string) error {
	col := 0
	runes := []rune(rank)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '1' && r <= '9':
			col += int(r - '0')
		case r == '+':
			i++
			if i >= len(runes) {
				return &ParseError{Token: rank, Msg: "dangling promotion marker"}
			}
			pt, side, err := pieceLetter(runes[i])
			if err != nil {
				return err
			}
			if !pt.CanPromote() {
				return &ParseError{Token: rank, Msg: "piece kind cannot be promoted"}
			}
			if col >= FileCount {
				return &ParseError{Token: rank, Msg: "rank overflows the board"}
			}
			p.PlacePiece(NewSquare(row, col), MakePiece(side, pt.Promote()))
			col++
		default:
			pt, side, err := pieceLetter(r)
			if err != nil {
				return err
			}
			if col >= FileCount {
				return &ParseError{Token: rank, Msg: "rank overflows the board"}
			}
			p.PlacePiece(NewSquare(row, col), MakePiece(side, pt))
			col++
		}
	}
	if col != FileCount {
		return &ParseError{Token: rank, Msg: "rank does not cover 9 files"}
	}
	return nil
}

func pieceLetter(r rune) (PieceType, Side, error) {
	pt, ok := PieceTypeFromLetter(byte(r))
	if !ok {
		return PtNone, Black, &ParseError{Token: string(r), Msg: "unknown piece letter"}
	}
	side := Black
	if r >= 'a' && r <= 'z' {
		side = White
	}
	return pt, side, nil
}

func parseHand(p *position.Position, hand string) error {
	if hand == "-" {
		return nil
	}
	counts := map[Side]map[PieceType]uint8{Black: {}, White: {}}
	runes := []rune(hand)
	for i := 0; i < len(runes); i++ {
		count := 1
		if runes[i] >= '1' && runes[i] <= '9' {
			start := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil || i >= len(runes) {
				return &ParseError{Token: hand, Msg: "invalid hand count"}
			}
			count = n
		}
		pt, side, err := pieceLetter(runes[i])
		if err != nil {
			return err
		}
		counts[side][pt] = uint8(count)
	}
	for side, bySide := range counts {
		for pt, c := range bySide {
			p.SetHandCount(side, pt, c)
		}
	}
	return nil
}
