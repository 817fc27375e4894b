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

// Package book looks up known opening moves keyed by position signature,
// loaded from a JSON file grouping named openings, each a map from
// signature to a ranked list of candidate moves.
package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// BookMove is one candidate move as stored in the opening book JSON: a
// from/to pair in the engine's "fileRank" square notation (§6), "drop"
// standing in for From on a hand drop.
type BookMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promote   bool   `json:"promote"`
	PieceType string `json:"pieceType"`
}

// Opening is one named line, its moves keyed by the signature of the
// position they are played from.
type Opening struct {
	Name  string                `json:"name"`
	Moves map[string][]BookMove `json:"moves"`
}

// Book is the in-memory form of a loaded opening book: every opening's
// moves folded into one signature-keyed index, first-loaded-wins on a
// signature collision across openings.
type Book struct {
	index map[string][]BookMove
}

// Load reads and parses a JSON opening book from path.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("book: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a JSON opening book already read into memory.
func Parse(data []byte) (*Book, error) {
	var openings []Opening
	if err := json.Unmarshal(data, &openings); err != nil {
		return nil, fmt.Errorf("book: decoding json: %w", err)
	}
	b := &Book{index: make(map[string][]BookMove)}
	for _, o := range openings {
		for signature, moves := range o.Moves {
			if _, exists := b.index[signature]; exists {
				continue
			}
			b.index[signature] = moves
		}
	}
	return b, nil
}

// Candidates returns the book moves recorded for signature, most
// preferred first, or nil if the position is not in the book.
func (b *Book) Candidates(signature string) []BookMove {
	if b == nil {
		return nil
	}
	return b.index[signature]
}

// Len returns the number of distinct signatures the book covers.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.index)
}
