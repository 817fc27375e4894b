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

// Hand is a dense per-side multiset of re-droppable, unpromoted piece
// kinds - a flat array rather than a map, per the design notes preferring
// flat arrays over hash-map caches for hot-path data.
type Hand [HandKindLength]uint8

// Count returns the number of pt held in hand (pt must be unpromoted).
func (h Hand) Count(pt PieceType) uint8 {
	if idx := pt.HandIndex(); idx >= 0 {
		return h[idx]
	}
	return 0
}

// Add increments the count of pt in hand.
func (h *Hand) Add(pt PieceType) {
	if idx := pt.HandIndex(); idx >= 0 {
		h[idx]++
	}
}

// Remove decrements the count of pt in hand; it is a no-op if the count is
// already zero.
func (h *Hand) Remove(pt PieceType) {
	if idx := pt.HandIndex(); idx >= 0 && h[idx] > 0 {
		h[idx]--
	}
}

// Material returns the hand's total centipawn material: every kind held
// counts at its unpromoted value, since a piece returns to its base form
// the instant it is captured (§4.6 "material, hand pieces included").
func (h Hand) Material() int {
	total := 0
	for i, c := range h {
		total += int(c) * HandKinds[i].Value()
	}
	return total
}

// IsEmpty reports whether the hand holds no pieces at all.
func (h Hand) IsEmpty() bool {
	for _, c := range h {
		if c > 0 {
			return false
		}
	}
	return true
}

// String renders the hand in SFEN hand notation, e.g. "2P3R" (count
// omitted when exactly 1), in the conventional R,B,G,S,N,L,P order.
func (h Hand) String() string {
	var sb strings.Builder
	order := [7]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}
	for _, pt := range order {
		c := h.Count(pt)
		if c == 0 {
			continue
		}
		if c > 1 {
			sb.WriteString(itoa(int(c)))
		}
		sb.WriteString(pt.String())
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [4]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}
