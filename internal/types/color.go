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

// Side identifies the player to move. Black moves first and starts on the
// board's high-numbered rows (6..8); White starts on rows 0..2.
type Side int8

const (
	Black Side = iota
	White
	SideLength
)

// Flip returns the opponent's side.
func (c Side) Flip() Side {
	return c ^ 1
}

// MoveDirection returns the row delta (in the Row() sense) of a step
// "forward" for this side: Black moves towards row 0, White towards row 8.
func (c Side) MoveDirection() int {
	if c == Black {
		return -1
	}
	return 1
}

func (c Side) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// SideFromLetter parses the SFEN side-to-move letter ('b'/'w').
func SideFromLetter(l byte) (Side, bool) {
	switch l {
	case 'b':
		return Black, true
	case 'w':
		return White, true
	}
	return Black, false
}
