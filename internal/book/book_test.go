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

package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const twoOpenings = `[
  {
    "name": "Static Rook",
    "moves": {
      "startpos": [
        {"from": "7g", "to": "7f", "promote": false, "pieceType": "P"}
      ]
    }
  },
  {
    "name": "Ranging Rook",
    "moves": {
      "startpos": [
        {"from": "2g", "to": "2f", "promote": false, "pieceType": "P"}
      ],
      "midgame": [
        {"from": "drop", "to": "5e", "promote": false, "pieceType": "P"}
      ]
    }
  }
]`

func TestParseIndexesEverySignatureAcrossOpenings(t *testing.T) {
	b, err := Parse([]byte(twoOpenings))
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Len())
}

func TestParseKeepsTheFirstOpeningOnASignatureCollision(t *testing.T) {
	b, err := Parse([]byte(twoOpenings))
	assert.NoError(t, err)

	moves := b.Candidates("startpos")
	assert.Len(t, moves, 1)
	assert.Equal(t, "7g", moves[0].From)
}

func TestCandidatesOfAnUnknownSignatureIsNil(t *testing.T) {
	b, err := Parse([]byte(twoOpenings))
	assert.NoError(t, err)
	assert.Nil(t, b.Candidates("no-such-signature"))
}

func TestCandidatesAndLenOnANilBookAreSafe(t *testing.T) {
	var b *Book
	assert.Nil(t, b.Candidates("startpos"))
	assert.Equal(t, 0, b.Len())
}

func TestParseRejectsInvalidJson(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestLoadReadsAFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.json")
	assert.NoError(t, os.WriteFile(path, []byte(twoOpenings), 0o644))

	b, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Len())
}

func TestLoadFailsOnAMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
