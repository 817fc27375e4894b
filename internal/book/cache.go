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
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// CompiledCache persists resolved book moves keyed by a position's
// Zobrist key, so a repeated probe of the same position later in the
// game (or in a later process run) skips re-walking the book's JSON
// index and re-matching candidates against the legal move list.
type CompiledCache struct {
	db *badger.DB
}

// OpenCompiledCache opens (creating if necessary) a badger-backed cache
// rooted at dir.
func OpenCompiledCache(dir string) (*CompiledCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &CompiledCache{db: db}, nil
}

// Close closes the underlying database.
func (c *CompiledCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns the cached move for key, if one was stored.
func (c *CompiledCache) Get(key position.Key) (Move, bool, error) {
	var mv Move
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyBytes(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			mv = Move(binary.BigEndian.Uint64(val))
			found = true
			return nil
		})
	})
	return mv, found, err
}

// Put stores mv as the resolved book move for key.
func (c *CompiledCache) Put(key position.Key, mv Move) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(mv))
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyBytes(key), val)
	})
}

func keyBytes(key position.Key) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(key))
	return b
}
