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

// Package transpositiontable implements the search's position cache: a
// fixed-size, power-of-two-addressed array of entries with a
// depth-preferred, age-tiebroken replacement policy. It is owned by one
// search and is not safe for concurrent use - Resize and Clear in
// particular must never run while a search is probing or storing.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/shogi-engine/internal/logging"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
	"github.com/frankkopp/shogi-engine/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MB is one megabyte in bytes, used for sizing the table.
	MB = 1024 * 1024
	// MaxSizeInMB bounds how large a table Resize will honor.
	MaxSizeInMB = 65_536
)

// Stats holds lifetime usage counters for a Table.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is the transposition table itself.
type Table struct {
	log             *logging.Logger
	data            []Entry
	sizeInByte      uint64
	hashKeyMask     uint64
	maxEntries      uint64
	numberOfEntries uint64
	Stats           Stats
}

// NewTable creates a Table sized to fit within sizeInMByte megabytes,
// rounded down to the nearest power-of-two entry count.
func NewTable(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetLog("tt")}
	t.Resize(sizeInMByte)
	return t
}

// Resize rebuilds the table for a new memory budget, discarding every
// entry. Must not be called while a search is using the table.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	entrySize := uint64(unsafe.Sizeof(Entry{}))
	t.sizeInByte = uint64(sizeInMByte) * MB
	if t.sizeInByte < entrySize {
		t.maxEntries = 0
	} else {
		t.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(t.sizeInByte/entrySize))))
	}
	t.hashKeyMask = t.maxEntries - 1
	t.sizeInByte = t.maxEntries * entrySize

	t.data = make([]Entry, t.maxEntries)
	t.numberOfEntries = 0
	t.Stats = Stats{}

	t.log.Info(out.Sprintf("TT resized to %d MB, %d entries of %d bytes each", t.sizeInByte/MB, t.maxEntries, entrySize))
	t.log.Debug(util.MemStat())
}

// Probe returns the entry stored under key, or nil on a miss. A hit
// resets the entry's age to zero, marking it as touched this search.
func (t *Table) Probe(key position.Key) *Entry {
	if t.maxEntries == 0 {
		return nil
	}
	t.Stats.Probes++
	e := &t.data[t.index(key)]
	if e.key == key {
		e.vmeta &^= ageMask
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Put stores (or refreshes) an entry for key. Replacement policy:
// replace iff the incoming depth exceeds the existing entry's depth, or
// the depths are equal and the existing entry has aged (belongs to an
// earlier search generation); a same-key update always refreshes.
func (t *Table) Put(key position.Key, move Move, depth int, value, eval Value, bound ValueType) {
	if t.maxEntries == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.index(key)]
	packedMove := uint32(move.MoveOf()) & moveIdentityMask

	if e.key == 0 {
		t.numberOfEntries++
		*e = Entry{key: key, move: packedMove, value: int16(value), eval: int16(eval), vmeta: packVmeta(depth, bound)}
		return
	}

	if e.key != key {
		t.Stats.Collisions++
		if depth > e.Depth() || (depth == e.Depth() && e.Age() > 0) {
			t.Stats.Overwrites++
			*e = Entry{key: key, move: packedMove, value: int16(value), eval: int16(eval), vmeta: packVmeta(depth, bound)}
		}
		return
	}

	t.Stats.Updates++
	if move != MoveNone {
		e.move = packedMove
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.vmeta = packVmeta(depth, bound)
	}
}

// Clear empties every entry and resets statistics.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxEntries)
	t.numberOfEntries = 0
	t.Stats = Stats{}
}

// AgeEntries increments every occupied entry's age by one, run once
// between independent searches (rather than Clear) so entries from the
// prior search are not discarded outright but are preferred for
// replacement over entries the new search has touched.
func (t *Table) AgeEntries() {
	if t.numberOfEntries == 0 {
		return
	}
	start := time.Now()
	const workers = 8
	var wg sync.WaitGroup
	chunk := t.maxEntries / workers
	if chunk == 0 {
		chunk = t.maxEntries
	}
	for w := uint64(0); w < workers; w++ {
		from := w * chunk
		to := from + chunk
		if w == workers-1 {
			to = t.maxEntries
		}
		if from >= to {
			continue
		}
		wg.Add(1)
		go func(from, to uint64) {
			defer wg.Done()
			for i := from; i < to; i++ {
				if t.data[i].key != 0 {
					t.data[i].increaseAge()
				}
			}
		}(from, to)
	}
	wg.Wait()
	t.log.Debug(out.Sprintf("aged %d entries in %s", t.numberOfEntries, time.Since(start)))
}

// Hashfull reports how full the table is, in permille, matching the USI
// "hashfull" info field's convention.
func (t *Table) Hashfull() int {
	if t.maxEntries == 0 {
		return 0
	}
	return int((1000 * t.numberOfEntries) / t.maxEntries)
}

// Len returns the number of occupied entries.
func (t *Table) Len() uint64 { return t.numberOfEntries }

func (t *Table) String() string {
	return out.Sprintf("TT: %d MB, %d/%d entries (%d%%) puts=%d updates=%d collisions=%d "+
		"overwrites=%d probes=%d hits=%d misses=%d",
		t.sizeInByte/MB, t.numberOfEntries, t.maxEntries, t.Hashfull()/10,
		t.Stats.Puts, t.Stats.Updates, t.Stats.Collisions, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}

func (t *Table) index(key position.Key) uint64 {
	return uint64(key) & t.hashKeyMask
}
