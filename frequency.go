// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import "fmt"

// A Symbol is either a byte value, 0-255, or the end-of-stream
// marker EOS. Symbols are uint16s since the alphabet has 257 members.
type Symbol uint16

// EOS is the synthetic end-of-stream symbol. It never occurs in the
// input and is always counted exactly once.
const EOS Symbol = 256

// IsEOS returns true if s is the end-of-stream marker.
func (s Symbol) IsEOS() bool {
	return s == EOS
}

func (s Symbol) String() string {
	if s.IsEOS() {
		return "EOS"
	}
	return fmt.Sprintf("0x%02x", uint8(s))
}

// Entry is a single symbol and its count.
type Entry struct {
	Symbol Symbol
	Count  uint32
}

// FrequencyTable records the number of occurrences of each byte value
// and always contains the end-of-stream marker with a count of 1.
// Entries are iterated in canonical order: ascending byte value, followed
// by EOS. Building a tree relies on this order.
type FrequencyTable struct {
	counts  [256]uint32
	present [256]bool
	n       int
}

// NewFrequencyTable returns a table containing only the end-of-stream
// marker.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{}
}

// Count returns the frequency table for src.
func Count(src []byte) *FrequencyTable {
	ft := NewFrequencyTable()
	for _, b := range src {
		ft.counts[b]++
		if !ft.present[b] {
			ft.present[b] = true
			ft.n++
		}
	}
	return ft
}

// Set sets the count for byte value b, adding an entry if needed.
func (ft *FrequencyTable) Set(b byte, count uint32) {
	if !ft.present[b] {
		ft.present[b] = true
		ft.n++
	}
	ft.counts[b] = count
}

// Get returns the count for s and whether s has an entry in the table.
func (ft *FrequencyTable) Get(s Symbol) (uint32, bool) {
	if s.IsEOS() {
		return 1, true
	}
	if s > EOS || !ft.present[s] {
		return 0, false
	}
	return ft.counts[s], true
}

// Distinct returns the number of distinct byte values in the table, the
// end-of-stream marker is not included.
func (ft *FrequencyTable) Distinct() int {
	return ft.n
}

// Len returns the number of entries in the table including the
// end-of-stream marker.
func (ft *FrequencyTable) Len() int {
	return ft.n + 1
}

// Entries returns the table's entries in canonical order.
func (ft *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, ft.Len())
	for i := range ft.counts {
		if ft.present[i] {
			entries = append(entries, Entry{Symbol: Symbol(i), Count: ft.counts[i]})
		}
	}
	return append(entries, Entry{Symbol: EOS, Count: 1})
}

// Equal returns true if ft and o contain the same entries.
func (ft *FrequencyTable) Equal(o *FrequencyTable) bool {
	return ft.present == o.present && ft.counts == o.counts
}
