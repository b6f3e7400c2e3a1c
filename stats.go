// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import "github.com/cosnicolaou/huff/internal/bitstream"

// SymbolStats describes a single symbol and the code assigned to it.
type SymbolStats struct {
	Symbol Symbol
	Count  uint32
	Code   Code
}

// Stats contains the information that can be derived from a header
// without access to the body.
type Stats struct {
	Symbols     []SymbolStats // In canonical order, EOS is last.
	HeaderSize  int
	InputSize   uint64 // Sum of the counts of all byte values.
	BodyBits    uint64 // Number of bits in the body, excluding padding.
	BodySize    uint64 // Size of the body in bytes.
	PaddingBits int
}

// Inspect rebuilds the codes described by header and returns statistics
// for them.
func Inspect(header []byte) (Stats, error) {
	ft, err := DecodeHeader(header)
	if err != nil {
		return Stats{}, err
	}
	ct, eos := Generate(Build(ft))
	stats := Stats{
		HeaderSize: len(header),
		Symbols:    make([]SymbolStats, 0, ft.Len()),
	}
	for _, e := range ft.Entries() {
		ss := SymbolStats{Symbol: e.Symbol, Count: e.Count, Code: eos}
		if !e.Symbol.IsEOS() {
			ss.Code, _ = ct.Lookup(byte(e.Symbol))
			stats.InputSize += uint64(e.Count)
		}
		stats.BodyBits += uint64(e.Count) * uint64(len(ss.Code))
		stats.Symbols = append(stats.Symbols, ss)
	}
	stats.PaddingBits = bitstream.PaddingBits(int(stats.BodyBits % 8))
	stats.BodySize = (stats.BodyBits + uint64(stats.PaddingBits)) / 8
	return stats, nil
}
