// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"encoding/binary"
	"fmt"
)

// RecordSize is the size of each header record:
//
//	.value:8 = the byte value
//	.count:32 = its count, big endian
//
// There is one record per distinct byte value, in ascending order. The
// end-of-stream marker is never written and there is no terminator or
// record count.
const RecordSize = 5

// EncodeHeader returns the header records for ft.
func EncodeHeader(ft *FrequencyTable) []byte {
	buf := make([]byte, 0, ft.Distinct()*RecordSize)
	var rec [RecordSize]byte
	for _, e := range ft.Entries() {
		if e.Symbol.IsEOS() {
			continue
		}
		rec[0] = byte(e.Symbol)
		binary.BigEndian.PutUint32(rec[1:], e.Count)
		buf = append(buf, rec[:]...)
	}
	return buf
}

// DecodeHeader parses header records and returns the frequency table they
// describe with the end-of-stream marker restored. An empty header is
// valid and is what an empty input compresses to.
func DecodeHeader(buf []byte) (*FrequencyTable, error) {
	if r := len(buf) % RecordSize; r != 0 {
		return nil, &HeaderCorruptError{
			Offset: len(buf) - r,
			Reason: fmt.Sprintf("truncated record: %v of %v bytes", r, RecordSize),
		}
	}
	ft := NewFrequencyTable()
	prev := -1
	for off := 0; off < len(buf); off += RecordSize {
		v := int(buf[off])
		if v <= prev {
			reason := "record out of order"
			if v == prev {
				reason = "duplicate record"
			}
			return nil, &HeaderCorruptError{
				Offset: off,
				Reason: fmt.Sprintf("%v: 0x%02x follows 0x%02x", reason, v, prev),
			}
		}
		ft.Set(byte(v), binary.BigEndian.Uint32(buf[off+1:off+RecordSize]))
		prev = v
	}
	return ft, nil
}
