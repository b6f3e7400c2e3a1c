// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.
package bitstream

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
)

// NOTE: bitstreams are created by packing 8 bits into a byte with
//       the most significant bit being the first bit, that is, the bitstream
//       can be visualized as flowing from left to right.

// Writer can be used to create and append to a bitstream.
type Writer struct {
	buf       *bytes.Buffer
	bw        *bitio.Writer
	lenInBits int
}

// NewWriter returns a Writer whose underlying buffer is sized using the
// supplied hint, in bytes.
func NewWriter(sizeHint int) *Writer {
	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))
	return &Writer{
		buf: buf,
		bw:  bitio.NewWriter(buf),
	}
}

// Append appends bits, each of which must be 0 or 1, to the bitstream.
// Appending zero bits is a no-op.
func (w *Writer) Append(bits []uint8) error {
	for len(bits) > 0 {
		n := len(bits)
		if n > 64 {
			n = 64
		}
		var v uint64
		for _, b := range bits[:n] {
			v = v<<1 | uint64(b&0x1)
		}
		if err := w.bw.WriteBits(v, uint8(n)); err != nil {
			return err
		}
		w.lenInBits += n
		bits = bits[n:]
	}
	return nil
}

// Len returns the number of bits appended so far.
func (w *Writer) Len() int {
	return w.lenInBits
}

// Data flushes the bitstream, padding the final byte with zero bits, and
// returns the packed bytes and the number of bits appended. The Writer
// must not be used after calling Data.
func (w *Writer) Data() ([]byte, int, error) {
	if err := w.bw.Close(); err != nil {
		return nil, 0, err
	}
	return w.buf.Bytes(), w.lenInBits, nil
}

// PaddingBits returns the number of filler bits needed to pad
// a bitstream of the specified length to a byte boundary.
func PaddingBits(lenInBits int) int {
	if r := lenInBits % 8; r != 0 {
		return 8 - r
	}
	return 0
}

// Reader returns the bits of a packed bitstream one at a time.
type Reader struct {
	br   *bitio.Reader
	read int
}

// NewReader returns a Reader for data.
func NewReader(data []byte) *Reader {
	return &Reader{br: bitio.NewReader(bytes.NewReader(data))}
}

// ReadBit returns the next bit, as 0 or 1, or io.EOF once every bit
// has been read.
func (r *Reader) ReadBit() (uint8, error) {
	b, err := r.br.ReadBool()
	if err != nil {
		return 0, err
	}
	r.read++
	if b {
		return 1, nil
	}
	return 0, nil
}

// BitsRead returns the number of bits returned by ReadBit.
func (r *Reader) BitsRead() int {
	return r.read
}

// Format renders the first lenInBits bits of buf as 0s and 1s with
// a space between each byte.
func Format(buf []byte, lenInBits int) string {
	if max := len(buf) * 8; lenInBits > max || lenInBits < 0 {
		lenInBits = max
	}
	var out strings.Builder
	for i := 0; i < lenInBits; i++ {
		if i > 0 && i%8 == 0 {
			out.WriteByte(' ')
		}
		out.WriteByte('0' + (buf[i/8]>>(7-i%8))&0x1)
	}
	return out.String()
}
