// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"fmt"

	"github.com/cosnicolaou/huff/internal/bitstream"
)

// BodyBits returns the number of bits needed to encode src, including
// the end-of-stream code, using the supplied codes.
func BodyBits(ct *CodeTable, eos Code, src []byte) (int, error) {
	n := len(eos)
	for i, b := range src {
		code, ok := ct.Lookup(b)
		if !ok {
			return 0, fmt.Errorf("no code for byte 0x%02x at offset %v", b, i)
		}
		n += len(code)
	}
	return n, nil
}

// Pack returns the body for src: the code for every byte in src followed
// by the end-of-stream code, packed most significant bit first. The final
// byte is padded with zero bits.
func Pack(ct *CodeTable, eos Code, src []byte) ([]byte, error) {
	body, _, err := pack(ct, eos, src, nil)
	return body, err
}

func pack(ct *CodeTable, eos Code, src []byte, progress func(int)) ([]byte, int, error) {
	// The body is rarely larger than the input.
	bw := bitstream.NewWriter(len(src) + 1)
	for i, b := range src {
		code, ok := ct.Lookup(b)
		if !ok {
			return nil, 0, fmt.Errorf("no code for byte 0x%02x at offset %v", b, i)
		}
		if err := bw.Append(code); err != nil {
			return nil, 0, err
		}
		if progress != nil && (i+1)%progressInterval == 0 {
			progress(i + 1)
		}
	}
	if err := bw.Append(eos); err != nil {
		return nil, 0, err
	}
	if progress != nil {
		progress(len(src))
	}
	return bw.Data()
}
