// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"io"

	"github.com/cosnicolaou/huff/internal/bitstream"
)

type unpackOpts struct {
	lenient  bool
	progress func(int)
}

// UnpackOption represents an option to Unpack.
type UnpackOption func(o *unpackOpts)

// UnpackLenient controls how a body that ends before the end-of-stream
// code is handled. By default a MalformedStreamError is returned, when
// lenient is true the bytes decoded so far are returned instead.
func UnpackLenient(lenient bool) UnpackOption {
	return func(o *unpackOpts) {
		o.lenient = lenient
	}
}

func unpackProgress(fn func(int)) UnpackOption {
	return func(o *unpackOpts) {
		o.progress = fn
	}
}

// Unpack decodes body by walking t from its root, one bit at a time, with
// 0 selecting the left child and 1 the right. A byte is emitted whenever
// a leaf is reached and the walk restarts at the root. Decoding stops at
// the end-of-stream leaf and any bits that follow it, including the
// padding in the final byte, are ignored. A tree that consists of only
// the end-of-stream leaf always decodes to an empty result.
func Unpack(t *Tree, body []byte, opts ...UnpackOption) ([]byte, error) {
	var o unpackOpts
	for _, fn := range opts {
		fn(&o)
	}
	if t.IsEOSOnly() {
		return []byte{}, nil
	}
	out := make([]byte, 0, len(body))
	br := bitstream.NewReader(body)
	root := t.root()
	cur := root
	for {
		bit, err := br.ReadBit()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			if o.lenient {
				return out, nil
			}
			return nil, &MalformedStreamError{
				BitsRead: br.BitsRead(),
				Decoded:  len(out),
			}
		}
		n := &t.nodes[cur]
		if bit == 0 {
			cur = n.left
		} else {
			cur = n.right
		}
		n = &t.nodes[cur]
		if !n.isLeaf() {
			continue
		}
		if n.symbol.IsEOS() {
			return out, nil
		}
		out = append(out, byte(n.symbol))
		cur = root
		if o.progress != nil && len(out)%progressInterval == 0 {
			o.progress(br.BitsRead() / 8)
		}
	}
}
