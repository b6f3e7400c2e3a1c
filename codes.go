// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import "strings"

// A Code is the sequence of branches, 0 for left and 1 for right, taken
// from the root of a tree to one of its leaves. The code for the sole
// leaf of a single node tree has zero length.
type Code []uint8

func (c Code) String() string {
	var out strings.Builder
	out.Grow(len(c))
	for _, b := range c {
		out.WriteByte('0' + b)
	}
	return out.String()
}

// HasPrefix returns true if p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if len(p) > len(c) {
		return false
	}
	for i := range p {
		if c[i] != p[i] {
			return false
		}
	}
	return true
}

// CodeTable maps byte values to their codes. The end-of-stream code is
// not stored in the table.
type CodeTable struct {
	codes   [256]Code
	present [256]bool
}

// Lookup returns the code for b and whether b has one.
func (ct *CodeTable) Lookup(b byte) (Code, bool) {
	return ct.codes[b], ct.present[b]
}

// Len returns the number of byte values with a code.
func (ct *CodeTable) Len() int {
	n := 0
	for _, p := range ct.present {
		if p {
			n++
		}
	}
	return n
}

// Generate walks t depth first and returns the code for every byte value
// leaf as well as the code for the end-of-stream leaf.
func Generate(t *Tree) (*CodeTable, Code) {
	ct := &CodeTable{}
	var eos Code
	path := make(Code, 0, len(t.nodes))
	var walk func(idx uint16)
	walk = func(idx uint16) {
		n := &t.nodes[idx]
		if n.isLeaf() {
			code := make(Code, len(path))
			copy(code, path)
			if n.symbol.IsEOS() {
				eos = code
				return
			}
			ct.codes[n.symbol] = code
			ct.present[n.symbol] = true
			return
		}
		path = append(path, 0)
		walk(n.left)
		path[len(path)-1] = 1
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(t.root())
	return ct, eos
}
