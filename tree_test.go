// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"testing"

	"github.com/cosnicolaou/huff/internal"
)

func TestBuild(t *testing.T) {
	for i, tc := range []struct {
		src    string
		tree   string
		leaves int
	}{
		{"", "EOS:1", 1},
		{"AAAAAAAAAA", "(EOS:1 0x41:10)", 2},
		// Equal weights are taken in the order they were queued.
		{"\x01\x02", "(EOS:1 (0x01:1 0x02:1))", 3},
		{"abracadabra", "(0x61:5 ((EOS:1 0x62:2) (0x72:2 (0x63:1 0x64:1))))", 6},
		{"hello world\n",
			"(((0x77:1 EOS:1) 0x6c:3) ((0x6f:2 (0x0a:1 0x20:1)) ((0x64:1 0x65:1) (0x68:1 0x72:1))))",
			10},
	} {
		tree := Build(Count([]byte(tc.src)))
		if got, want := tree.String(), tc.tree; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tree.Leaves(), tc.leaves; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tree.Weight(), uint64(len(tc.src)+1); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tree.IsEOSOnly(), len(tc.src) == 0; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestBuildStructure(t *testing.T) {
	for _, size := range []int{1, 2, 100, 64 * 1024} {
		tree := Build(Count(internal.GenPredictableRandomData(size)))
		for i, n := range tree.nodes {
			if n.isLeaf() {
				if n.right != invalidNodeValue {
					t.Errorf("%v: %v: leaf with a right child", size, i)
				}
				continue
			}
			// children precede their parents.
			if int(n.left) >= i || int(n.right) >= i {
				t.Errorf("%v: %v: children out of order: %v %v", size, i, n.left, n.right)
			}
			l, r := tree.nodes[n.left], tree.nodes[n.right]
			if got, want := n.weight, l.weight+r.weight; got != want {
				t.Errorf("%v: %v: got %v, want %v", size, i, got, want)
			}
		}
	}
}

func TestBuildDeterminism(t *testing.T) {
	data := internal.GenReproducibleRandomData(32 * 1024)
	ft := Count(data)
	a, b := Build(ft), Build(ft)
	if got, want := a.String(), b.String(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// A table rebuilt from its header yields the same tree.
	rt, err := DecodeHeader(EncodeHeader(ft))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Build(rt).String(), a.String(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
