// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"strings"
	"testing"

	"github.com/cosnicolaou/huff/internal"
)

func codeStrings(ct *CodeTable) map[byte]string {
	out := map[byte]string{}
	for i := 0; i < 256; i++ {
		if c, ok := ct.Lookup(byte(i)); ok {
			out[byte(i)] = c.String()
		}
	}
	return out
}

func TestGenerate(t *testing.T) {
	for i, tc := range []struct {
		src   string
		codes map[byte]string
		eos   string
	}{
		{"", map[byte]string{}, ""},
		{"AAAAAAAAAA", map[byte]string{'A': "1"}, "0"},
		{"\x01\x02", map[byte]string{1: "10", 2: "11"}, "0"},
		{"abracadabra", map[byte]string{
			'a': "0", 'b': "101", 'r': "110", 'c': "1110", 'd': "1111"}, "100"},
		{"hello world\n", map[byte]string{
			'w': "000", 'l': "01", 'o': "100", '\n': "1010", ' ': "1011",
			'd': "1100", 'e': "1101", 'h': "1110", 'r': "1111"}, "001"},
	} {
		ct, eos := Generate(Build(Count([]byte(tc.src))))
		got := codeStrings(ct)
		if len(got) != len(tc.codes) {
			t.Errorf("%v: got %v, want %v", i, got, tc.codes)
		}
		for b, want := range tc.codes {
			if got[b] != want {
				t.Errorf("%v: %q: got %v, want %v", i, b, got[b], want)
			}
		}
		if got, want := eos.String(), tc.eos; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := ct.Len(), len(tc.codes); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func assertPrefixFree(t *testing.T, name string, ct *CodeTable, eos Code) {
	t.Helper()
	codes := []Code{eos}
	for i := 0; i < 256; i++ {
		if c, ok := ct.Lookup(byte(i)); ok {
			codes = append(codes, c)
		}
	}
	for i, a := range codes {
		for j, b := range codes {
			if i == j {
				continue
			}
			if a.HasPrefix(b) {
				t.Errorf("%v: %v is a prefix of %v", name, b, a)
			}
		}
	}
}

func TestPrefixFree(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"hello", []byte("hello world\n")},
		{"all", all},
		{"random", internal.GenReproducibleRandomData(10 * 1024)},
		{"skewed", internal.GenSkewedData(100*1024, 20)},
	} {
		ct, eos := Generate(Build(Count(tc.data)))
		assertPrefixFree(t, tc.name, ct, eos)
	}
}

func TestDeepCodes(t *testing.T) {
	// Weights that double at each step yield a maximally unbalanced tree.
	ft := NewFrequencyTable()
	for i := 0; i < 32; i++ {
		ft.Set(byte(i), 1<<i)
	}
	ct, eos := Generate(Build(ft))
	if got, want := eos.String(), strings.Repeat("1", 32); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 0; i < 32; i++ {
		c, ok := ct.Lookup(byte(i))
		if !ok {
			t.Fatalf("%v: missing code", i)
		}
		want := strings.Repeat("1", 31-i) + "0"
		if i == 0 {
			want = strings.Repeat("1", 31) + "0"
		}
		if got := c.String(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	assertPrefixFree(t, "doubling", ct, eos)
}

func TestCode(t *testing.T) {
	c := Code{1, 0, 1}
	if got, want := c.String(), "101"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !c.HasPrefix(Code{1, 0}) || !c.HasPrefix(nil) || !c.HasPrefix(c) {
		t.Errorf("missing prefix")
	}
	if c.HasPrefix(Code{0}) || c.HasPrefix(Code{1, 0, 1, 1}) {
		t.Errorf("unexpected prefix")
	}
	if got, want := Code(nil).String(), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
