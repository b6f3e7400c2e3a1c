// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"
	"math/rand"
	"os"
	"time"
)

// Seed for the pseudorandom generator used by GenPredictableRandomData.
const fixdRandSeed = 0x1234

var randSource rand.Source

func init() {
	randSeed := time.Now().UnixNano()
	fmt.Printf("rand seed for GenReproducibleRandomData: %v\n", randSeed)
	randSource = rand.NewSource(randSeed)
}

// GenPredictableRandomData generates random data starting with a fixed
// known seed.
func GenPredictableRandomData(size int) []byte {
	gen := rand.New(rand.NewSource(fixdRandSeed))
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// GenReproducibleRandomData uses the random # seed printed out by this
// file's init function.
func GenReproducibleRandomData(size int) []byte {
	gen := rand.New(randSource)
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// GenSkewedData generates data drawn from an alphabet of the specified
// size where each symbol is twice as likely as its successor, so that
// the resulting codes have a wide range of lengths.
func GenSkewedData(size, alphabet int) []byte {
	gen := rand.New(rand.NewSource(fixdRandSeed))
	out := make([]byte, size)
	for i := range out {
		s := 0
		for s < alphabet-1 && gen.Intn(2) == 1 {
			s++
		}
		out[i] = byte(s)
	}
	return out
}

// CreateSourceFile writes data to filename for use as the input
// to the huff command.
func CreateSourceFile(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0660); err != nil {
		return fmt.Errorf("write file: %v: %v", filename, err)
	}
	return nil
}

// FirstN returns at most the first n bytes of b.
func FirstN(n int, b []byte) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
