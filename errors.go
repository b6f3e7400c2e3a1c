// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"errors"
	"fmt"
)

// A HeaderCorruptError is returned when a header artifact cannot be
// parsed into a frequency table.
type HeaderCorruptError struct {
	Offset int // byte offset of the offending record.
	Reason string
}

func (e *HeaderCorruptError) Error() string {
	return fmt.Sprintf("huff header corrupt at offset %v: %v", e.Offset, e.Reason)
}

// A MalformedStreamError is returned when a body ends before the
// end-of-stream code has been decoded.
type MalformedStreamError struct {
	BitsRead int // number of body bits consumed.
	Decoded  int // number of bytes decoded before the body ran out.
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("huff body malformed: no end-of-stream code after %v bits (%v bytes decoded)", e.BitsRead, e.Decoded)
}

// ErrInputTooLarge is returned by Compress for inputs whose byte counts
// may not fit in a header record.
var ErrInputTooLarge = errors.New("huff: input too large")
