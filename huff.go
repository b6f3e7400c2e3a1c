// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package huff implements byte oriented Huffman compression. Compressing
// an input produces two artifacts: a header that records the count of
// every byte value present in the input and a body that contains the
// Huffman code for every input byte followed by the code for a synthetic
// end-of-stream symbol. The tree used to generate the codes is never
// stored, instead the decompressor rebuilds it from the header, and hence
// the tree construction must be deterministic; see Build.
//
// The header is a sequence of 5 byte records, see RecordSize, and the body
// is a bitstream packed most significant bit first with the final byte
// padded with zero bits.
package huff

import (
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// progressInterval is the number of bytes processed between progress
// updates.
const progressInterval = 1 << 20

type options struct {
	log      logrus.FieldLogger
	progress func(Progress)
	lenient  bool
}

// Option represents an option to Compress and Decompress.
type Option func(o *options)

// WithLogger sets the logger used to record debug information. By default
// nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithProgress requests that progress updates be delivered to fn. fn is
// called synchronously and should return promptly.
func WithProgress(fn func(Progress)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// LenientTruncation requests that Decompress treat a body that ends
// before the end-of-stream code as ending at that point rather than
// returning a MalformedStreamError.
func LenientTruncation(v bool) Option {
	return func(o *options) {
		o.lenient = v
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	return o
}

// Phase identifies the stage of compression or decompression that
// a Progress update refers to.
type Phase int

const (
	Packing Phase = iota
	Unpacking
)

func (p Phase) String() string {
	switch p {
	case Packing:
		return "packing"
	case Unpacking:
		return "unpacking"
	}
	return "unknown"
}

// Progress is used to report the progress of compression or
// decompression. Done and Total are in bytes of the input being consumed,
// that is, the source for Packing and the body for Unpacking.
type Progress struct {
	Phase    Phase
	Done     int
	Total    int
	Duration time.Duration
}

func (o *options) reporter(phase Phase, total int, start time.Time) func(int) {
	if o.progress == nil {
		return nil
	}
	return func(done int) {
		o.progress(Progress{
			Phase:    phase,
			Done:     done,
			Total:    total,
			Duration: time.Since(start),
		})
	}
}

// Compress returns the header and body for src.
func Compress(src []byte, opts ...Option) (header, body []byte, err error) {
	o := newOptions(opts)
	if uint64(len(src)) > math.MaxUint32 {
		return nil, nil, ErrInputTooLarge
	}
	start := time.Now()
	ft := Count(src)
	tree := Build(ft)
	ct, eos := Generate(tree)
	header = EncodeHeader(ft)
	body, bits, err := pack(ct, eos, src, o.reporter(Packing, len(src), start))
	if err != nil {
		return nil, nil, err
	}
	o.log.WithFields(logrus.Fields{
		"input":    len(src),
		"distinct": ft.Distinct(),
		"header":   len(header),
		"body":     len(body),
		"bits":     bits,
		"eos":      eos.String(),
		"duration": time.Since(start),
	}).Debug("compressed")
	return header, body, nil
}

// Decompress returns the original input given its header and body.
func Decompress(header, body []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	start := time.Now()
	ft, err := DecodeHeader(header)
	if err != nil {
		return nil, err
	}
	tree := Build(ft)
	uopts := []UnpackOption{UnpackLenient(o.lenient)}
	report := o.reporter(Unpacking, len(body), start)
	if report != nil {
		uopts = append(uopts, unpackProgress(report))
	}
	out, err := Unpack(tree, body, uopts...)
	if err != nil {
		return nil, err
	}
	if report != nil {
		report(len(body))
	}
	o.log.WithFields(logrus.Fields{
		"header":   len(header),
		"distinct": ft.Distinct(),
		"body":     len(body),
		"output":   len(out),
		"duration": time.Since(start),
	}).Debug("decompressed")
	return out, nil
}
