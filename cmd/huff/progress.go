// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/cosnicolaou/huff"
	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"
)

// progressBar returns a function that renders huff.Progress updates as
// a progress bar and a function to be called once all updates have been
// delivered. No bar is displayed when the output is written to a
// terminal on stdout.
func progressBar(toStdout bool, size int64) (func(huff.Progress), func()) {
	progressBarWr := os.Stdout
	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	if toStdout && isTTY {
		return nil, func() {}
	}
	if !isTTY || toStdout {
		progressBarWr = os.Stderr
	}
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetBytes64(size),
		progressbar.OptionSetWriter(progressBarWr),
		progressbar.OptionSetPredictTime(true))
	bar.RenderBlank()
	last := 0
	update := func(p huff.Progress) {
		if p.Done > last {
			bar.Add(p.Done - last)
			last = p.Done
		}
	}
	return update, func() {
		fmt.Fprintf(progressBarWr, "\n")
	}
}
