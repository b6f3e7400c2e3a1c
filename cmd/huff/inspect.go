// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"github.com/cosnicolaou/huff"
)

func inspectFile(ctx context.Context, name string, codes bool) error {
	header, err := readFileOrURL(ctx, name)
	if err != nil {
		return err
	}
	stats, err := huff.Inspect(header)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	fmt.Printf("=== %v ===\n", name)
	if codes {
		fmt.Printf("Symbol,        Count, Code\n")
		for _, s := range stats.Symbols {
			fmt.Printf("%6v : % 12d - %v\n", s.Symbol, s.Count, s.Code)
		}
	}
	fmt.Printf("Symbols              : %v\n", len(stats.Symbols))
	fmt.Printf("Header size          : %v\n", stats.HeaderSize)
	fmt.Printf("Input size           : %v\n", stats.InputSize)
	fmt.Printf("Body bits            : %v (%v padding)\n", stats.BodyBits, stats.PaddingBits)
	fmt.Printf("Body size            : %v\n", stats.BodySize)
	return nil
}

func inspect(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*inspectFlags)
	ctx, cancel := context.WithCancel(ctx)
	cmdutil.HandleSignals(cancel, os.Interrupt)
	errs := errors.M{}
	for _, arg := range args {
		errs.Append(inspectFile(ctx, arg, cl.Codes))
	}
	return errs.Err()
}
