// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/grailbio/base/file"
)

func openFileOrURL(ctx context.Context, name string) (io.Reader, int64, func(context.Context) error, error) {
	if strings.HasPrefix(name, "http") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, name, nil)
		if err != nil {
			return nil, 0, nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, 0, nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, 0, nil, fmt.Errorf("%v: %v", name, resp.Status)
		}
		return resp.Body,
			resp.ContentLength,
			func(context.Context) error {
				return resp.Body.Close()
			},
			nil
	}
	info, err := file.Stat(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	f, err := file.Open(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	return f.Reader(ctx), info.Size(), f.Close, nil
}

// readFileOrURL reads the entire contents of a local file, s3 path or url.
func readFileOrURL(ctx context.Context, name string) ([]byte, error) {
	rd, _, readerCleanup, err := openFileOrURL(ctx, name)
	if err != nil {
		return nil, err
	}
	defer readerCleanup(ctx)
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read: %v: %v", name, err)
	}
	return data, nil
}

func createFile(ctx context.Context, name string) (io.Writer, func(context.Context) error, error) {
	if len(name) == 0 {
		return os.Stdout,
			func(context.Context) error {
				return nil
			},
			nil
	}
	f, err := file.Create(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return f.Writer(ctx), f.Close, nil
}

func writeFile(ctx context.Context, name string, data []byte) error {
	wr, writerCleanup, err := createFile(ctx, name)
	if err != nil {
		return err
	}
	if _, err := wr.Write(data); err != nil {
		writerCleanup(ctx)
		return fmt.Errorf("failed to write: %v: %v", name, err)
	}
	return writerCleanup(ctx)
}
