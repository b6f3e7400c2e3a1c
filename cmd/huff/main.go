// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/cosnicolaou/huff"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/must"
	"github.com/sirupsen/logrus"
)

const (
	headerSuffix = ".huffh"
	bodySuffix   = ".huffb"
)

type compressFlags struct {
	Header      string `subcmd:"header,,'header file or s3 path, defaults to <input>.huffh'"`
	Body        string `subcmd:"body,,'body file or s3 path, defaults to <input>.huffb'"`
	ProgressBar bool   `subcmd:"progress,true,display a progress bar"`
	Verbose     bool   `subcmd:"verbose,false,verbose debug/trace information"`
}

type decompressFlags struct {
	Header      string `subcmd:"header,,'header file or s3 path, defaults to <input>.huffh'"`
	Body        string `subcmd:"body,,'body file or s3 path, defaults to <input>.huffb'"`
	OutputFile  string `subcmd:"output,,'output file or s3 path, omit for stdout'"`
	Lenient     bool   `subcmd:"lenient,false,'accept a body that ends without an end-of-stream code'"`
	ProgressBar bool   `subcmd:"progress,true,display a progress bar"`
	Verbose     bool   `subcmd:"verbose,false,verbose debug/trace information"`
}

type inspectFlags struct {
	Codes bool `subcmd:"codes,true,display the code assigned to each symbol"`
}

var cmdSet *subcmd.CommandSet

func flagSet(values interface{}) *subcmd.FlagSet {
	fs, err := subcmd.RegisterFlagStruct(values, nil, nil)
	must.Nil(err)
	return fs
}

func init() {
	compressCmd := subcmd.NewCommand("compress",
		flagSet(&compressFlags{}), compress, subcmd.ExactlyNumArguments(1))
	compressCmd.Document(`compress a file, s3 path or url into a header and a body.`, "<input>")

	decompressCmd := subcmd.NewCommand("decompress",
		flagSet(&decompressFlags{}), decompress, subcmd.ExactlyNumArguments(1))
	decompressCmd.Document(`decompress the header and body created by compress, <input> is the name of the originally compressed file.`, "<input>")

	inspectCmd := subcmd.NewCommand("inspect",
		flagSet(&inspectFlags{}), inspect, subcmd.AtLeastNArguments(1))
	inspectCmd.Document(`display the frequency and code tables described by one or more headers.`, "<header>...")

	cmdSet = subcmd.NewCommandSet(compressCmd, decompressCmd, inspectCmd)
	cmdSet.Document(`huff compresses and decompresses files using byte oriented Huffman coding.`)

	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func artifactNames(input, header, body string) (string, string, error) {
	if len(header) > 0 && len(body) > 0 {
		return header, body, nil
	}
	if strings.HasPrefix(input, "http") {
		return "", "", fmt.Errorf("please specify --header and --body for %v", input)
	}
	if len(header) == 0 {
		header = input + headerSuffix
	}
	if len(body) == 0 {
		body = input + bodySuffix
	}
	return header, body, nil
}

func compress(ctx context.Context, values interface{}, args []string) (returnErr error) {
	cl := values.(*compressFlags)
	ctx, cancel := context.WithCancel(ctx)
	cmdutil.HandleSignals(cancel, os.Interrupt)
	log := newLogger(cl.Verbose)

	input := args[0]
	headerFile, bodyFile, err := artifactNames(input, cl.Header, cl.Body)
	if err != nil {
		return err
	}

	src, err := readFileOrURL(ctx, input)
	if err != nil {
		return err
	}

	opts := []huff.Option{huff.WithLogger(log)}
	if cl.ProgressBar {
		wr, done := progressBar(false, int64(len(src)))
		defer done()
		opts = append(opts, huff.WithProgress(wr))
	}

	header, body, err := huff.Compress(src, opts...)
	if err != nil {
		return fmt.Errorf("%v: %w", input, err)
	}
	if err := writeFile(ctx, headerFile, header); err != nil {
		return err
	}
	if err := writeFile(ctx, bodyFile, body); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":  input,
		"header": headerFile,
		"body":   bodyFile,
	}).Infof("compressed %v bytes to %v bytes", len(src), len(header)+len(body))
	return nil
}

func decompress(ctx context.Context, values interface{}, args []string) (returnErr error) {
	cl := values.(*decompressFlags)
	ctx, cancel := context.WithCancel(ctx)
	cmdutil.HandleSignals(cancel, os.Interrupt)
	log := newLogger(cl.Verbose)

	headerFile, bodyFile, err := artifactNames(args[0], cl.Header, cl.Body)
	if err != nil {
		return err
	}
	header, err := readFileOrURL(ctx, headerFile)
	if err != nil {
		return err
	}
	body, err := readFileOrURL(ctx, bodyFile)
	if err != nil {
		return err
	}

	wr, writerCleanup, err := createFile(ctx, cl.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := writerCleanup(ctx); err != nil {
			log.Errorf("writer cleanup: %v", err)
			if returnErr == nil {
				returnErr = err
			}
		}
	}()

	opts := []huff.Option{
		huff.WithLogger(log),
		huff.LenientTruncation(cl.Lenient),
	}
	if cl.ProgressBar {
		pr, done := progressBar(len(cl.OutputFile) == 0, int64(len(body)))
		defer done()
		opts = append(opts, huff.WithProgress(pr))
	}

	out, err := huff.Decompress(header, body, opts...)
	if err != nil {
		return fmt.Errorf("%v: %w", bodyFile, err)
	}
	if _, err := wr.Write(out); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"header": headerFile,
		"body":   bodyFile,
	}).Debugf("decompressed %v bytes", len(out))
	return nil
}
