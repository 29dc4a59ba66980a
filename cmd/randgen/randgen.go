// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/dcrrand/chacha"
	"github.com/decred/dcrrand/entropy"
	"github.com/decred/dcrrand/internal/version"
	"github.com/decred/dcrrand/reseed"
	"github.com/decred/dcrrand/rngcore"
	"github.com/decred/dcrrand/xorshift"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// chunkSize is the number of bytes generated per write.
const chunkSize = 64 * 1024

var appName = strings.TrimSuffix(filepath.Base(os.Args[0]),
	filepath.Ext(os.Args[0]))

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if logRotator != nil {
		logRotator.Close()
	}
	os.Exit(1)
}

// seedBytes returns the seed for a generator with the given seed size from
// the configured hex seed or seed phrase.  It returns nil when neither is set.
func seedBytes(cfg *config, size int) ([]byte, error) {
	switch {
	case cfg.Seed != "":
		seed, err := hex.DecodeString(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("invalid hex seed: %w", err)
		}
		return seed, nil

	case cfg.SeedPhrase != "":
		seed := make([]byte, size)
		rngcore.ExpandSeed(seed, []byte(cfg.SeedPhrase))
		return seed, nil
	}
	return nil, nil
}

// newGenerator returns the configured generator.  The reseed function
// creates fresh generators of the same kind from an entropy source.
func newGenerator(cfg *config) (rngcore.Source, func(io.Reader) (rngcore.Source, error), error) {
	switch cfg.Generator {
	case "xorshift":
		reseedFn := func(r io.Reader) (rngcore.Source, error) {
			return xorshift.FromReader(r)
		}
		seed, err := seedBytes(cfg, xorshift.SeedSize)
		if err != nil {
			return nil, nil, err
		}
		if seed == nil {
			src, err := xorshift.FromEntropy()
			return src, reseedFn, err
		}
		src, err := xorshift.FromSeed(seed)
		return src, reseedFn, err
	}

	stream := cfg.Stream
	reseedFn := func(r io.Reader) (rngcore.Source, error) {
		var seed [chacha.SeedSize]byte
		if _, err := io.ReadFull(r, seed[:]); err != nil {
			return nil, err
		}
		return chacha.NewStream(seed, stream), nil
	}
	seed, err := seedBytes(cfg, chacha.SeedSize)
	if err != nil {
		return nil, nil, err
	}
	if seed == nil {
		src, err := reseedFn(entropy.NewChain())
		return src, reseedFn, err
	}
	if err := rngcore.CheckSeedLength(seed, chacha.SeedSize); err != nil {
		return nil, nil, err
	}
	return chacha.NewStream([chacha.SeedSize]byte(seed), stream), reseedFn, nil
}

// newSource returns the configured generator, wrapped in a reseeding
// generator when a reseed threshold is set.
func newSource(cfg *config) (rngcore.Source, error) {
	src, reseedFn, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Reseed == 0 {
		return src, nil
	}
	log.Infof("Reseeding %s generator every %d bytes", cfg.Generator,
		cfg.Reseed)
	return reseed.New(src, reseed.Config[rngcore.Source]{
		Threshold: cfg.Reseed,
		Reseed:    reseedFn,
		Policy:    reseed.FailClosed,
	}), nil
}

// writeBytes writes n bytes from src to w, hex encoded unless raw is set.
func writeBytes(w io.Writer, src rngcore.Source, n int, raw bool) error {
	out := w
	if !raw {
		out = hex.NewEncoder(w)
	}
	buf := make([]byte, chunkSize)
	for n > 0 {
		chunk := buf[:min(n, len(buf))]
		if _, err := src.Read(chunk); err != nil {
			return err
		}
		if _, err := out.Write(chunk); err != nil {
			return err
		}
		n -= len(chunk)
	}
	if !raw {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// writeSamples writes count samples from src to w, one per line.
func writeSamples(w io.Writer, src rngcore.Source, s sampler, count int) error {
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(w, s(src)); err != nil {
			return err
		}
	}
	return nil
}

// run generates the configured output to w.
func run(cfg *config, w io.Writer) error {
	var s sampler
	if cfg.Count > 0 {
		var err error
		s, err = newSampler(cfg.Dist, cfg.Params)
		if err != nil {
			return err
		}
	}

	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	log.Debugf("Using %s generator", cfg.Generator)

	bw := bufio.NewWriter(w)
	if cfg.Count > 0 {
		err = writeSamples(bw, src, s, cfg.Count)
	} else {
		err = writeBytes(bw, src, cfg.Bytes, cfg.Raw)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		fatalf("%v\n", err)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fatalf("%v\n", err)
		}
		defer logRotator.Close()
	}

	if cfg.Raw && cfg.Bytes > 0 && !cfg.Force &&
		term.IsTerminal(int(os.Stdout.Fd())) {

		fatalf("refusing to write raw bytes to a terminal (use --force)\n")
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("Generation failed: %v", err)
		fatalf("%v\n", err)
	}
}
