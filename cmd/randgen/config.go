// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultGenerator = "chacha"
	defaultLogLevel  = "warn"
)

var generators = []string{"chacha", "xorshift"}

type config struct {
	Bytes       int       `short:"n" long:"bytes" description:"number of random bytes to write"`
	Count       int       `short:"c" long:"count" description:"number of samples to write, one per line (requires -d)"`
	Dist        string    `short:"d" long:"dist" description:"distribution to sample (one of: uniform, float, normal, lognormal, exp, gamma, chisquared, studentt, fisherf, bernoulli, weighted, alnum, rune)"`
	Params      []float64 `short:"p" long:"param" description:"distribution parameter in order; may be specified multiple times"`
	Generator   string    `short:"g" long:"generator" description:"generator (one of: chacha, xorshift)"`
	Seed        string    `short:"s" long:"seed" description:"hex-encoded seed of the exact generator seed size (default: seed from system entropy)"`
	SeedPhrase  string    `long:"seedphrase" description:"derive the seed from an arbitrary phrase"`
	Stream      uint64    `long:"stream" description:"ChaCha stream number"`
	Reseed      int64     `short:"r" long:"reseed" description:"reseed from system entropy after this many bytes of output"`
	Raw         bool      `long:"raw" description:"write raw bytes instead of hex"`
	Force       bool      `short:"f" long:"force" description:"write raw bytes even when standard output is a terminal"`
	LogFile     string    `long:"logfile" description:"also write log output to this file, rotated by size"`
	DebugLevel  string    `long:"debuglevel" description:"logging level (trace, debug, info, warn, error, critical, off)"`
	ShowVersion bool      `short:"V" long:"version" description:"display version information and exit"`
}

// loadConfig parses the command line arguments into a validated config.  A
// *flags.Error of type flags.ErrHelp is returned when help was requested.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Generator:  defaultGenerator,
		DebugLevel: defaultLogLevel,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remaining) != 0 {
		return nil, fmt.Errorf("unexpected arguments: %s",
			strings.Join(remaining, " "))
	}
	if cfg.ShowVersion {
		return &cfg, nil
	}

	switch {
	case cfg.Bytes < 0 || cfg.Count < 0:
		return nil, errors.New("-n and -c must not be negative")
	case (cfg.Bytes > 0) == (cfg.Count > 0):
		return nil, errors.New("exactly one of -n or -c must be specified")
	case cfg.Count > 0 && cfg.Dist == "":
		return nil, errors.New("-c requires a distribution (-d)")
	case cfg.Bytes > 0 && cfg.Dist != "":
		return nil, errors.New("-d may only be used with -c")
	case cfg.Seed != "" && cfg.SeedPhrase != "":
		return nil, errors.New("--seed and --seedphrase may not be used " +
			"together")
	case !slices.Contains(generators, cfg.Generator):
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	case cfg.Stream != 0 && cfg.Generator != "chacha":
		return nil, errors.New("--stream is only supported by the chacha " +
			"generator")
	case cfg.Reseed < 0:
		return nil, errors.New("--reseed must not be negative")
	}
	if !setLogLevels(cfg.DebugLevel) {
		return nil, fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	return &cfg, nil
}
