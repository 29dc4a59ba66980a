// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/dcrrand/entropy"
	"github.com/decred/dcrrand/reseed"
	"github.com/decred/dcrrand/rngcore"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to standard error and the
// write-end pipe of an initialized log rotator.  Standard output is reserved
// for generated data.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Loggers can not be used before the log rotator has been initialized with a
// log file.  This must be performed early during application startup by
// calling initLogRotator.
var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.  The backend must not be used before the log rotator has
	// been initialized, or data races and/or nil pointer dereferences will
	// occur.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log     = backendLog.Logger("RGEN")
	rngcLog = backendLog.Logger("RNGC")
	entrLog = backendLog.Logger("ENTR")
	rsedLog = backendLog.Logger("RSED")
)

// Initialize package-global logger variables.
func init() {
	rngcore.UseLogger(rngcLog)
	entropy.UseLogger(entrLog)
	reseed.UseLogger(rsedLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"RGEN": log,
	"RNGC": rngcLog,
	"ENTR": entrLog,
	"RSED": rsedLog,
}

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// setLogLevels sets the logging level for all subsystems.  It returns false
// when the level is not valid.
func setLogLevels(logLevel string) bool {
	level, ok := slog.LevelFromString(logLevel)
	if !ok {
		return false
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return true
}
