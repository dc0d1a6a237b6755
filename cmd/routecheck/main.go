// cmd/routecheck/main.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// routecheck reads a file of Field 15 route strings, one per line, and
// writes the parsed elements for each line as one JSON array per line to
// stdout.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/flightdata/atc-core/pkg/log"
	"github.com/flightdata/atc-core/pkg/route"
)

var (
	ErrNoInputFile = errors.New("no input file specified")
	ErrEmptyRoute  = errors.New("route line is empty")
)

func main() {
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, or error")
	logDir := flag.String("logdir", "", "directory for log files (default: platform config dir)")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Printf("usage: routecheck [-loglevel level] [-logdir dir] <route-file>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New(false, *logLevel, *logDir)

	if err := run(flag.Args()[0], lg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, lg *log.Logger, out *os.File) error {
	if path == "" {
		return ErrNoInputFile
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	enc := json.NewEncoder(w)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			lg.Warnf("%v", ErrEmptyRoute)
			continue
		}

		elements := route.Parse(line)
		if err := enc.Encode(elements); err != nil {
			lg.Errorf("failed to encode route %q: %v", line, err)
			return err
		}
	}
	return scanner.Err()
}
