/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command gorng prints pseudo-random samples drawn from a continuous
// distribution by inverse transform sampling.
//
// Settings come from defaults, an optional YAML or JSON file given by
// --config, GORNG_* environment variables and command line flags, in
// that order. Exit status is 0 on success, 1 when sampling fails and
// 2 when the input is rejected.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fentec-project/gorng/config"
	"github.com/fentec-project/gorng/internal"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const progName = "gorng"

// Version can be set with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

var log = logging.MustGetLogger(progName)

func startLogging(w io.Writer) {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatSpec := "%{level:-8s} %{module:-14s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// usageError marks errors caused by the command line, a config file
// or interactive answers.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var usageErr *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr),
		errors.Is(err, internal.ErrMalformedInput),
		errors.Is(err, internal.ErrMalformedParam),
		errors.Is(err, config.ErrUnsupportedFormat):
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(stdin, stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitCode(err)
	}

	return 0
}

func main() {
	startLogging(os.Stderr)
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}
