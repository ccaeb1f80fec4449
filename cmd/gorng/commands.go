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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fentec-project/gorng/config"
	"github.com/fentec-project/gorng/data"
	"github.com/fentec-project/gorng/internal"
	"github.com/fentec-project/gorng/sample"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      progName,
		Usage:     "draw samples from a continuous distribution",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     newFlags(),
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{err: err}
		},
		// exit codes are mapped by run
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(ctx, cmd, stdin, stdout)
		},
	}
}

func newFlags() []cli.Flag {
	def := config.Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML or JSON configuration file",
		},
		&cli.StringFlag{
			Name:    "distribution",
			Aliases: []string{"d"},
			Usage: fmt.Sprintf("one of %s, %s, %s, %s, %s",
				config.Uniform, config.Normal, config.StandardNormal, config.ChiSquare, config.Exponential),
			Value: def.Distribution,
		},
		&cli.IntFlag{
			Name:    "accuracy",
			Aliases: []string{"a"},
			Usage:   "samples are multiples of 10^-accuracy",
			Value:   int64(def.Accuracy),
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "samples per stream",
			Value:   int64(def.Count),
		},
		&cli.IntFlag{
			Name:  "streams",
			Usage: "independent streams sampled concurrently",
			Value: int64(def.Streams),
		},
		&cli.IntFlag{
			Name:  "seed",
			Usage: "seed of the first stream, 0 draws one from system entropy",
		},
		&cli.FloatFlag{
			Name:  "tolerance",
			Usage: "bracket width at which the solver stops",
			Value: def.Tolerance,
		},
		&cli.FloatFlag{Name: "lb", Usage: "uniform lower bound", Value: def.Params.Lower},
		&cli.FloatFlag{Name: "rb", Usage: "uniform upper bound", Value: def.Params.Upper},
		&cli.FloatFlag{Name: "mu", Usage: "normal mean", Value: def.Params.Mu},
		&cli.FloatFlag{Name: "sigma", Usage: "normal standard deviation", Value: def.Params.Sigma},
		&cli.FloatFlag{Name: "dof", Usage: "chi-square degrees of freedom", Value: def.Params.DoF},
		&cli.FloatFlag{Name: "lambda", Usage: "exponential rate", Value: def.Params.Lambda},
		&cli.BoolFlag{
			Name:  "keystream",
			Usage: "use the salsa20 keystream bit source",
		},
		&cli.BoolFlag{
			Name:  "entropy",
			Usage: "read bits from system entropy, ignoring --seed",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print mean and variance after each stream",
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "ask for distribution, accuracy and count on stdin",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug messages",
		},
	}
}

// applyFlags overrides the settings of cfg with the flags given on
// the command line. Flags left at their default do not override a
// value read from a file or the environment.
func applyFlags(cmd *cli.Command, cfg config.Config) config.Config {
	if cmd.IsSet("distribution") {
		cfg.Distribution = cmd.String("distribution")
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"accuracy", &cfg.Accuracy},
		{"count", &cfg.Count},
		{"streams", &cfg.Streams},
	}
	for _, f := range ints {
		if cmd.IsSet(f.name) {
			*f.dst = int(cmd.Int(f.name))
		}
	}
	floats := []struct {
		name string
		dst  *float64
	}{
		{"tolerance", &cfg.Tolerance},
		{"lb", &cfg.Params.Lower},
		{"rb", &cfg.Params.Upper},
		{"mu", &cfg.Params.Mu},
		{"sigma", &cfg.Params.Sigma},
		{"dof", &cfg.Params.DoF},
		{"lambda", &cfg.Params.Lambda},
	}
	for _, f := range floats {
		if cmd.IsSet(f.name) {
			*f.dst = cmd.Float(f.name)
		}
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Int("seed")
	}
	if cmd.IsSet("keystream") {
		cfg.KeyStream = cmd.Bool("keystream")
	}
	if cmd.IsSet("entropy") {
		cfg.Entropy = cmd.Bool("entropy")
	}

	return cfg
}

func generate(ctx context.Context, cmd *cli.Command, stdin io.Reader, stdout io.Writer) error {
	if cmd.Bool("verbose") {
		logging.SetLevel(logging.DEBUG, "")
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return &usageError{err: err}
	}
	cfg = applyFlags(cmd, cfg)

	if cmd.Bool("interactive") {
		cfg, err = prompt(stdin, stdout, cfg, cmd.IsSet("dof"))
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}

	cfg, err = cfg.WithSeed()
	if err != nil {
		return err
	}
	log.Infof("seed %d", cfg.Seed)

	samplers, err := cfg.BuildSamplers()
	if err != nil {
		return err
	}
	streams, err := sample.GenerateStreams(ctx, cfg.Count, samplers...)
	if err != nil {
		return err
	}
	m, err := data.NewMatrixFromSlices(streams)
	if err != nil {
		return err
	}

	return printMatrix(stdout, m, cmd.Bool("stats"))
}

// printMatrix writes one comma separated line per row, followed by
// the row mean and variance if stats is set.
func printMatrix(w io.Writer, m data.Matrix, stats bool) error {
	for _, row := range m {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
		if !stats {
			continue
		}
		if _, err := fmt.Fprintf(w, "# mean=%g variance=%g\n", row.Mean(), row.Variance()); err != nil {
			return err
		}
	}

	return nil
}

// prompt asks for the distribution name, the accuracy level and the
// number of samples. An empty answer keeps the value in cfg. A
// chi-square distribution has 2 degrees of freedom unless dofSet.
func prompt(r io.Reader, w io.Writer, cfg config.Config, dofSet bool) (config.Config, error) {
	in := bufio.NewScanner(r)
	ask := func(question string) (string, error) {
		fmt.Fprint(w, question)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", err
			}
			return "", &usageError{err: errors.Wrap(internal.ErrMalformedInput, "unexpected end of input")}
		}
		return strings.TrimSpace(in.Text()), nil
	}
	askInt := func(question string, dst *int) error {
		answer, err := ask(question)
		if err != nil || answer == "" {
			return err
		}
		v, err := strconv.Atoi(answer)
		if err != nil {
			return &usageError{err: errors.Wrapf(internal.ErrMalformedInput, "%q is not a number", answer)}
		}
		*dst = v
		return nil
	}

	fmt.Fprintln(w, "Starting random number generator!")
	name, err := ask("Type of distribution (Uniform, Standard Normal, Normal, Chi-Square, Exponential): ")
	if err != nil {
		return cfg, err
	}
	if name != "" {
		cfg.Distribution = name
	}
	if config.NormalizeName(cfg.Distribution) == config.ChiSquare && !dofSet {
		cfg.Params.DoF = 2
	}

	err = askInt(fmt.Sprintf("Level of accuracy (%d~%d): ", sample.MinAccuracyLevel, sample.MaxAccuracyLevel), &cfg.Accuracy)
	if err != nil {
		return cfg, err
	}
	err = askInt(fmt.Sprintf("Number of random numbers (1~%d): ", config.MaxCount), &cfg.Count)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}
