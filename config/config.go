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

// Package config holds the settings of a sampling run and builds the
// distribution, solver and samplers they describe.
//
// Settings are layered: Default values, then an optional YAML or JSON
// file, then GORNG_* environment variables. Command line flags are
// applied on top by the caller.
package config

import (
	"strings"

	"github.com/fentec-project/gorng/dist"
	"github.com/fentec-project/gorng/internal"
	"github.com/fentec-project/gorng/sample"
	"github.com/fentec-project/gorng/solver"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("gorng/config")

const (
	// MaxCount is the largest number of samples per stream.
	MaxCount = 1000

	// MaxStreams is the largest number of concurrent streams.
	MaxStreams = 64
)

// Distribution names understood by BuildDistribution.
const (
	Uniform        = "uniform"
	Normal         = "normal"
	StandardNormal = "standard-normal"
	ChiSquare      = "chi-square"
	Exponential    = "exponential"
)

// ErrUnknownDistribution is returned for a distribution name that is
// not one of the names above.
var ErrUnknownDistribution = errors.Wrap(internal.ErrMalformedInput, "unknown distribution")

// Params are the parameters of every supported distribution; each
// distribution reads only its own.
type Params struct {
	Lower  float64 `koanf:"lb" env:"LB"`
	Upper  float64 `koanf:"rb" env:"RB"`
	Mu     float64 `koanf:"mu" env:"MU"`
	Sigma  float64 `koanf:"sigma" env:"SIGMA"`
	DoF    float64 `koanf:"dof" env:"DOF"`
	Lambda float64 `koanf:"lambda" env:"LAMBDA"`
}

// Config describes one sampling run.
type Config struct {
	Distribution string  `koanf:"distribution" env:"DISTRIBUTION"`
	Params       Params  `koanf:"params"`
	Accuracy     int     `koanf:"accuracy" env:"ACCURACY"`
	Count        int     `koanf:"count" env:"COUNT"`
	Streams      int     `koanf:"streams" env:"STREAMS"`
	Tolerance    float64 `koanf:"tolerance" env:"TOLERANCE"`

	// Seed 0 means a seed is drawn from system entropy.
	Seed int64 `koanf:"seed" env:"SEED"`

	// KeyStream selects the salsa20 keystream bit source instead of
	// the math/rand one.
	KeyStream bool `koanf:"keystream" env:"KEYSTREAM"`

	// Entropy selects bits read from system entropy. Such streams
	// cannot be reproduced and Seed is ignored.
	Entropy bool `koanf:"entropy" env:"ENTROPY"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Distribution: Uniform,
		Params: Params{
			Lower:  0,
			Upper:  1,
			Mu:     0,
			Sigma:  1,
			DoF:    1,
			Lambda: 1,
		},
		Accuracy:  3,
		Count:     10,
		Streams:   1,
		Tolerance: 1e-8,
	}
}

// NormalizeName lower-cases name and turns spaces and underscores
// into dashes, so that "Standard Normal" matches StandardNormal.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(name)
}

// Validate checks the ranges of all settings, including the
// distribution parameters.
func (c Config) Validate() error {
	if _, err := c.BuildDistribution(); err != nil {
		return err
	}
	if c.Accuracy < sample.MinAccuracyLevel || c.Accuracy > sample.MaxAccuracyLevel {
		return errors.Wrapf(sample.ErrInvalidAccuracy, "accuracy should be %d to %d, got %d",
			sample.MinAccuracyLevel, sample.MaxAccuracyLevel, c.Accuracy)
	}
	if c.Count < 1 || c.Count > MaxCount {
		return errors.Wrapf(internal.ErrMalformedInput, "count should be 1 to %d, got %d", MaxCount, c.Count)
	}
	if c.Streams < 1 || c.Streams > MaxStreams {
		return errors.Wrapf(internal.ErrMalformedInput, "streams should be 1 to %d, got %d", MaxStreams, c.Streams)
	}
	if _, err := c.BuildSolver(); err != nil {
		return err
	}
	if c.KeyStream && c.Entropy {
		return errors.Wrap(internal.ErrMalformedInput, "keystream and entropy bit sources are exclusive")
	}

	return nil
}

// BuildDistribution returns the configured distribution.
// A chi-square distribution with 2 degrees of freedom is returned as
// the identical Exponential(0.5), whose inverse CDF has a closed form.
func (c Config) BuildDistribution() (dist.Distribution, error) {
	p := c.Params
	switch NormalizeName(c.Distribution) {
	case Uniform:
		return dist.NewUniform(p.Lower, p.Upper)
	case Normal:
		return dist.NewNormal(p.Mu, p.Sigma)
	case StandardNormal, "std-normal":
		return dist.StdNormal, nil
	case ChiSquare, "chisquare", "chi2":
		if p.DoF == 2 {
			return dist.NewExponential(0.5)
		}
		return dist.NewChiSquare(p.DoF)
	case Exponential:
		return dist.NewExponential(p.Lambda)
	default:
		return nil, errors.Wrapf(ErrUnknownDistribution, "%q", c.Distribution)
	}
}

// BuildSolver returns a bisection solver with the configured tolerance.
func (c Config) BuildSolver() (*solver.Bisection, error) {
	return solver.NewBisection(c.Tolerance)
}

// WithSeed returns c with Seed set. If c.Seed is 0, a seed is drawn
// from system entropy, so that the run can be repeated by passing the
// returned seed.
func (c Config) WithSeed() (Config, error) {
	if c.Seed != 0 {
		return c, nil
	}
	seed, err := sample.NewSeed()
	if err != nil {
		return c, err
	}
	log.Debugf("using seed %d", seed)
	c.Seed = seed

	return c, nil
}

// BitSource returns the bit source of stream i. Unless Entropy is
// set, streams are seeded with Seed + i.
func (c Config) BitSource(i int) sample.BitSource {
	if c.Entropy {
		return sample.NewEntropy()
	}
	seed := c.Seed + int64(i)
	if c.KeyStream {
		return sample.NewKeyStream(sample.KeyFromSeed(seed))
	}
	return sample.NewCoinFlip(seed)
}

// BuildSamplers returns one sampler per stream. The distribution and
// solver are shared, each sampler owning its bit source.
func (c Config) BuildSamplers() ([]sample.Sampler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d, err := c.BuildDistribution()
	if err != nil {
		return nil, err
	}
	s, err := c.BuildSolver()
	if err != nil {
		return nil, err
	}

	samplers := make([]sample.Sampler, c.Streams)
	for i := range samplers {
		t, err := sample.NewInverseTransform(d, s, c.Accuracy, c.BitSource(i))
		if err != nil {
			return nil, err
		}
		samplers[i] = t
	}
	log.Debugf("%d sampler(s) for %v at accuracy 1e-%d", c.Streams, d, c.Accuracy)

	return samplers, nil
}
