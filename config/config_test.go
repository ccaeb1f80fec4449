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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fentec-project/gorng/config"
	"github.com/fentec-project/gorng/dist"
	"github.com/fentec-project/gorng/internal"
	"github.com/fentec-project/gorng/sample"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetLevel(logging.ERROR, "")
	m.Run()
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Layers(t *testing.T) {
	yamlPath := writeFile(t, "run.yaml", `
distribution: normal
params:
  mu: 3
  sigma: 0.5
accuracy: 4
count: 20
seed: 77
`)
	jsonPath := writeFile(t, "run.json", `{"distribution": "exponential", "params": {"lambda": 2}, "streams": 3}`)

	cfg, err := config.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "normal", cfg.Distribution)
	assert.Equal(t, 3.0, cfg.Params.Mu)
	assert.Equal(t, 0.5, cfg.Params.Sigma)
	assert.Equal(t, 4, cfg.Accuracy)
	assert.Equal(t, 20, cfg.Count)
	assert.Equal(t, int64(77), cfg.Seed)
	// untouched settings keep their defaults
	assert.Equal(t, 1e-8, cfg.Tolerance)
	assert.Equal(t, 1, cfg.Streams)

	cfg, err = config.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "exponential", cfg.Distribution)
	assert.Equal(t, 2.0, cfg.Params.Lambda)
	assert.Equal(t, 3, cfg.Streams)

	t.Setenv("GORNG_ACCURACY", "2")
	t.Setenv("GORNG_MU", "-1")
	t.Setenv("GORNG_KEYSTREAM", "true")
	cfg, err = config.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Accuracy)
	assert.Equal(t, -1.0, cfg.Params.Mu)
	assert.Equal(t, 0.5, cfg.Params.Sigma)
	assert.True(t, cfg.KeyStream)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "run.toml", "count = 3"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "run.json", "{not json"))
	assert.Error(t, err)

	t.Setenv("GORNG_COUNT", "many")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var tests = []struct {
		name   string
		modify func(*config.Config)
		is     error
	}{
		{"unknown distribution", func(c *config.Config) { c.Distribution = "cauchy" }, config.ErrUnknownDistribution},
		{"bad params", func(c *config.Config) { c.Params.Lower = 2 }, internal.ErrMalformedParam},
		{"accuracy too low", func(c *config.Config) { c.Accuracy = 0 }, sample.ErrInvalidAccuracy},
		{"accuracy too high", func(c *config.Config) { c.Accuracy = sample.MaxAccuracyLevel + 1 }, sample.ErrInvalidAccuracy},
		{"no samples", func(c *config.Config) { c.Count = 0 }, internal.ErrMalformedInput},
		{"too many samples", func(c *config.Config) { c.Count = config.MaxCount + 1 }, internal.ErrMalformedInput},
		{"no streams", func(c *config.Config) { c.Streams = 0 }, internal.ErrMalformedInput},
		{"zero tolerance", func(c *config.Config) { c.Tolerance = 0 }, internal.ErrMalformedParam},
		{"two bit sources", func(c *config.Config) { c.KeyStream, c.Entropy = true, true }, internal.ErrMalformedInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Default()
			test.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), test.is)
		})
	}
}

func TestConfig_BuildDistribution(t *testing.T) {
	normal, _ := dist.NewNormal(1, 2)
	chiSquare, _ := dist.NewChiSquare(3)
	exponential, _ := dist.NewExponential(0.5)
	uniform, _ := dist.NewUniform(0, 1)

	var tests = []struct {
		name   string
		params config.Params
		expect dist.Distribution
	}{
		{name: "Uniform", params: config.Default().Params, expect: uniform},
		{name: "Standard Normal", expect: dist.StdNormal},
		{name: "normal", params: config.Params{Mu: 1, Sigma: 2}, expect: normal},
		{name: "Chi-Square", params: config.Params{DoF: 3}, expect: chiSquare},
		{name: "chi_square", params: config.Params{DoF: 2}, expect: exponential},
		{name: "exponential", params: config.Params{Lambda: 0.5}, expect: exponential},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Config{Distribution: test.name, Params: test.params}
			d, err := cfg.BuildDistribution()
			require.NoError(t, err)
			assert.Equal(t, test.expect, d)
		})
	}
}

func TestConfig_BuildSamplers(t *testing.T) {
	cfg := config.Default()
	cfg.Distribution = config.StandardNormal
	cfg.Streams = 3
	cfg.Seed = 11

	samplers, err := cfg.BuildSamplers()
	require.NoError(t, err)
	require.Len(t, samplers, 3)

	again, err := cfg.BuildSamplers()
	require.NoError(t, err)
	for i := range samplers {
		x, err := samplers[i].Sample()
		require.NoError(t, err)
		y, err := again[i].Sample()
		require.NoError(t, err)
		assert.Equal(t, x, y, "stream %d should be reproducible", i)
	}

	_, ok := cfg.BitSource(0).(*sample.CoinFlip)
	assert.True(t, ok)

	cfg.KeyStream = true
	_, ok = cfg.BitSource(0).(*sample.KeyStream)
	assert.True(t, ok)

	cfg.KeyStream, cfg.Entropy = false, true
	_, ok = cfg.BitSource(1).(*sample.Entropy)
	assert.True(t, ok)
	samplers, err = cfg.BuildSamplers()
	require.NoError(t, err)
	_, err = samplers[0].Sample()
	assert.NoError(t, err)

	cfg.Count = 0
	_, err = cfg.BuildSamplers()
	assert.Error(t, err)
}

func TestConfig_WithSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	seeded, err := cfg.WithSeed()
	require.NoError(t, err)
	assert.Equal(t, int64(5), seeded.Seed)

	cfg.Seed = 0
	seeded, err = cfg.WithSeed()
	require.NoError(t, err)
	assert.NotEqual(t, int64(0), seeded.Seed)
}
