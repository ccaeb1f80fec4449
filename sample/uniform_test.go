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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gorng/internal"
	"github.com/fentec-project/gorng/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniformGrid_AccuracyLevels(t *testing.T) {
	for _, level := range []int{-1, 0, sample.MaxAccuracyLevel + 1} {
		_, err := sample.NewUniformGrid(level, sample.NewCoinFlip(1))
		assert.ErrorIs(t, err, sample.ErrInvalidAccuracy, "level %d", level)
		assert.ErrorIs(t, err, internal.ErrMalformedParam)
	}

	for level := sample.MinAccuracyLevel; level <= sample.MaxAccuracyLevel; level++ {
		u, err := sample.NewUniformGrid(level, sample.NewCoinFlip(1))
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(10, -float64(level)), u.Accuracy(), 1e-20)
	}

	_, err := sample.NewUniformGrid(2, nil)
	assert.Error(t, err)
}

func TestUniformGrid_Sample(t *testing.T) {
	u, err := sample.NewUniformGrid(1, sample.NewCoinFlip(2024))
	require.NoError(t, err)

	const n = 11000
	counts := make(map[float64]int)
	for i := 0; i < n; i++ {
		p, err := u.Sample()
		require.NoError(t, err)
		require.True(t, p >= 0 && p <= 1, "probability %g is not in [0, 1]", p)
		counts[math.Round(p*10)/10]++
	}

	// 0, 0.1, ..., 1 are equally likely
	assert.Len(t, counts, 11)
	for p, c := range counts {
		assert.InDelta(t, n/11, c, 150, "probability %g drawn %d times", p, c)
	}
}

func TestUniformGrid_Edges(t *testing.T) {
	u, err := sample.NewUniformGrid(3, constSource(false))
	require.NoError(t, err)
	p, err := u.Sample()
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	// 2^64 - 1 lies past the last segment, every time
	u, err = sample.NewUniformGrid(3, constSource(true))
	require.NoError(t, err)
	_, err = u.Sample()
	assert.ErrorIs(t, err, sample.ErrRegenerationLimit)
}

func TestUniformGrid_Round(t *testing.T) {
	u, err := sample.NewUniformGrid(2, constSource(false))
	require.NoError(t, err)

	var tests = []struct {
		x      float64
		expect float64
	}{
		{0.123456, 0.12},
		{0.125001, 0.13},
		{-3.14159, -3.14},
		{42, 42},
	}
	for _, test := range tests {
		assert.InDelta(t, test.expect, u.Round(test.x), 1e-12, "Round(%g)", test.x)
	}

	zero := u.Round(-0.001)
	assert.Equal(t, 0.0, zero)
	assert.False(t, math.Signbit(zero), "Round should not return negative zero")
	assert.True(t, math.IsInf(u.Round(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(u.Round(math.NaN())))
}
