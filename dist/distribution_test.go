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

package dist_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gorng/dist"
	"github.com/fentec-project/gorng/internal"
	"github.com/fentec-project/gorng/solver"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-8

func TestMain(m *testing.M) {
	logging.SetLevel(logging.ERROR, "")
	m.Run()
}

func newSolver(t *testing.T) *solver.Bisection {
	s, err := solver.NewBisection(tol)
	require.NoError(t, err)
	return s
}

func TestInvCDF_InvalidProbability(t *testing.T) {
	u, _ := dist.NewUniform(-1, 3)
	n, _ := dist.NewNormal(2, 0.5)
	c, _ := dist.NewChiSquare(3)
	e, _ := dist.NewExponential(0.5)
	s := newSolver(t)

	var tests = []struct {
		name string
		d    dist.Distribution
	}{
		{name: "Uniform", d: u},
		{name: "Normal", d: n},
		{name: "ChiSquare", d: c},
		{name: "Exponential", d: e},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, prob := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
				x, err := test.d.InvCDF(prob, s)
				assert.True(t, math.IsNaN(x), "InvCDF(%g) should be NaN", prob)
				assert.ErrorIs(t, err, dist.ErrInvalidProbability)
			}
		})
	}
}

func TestConstructors_RejectMalformedParams(t *testing.T) {
	var tests = []struct {
		name string
		make func() error
	}{
		{"Uniform lb = rb", func() error { _, err := dist.NewUniform(1, 1); return err }},
		{"Uniform lb > rb", func() error { _, err := dist.NewUniform(2, 1); return err }},
		{"Uniform infinite", func() error { _, err := dist.NewUniform(0, math.Inf(1)); return err }},
		{"Normal zero sigma", func() error { _, err := dist.NewNormal(0, 0); return err }},
		{"Normal negative sigma", func() error { _, err := dist.NewNormal(0, -1); return err }},
		{"Normal NaN mean", func() error { _, err := dist.NewNormal(math.NaN(), 1); return err }},
		{"ChiSquare zero dof", func() error { _, err := dist.NewChiSquare(0); return err }},
		{"Exponential negative rate", func() error { _, err := dist.NewExponential(-0.5); return err }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ErrorIs(t, test.make(), internal.ErrMalformedParam)
		})
	}
}

func TestSolverBackedInvCDF_NeedsSolver(t *testing.T) {
	_, err := dist.StdNormal.InvCDF(0.3, nil)
	assert.Error(t, err)

	x, err := dist.StdUniform.InvCDF(0.3, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-15)
}
