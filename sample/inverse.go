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

package sample

import (
	"github.com/fentec-project/gorng/dist"
	"github.com/fentec-project/gorng/internal"
	"github.com/pkg/errors"
)

// InverseTransform samples random values from a continuous
// distribution by inverse transform: a probability p is drawn from a
// UniformGrid and mapped to InvCDF(p), rounded to the grid spacing.
type InverseTransform struct {
	grid   *UniformGrid
	dist   dist.Distribution
	solver dist.Solver
}

// NewInverseTransform returns an instance of the InverseTransform
// sampler for d. The solver s is handed to d.InvCDF and may be nil
// for distributions with a closed form inverse. Samples are rounded
// to multiples of 10^-accuracyLevel and the randomness is taken
// from src.
func NewInverseTransform(d dist.Distribution, s dist.Solver, accuracyLevel int, src BitSource) (*InverseTransform, error) {
	if d == nil {
		return nil, errors.New("a distribution is needed")
	}
	grid, err := NewUniformGrid(accuracyLevel, src)
	if err != nil {
		return nil, err
	}

	return &InverseTransform{
		grid:   grid,
		dist:   d,
		solver: s,
	}, nil
}

// Accuracy returns the spacing of the values returned by Sample.
func (t *InverseTransform) Accuracy() float64 {
	return t.grid.Accuracy()
}

// Distribution returns the sampled distribution.
func (t *InverseTransform) Distribution() dist.Distribution {
	return t.dist
}

// Probability draws the probability that the next sample is mapped from.
func (t *InverseTransform) Probability() (float64, error) {
	return t.grid.Sample()
}

// Sample returns a random value from the distribution, a multiple of
// the accuracy.
func (t *InverseTransform) Sample() (float64, error) {
	p, err := t.grid.Sample()
	if err != nil {
		return 0, err
	}

	x, err := t.dist.InvCDF(p, t.solver)
	if err != nil {
		return 0, errors.Wrapf(err, "error while sampling %v", t.dist)
	}

	return t.grid.Round(x), nil
}

// Generate returns n random values in the order they were sampled.
// Calling Generate again continues the random stream.
func (t *InverseTransform) Generate(n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(internal.ErrMalformedInput, "cannot generate %d samples", n)
	}

	res := make([]float64, n)
	for i := range res {
		x, err := t.Sample()
		if err != nil {
			return nil, err
		}
		res[i] = x
	}

	return res, nil
}
