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

package dist

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidProbability is returned together with a NaN value by InvCDF
// when the requested probability lies outside [0, 1].
var ErrInvalidProbability = errors.New("probability is not in [0, 1]")

// RealFunction is a real valued function of one real variable.
type RealFunction func(x float64) float64

// Solver finds x such that f(x) = target for a monotonically
// increasing function f.
type Solver interface {
	Solve(f RealFunction, target float64) (float64, error)
}

// Distribution is a continuous probability distribution.
type Distribution interface {
	// PDF returns the value of the probability density function
	// at x. It is defined for all real x and is 0 outside of the
	// support of the distribution.
	PDF(x float64) float64

	// CDF returns the probability that a random variable with
	// this distribution is at most x.
	CDF(x float64) float64

	// InvCDF returns x such that CDF(x) = prob. Distributions
	// without a closed form inverse use s to find it, the others
	// ignore s. If prob is not in [0, 1], InvCDF returns NaN and
	// ErrInvalidProbability.
	InvCDF(prob float64, s Solver) (float64, error)
}

// validProbability reports whether prob lies in [0, 1]. NaN is rejected.
func validProbability(prob float64) bool {
	return prob >= 0 && prob <= 1
}

// invertCDF numerically inverts the CDF of d with the provided solver.
func invertCDF(d Distribution, prob float64, s Solver) (float64, error) {
	if !validProbability(prob) {
		return math.NaN(), ErrInvalidProbability
	}
	if s == nil {
		return math.NaN(), errors.New("a solver is needed to invert the CDF")
	}

	x, err := s.Solve(d.CDF, prob)
	if err != nil {
		return math.NaN(), errors.Wrapf(err, "cannot invert the CDF at %g", prob)
	}

	return x, nil
}
