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

// Package solver finds where a monotone real function reaches a
// target value.
//
// The Bisection solver is used by the distributions in package dist
// to invert cumulative distribution functions that have no closed
// form inverse.
package solver

import (
	"math"

	"github.com/fentec-project/gorng/dist"
	"github.com/fentec-project/gorng/internal"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("gorng/solver")

// ErrNotConverged is returned when no bracket containing the target
// can be found, or bisection does not shrink the bracket to the
// tolerance within MaxIterations steps.
var ErrNotConverged = errors.New("solver did not converge")

// ErrInvalidTarget is returned when the target value is NaN.
var ErrInvalidTarget = errors.Wrap(internal.ErrMalformedInput, "target of the solver is NaN")

const (
	// InitialBracket is the half width of the first bracket tried
	// by FindBracket.
	InitialBracket = 10.0

	// MaxExpansions bounds how many times each end of the bracket
	// is doubled.
	MaxExpansions = 64

	// MaxIterations bounds the number of bisection steps.
	MaxIterations = 2048
)

// Bisection is a bisection root solver with a fixed tolerance.
// It is immutable and safe for concurrent use.
type Bisection struct {
	tol float64
}

// NewBisection returns a Bisection solver which stops once the
// bracket around the solution is at most tol wide.
func NewBisection(tol float64) (*Bisection, error) {
	if !internal.IsFinite(tol) || tol <= 0 {
		return nil, errors.Wrapf(internal.ErrMalformedParam, "tolerance should be positive, got %g", tol)
	}

	return &Bisection{tol: tol}, nil
}

// Tolerance returns the width of the bracket at which Solve stops.
func (b *Bisection) Tolerance() float64 {
	return b.tol
}

// FindBracket returns lower and upper with f(lower) <= target <= f(upper).
// f should be monotonically increasing; a decreasing function must be
// negated first (see Negate). Starting from [-InitialBracket, InitialBracket]
// each end is doubled outwards until it passes the target, at most
// MaxExpansions times.
func (b *Bisection) FindBracket(f dist.RealFunction, target float64) (float64, float64, error) {
	if math.IsNaN(target) {
		return 0, 0, ErrInvalidTarget
	}

	lower, upper := -InitialBracket, InitialBracket
	for i := 0; f(lower) > target; i++ {
		if i == MaxExpansions {
			log.Warningf("no lower bracket for target %g down to %g", target, lower)
			return 0, 0, errors.Wrapf(ErrNotConverged, "f stays above %g down to %g", target, lower)
		}
		lower *= 2
	}
	for i := 0; f(upper) < target; i++ {
		if i == MaxExpansions {
			log.Warningf("no upper bracket for target %g up to %g", target, upper)
			return 0, 0, errors.Wrapf(ErrNotConverged, "f stays below %g up to %g", target, upper)
		}
		upper *= 2
	}

	return lower, upper, nil
}

// Solve returns x with f(x) ≈ target, at most the tolerance away from
// the true solution. f should be monotonically increasing and
// continuous. Bisection stops early when the midpoint hits the target
// exactly or when the bracket cannot be split any further in float64.
func (b *Bisection) Solve(f dist.RealFunction, target float64) (float64, error) {
	lower, upper, err := b.FindBracket(f, target)
	if err != nil {
		return 0, err
	}
	log.Debugf("target %g bracketed by [%g, %g]", target, lower, upper)

	mid := lower*0.5 + upper*0.5
	for i := 0; upper-lower > b.tol; i++ {
		if i == MaxIterations {
			log.Warningf("bisection for target %g stopped at [%g, %g]", target, lower, upper)
			return 0, errors.Wrapf(ErrNotConverged, "bracket [%g, %g] after %d steps", lower, upper, i)
		}

		fMid := f(mid)
		switch {
		case fMid > target:
			upper = mid
		case fMid < target:
			lower = mid
		default:
			return mid, nil
		}

		next := lower*0.5 + upper*0.5
		if next == lower || next == upper {
			// float64 resolution reached
			return next, nil
		}
		mid = next
	}

	return mid, nil
}

// Negate returns x -> -f(x), turning a decreasing function into an
// increasing one.
func Negate(f dist.RealFunction) dist.RealFunction {
	return func(x float64) float64 {
		return -f(x)
	}
}
