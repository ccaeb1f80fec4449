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

	"github.com/fentec-project/gorng/internal"
	"github.com/pkg/errors"
)

// ErrNonPositiveShape is returned by LowerIncompleteGamma when the
// shape parameter is not positive.
var ErrNonPositiveShape = errors.Wrap(internal.ErrMalformedParam, "shape of the gamma function should be positive")

// GammaIntervals is the number of subintervals used by the trapezoid
// rule in LowerIncompleteGamma.
const GammaIntervals = 10000

// LowerIncompleteGamma returns the lower incomplete gamma function
// γ(a, x), the integral of t^(a-1) * e^-t over [0, x], approximated
// with the composite trapezoid rule on GammaIntervals subintervals.
// It returns 0 for x <= 0.
//
// For a < 1 the integrand is unbounded at 0, so the integral is
// computed after substituting u = t^a, which gives
// (1/a) * integral of e^(-u^(1/a)) over [0, x^a].
func LowerIncompleteGamma(a, x float64) (float64, error) {
	return lowerGamma(a, x, 0)
}

// RegularizedLowerGamma returns P(a, x) = γ(a, x) / Γ(a), computed
// the same way as LowerIncompleteGamma. It is exactly 1 for x past
// SaturationPoint(a).
func RegularizedLowerGamma(a, x float64) (float64, error) {
	if !(a > 0) {
		return 0, ErrNonPositiveShape
	}
	if x > SaturationPoint(a) {
		return 1, nil
	}
	logGamma, _ := math.Lgamma(a)
	p, err := lowerGamma(a, x, logGamma)
	if err != nil {
		return 0, err
	}

	return math.Min(p, 1), nil
}

// SaturationPoint returns the x past which 1 - P(a, x) is below
// float64 resolution, about 40 standard deviations of the gamma
// distribution with shape a above its mean.
func SaturationPoint(a float64) float64 {
	return a + 40*math.Sqrt(a) + 40
}

// lowerGamma integrates t^(a-1) * e^-t / e^logNorm over [0, x].
// The normalization is folded into the integrand so that large
// shapes do not overflow.
func lowerGamma(a, x, logNorm float64) (float64, error) {
	if !(a > 0) {
		return 0, ErrNonPositiveShape
	}
	if !(x > 0) {
		return 0, nil
	}

	if a < 1 {
		inv := 1 / a
		integrand := func(u float64) float64 {
			return math.Exp(-math.Pow(u, inv))
		}
		return trapezoid(integrand, math.Pow(x, a)) / a / math.Exp(logNorm), nil
	}

	integrand := func(t float64) float64 {
		if t == 0 {
			if a == 1 {
				return math.Exp(-logNorm)
			}
			return 0
		}
		return math.Exp((a-1)*math.Log(t) - t - logNorm)
	}
	return trapezoid(integrand, x), nil
}

// trapezoid integrates f over [0, x].
func trapezoid(f func(float64) float64, x float64) float64 {
	h := x / GammaIntervals
	sum := 0.5 * (f(0) + f(x))
	for i := 1; i < GammaIntervals; i++ {
		sum += f(float64(i) * h)
	}

	return h * sum
}
