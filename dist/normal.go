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
	"fmt"
	"math"

	"github.com/fentec-project/gorng/internal"
	"github.com/pkg/errors"
)

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Normal is the normal (Gaussian) distribution with mean mu and
// standard deviation sigma.
type Normal struct {
	mu    float64
	sigma float64
}

// StdNormal is the standard normal distribution (mu = 0, sigma = 1).
var StdNormal = Normal{mu: 0, sigma: 1}

// NewNormal returns the normal distribution with mean mu and
// standard deviation sigma. It returns an error unless mu is finite
// and sigma is positive and finite.
func NewNormal(mu, sigma float64) (Normal, error) {
	if !internal.IsFinite(mu) || !internal.IsFinite(sigma) || sigma <= 0 {
		return Normal{}, errors.Wrapf(internal.ErrMalformedParam,
			"normal distribution needs a finite mean and a positive deviation, got mu=%g sigma=%g", mu, sigma)
	}

	return Normal{mu: mu, sigma: sigma}, nil
}

// Mean returns mu.
func (n Normal) Mean() float64 {
	return n.mu
}

// StdDev returns sigma.
func (n Normal) StdDev() float64 {
	return n.sigma
}

func (n Normal) PDF(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / n.sigma
}

func (n Normal) CDF(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return math.Erfc(-z/math.Sqrt2) / 2
}

// InvCDF finds the quantile at prob with s.
func (n Normal) InvCDF(prob float64, s Solver) (float64, error) {
	return invertCDF(n, prob, s)
}

func (n Normal) String() string {
	return fmt.Sprintf("Normal(mu=%g, sigma=%g)", n.mu, n.sigma)
}
