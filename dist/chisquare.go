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

// ChiSquare is the chi-square distribution with dof degrees of freedom.
// Its CDF has no closed form: it is the regularized lower incomplete
// gamma function P(dof/2, x/2), integrated numerically.
type ChiSquare struct {
	dof float64
}

// NewChiSquare returns the chi-square distribution with dof degrees
// of freedom. It returns an error unless dof is positive and finite.
func NewChiSquare(dof float64) (ChiSquare, error) {
	if !internal.IsFinite(dof) || dof <= 0 {
		return ChiSquare{}, errors.Wrapf(internal.ErrMalformedParam,
			"degrees of freedom should be positive, got %g", dof)
	}

	return ChiSquare{dof: dof}, nil
}

// DoF returns the degrees of freedom.
func (c ChiSquare) DoF() float64 {
	return c.dof
}

func (c ChiSquare) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	k := c.dof / 2
	logGamma, _ := math.Lgamma(k)
	return math.Exp((k-1)*math.Log(x) - x/2 - k*math.Ln2 - logGamma)
}

// CDF panics if c was not created by NewChiSquare, since a chi-square
// distribution without positive degrees of freedom is a programming
// error that cannot be recovered from.
func (c ChiSquare) CDF(x float64) float64 {
	p, err := RegularizedLowerGamma(c.dof/2, x/2)
	if err != nil {
		panic(errors.Wrapf(err, "chi-square CDF with %g degrees of freedom", c.dof))
	}

	return p
}

// InvCDF finds the quantile at prob with s.
func (c ChiSquare) InvCDF(prob float64, s Solver) (float64, error) {
	return invertCDF(c, prob, s)
}

func (c ChiSquare) String() string {
	return fmt.Sprintf("ChiSquare(dof=%g)", c.dof)
}
