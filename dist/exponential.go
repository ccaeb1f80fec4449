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

// Exponential is the exponential distribution with rate lambda.
type Exponential struct {
	lambda float64
}

// NewExponential returns the exponential distribution with rate lambda.
// It returns an error unless lambda is positive and finite.
func NewExponential(lambda float64) (Exponential, error) {
	if !internal.IsFinite(lambda) || lambda <= 0 {
		return Exponential{}, errors.Wrapf(internal.ErrMalformedParam,
			"exponential rate should be positive, got %g", lambda)
	}

	return Exponential{lambda: lambda}, nil
}

// Rate returns lambda.
func (e Exponential) Rate() float64 {
	return e.lambda
}

func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.lambda * math.Exp(-e.lambda*x)
}

func (e Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-e.lambda * x)
}

// InvCDF returns ln(1 - prob) / -lambda. The solver is not used.
// InvCDF(1) is +Inf.
func (e Exponential) InvCDF(prob float64, _ Solver) (float64, error) {
	if !validProbability(prob) {
		return math.NaN(), ErrInvalidProbability
	}

	return math.Log1p(-prob) / -e.lambda, nil
}

func (e Exponential) String() string {
	return fmt.Sprintf("Exponential(lambda=%g)", e.lambda)
}
