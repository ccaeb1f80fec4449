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

// Uniform is the continuous uniform distribution on [lb, rb].
type Uniform struct {
	lb float64
	rb float64
}

// StdUniform is the uniform distribution on [0, 1].
var StdUniform = Uniform{lb: 0, rb: 1}

// NewUniform returns the uniform distribution on [lb, rb].
// It returns an error unless lb < rb and both bounds are finite.
func NewUniform(lb, rb float64) (Uniform, error) {
	if !internal.IsFinite(lb) || !internal.IsFinite(rb) || lb >= rb {
		return Uniform{}, errors.Wrapf(internal.ErrMalformedParam,
			"uniform bounds should satisfy lb < rb, got [%g, %g]", lb, rb)
	}

	return Uniform{lb: lb, rb: rb}, nil
}

// Bounds returns the bounds of the support.
func (u Uniform) Bounds() (float64, float64) {
	return u.lb, u.rb
}

func (u Uniform) PDF(x float64) float64 {
	if x >= u.lb && x <= u.rb {
		return 1 / (u.rb - u.lb)
	}
	return 0
}

func (u Uniform) CDF(x float64) float64 {
	switch {
	case x < u.lb:
		return 0
	case x > u.rb:
		return 1
	default:
		return (x - u.lb) / (u.rb - u.lb)
	}
}

// InvCDF returns lb + prob * (rb - lb). The solver is not used.
func (u Uniform) InvCDF(prob float64, _ Solver) (float64, error) {
	if !validProbability(prob) {
		return math.NaN(), ErrInvalidProbability
	}

	return u.lb + prob*(u.rb-u.lb), nil
}

func (u Uniform) String() string {
	return fmt.Sprintf("Uniform(lb=%g, rb=%g)", u.lb, u.rb)
}
