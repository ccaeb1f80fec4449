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

package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/gorng/sample"
	"github.com/pkg/errors"
)

// Vector wraps a slice of float64 samples.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// CheckBound checks whether all vector elements lie in [lower, upper].
// It returns error if at least one element is outside or NaN.
func (v Vector) CheckBound(lower, upper float64) error {
	for i, c := range v {
		if !(c >= lower && c <= upper) {
			return errors.Errorf("coordinate %d (%g) is not in [%g, %g]", i, c, lower, upper)
		}
	}

	return nil
}

// Mean returns the arithmetic mean of the elements, or NaN for an
// empty vector.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, c := range v {
		sum += c
	}

	return sum / float64(len(v))
}

// Variance returns the sample variance of the elements, or NaN
// if there are fewer than two.
func (v Vector) Variance() float64 {
	if len(v) < 2 {
		return math.NaN()
	}
	m := v.Mean()
	sum := 0.0
	for _, c := range v {
		d := c - m
		sum += d * d
	}

	return sum / float64(len(v)-1)
}

// String formats the elements separated by ", ".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}

	return strings.Join(parts, ", ")
}
