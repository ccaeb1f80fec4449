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
	"strings"

	"github.com/fentec-project/gorng/sample"
	"github.com/pkg/errors"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix, each row typically holding one stream of samples.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.New("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewMatrixFromSlices is like NewMatrix but accepts plain slices,
// as returned by sample.GenerateStreams.
func NewMatrixFromSlices(rows [][]float64) (Matrix, error) {
	vectors := make([]Vector, len(rows))
	for i, r := range rows {
		vectors[i] = NewVector(r)
	}

	return NewMatrix(vectors)
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.New("column index exceeds matrix dimensions")
	}

	column := make([]float64, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Flatten concatenates the rows of m into one vector.
func (m Matrix) Flatten() Vector {
	res := make(Vector, 0, m.Rows()*m.Cols())
	for _, row := range m {
		res = append(res, row...)
	}

	return res
}

// CheckBound checks whether all matrix elements lie in [lower, upper].
// It returns error if at least one element is outside.
func (m Matrix) CheckBound(lower, upper float64) error {
	for _, v := range m {
		if err := v.CheckBound(lower, upper); err != nil {
			return err
		}
	}

	return nil
}

// String formats one row per line.
func (m Matrix) String() string {
	rows := make([]string, len(m))
	for i, v := range m {
		rows[i] = v.String()
	}

	return strings.Join(rows, "\n")
}
