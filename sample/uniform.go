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
	"math"

	"github.com/fentec-project/gorng/internal"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("gorng/sample")

const (
	// MinAccuracyLevel and MaxAccuracyLevel bound the accuracy
	// level k, the sampling grid being spaced 10^-k apart.
	MinAccuracyLevel = 1
	MaxAccuracyLevel = 9
	// MaxRegenerations bounds how many random integers UniformGrid
	// discards before giving up on a single sample.
	MaxRegenerations = 64
)

// ErrInvalidAccuracy is returned for accuracy levels outside
// [MinAccuracyLevel, MaxAccuracyLevel].
var ErrInvalidAccuracy = errors.Wrap(internal.ErrMalformedParam, "accuracy level is not supported")

// ErrRegenerationLimit is returned when MaxRegenerations random
// integers in a row fall outside of the grid.
var ErrRegenerationLimit = errors.New("too many random integers fell outside of the grid")

// UniformGrid samples probabilities uniformly from the grid
// {0, a, 2a, ..., 1} where a = 10^-k is the accuracy.
//
// The 2^64 possible random integers are split into 10^k + 1 segments of
// equal length, segment i giving probability i*a. The integers past the
// last full segment are discarded and drawn again; since there are fewer
// than 10^k + 1 of them plus one partial segment, this happens with
// probability below 2a.
type UniformGrid struct {
	src        BitSource
	steps      uint64
	segmentLen uint64
	accuracy   float64
}

// NewUniformGrid returns an instance of the UniformGrid sampler with
// accuracy 10^-accuracyLevel drawing its bits from src.
func NewUniformGrid(accuracyLevel int, src BitSource) (*UniformGrid, error) {
	if accuracyLevel < MinAccuracyLevel || accuracyLevel > MaxAccuracyLevel {
		return nil, errors.Wrapf(ErrInvalidAccuracy, "got %d, expected %d to %d",
			accuracyLevel, MinAccuracyLevel, MaxAccuracyLevel)
	}
	if src == nil {
		return nil, errors.New("a bit source is needed")
	}

	steps := uint64(1)
	for i := 0; i < accuracyLevel; i++ {
		steps *= 10
	}

	return &UniformGrid{
		src:        src,
		steps:      steps,
		segmentLen: math.MaxUint64 / (steps + 1),
		accuracy:   1 / float64(steps),
	}, nil
}

// Accuracy returns the spacing of the grid.
func (u *UniformGrid) Accuracy() float64 {
	return u.accuracy
}

// Sample returns a probability from the grid.
func (u *UniformGrid) Sample() (float64, error) {
	for i := 0; i <= MaxRegenerations; i++ {
		r, err := RandomUint64(u.src)
		if err != nil {
			return 0, errors.Wrap(err, "error while sampling")
		}

		index := r / u.segmentLen
		if index <= u.steps {
			return float64(index) / float64(u.steps), nil
		}
		log.Debugf("random integer %d is past the last segment, drawing again", r)
	}

	return 0, ErrRegenerationLimit
}

// Round rounds x to the nearest point of the grid spacing, that is
// the nearest multiple of the accuracy. NaN and infinities are
// returned as they are.
func (u *UniformGrid) Round(x float64) float64 {
	if !internal.IsFinite(x) {
		return x
	}
	r := math.Round(x*float64(u.steps)) / float64(u.steps)
	if r == 0 {
		// no negative zero
		return 0
	}

	return r
}
