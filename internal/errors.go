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

package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var malformedStr = "is out of its valid range"

// ErrMalformedParam is returned (wrapped) by every constructor that
// rejects a parameter value.
var ErrMalformedParam = errors.New(fmt.Sprintf("parameter %s", malformedStr))

// ErrMalformedInput is returned (wrapped) when a caller supplied input,
// as opposed to a construction parameter, cannot be used.
var ErrMalformedInput = errors.New(fmt.Sprintf("input data %s", malformedStr))

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
