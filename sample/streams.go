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
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// GenerateStreams samples n values from each sampler concurrently,
// one goroutine per sampler. The i-th returned slice holds the values
// of samplers[i] in the order they were sampled. The samplers must be
// distinct, since a sampler is not safe for concurrent use.
//
// The first failing sampler cancels the others; cancelling ctx stops
// every stream before its next sample.
func GenerateStreams(ctx context.Context, n int, samplers ...Sampler) ([][]float64, error) {
	if n < 0 {
		return nil, errors.Errorf("cannot generate %d samples", n)
	}

	res := make([][]float64, len(samplers))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range samplers {
		i, s := i, s
		g.Go(func() error {
			vals := make([]float64, n)
			for j := range vals {
				if err := ctx.Err(); err != nil {
					return err
				}
				x, err := s.Sample()
				if err != nil {
					return errors.Wrapf(err, "stream %d", i)
				}
				vals[j] = x
			}
			res[i] = vals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
