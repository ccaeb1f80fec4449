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

// Package sample includes samplers that draw random float64 values
// from continuous probability distributions.
//
// Randomness comes from a BitSource, a stream of fair coin flips.
// UniformGrid builds a 64-bit integer one flip per bit and maps it to
// a probability on the grid {0, 10^-k, 2*10^-k, ..., 1}, where k is the
// accuracy level. InverseTransform feeds that probability through the
// inverse CDF of a distribution from package dist and rounds the result
// to the same grid.
//
// Samplers own their BitSource and are not safe for concurrent use.
// To sample in parallel, create one sampler per goroutine (see
// GenerateStreams).
package sample
