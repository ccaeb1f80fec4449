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

// Package dist includes continuous probability distributions that
// can be sampled by inverse transform.
//
// Every distribution implements the Distribution interface, exposing its
// probability density function, its cumulative distribution function and
// its inverse (the quantile function). Uniform and Exponential invert
// their CDF in closed form. Normal and ChiSquare delegate the inversion
// to a Solver, which finds x such that CDF(x) = prob.
//
// All distributions are immutable values and can be shared freely
// between goroutines.
package dist
