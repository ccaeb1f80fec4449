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
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/pkg/errors"
)

// BitSource is a source of fair coin flips.
type BitSource interface {
	// Flip returns true or false, each with probability 1/2.
	Flip() (bool, error)
}

// CoinFlip flips coins with a seeded pseudo-random generator.
// Two CoinFlip sources with the same seed produce the same flips.
type CoinFlip struct {
	rnd *mrand.Rand
}

// NewCoinFlip returns a CoinFlip source seeded with seed.
func NewCoinFlip(seed int64) *CoinFlip {
	return &CoinFlip{rnd: mrand.New(mrand.NewSource(seed))}
}

// Flip never fails.
func (c *CoinFlip) Flip() (bool, error) {
	return c.rnd.Intn(2) == 1, nil
}

// Entropy flips coins with bits read from crypto/rand.
type Entropy struct {
	buf  [8]byte
	bits uint64
	left int
}

// NewEntropy returns an Entropy source.
func NewEntropy() *Entropy {
	return &Entropy{}
}

// Flip consumes one bit of system entropy.
func (e *Entropy) Flip() (bool, error) {
	if e.left == 0 {
		if _, err := rand.Read(e.buf[:]); err != nil {
			return false, errors.Wrap(err, "cannot read system entropy")
		}
		e.bits = binary.LittleEndian.Uint64(e.buf[:])
		e.left = 64
	}
	bit := e.bits&1 == 1
	e.bits >>= 1
	e.left--

	return bit, nil
}

// RandomUint64 builds a uniformly random 64-bit integer from 64
// flips of src, the first flip being the most significant bit.
func RandomUint64(src BitSource) (uint64, error) {
	var r uint64
	for i := 0; i < 64; i++ {
		bit, err := src.Flip()
		if err != nil {
			return 0, err
		}
		r <<= 1
		if bit {
			r |= 1
		}
	}

	return r, nil
}

// NewSeed returns a seed drawn from system entropy.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "cannot read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
