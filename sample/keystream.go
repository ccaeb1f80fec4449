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
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/salsa20"
)

// blockBits is the number of flips served by one salsa20 block.
const blockBits = 512

// KeyStream flips coins with the bits of the salsa20 keystream under
// a fixed key. The same key always gives the same flips.
type KeyStream struct {
	key   *[32]byte
	block uint64
	buf   [blockBits / 8]byte
	pos   int
}

// NewKeyStream returns a KeyStream source for key.
func NewKeyStream(key *[32]byte) *KeyStream {
	return &KeyStream{
		key: key,
		pos: blockBits,
	}
}

// KeyFromSeed derives a keystream key from an integer seed.
func KeyFromSeed(seed int64) *[32]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	key := blake2b.Sum256(b[:])
	return &key
}

// Flip never fails.
func (k *KeyStream) Flip() (bool, error) {
	if k.pos == blockBits {
		k.refill()
	}
	bit := k.buf[k.pos/8]>>(k.pos%8)&1 == 1
	k.pos++

	return bit, nil
}

// refill encrypts a zero block with the next nonce.
func (k *KeyStream) refill() {
	in := make([]byte, len(k.buf)) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, k.block)

	salsa20.XORKeyStream(k.buf[:], in, nonce, k.key)
	k.block++
	k.pos = 0
}
