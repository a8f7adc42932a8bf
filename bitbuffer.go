/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// maxBitBufferLen is the largest bit count any single encode operation may
// assemble. No QR version needs anywhere near this many bits (version 40
// tops out under 24000 data bits); it exists as the hard ceiling the spec
// names for the bit buffer itself.
const maxBitBufferLen = 32768

// bitBuffer is an append-only sequence of bits, one per byte (0 or 1),
// in the order they were pushed. It backs both QrSegment payloads and
// the encoder's codeword assembly.
type bitBuffer []byte

// appendBits pushes the low `length` bits of value, most-significant bit
// first.
//
// Panics if length is out of [0, 31] or value has bits set above position
// length-1 — both are programming errors at call sites, never
// data-dependent.
func (bb *bitBuffer) appendBits(value int, length int8) {
	if length < 0 || length > 31 || value>>length != 0 {
		panic("qrcodegen: appendBits value out of range")
	}

	for i := length - 1; i >= 0; i-- {
		*bb = append(*bb, byte(value>>i&1))
	}
}

// len returns the current bit count.
func (bb bitBuffer) len() int {
	return len(bb)
}
