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

// Reed-Solomon error correction over GF(2^8), reduced by the QR standard's
// primitive polynomial x^8+x^4+x^3+x^2+1 (0x11D), generator element 0x02.

// reedSolomonComputeDivisor builds the generator polynomial
// (x - a^0)(x - a^1)...(x - a^(degree-1)), dropping the leading x^degree
// term (always 1). Coefficients are stored highest-to-lowest power.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("qrcodegen: RS degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // x^0 coefficient of the degree-0 product.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = reedSolomonMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = reedSolomonMultiply(root, 0x02)
	}

	return result
}

// reedSolomonComputeRemainder returns the degree-len(divisor) remainder of
// data (as a polynomial) divided by divisor, over GF(256) — the ECC
// codewords for one data block.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= reedSolomonMultiply(divisor[i], factor)
		}
	}

	return result
}

// reedSolomonMultiply returns x*y in GF(256/0x11D), via Russian-peasant
// multiplication with reduction on overflow.
func reedSolomonMultiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = (z << 1) ^ ((z >> 7) * 0x11D)
		z ^= int(y>>i&1) * int(x)
	}

	return byte(z)
}
