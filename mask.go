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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcodegen

// Mask is a QR mask pattern number in the range [0, 7].
type Mask int8

// autoMask is the internal sentinel meaning "search all 8 masks and keep
// the lowest-scoring one". It is never a value a caller observes on a
// constructed QrCode.
const autoMask Mask = -1

// NewMask validates m and returns it as a Mask.
//
// Panics if m is outside [0, 7].
func NewMask(m int) Mask {
	if m < 0 || m > 7 {
		panic("qrcodegen: mask value out of range")
	}

	return Mask(m)
}

// Value returns the underlying mask number.
func (m Mask) Value() int {
	return int(m)
}

// predicate reports whether mask m inverts the module at (x, y), per the
// eight mask formulas in ISO/IEC 18004 table 10.
func (m Mask) predicate(x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qrcodegen: illegal mask value")
	}
}
