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

// Version is a QR code version number in the range [1, 40]. It determines
// the size of the symbol: size = 17 + 4*version modules per side.
type Version int8

// MinVersion and MaxVersion bound the legal range of Version.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// NewVersion validates v and returns it as a Version.
//
// Panics if v is outside [1, 40]: an out-of-range version number is a
// programming error, not a data-dependent failure.
func NewVersion(v int) Version {
	if v < int(MinVersion) || v > int(MaxVersion) {
		panic("qrcodegen: version number out of range")
	}

	return Version(v)
}

// Value returns the underlying version number.
func (v Version) Value() int {
	return int(v)
}

// size returns the width and height, in modules, of a symbol at this version.
func (v Version) size() int {
	return int(v)*4 + 17
}

// sizeClass buckets a version into the three char-count-bit bands the
// standard defines: [1,9], [10,26], [27,40].
func (v Version) sizeClass() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	default:
		return 2
	}
}
