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

// SegmentMode is the mode of a QrSegment: numeric, alphanumeric, byte,
// kanji, or ECI. Each mode carries a 4-bit mode indicator and three
// char-count field widths, one per version band ([1,9], [10,26], [27,40]).
type SegmentMode struct {
	modeBits   int8
	countBits  [3]int8
	name       string
}

// The five segment modes. Kanji is reserved (mode indicator and
// char-count widths are correct so getTotalBits works over a
// caller-constructed segment) but has no public factory function: this
// module does not validate Shift-JIS input, so it cannot promise a
// correct round trip for arbitrary kanji text.
var (
	Numeric      = SegmentMode{0x1, [3]int8{10, 12, 14}, "numeric"}
	Alphanumeric = SegmentMode{0x2, [3]int8{9, 11, 13}, "alphanumeric"}
	Byte         = SegmentMode{0x4, [3]int8{8, 16, 16}, "byte"}
	kanji        = SegmentMode{0x8, [3]int8{8, 10, 12}, "kanji"}
	ECI          = SegmentMode{0x7, [3]int8{0, 0, 0}, "eci"}
)

func (m SegmentMode) numCharCountBits(version Version) int8 {
	return m.countBits[version.sizeClass()]
}

func (m SegmentMode) String() string {
	return m.name
}
