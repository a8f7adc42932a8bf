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

// ECL is the error correction level used by a QR code.
type ECL int8

// ECL values, ordered from least to most redundant. The ordinal of each
// (Low=0 .. High=3) indexes the capacity tables in tables.go.
const (
	Low      ECL = iota // Recovers ~7% of codewords.
	Medium              // Recovers ~15% of codewords.
	Quartile            // Recovers ~25% of codewords.
	High                // Recovers ~30% of codewords.
)

// formatBits returns the 2-bit field the standard packs into the 15-bit
// format-info word. This is not the same as the ordinal above: the
// standard's bit assignment for the four levels is not numerically
// monotonic with their redundancy ranking.
func (e ECL) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrcodegen: unknown error correction level")
	}
}

func (e ECL) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}
