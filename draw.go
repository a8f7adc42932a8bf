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

import "math"

// drawFunctionPatterns draws every non-data module: timing patterns, the
// three finder patterns, alignment patterns, and placeholder format/version
// information (format bits use mask 0 as a placeholder; the real mask is
// drawn once it is chosen).
func (q *QrCode) drawFunctionPatterns() {
	for i := 0; i < q.size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)

	alignPatPos := alignmentPatternPositions[q.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			// Skip the three corners the finder patterns already occupy.
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				q.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	q.drawFormatBits(0)
	q.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern, including its light
// separator ring, centered at (x, y).
func (q *QrCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < q.size && 0 <= yy && yy < q.size {
				q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (q *QrCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawCodewords draws the interleaved data and ECC codewords over the
// entire data area in the standard's zig-zag scan order. Function modules
// must already be marked before this runs.
func (q *QrCode) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[q.version]/8 {
		panic("qrcodegen: codeword data is not the expected length")
	}

	i := 0
	for right := q.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < q.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = q.size - 1 - vert
				} else {
					y = vert
				}

				if !q.isFunction[y][x] && i < len(data)*8 {
					q.modules[y][x] = module(getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
				// Remainder bits, if any, were already set light during construction.
			}
		}
	}

	if i != len(data)*8 {
		panic("qrcodegen: codeword placement did not consume all bits")
	}
}

// drawFormatBits draws the two redundant copies of the 15-bit format
// information (error correction level and mask, BCH-protected).
func (q *QrCode) drawFormatBits(mask Mask) {
	data := q.ecc.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("qrcodegen: format bits computation overflowed")
	}

	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.size-15+i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, q.size-8, true)
}

// drawVersion draws the two redundant copies of the 18-bit version
// information block. A no-op below version 7, where the standard omits it.
func (q *QrCode) drawVersion() {
	if q.version < 7 {
		return
	}

	rem := int(q.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(q.version)<<12 | rem
	if bits>>18 != 0 {
		panic("qrcodegen: version bits computation overflowed")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// applyMask XORs every non-function module with mask's predicate. Calling
// this twice with the same mask is its own inverse.
func (q *QrCode) applyMask(mask Mask) {
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if mask.predicate(x, y) && !q.isFunction[y][x] {
				q.modules[y][x] ^= 1
			}
		}
	}
}

// applyBestMask applies forced (if forced != autoMask) or the lowest-penalty
// of all 8 masks, redrawing format bits for each candidate tried, and
// returns the mask ultimately applied.
func (q *QrCode) applyBestMask(forced Mask) Mask {
	chosen := forced
	if forced == autoMask {
		minPenalty := math.MaxInt32
		for i := Mask(0); i < 8; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			if penalty := q.getPenaltyScore(); penalty < minPenalty {
				chosen = i
				minPenalty = penalty
			}
			q.applyMask(i) // XOR is its own inverse; undo before trying the next candidate.
		}
	}

	if chosen < 0 || chosen > 7 {
		panic("qrcodegen: mask value out of range")
	}

	q.applyMask(chosen)
	return chosen
}
