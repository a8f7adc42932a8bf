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

// Weights for the standard's four mask-penalty rules: N1 same-color runs of
// 5+, N2 2x2 same-color blocks, N3 finder-like run patterns, N4 dark/light
// imbalance.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// getPenaltyScore totals the four penalty rules over the symbol's current
// (masked) module state; lower is better, and applyBestMask keeps whichever
// mask minimizes it.
func (q *QrCode) getPenaltyScore() int {
	result := 0

	for y := 0; y < q.size; y++ {
		runColor := module(0)
		runX := 0
		var runHistory [7]int
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runX, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runX = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	for x := 0; x < q.size; x++ {
		runColor := module(0)
		runY := 0
		var runHistory [7]int
		for y := 0; y < q.size; y++ {
			if q.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runY, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runY = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	for y := 0; y < q.size-1; y++ {
		for x := 0; x < q.size-1; x++ {
			color := q.modules[y][x]
			if color == q.modules[y][x+1] && color == q.modules[y+1][x] && color == q.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, row := range q.modules {
		for _, color := range row {
			if color == 1 {
				dark++
			}
		}
	}
	total := q.size * q.size
	// Smallest k >= 0 such that (45-5k)% <= dark/total <= (55+5k)%.
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of
// runHistory, dropping the oldest entry. The very first run (runHistory[0]
// still unset) has the symbol's implicit light border added to its length.
func (q *QrCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.size
	}
	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns reports how many of the two possible
// finder-like run patterns (1:1:3:1:1 flanked by light runs of 4+) the
// history centered on runHistory[1..5] matches.
func (q *QrCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > q.size*3 {
		panic("qrcodegen: run history overflowed symbol size")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return boolToInt(core && runHistory[0] >= n*4 && runHistory[6] >= n) +
		boolToInt(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount finalizes a row or column's run history at
// its end (adding the light border) and returns its finder-pattern count.
func (q *QrCode) finderPenaltyTerminateAndCount(runColor module, runLength int, runHistory *[7]int) int {
	if runColor == 1 {
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.size
	q.finderPenaltyAddHistory(runLength, runHistory)
	return q.finderPenaltyCountPatterns(runHistory)
}
