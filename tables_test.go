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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, 1, 44},
		{3, 2, 34},
		{3, 3, 26},
		{6, 0, 136},
		{7, 0, 156},
		{9, 0, 232},
		{9, 1, 182},
		{12, 3, 158},
		{15, 0, 523},
		{16, 2, 325},
		{19, 3, 341},
		{21, 0, 932},
		{22, 0, 1006},
		{22, 1, 782},
		{22, 3, 442},
		{24, 0, 1174},
		{24, 3, 514},
		{28, 0, 1531},
		{30, 3, 745},
		{32, 3, 845},
		{33, 0, 2071},
		{33, 3, 901},
		{35, 0, 2306},
		{35, 1, 1812},
		{35, 2, 1286},
		{36, 3, 1054},
		{37, 3, 1096},
		{39, 1, 2216},
		{40, 1, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], numDataCodewords[tc[1]][tc[0]])
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{12, 3728},
		{15, 5243},
		{18, 7211},
		{22, 10068},
		{26, 13652},
		{32, 19723},
		{37, 25568},
		{40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[1], numRawDataModules[tc[0]])
		})
	}
}

func TestGetAlignmentPatternPositions(t *testing.T) {
	cases := [][9]int{
		{1, 0, -1, -1, -1, -1, -1, -1, -1},
		{2, 2, 6, 18, -1, -1, -1, -1, -1},
		{3, 2, 6, 22, -1, -1, -1, -1, -1},
		{6, 2, 6, 34, -1, -1, -1, -1, -1},
		{7, 3, 6, 22, 38, -1, -1, -1, -1},
		{8, 3, 6, 24, 42, -1, -1, -1, -1},
		{16, 4, 6, 26, 50, 74, -1, -1, -1},
		{25, 5, 6, 32, 58, 84, 110, -1, -1},
		{32, 6, 6, 34, 60, 86, 112, 138, -1},
		{33, 6, 6, 30, 58, 86, 114, 142, -1},
		{39, 7, 6, 26, 54, 82, 110, 138, 166},
		{40, 7, 6, 30, 58, 86, 114, 142, 170},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			pos := alignmentPatternPositions[tc[0]]
			assert.Equal(t, tc[1], len(pos))
			for i := 0; i < len(pos); i++ {
				assert.Equal(t, tc[i+2], int(pos[i]))
			}
		})
	}
}
