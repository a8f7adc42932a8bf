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

func TestReedSolomonComputeDivisor(t *testing.T) {
	generator := reedSolomonComputeDivisor(1)
	assert.Equal(t, byte(0x01), generator[0])

	generator = reedSolomonComputeDivisor(2)
	assert.Equal(t, byte(0x03), generator[0])
	assert.Equal(t, byte(0x02), generator[1])

	generator = reedSolomonComputeDivisor(5)
	assert.Equal(t, byte(0x1F), generator[0])
	assert.Equal(t, byte(0xC6), generator[1])
	assert.Equal(t, byte(0x3F), generator[2])
	assert.Equal(t, byte(0x93), generator[3])
	assert.Equal(t, byte(0x74), generator[4])

	generator = reedSolomonComputeDivisor(30)
	assert.Equal(t, byte(0xD4), generator[0])
	assert.Equal(t, byte(0xF6), generator[1])
	assert.Equal(t, byte(0xC0), generator[5])
	assert.Equal(t, byte(0x16), generator[12])
	assert.Equal(t, byte(0xD9), generator[13])
	assert.Equal(t, byte(0x12), generator[20])
	assert.Equal(t, byte(0x6A), generator[27])
	assert.Equal(t, byte(0x96), generator[29])
}

func TestReedSolomonComputeDivisorPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { reedSolomonComputeDivisor(0) })
	assert.Panics(t, func() { reedSolomonComputeDivisor(256) })
}

func TestReedSolomonComputeRemainder(t *testing.T) {
	generator := reedSolomonComputeDivisor(3)
	remainder := reedSolomonComputeRemainder([]byte{0}, generator)
	assert.Equal(t, []byte{0, 0, 0}, remainder)

	remainder = reedSolomonComputeRemainder([]byte{0, 1}, generator)
	assert.Equal(t, generator, remainder)

	generator = reedSolomonComputeDivisor(5)
	remainder = reedSolomonComputeRemainder([]byte{0x03, 0x3A, 0x60, 0x12, 0xC7}, generator)
	assert.Equal(t, []byte{0xCB, 0x36, 0x16}, remainder[:3])

	generator = reedSolomonComputeDivisor(30)
	data := []byte{
		0x38, 0x71, 0xDB, 0xF9, 0xD7, 0x28, 0xF6, 0x8E, 0xFE, 0x5E,
		0xE6, 0x7D, 0x7D, 0xB2, 0xA5, 0x58, 0xBC, 0x28, 0x23, 0x53,
		0x14, 0xD5, 0x61, 0xC0, 0x20, 0x6C, 0xDE, 0xDE, 0xFC, 0x79,
		0xB0, 0x8B, 0x78, 0x6B, 0x49, 0xD0, 0x1A, 0xAD, 0xF3, 0xEF,
		0x52, 0x7D, 0x9A,
	}
	remainder = reedSolomonComputeRemainder(data, generator)
	assert.Len(t, remainder, 30)
	assert.Equal(t, byte(0xCE), remainder[0])
	assert.Equal(t, byte(0xF0), remainder[1])
	assert.Equal(t, byte(0x31), remainder[2])
	assert.Equal(t, byte(0xDE), remainder[3])
	assert.Equal(t, byte(0xE1), remainder[8])
	assert.Equal(t, byte(0xCA), remainder[12])
	assert.Equal(t, byte(0xE3), remainder[17])
	assert.Equal(t, byte(0x85), remainder[19])
	assert.Equal(t, byte(0x50), remainder[20])
	assert.Equal(t, byte(0xBE), remainder[24])
	assert.Equal(t, byte(0xB3), remainder[29])
}

func TestReedSolomonMultiply(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], reedSolomonMultiply(tc[0], tc[1]))
		})
	}
}
