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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeTextRoundTripsSize(t *testing.T) {
	qr, err := EncodeText("Hello, world!", Medium)
	assert.NoError(t, err)
	assert.Equal(t, qr.Version().size(), qr.Size())
	assert.GreaterOrEqual(t, qr.Version().Value(), 1)
}

func TestEncodeBinary(t *testing.T) {
	qr, err := EncodeBinary([]byte{0x00, 0xFF, 0x10}, Low)
	assert.NoError(t, err)
	assert.NotNil(t, qr)
}

func TestEncodeTextBoostsECL(t *testing.T) {
	// Short text at Low easily fits a much higher ECC level at the chosen
	// version, so boosting should raise it above the requested Low.
	qr, err := EncodeText("A", Low)
	assert.NoError(t, err)
	assert.True(t, qr.ErrorCorrectionLevel() > Low)
}

func TestEncodeTextWithBoostECLDisabled(t *testing.T) {
	qr, err := EncodeSegmentsAdvanced(MakeSegments("A"), Low, WithBoostECL(false))
	assert.NoError(t, err)
	assert.Equal(t, Low, qr.ErrorCorrectionLevel())
}

func TestEncodeSegmentsAdvancedForcedMask(t *testing.T) {
	qr, err := EncodeSegmentsAdvanced(MakeSegments("force the mask"), Quartile, WithForcedMask(NewMask(3)))
	assert.NoError(t, err)
	assert.Equal(t, Mask(3), qr.Mask())
}

func TestEncodeSegmentsAdvancedVersionRange(t *testing.T) {
	qr, err := EncodeSegmentsAdvanced(MakeSegments("12345"), Low, WithMinVersion(Version(5)), WithMaxVersion(Version(10)))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, qr.Version().Value(), 5)
	assert.LessOrEqual(t, qr.Version().Value(), 10)
}

func TestEncodeSegmentsAdvancedMaxVersionIsRespected(t *testing.T) {
	// A genuine teacher bug: WithMaxVersion once wrote to minVersion instead
	// of maxVersion, silently widening the searched range upward instead of
	// capping it.
	_, err := EncodeSegmentsAdvanced(MakeSegments("a longer piece of text than version 1 alone can hold, by quite a lot"),
		High, WithMaxVersion(Version(1)))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataTooLong))
}

func TestEncodeSegmentsAdvancedPanicsOnInvalidVersionRange(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = EncodeSegmentsAdvanced(MakeSegments("x"), Low, WithMinVersion(Version(10)), WithMaxVersion(Version(5)))
	})
}

func TestEncodeSegmentsAdvancedPanicsOnInvalidMask(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = EncodeSegmentsAdvanced(MakeSegments("x"), Low, WithForcedMask(Mask(9)))
	})
}

func TestDataOverCapacityError(t *testing.T) {
	huge := make([]byte, 4000)
	_, err := EncodeBinary(huge, High)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataTooLong))
	var capErr *DataOverCapacityError
	assert.True(t, errors.As(err, &capErr))
	assert.Greater(t, capErr.NeededBits, capErr.MaxBits)
}

func TestGetModuleOutOfRangeIsLight(t *testing.T) {
	qr, err := EncodeText("x", Low)
	assert.NoError(t, err)
	assert.False(t, qr.GetModule(-1, -1))
	assert.False(t, qr.GetModule(qr.Size(), 0))
	assert.False(t, qr.GetModule(0, qr.Size()))
}

func TestAddECCAndInterleavePanicsOnWrongLength(t *testing.T) {
	qr := newBlankQrCode(Version(1), Low)
	qr.drawFunctionPatterns()
	assert.Panics(t, func() { qr.addECCAndInterleave(make([]byte, 1)) })
}

// Exercises the off-by-one once present in addECCAndInterleave: a
// single-block version (every version-1 symbol, regardless of ECL) has
// numBlocks == 1, which addECCAndInterleave's short/long-block split still
// treats as "one short block". The broken version skipped that block's
// first ECC byte instead of the intended padding gap, silently dropping a
// byte from the output. Verified against an independently written
// reference interleave (same per-block split, but plain column-major reads
// of the data bytes and then the ECC bytes, with no padding-gap trick), not
// against the production algorithm.
func TestAddECCAndInterleaveSingleBlockMatchesReference(t *testing.T) {
	const version = Version(1)
	for ecc := Low; ecc <= High; ecc++ {
		assert.Equal(t, 1, numErrorCorrectionBlocks[ecc][version])

		data := make([]byte, numDataCodewords[ecc][version])
		for i := range data {
			data[i] = byte(i*31 + 5)
		}

		qr := newBlankQrCode(version, ecc)
		got := qr.addECCAndInterleave(data)

		want := referenceInterleave(t, data, version, ecc)
		assert.Equal(t, want, got)
	}
}

// Exercises the addECCAndInterleave bug's other failure mode: a version
// with multiple blocks of two different lengths. The broken version's
// outer loop ran to the long block's length for every block, so reading a
// short block at that final index panicked on otherwise-valid input.
func TestAddECCAndInterleaveMixedBlocksMatchesReference(t *testing.T) {
	const version = Version(5)
	const ecc = Quartile
	assert.Greater(t, numErrorCorrectionBlocks[ecc][version], 1)

	data := make([]byte, numDataCodewords[ecc][version])
	for i := range data {
		data[i] = byte(i*7 + 1)
	}

	qr := newBlankQrCode(version, ecc)

	assert.NotPanics(t, func() {
		got := qr.addECCAndInterleave(data)
		want := referenceInterleave(t, data, version, ecc)
		assert.Equal(t, want, got)
	})
}

// TestEncodeBinaryAtMixedBlockVersionDoesNotPanic is an end-to-end check
// that a payload large enough to require a multi-block version with
// unequal block lengths encodes successfully instead of panicking partway
// through codeword interleaving.
func TestEncodeBinaryAtMixedBlockVersionDoesNotPanic(t *testing.T) {
	data := make([]byte, 120)
	for i := range data {
		data[i] = byte(i)
	}

	var qr *QrCode
	var err error
	assert.NotPanics(t, func() {
		qr, err = EncodeBinary(data, Quartile)
	})
	assert.NoError(t, err)
	assert.Greater(t, numErrorCorrectionBlocks[qr.ErrorCorrectionLevel()][qr.Version()], 1)
}

// referenceInterleave independently re-derives the expected interleaved
// codeword stream: split data into per-block chunks (short blocks first,
// per the standard) and compute each block's own Reed-Solomon remainder,
// then read the data bytes off column-by-column, skipping past the end of
// any block shorter than the current column, followed by the ECC bytes
// read off the same way.
func referenceInterleave(t *testing.T, data []byte, version Version, ecc ECL) []byte {
	t.Helper()

	numBlocks := numErrorCorrectionBlocks[ecc][version]
	eccLen := eccCodewordsPerBlock[ecc][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockDataLen := rawCodewords/numBlocks - eccLen
	divisor := reedSolomonDivisors[eccLen]

	blocks := make([][]byte, numBlocks)
	eccs := make([][]byte, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockDataLen
		if i >= numShortBlocks {
			dataLen++
		}
		blockData := append([]byte{}, data[k:k+dataLen]...)
		k += dataLen
		blocks[i] = blockData
		eccs[i] = reedSolomonComputeRemainder(blockData, divisor)
	}
	assert.Equal(t, len(data), k)

	want := make([]byte, 0, rawCodewords)
	for _, group := range [][][]byte{blocks, eccs} {
		maxLen := 0
		for _, b := range group {
			if len(b) > maxLen {
				maxLen = len(b)
			}
		}
		for c := 0; c < maxLen; c++ {
			for _, b := range group {
				if c < len(b) {
					want = append(want, b[c])
				}
			}
		}
	}

	return want
}
