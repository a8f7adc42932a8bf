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

// module is one cell of a QR symbol: 0 (light) or 1 (dark). It is stored as
// a small integer, rather than bool, so masking can XOR it directly.
type module int8

// QrCode is an immutable QR Code Model 2 symbol: a square grid of dark and
// light modules plus the version, error correction level, and mask that
// produced it. Build one with EncodeText, EncodeBinary, EncodeSegments, or
// EncodeSegmentsAdvanced; there is no way to mutate one after construction.
type QrCode struct {
	version Version
	size    int
	ecc     ECL
	mask    Mask

	modules    [][]module // size x size.
	isFunction [][]bool   // Scratch grid, discarded once drawing completes.
}

// EncodeText encodes text at the given error correction level, splitting it
// into segments automatically and choosing the smallest version that fits.
func EncodeText(text string, ecc ECL) (*QrCode, error) {
	return EncodeSegments(MakeSegments(text), ecc)
}

// EncodeBinary encodes arbitrary bytes as a single byte-mode segment at the
// given error correction level.
func EncodeBinary(data []byte, ecc ECL) (*QrCode, error) {
	return EncodeSegments([]*QrSegment{MakeBytes(data)}, ecc)
}

// EncodeSegments encodes pre-built segments at the given error correction
// level, searching the full version range with ECC-level boosting and
// automatic mask selection.
func EncodeSegments(segs []*QrSegment, ecc ECL) (*QrCode, error) {
	return EncodeSegmentsAdvanced(segs, ecc)
}

// EncodeSegmentsAdvanced encodes pre-built segments with full control over
// the searched version range, mask selection, and ECC-level boosting, via
// EncodeOption values such as WithMinVersion or WithForcedMask.
//
// Returns a *SegmentTooLongError or *DataOverCapacityError if segs cannot
// fit in any version in range.
func EncodeSegmentsAdvanced(segs []*QrSegment, ecc ECL, opts ...EncodeOption) (*QrCode, error) {
	o := defaultEncodeOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if o.minVersion < MinVersion || MaxVersion < o.maxVersion || o.maxVersion < o.minVersion {
		panic("qrcodegen: invalid version range")
	}
	if o.mask != autoMask && (o.mask < 0 || o.mask > 7) {
		panic("qrcodegen: mask value out of range")
	}

	version, usedBits, err := chooseVersion(segs, ecc, o.minVersion, o.maxVersion)
	if err != nil {
		return nil, err
	}

	if o.boostECL {
		ecc = boostECL(ecc, usedBits, version)
	}

	dataCodewords, err := assembleCodewords(segs, version, ecc, usedBits)
	if err != nil {
		return nil, err
	}

	qr := newBlankQrCode(version, ecc)
	qr.drawFunctionPatterns()
	all := qr.addECCAndInterleave(dataCodewords)
	qr.drawCodewords(all)
	qr.mask = qr.applyBestMask(o.mask)
	qr.drawFormatBits(qr.mask)
	qr.isFunction = nil

	return qr, nil
}

// chooseVersion finds the smallest version in [minVersion, maxVersion] whose
// data capacity at ecc admits segs, per the T(v) formula of §4.2.
func chooseVersion(segs []*QrSegment, ecc ECL, minVersion, maxVersion Version) (Version, int, error) {
	payloadBits := 0
	for _, seg := range segs {
		payloadBits += seg.Data.len()
		if payloadBits > maxBitBufferLen {
			return 0, 0, &SegmentTooLongError{reason: "segment payloads exceed the bit buffer limit"}
		}
	}

	for v := minVersion; v <= maxVersion; v++ {
		capacityBits := numDataCodewords[ecc][v] * 8
		usedBits := getTotalBits(segs, v)
		if usedBits != -1 && usedBits <= capacityBits {
			return v, usedBits, nil
		}

		if v == maxVersion {
			if usedBits == -1 {
				return 0, 0, &SegmentTooLongError{reason: "a segment's character count does not fit its mode's count field at any version in range"}
			}
			maxCapacityBits := numDataCodewords[ecc][maxVersion] * 8
			return 0, 0, &DataOverCapacityError{NeededBits: usedBits, MaxBits: maxCapacityBits}
		}
	}

	panic("qrcodegen: unreachable version search")
}

// boostECL raises ecc to the highest level whose capacity at version still
// admits usedBits, without changing the version.
func boostECL(ecc ECL, usedBits int, version Version) ECL {
	for _, candidate := range []ECL{Medium, Quartile, High} {
		if candidate > ecc && usedBits <= numDataCodewords[candidate][version]*8 {
			ecc = candidate
		}
	}
	return ecc
}

// assembleCodewords concatenates the segment headers and payloads, appends
// the terminator and padding, and packs the result into 8-bit codewords.
func assembleCodewords(segs []*QrSegment, version Version, ecc ECL, usedBits int) ([]byte, error) {
	capacityBits := numDataCodewords[ecc][version] * 8
	if usedBits > capacityBits {
		panic("qrcodegen: boosted ECC level no longer fits the chosen version")
	}
	if capacityBits > maxBitBufferLen {
		return nil, &SegmentTooLongError{reason: "data capacity exceeds the bit buffer limit"}
	}

	bb := make(bitBuffer, 0, capacityBits)
	for _, seg := range segs {
		bb.appendBits(int(seg.Mode.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}
	if bb.len() != usedBits {
		panic("qrcodegen: segment assembly length mismatch")
	}

	bb.appendBits(0, int8(min(4, capacityBits-bb.len()))) // Terminator: up to four 0-bits, never past capacity.
	bb.appendBits(0, int8((8-bb.len()%8)%8))               // Pad to the next byte boundary.
	if bb.len()%8 != 0 {
		panic("qrcodegen: padding left a partial byte")
	}

	for padByte := 0xEC; bb.len() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	codewords := make([]byte, bb.len()/8)
	for i, bit := range bb {
		codewords[i>>3] |= byte(bit) << (7 - uint(i&7))
	}

	return codewords, nil
}

func newBlankQrCode(version Version, ecc ECL) *QrCode {
	size := version.size()
	qr := &QrCode{
		version:    version,
		size:       size,
		ecc:        ecc,
		modules:    make([][]module, size),
		isFunction: make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		qr.modules[i] = make([]module, size)
		qr.isFunction[i] = make([]bool, size)
	}

	return qr
}

// addECCAndInterleave splits data into the standard's error-correction
// blocks, computes each block's Reed-Solomon codewords, and interleaves
// data then ECC bytes column-first across blocks.
func (q *QrCode) addECCAndInterleave(data []byte) []byte {
	if len(data) != numDataCodewords[q.ecc][q.version] {
		panic("qrcodegen: data is not the expected length")
	}

	numBlocks := numErrorCorrectionBlocks[q.ecc][q.version]
	blockECCLen := eccCodewordsPerBlock[q.ecc][q.version]
	rawCodewords := numRawDataModules[q.version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockDataLen := rawCodewords/numBlocks - blockECCLen

	// Every block is allocated at the long-block length, even short ones: a
	// short block leaves its byte at index shortBlockDataLen unset (the ECC
	// bytes land at the tail instead), so every block's ECC lines up at the
	// same offset from the end and the interleave loop below can skip that
	// one gap byte uniformly.
	blocks := make([][]byte, numBlocks)
	divisor := reedSolomonDivisors[blockECCLen]
	longBlockLen := shortBlockDataLen + 1 + blockECCLen
	for i, k := 0, 0; i < numBlocks; i++ {
		dataLen := shortBlockDataLen
		if i >= numShortBlocks {
			dataLen++
		}
		blockData := data[k : k+dataLen]
		k += dataLen

		block := make([]byte, longBlockLen)
		copy(block, blockData)
		copy(block[longBlockLen-blockECCLen:], reedSolomonComputeRemainder(blockData, divisor))
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	k := 0
	for i := 0; i < len(blocks[numBlocks-1]); i++ {
		for j := 0; j < numBlocks; j++ {
			// Short blocks have no data byte at the position long blocks' extra
			// byte occupies; skip that slot instead of reading their first ECC
			// byte early.
			if i != shortBlockDataLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}

// Size returns the width and height of the symbol, in modules.
func (q *QrCode) Size() int {
	return q.size
}

// GetModule reports whether the module at (x, y) is dark. Coordinates
// outside [0, Size()) are treated as light, matching the implicit infinite
// light quiet zone surrounding every symbol.
func (q *QrCode) GetModule(x, y int) bool {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false
	}
	return q.modules[y][x] != 0
}

// Version returns the version this symbol was encoded at.
func (q *QrCode) Version() Version {
	return q.version
}

// Mask returns the mask pattern this symbol was drawn with.
func (q *QrCode) Mask() Mask {
	return q.mask
}

// ErrorCorrectionLevel returns the error correction level this symbol was
// encoded at, which may be higher than requested if ECL boosting applied.
func (q *QrCode) ErrorCorrectionLevel() ECL {
	return q.ecc
}

func (q *QrCode) setFunctionModule(x, y int, dark bool) {
	q.modules[y][x] = boolToModule(dark)
	q.isFunction[y][x] = true
}
