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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// QrSegment is a single chunk of a QR code's payload: a mode, the count of
// unencoded symbols it represents, and its already-encoded bit payload. A
// QR code's data region is the concatenation of one or more segments.
type QrSegment struct {
	Mode     SegmentMode
	NumChars int
	Data     bitBuffer
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the number of bits needed to encode segs at the
// given version, or -1 if a segment's character count overflows its
// mode's char-count field at that version, or if the sum itself would
// overflow.
func getTotalBits(segs []*QrSegment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}

// MakeAlphanumeric creates a segment from text drawn from the 45-character
// alphanumeric set (digits, uppercase letters, space, $ % * + - . / :).
//
// Panics if text contains a character outside that set.
func MakeAlphanumeric(text string) *QrSegment {
	if !alphanumericRegexp.MatchString(text) {
		panic("qrcodegen: string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Pack pairs into 11 bits each.
		temp := strings.IndexByte(alphanumericCharset, text[i]) * 45
		temp += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(temp, 11)
	}
	if i < len(text) { // One trailing character packs into 6 bits.
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return &QrSegment{Mode: Alphanumeric, NumChars: len(text), Data: bb}
}

// MakeBytes creates a byte-mode segment from arbitrary data; every byte
// becomes 8 bits of payload.
func MakeBytes(data []byte) *QrSegment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &QrSegment{Mode: Byte, NumChars: len(data), Data: bb}
}

// MakeNumeric creates a segment from a string of ASCII digits, packing
// groups of three digits into 10 bits, a trailing pair into 7, and a
// trailing single digit into 4.
//
// Panics if digits contains a non-digit character.
func MakeNumeric(digits string) *QrSegment {
	if !numericRegexp.MatchString(digits) {
		panic("qrcodegen: string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp already confirmed digits only.
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &QrSegment{Mode: Numeric, NumChars: len(digits), Data: bb}
}

// MakeECI creates a segment designating an Extended Channel Interpretation
// assignment number, encoded as 8, 16, or 24 bits depending on magnitude.
//
// Returns an error if assignValue exceeds the largest value ECI can encode
// (999999).
func MakeECI(assignValue int) (*QrSegment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 0:
		return nil, fmt.Errorf("qrcodegen: ECI assignment value negative")
	case assignValue <= 127:
		bb.appendBits(assignValue, 8)
	case assignValue <= 16383:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue <= 999999:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, fmt.Errorf("qrcodegen: ECI assignment value out of range: %d", assignValue)
	}

	return &QrSegment{Mode: ECI, NumChars: 0, Data: bb}, nil
}

// MakeSegments partitions text into one or more segments, choosing for
// each maximal run of characters the narrowest mode that run's characters
// all support (numeric, then alphanumeric, then byte — non-ASCII always
// forces byte). This is a simple greedy strategy, not a dynamic-programming
// optimum over mode-switch costs, but for ASCII input it never needs more
// bits than encoding the whole string in byte mode.
//
// Known deviation: a numeric run bordered by an alphanumeric run is kept as
// its own segment rather than folded into its neighbor, so input that
// alternates single digits with alphanumeric characters (e.g. "A1A1A1")
// pays a mode-switch header on every run instead of sharing one. Merging is
// only worth it when the run is short enough that the extra header outweighs
// encoding its digits at alphanumeric's wider per-character cost, which
// depends on the final version's char-count field width — not yet known at
// segmentation time — so it is left unmerged rather than guessed at.
func MakeSegments(text string) []*QrSegment {
	runes := []rune(text)
	if len(runes) == 0 {
		return []*QrSegment{}
	}

	segments := make([]*QrSegment, 0, 4)
	for i := 0; i < len(runes); {
		class := classifyRune(runes[i])
		j := i + 1
		for j < len(runes) && classifyRune(runes[j]) == class {
			j++
		}

		run := string(runes[i:j])
		switch class {
		case runeClassNumeric:
			segments = append(segments, MakeNumeric(run))
		case runeClassAlphanumeric:
			segments = append(segments, MakeAlphanumeric(run))
		default:
			segments = append(segments, MakeBytes([]byte(run)))
		}
		i = j
	}

	return segments
}

type runeClass int

const (
	runeClassNumeric runeClass = iota
	runeClassAlphanumeric
	runeClassByte
)

func classifyRune(r rune) runeClass {
	if r >= '0' && r <= '9' {
		return runeClassNumeric
	}
	if r <= 0xFF && strings.ContainsRune(alphanumericCharset, r) {
		return runeClassAlphanumeric
	}
	return runeClassByte
}
