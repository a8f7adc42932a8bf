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
	"fmt"
)

// ErrDataTooLong is the sentinel both DataTooLong error shapes unwrap to.
// Callers that don't care which shape occurred can test with
// errors.Is(err, ErrDataTooLong).
var ErrDataTooLong = errors.New("qrcodegen: data too long")

// SegmentTooLongError means the segments' bit payloads would overflow the
// 32768-bit bit buffer, or a segment's character count does not fit its
// mode's char-count field width at any version in the requested range.
type SegmentTooLongError struct {
	reason string
}

func (e *SegmentTooLongError) Error() string {
	return fmt.Sprintf("qrcodegen: segment too long: %s", e.reason)
}

// Unwrap lets callers match this against ErrDataTooLong.
func (e *SegmentTooLongError) Unwrap() error {
	return ErrDataTooLong
}

// DataOverCapacityError means the segments fit their own field widths but
// exceed the data capacity of every version in the requested range.
type DataOverCapacityError struct {
	NeededBits int
	MaxBits    int
}

func (e *DataOverCapacityError) Error() string {
	return fmt.Sprintf("qrcodegen: data length = %d bits, max capacity = %d bits", e.NeededBits, e.MaxBits)
}

// Unwrap lets callers match this against ErrDataTooLong.
func (e *DataOverCapacityError) Unwrap() error {
	return ErrDataTooLong
}
