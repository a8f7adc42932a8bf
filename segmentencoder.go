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

// encodeOptions holds the advanced parameters EncodeSegmentsAdvanced
// accepts: the searched version range, an optional forced mask, and
// whether to boost the ECC level after the version is chosen.
type encodeOptions struct {
	boostECL   bool
	mask       Mask
	minVersion Version
	maxVersion Version
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		boostECL:   true,
		mask:       autoMask,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
	}
}

// EncodeOption customizes EncodeSegmentsAdvanced.
type EncodeOption func(*encodeOptions)

// WithAutoMask requests automatic mask selection (the default): all 8
// masks are tried and the lowest-penalty one is kept.
func WithAutoMask() EncodeOption {
	return func(o *encodeOptions) {
		o.mask = autoMask
	}
}

// WithForcedMask pins the encoder to a single mask, skipping penalty
// scoring entirely.
func WithForcedMask(mask Mask) EncodeOption {
	return func(o *encodeOptions) {
		o.mask = mask
	}
}

// WithBoostECL controls whether the ECC level is raised after version
// selection, as far as the chosen version's capacity allows.
func WithBoostECL(boost bool) EncodeOption {
	return func(o *encodeOptions) {
		o.boostECL = boost
	}
}

// WithMinVersion sets the smallest version the encoder may choose.
func WithMinVersion(version Version) EncodeOption {
	return func(o *encodeOptions) {
		o.minVersion = version
	}
}

// WithMaxVersion sets the largest version the encoder may choose.
func WithMaxVersion(version Version) EncodeOption {
	return func(o *encodeOptions) {
		o.maxVersion = version
	}
}
