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

// Package fancyqr renders a qrcodegen.QrCode as a stylized SVG: custom
// module and finder shapes, plus an optional center image or text overlay
// over a reserved safe zone.
package fancyqr

import "github.com/qrglyph/qrcodegen"

// FancyQr wraps an immutable QrCode for stylized rendering. It carries no
// state of its own beyond the wrapped code; all styling lives in the
// FancyOptions passed to RenderSVG.
type FancyQr struct {
	qr *qrcodegen.QrCode
}

// FromText encodes text at ErrorCorrectionLevel = High, the level the
// safe-zone overlay reservation assumes, and wraps the result.
func FromText(text string) (*FancyQr, error) {
	qr, err := qrcodegen.EncodeText(text, qrcodegen.High)
	if err != nil {
		return nil, err
	}
	return FromQrCode(qr), nil
}

// FromQrCode wraps an already-encoded QrCode. The caller is responsible
// for its error correction level; overlays are only guaranteed scannable
// at High.
func FromQrCode(qr *qrcodegen.QrCode) *FancyQr {
	return &FancyQr{qr: qr}
}

// QrCode returns the wrapped code.
func (f *FancyQr) QrCode() *qrcodegen.QrCode {
	return f.qr
}
