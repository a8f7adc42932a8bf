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

import (
	"fmt"
	"strings"
)

const svgHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
	"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"

// ToSVGString renders q as a plain SVG document: a light full-area
// rectangle plus a single dark path aggregating every dark module. The
// viewBox covers size+2*border modules; moduleSize scales only the
// document's physical width/height attributes, not the viewBox units.
//
// Panics if border is negative.
func (q *QrCode) ToSVGString(border int, moduleSize float64) string {
	if border < 0 {
		panic("qrcodegen: border must be non-negative")
	}

	dim := q.size + border*2
	var sb strings.Builder
	sb.WriteString(svgHeader)
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" "+
		"width=\"%.3g\" height=\"%.3g\" stroke=\"none\">\n", dim, float64(dim)*moduleSize, float64(dim)*moduleSize)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == 1 {
				if !first {
					sb.WriteString(" ")
				}
				first = false
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String()
}

// ToAsciiArt renders q as a grid of block characters, two per module (dark
// = "██", light = "  "), padded by a border-module quiet zone on every
// side.
//
// Panics if border is negative.
func (q *QrCode) ToAsciiArt(border int) string {
	if border < 0 {
		panic("qrcodegen: border must be non-negative")
	}

	var sb strings.Builder
	for y := -border; y < q.size+border; y++ {
		for x := -border; x < q.size+border; x++ {
			if q.GetModule(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToDebugString renders a compact human-readable summary of q: its
// version, size, error correction level, mask, and module grid using
// light/dark block glyphs, one line per row.
func (q *QrCode) ToDebugString() string {
	var sb strings.Builder
	sb.WriteString("QrCode\n")
	fmt.Fprintf(&sb, "\tVersion: %d\n", q.version)
	fmt.Fprintf(&sb, "\tSize: %d\n", q.size)
	fmt.Fprintf(&sb, "\tErrorCorrectionLevel: %s\n", q.ecc)
	fmt.Fprintf(&sb, "\tMask: %d\n", q.mask)
	sb.WriteString("\tModules\n")
	for y := 0; y < q.size; y++ {
		sb.WriteString("\t\t")
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == 1 {
				sb.WriteString("█")
			} else {
				sb.WriteString("░")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
