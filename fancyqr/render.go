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

package fancyqr

import (
	"fmt"
	"math"
	"strings"
)

const svgHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
	"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"

// safeZone is the centered square, in module coordinates, reserved for a
// center overlay. An empty safeZone (side == 0) means no overlay applies.
type safeZone struct {
	start, side int
}

func (s safeZone) contains(x, y int) bool {
	return s.side > 0 && x >= s.start && x < s.start+s.side && y >= s.start && y < s.start+s.side
}

// RenderSVG draws f as a stylized SVG document per opts: a background
// rect, one primitive per eligible dark data module, three styled finder
// patterns, and an optional center overlay. If opts is nil, defaults are
// used.
func (f *FancyQr) RenderSVG(opts *FancyOptions) string {
	if opts == nil {
		opts = defaultFancyOptions()
	}

	size := f.qr.Size()
	border := opts.Border
	dim := size + border*2

	var sz safeZone
	if opts.hasOverlay() {
		side := int(math.Ceil(float64(size)*opts.OverlayScale)) + 2
		sz = safeZone{start: (size - side) / 2, side: side}
	}

	var sb strings.Builder
	sb.WriteString(svgHeader)
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dim)
	fmt.Fprintf(&sb, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", opts.ColorBackground)

	f.renderDataModules(&sb, opts, sz)
	f.renderFinders(&sb, opts)
	f.renderOverlay(&sb, opts, sz)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (f *FancyQr) renderDataModules(sb *strings.Builder, opts *FancyOptions, sz safeZone) {
	size := f.qr.Size()
	border := opts.Border
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !f.qr.GetModule(x, y) || inFinderZone(x, y, size) || sz.contains(x, y) {
				continue
			}
			writeModuleShape(sb, opts.ShapeModule, float64(x+border), float64(y+border), opts.ColorData)
		}
	}
}

// inFinderZone reports whether (x, y) falls in one of the three 8x8
// finder zones (7x7 pattern plus its separator ring) at the corners.
func inFinderZone(x, y, size int) bool {
	inTopBand := y < 8
	inBottomBand := y >= size-8
	inLeftBand := x < 8
	inRightBand := x >= size-8
	return (inLeftBand && inTopBand) || (inRightBand && inTopBand) || (inLeftBand && inBottomBand)
}

func writeModuleShape(sb *strings.Builder, shape ModuleShape, x, y float64, color string) {
	switch shape.kind {
	case shapeCircle:
		fmt.Fprintf(sb, "\t<circle cx=\"%s\" cy=\"%s\" r=\"0.5\" fill=\"%s\"/>\n", fnum(x+0.5), fnum(y+0.5), color)
	case shapeRounded:
		fmt.Fprintf(sb, "\t<rect x=\"%s\" y=\"%s\" width=\"1\" height=\"1\" rx=\"%s\" fill=\"%s\"/>\n",
			fnum(x), fnum(y), fnum(shape.radius), color)
	default:
		fmt.Fprintf(sb, "\t<rect x=\"%s\" y=\"%s\" width=\"1\" height=\"1\" fill=\"%s\"/>\n", fnum(x), fnum(y), color)
	}
}

// finderCorners returns the module-space top-left corner of each of the
// three 7x7 finder patterns, in the fixed order top-left, top-right,
// bottom-left.
func finderCorners(size int) [3][2]int {
	return [3][2]int{
		{0, 0},
		{size - 7, 0},
		{0, size - 7},
	}
}

func (f *FancyQr) renderFinders(sb *strings.Builder, opts *FancyOptions) {
	border := opts.Border
	for _, corner := range finderCorners(f.qr.Size()) {
		fx, fy := float64(corner[0]+border), float64(corner[1]+border)
		writeFinderSquare(sb, opts.ShapeFinder, fx, fy, 7, opts.ColorFinder)
		writeFinderSquare(sb, opts.ShapeFinder, fx+1, fy+1, 5, opts.ColorBackground)
		writeFinderSquare(sb, opts.ShapeFinder, fx+2, fy+2, 3, opts.ColorFinder)
	}
}

func writeFinderSquare(sb *strings.Builder, shape FinderShape, x, y, side float64, color string) {
	if shape.kind == shapeRounded {
		radius := math.Min(shape.radius, side/2)
		fmt.Fprintf(sb, "\t<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" rx=\"%s\" ry=\"%s\" fill=\"%s\"/>\n",
			fnum(x), fnum(y), fnum(side), fnum(side), fnum(radius), fnum(radius), color)
		return
	}
	fmt.Fprintf(sb, "\t<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\"/>\n",
		fnum(x), fnum(y), fnum(side), fnum(side), color)
}

func (f *FancyQr) renderOverlay(sb *strings.Builder, opts *FancyOptions, sz safeZone) {
	if sz.side == 0 {
		return
	}
	border := opts.Border
	center := float64(f.qr.Size())/2 + float64(border)

	if opts.CenterImageURL != "" {
		imgSide := float64(f.qr.Size()) * opts.OverlayScale
		fmt.Fprintf(sb, "\t<image href=\"%s\" x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" preserveAspectRatio=\"xMidYMid meet\"/>\n",
			opts.CenterImageURL, fnum(center-imgSide/2), fnum(center-imgSide/2), fnum(imgSide), fnum(imgSide))
		return
	}

	if opts.CenterText != "" {
		safeX, safeY := float64(sz.start+border), float64(sz.start+border)
		safeSide := float64(sz.side)
		fmt.Fprintf(sb, "\t<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\"/>\n",
			fnum(safeX), fnum(safeY), fnum(safeSide), fnum(safeSide), opts.ColorBackground)
		fontSize := safeSide * 0.6
		fmt.Fprintf(sb, "\t<text x=\"%s\" y=\"%s\" font-size=\"%s\" text-anchor=\"middle\" dominant-baseline=\"central\" fill=\"%s\">%s</text>\n",
			fnum(center), fnum(center), fnum(fontSize), opts.ColorFinder, opts.CenterText)
	}
}

// fnum formats an SVG coordinate/length with minimal digits.
func fnum(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}
