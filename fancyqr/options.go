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

// shapeKind distinguishes the handful of primitives Square/Circle/Rounded
// shapes render as.
type shapeKind int8

const (
	shapeSquare shapeKind = iota
	shapeCircle
	shapeRounded
)

// ModuleShape selects the SVG primitive used to draw a single dark data
// module. Build one with SquareModule, CircleModule, or
// RoundedSquareModule.
type ModuleShape struct {
	kind   shapeKind
	radius float64
}

// SquareModule draws each dark module as a unit <rect>.
func SquareModule() ModuleShape {
	return ModuleShape{kind: shapeSquare}
}

// CircleModule draws each dark module as an inscribed <circle>.
func CircleModule() ModuleShape {
	return ModuleShape{kind: shapeCircle}
}

// RoundedSquareModule draws each dark module as a unit <rect> with corner
// radius r, clamped to [0, 0.5].
func RoundedSquareModule(r float64) ModuleShape {
	return ModuleShape{kind: shapeRounded, radius: clamp(r, 0, 0.5)}
}

// FinderShape selects the corner radius used for the three finder
// patterns' outer, ring, and core squares. Build one with SquareFinder or
// RoundedFinder.
type FinderShape struct {
	kind   shapeKind
	radius float64
}

// SquareFinder draws finder patterns as plain squares.
func SquareFinder() FinderShape {
	return FinderShape{kind: shapeSquare}
}

// RoundedFinder draws finder patterns with corner radius r, clamped so the
// 3x3 core square remains drawable.
func RoundedFinder(r float64) FinderShape {
	return FinderShape{kind: shapeRounded, radius: clamp(r, 0, 1.5)}
}

// FancyOptions controls stylized SVG rendering: colors, module and finder
// shapes, the quiet-zone border width, and an optional center overlay
// (image or text, image wins if both are set).
type FancyOptions struct {
	Border          int
	ColorBackground string
	ColorData       string
	ColorFinder     string
	ShapeModule     ModuleShape
	ShapeFinder     FinderShape

	CenterText     string
	CenterImageURL string
	// OverlayScale is the fraction of the symbol's side the overlay image
	// or text silhouette occupies, in (0, 1]. Ignored if no overlay is set.
	OverlayScale float64
}

func defaultFancyOptions() *FancyOptions {
	return &FancyOptions{
		Border:          4,
		ColorBackground: "#FFFFFF",
		ColorData:       "#000000",
		ColorFinder:     "#000000",
		ShapeModule:     SquareModule(),
		ShapeFinder:     SquareFinder(),
		OverlayScale:    0.25,
	}
}

// FancyOption customizes NewFancyOptions.
type FancyOption func(*FancyOptions)

// WithBorder sets the quiet-zone width, in modules.
func WithBorder(border int) FancyOption {
	return func(o *FancyOptions) { o.Border = border }
}

// WithColors sets the background, data-module, and finder-pattern fill
// colors. Each must be a valid CSS color string; they are passed through
// to the SVG verbatim.
func WithColors(background, data, finder string) FancyOption {
	return func(o *FancyOptions) {
		o.ColorBackground = background
		o.ColorData = data
		o.ColorFinder = finder
	}
}

// WithModuleShape sets the primitive used for data modules.
func WithModuleShape(shape ModuleShape) FancyOption {
	return func(o *FancyOptions) { o.ShapeModule = shape }
}

// WithFinderShape sets the primitive used for finder patterns.
func WithFinderShape(shape FinderShape) FancyOption {
	return func(o *FancyOptions) { o.ShapeFinder = shape }
}

// WithCenterText sets a text overlay drawn over a reserved safe zone at
// the symbol's center. Clears any center image.
func WithCenterText(text string) FancyOption {
	return func(o *FancyOptions) {
		o.CenterText = text
		o.CenterImageURL = ""
	}
}

// WithCenterImageURL sets an image overlay drawn over a reserved safe zone
// at the symbol's center. Takes priority over center text if both are set.
func WithCenterImageURL(url string) FancyOption {
	return func(o *FancyOptions) { o.CenterImageURL = url }
}

// WithOverlayScale sets the fraction of the symbol's side the center
// overlay occupies.
func WithOverlayScale(scale float64) FancyOption {
	return func(o *FancyOptions) { o.OverlayScale = scale }
}

// NewFancyOptions builds a FancyOptions with sensible defaults (white
// background, black modules and finders, square shapes, no overlay),
// customized by opts.
func NewFancyOptions(opts ...FancyOption) *FancyOptions {
	o := defaultFancyOptions()
	for _, apply := range opts {
		apply(o)
	}
	return o
}

func (o *FancyOptions) hasOverlay() bool {
	return o.CenterText != "" || o.CenterImageURL != ""
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
