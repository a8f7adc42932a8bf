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

// Command qrdemo encodes a string argument and opens the result, plain or
// fancy, in the system's default browser. It exists to exercise the
// library interactively; it is not part of the qrcodegen API surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/qrglyph/qrcodegen"
	"github.com/qrglyph/qrcodegen/fancyqr"
)

func main() {
	var (
		fancy      = flag.Bool("fancy", false, "render with the stylized SVG renderer")
		border     = flag.Int("border", 4, "quiet-zone border, in modules")
		centerText = flag.String("center-text", "", "fancy mode only: text to overlay at the symbol's center")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrdemo [-fancy] [-border n] [-center-text s] <text>")
		os.Exit(2)
	}
	text := flag.Arg(0)

	var svg string
	if *fancy {
		fq, err := fancyqr.FromText(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qrdemo:", err)
			os.Exit(1)
		}
		opts := []fancyqr.FancyOption{fancyqr.WithBorder(*border)}
		if *centerText != "" {
			opts = append(opts, fancyqr.WithCenterText(*centerText))
		}
		svg = fq.RenderSVG(fancyqr.NewFancyOptions(opts...))
	} else {
		qr, err := qrcodegen.EncodeText(text, qrcodegen.Quartile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qrdemo:", err)
			os.Exit(1)
		}
		svg = qr.ToSVGString(*border, 10)
	}

	tmp, err := os.CreateTemp("", "qrdemo-*.svg")
	if err != nil {
		fmt.Fprintln(os.Stderr, "qrdemo:", err)
		os.Exit(1)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(svg); err != nil {
		fmt.Fprintln(os.Stderr, "qrdemo:", err)
		os.Exit(1)
	}
	if err := tmp.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "qrdemo:", err)
		os.Exit(1)
	}

	if err := browser.OpenFile(tmp.Name()); err != nil {
		fmt.Fprintln(os.Stderr, "qrdemo:", err)
		os.Exit(1)
	}
}
