// seehuhn.de/go/apstream - appearance streams for PDF annotations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Apstream-demo builds appearance streams for sample annotations, using an
// in-memory annotation dictionary, and prints the resulting content
// streams.  By default one stream per annotation kind is shown, each
// preceded by a header line.
//
// Usage:
//
//	apstream-demo [options]
//
// For example, "apstream-demo -kind squiggly -rect 72,700,272,712" prints
// only the stream of a squiggly underline.  Headers for a single kind are
// only shown when writing to a terminal.  With -v, the log messages of the
// builders are written to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/appearance"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/logging"
	"seehuhn.de/go/apstream/path"
	"seehuhn.de/go/apstream/raster"
	"seehuhn.de/go/apstream/textlayout"
)

const defaultSignature = "M 10 10 C 20 40 30 -10 40 20 C 45 35 55 5 60 15 L 90 12"

func main() {
	kindArg := flag.String("kind", "all", "annotation kind: all, "+strings.Join(kinds, ", "))
	modeArg := flag.String("mode", "N", "appearance to write (N, R or D)")
	rectArg := flag.String("rect", "100,100,300,160", "annotation rectangle `llx,lly,urx,ury`")
	colorArg := flag.String("color", "", "color as `rrggbb` hex value")
	text := flag.String("text", "", "text for free text, text field and watermark annotations")
	svg := flag.String("svg", defaultSignature, "SVG path data for signatures")
	pngOut := flag.String("png", "", "write a preview of the signature strokes to this PNG `file`")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode, err := engine.ParseMode(*modeArg)
	check(err)
	rect, err := parseRect(*rectArg)
	check(err)
	var col *apstream.Color
	if *colorArg != "" {
		c, err := parseColor(*colorArg)
		check(err)
		col = &c
	}

	strokes := func() []path.Stroke {
		c := apstream.Blue
		if col != nil {
			c = *col
		}
		s, err := appearance.StrokeFromSVG(*svg, 1.5, c)
		check(err)
		fitted, err := appearance.FitStrokes([]path.Stroke{s}, rect.Dx(), rect.Dy(), true)
		check(err)
		return fitted
	}

	selected := kinds
	if *kindArg != "all" {
		selected = []string{*kindArg}
	}
	headers := len(selected) > 1 || term.IsTerminal(int(os.Stdout.Fd()))
	for _, kind := range selected {
		annot := engine.NewMemory()
		check(annot.SetRect(rect))
		check(build(annot, kind, mode, rect, col, *text, strokes))

		data, err := annot.Appearance(mode)
		check(err)
		if headers {
			fmt.Printf("%% %s %s, %d bytes, keys %s\n",
				kind, mode, len(data), strings.Join(annot.Keys(), " "))
		}
		os.Stdout.Write(data)
	}

	if *pngOut != "" {
		check(writePreview(*pngOut, rect, strokes()))
	}
}

var kinds = []string{
	"highlight", "underline", "strikeout", "squiggly",
	"line", "polygon", "polyline", "square",
	"watermark", "freetext", "textfield",
	"signature", "signature-bitmap",
}

func build(annot *engine.Memory, kind string, mode engine.Mode, rect apstream.Rect, col *apstream.Color, text string, strokes func() []path.Stroke) error {
	quads := []apstream.QuadPoint{apstream.Quad(rect)}
	markup := &appearance.MarkupConfig{Color: col, Mode: mode}
	shape := &appearance.ShapeConfig{StrokeColor: col, StrokeWidth: 2, Mode: mode}

	switch kind {
	case "highlight":
		return appearance.ApplyHighlight(annot, quads, markup)
	case "underline":
		return appearance.ApplyUnderline(annot, quads, markup)
	case "strikeout":
		return appearance.ApplyStrikeOut(annot, quads, markup)
	case "squiggly":
		return appearance.RegenerateMarkup(annot, appearance.Squiggly, quads, markup)
	case "line":
		return appearance.ApplyLine(annot, rect.Origin(), apstream.Point{X: rect.URx, Y: rect.URy}, shape)
	case "polygon", "polyline":
		vertices := []apstream.Point{
			{X: rect.LLx, Y: rect.LLy},
			{X: rect.URx, Y: rect.LLy},
			{X: (rect.LLx + rect.URx) / 2, Y: rect.URy},
		}
		if kind == "polygon" {
			return appearance.ApplyPolygon(annot, vertices, shape)
		}
		return appearance.ApplyPolyline(annot, vertices, shape)
	case "square":
		shape.BorderStyle = appearance.Dashed
		return appearance.ApplySquare(annot, &rect, shape)
	case "watermark":
		return appearance.ApplyWatermark(annot, &appearance.WatermarkConfig{
			Text:        text,
			RotationDeg: 45,
			Color:       col,
			Mode:        mode,
		})
	case "freetext":
		cfg := appearance.DefaultFreeTextConfig()
		cfg.Text = orDefault(text, "The quick brown fox jumps over the lazy dog.")
		cfg.TextColor = col
		cfg.Mode = mode
		return appearance.ApplyFreeText(annot, cfg)
	case "textfield":
		cfg := appearance.DefaultTextFieldConfig()
		cfg.Value = orDefault(text, "Jane Doe")
		cfg.HAlign = textlayout.Center
		cfg.TextColor = col
		cfg.Mode = mode
		return appearance.ApplyTextField(annot, cfg)
	case "signature":
		return appearance.ApplySignature(annot, &appearance.SignatureConfig{Strokes: strokes(), Mode: mode})
	case "signature-bitmap":
		cfg := &appearance.SignatureConfig{Strokes: strokes(), Mode: mode}
		return appearance.ApplySignatureBitmap(annot, cfg, appearance.BitmapConfig{})
	}
	return fmt.Errorf("unknown annotation kind %q", kind)
}

func writePreview(fname string, rect apstream.Rect, strokes []path.Stroke) error {
	local := apstream.Rect{URx: rect.Dx(), URy: rect.Dy()}
	c, err := raster.NewCanvas(local, 4*int(rect.Dx()), 4*int(rect.Dy()))
	if err != nil {
		return err
	}
	for _, s := range strokes {
		c.Stroke(s)
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, c.Image)
	return errors.Join(err, out.Close())
}

func parseRect(s string) (apstream.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return apstream.Rect{}, fmt.Errorf("invalid rectangle %q", s)
	}
	var xx [4]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return apstream.Rect{}, fmt.Errorf("invalid rectangle %q: %w", s, err)
		}
		xx[i] = x
	}
	return apstream.Rect{LLx: xx[0], LLy: xx[1], URx: xx[2], URy: xx[3]}, nil
}

func parseColor(s string) (apstream.Color, error) {
	x, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		return apstream.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return apstream.RGB(uint8(x>>16), uint8(x>>8), uint8(x)), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
