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

package appearance

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/path"
	"seehuhn.de/go/apstream/raster"
)

// SignatureStream returns a vector appearance stream for a hand-drawn
// signature.  Each stroke is drawn with round caps and joins, in its own
// color and width.
func SignatureStream(rect apstream.Rect, strokes []path.Stroke) ([]byte, error) {
	if !hasSegments(strokes) {
		return nil, apstream.ErrEmptyGeometry
	}
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}

	b := content.New()
	b.PushGraphicsState()
	b.Translate(rect.LLx, rect.LLy)
	b.SetLineCap(content.LineCapRound)
	b.SetLineJoin(content.LineJoinRound)
	for _, s := range strokes {
		if len(s.Segments) == 0 {
			continue
		}
		width := s.Width
		if width <= 0 {
			width = 1
		}
		b.SetStrokeColor(s.Color)
		b.SetLineWidth(width)
		emitSegments(b, s.Segments)
		b.Stroke()
	}
	b.PopGraphicsState()
	return b.Bytes()
}

// SignatureBitmapStream renders the strokes into a grayscale image and
// returns an appearance stream which shows this image as an inline image
// covering the annotation rectangle.
func SignatureBitmapStream(rect apstream.Rect, strokes []path.Stroke, bm BitmapConfig) ([]byte, error) {
	if !hasSegments(strokes) {
		return nil, apstream.ErrEmptyGeometry
	}
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}

	w, h := rect.Dx(), rect.Dy()
	pw, ph := bm.Width, bm.Height
	if pw <= 0 {
		pw = int(math.Ceil(w))
	}
	if ph <= 0 {
		ph = int(math.Ceil(h))
	}
	pix, err := raster.Render(apstream.Rect{URx: w, URy: h}, pw, ph, strokes...)
	if err != nil {
		return nil, err
	}

	b := content.New()
	b.PushGraphicsState()
	b.Translate(rect.LLx, rect.LLy)
	b.Transform(matrix.Scale(w, h))
	b.InlineGrayImage(pw, ph, pix)
	b.PopGraphicsState()
	return b.Bytes()
}

func hasSegments(strokes []path.Stroke) bool {
	for _, s := range strokes {
		if len(s.Segments) > 0 {
			return true
		}
	}
	return false
}

// StrokeFromSVG converts SVG path data into a signature stroke.
func StrokeFromSVG(d string, width float64, col apstream.Color) (path.Stroke, error) {
	segs, err := path.ParseSVG(d)
	if err != nil {
		return path.Stroke{}, err
	}
	return path.Stroke{Segments: segs, Width: width, Color: col}, nil
}

// FitStrokes scales and centres the strokes so that they fit into a
// width×height box with the origin at the lower left corner, keeping the
// aspect ratio.  Line widths are scaled by the same factor.  If flipY is
// true, the y axis is reversed, as needed for SVG path data.
func FitStrokes(strokes []path.Stroke, width, height float64, flipY bool) ([]path.Stroke, error) {
	bbox, err := path.Bounds(strokes...)
	if err != nil {
		return nil, err
	}
	pad := path.MaxWidth(strokes...) / 2
	bbox = apstream.Rect{
		LLx: bbox.LLx - pad,
		LLy: bbox.LLy - pad,
		URx: bbox.URx + pad,
		URy: bbox.URy + pad,
	}

	scale := math.Inf(1)
	if bbox.Dx() > 0 {
		scale = width / bbox.Dx()
	}
	if bbox.Dy() > 0 {
		scale = min(scale, height/bbox.Dy())
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := (width-scale*bbox.Dx())/2 - scale*bbox.LLx
	offY := (height - scale*bbox.Dy()) / 2
	M := matrix.Matrix{scale, 0, 0, scale, offX, offY - scale*bbox.LLy}
	if flipY {
		M = matrix.Matrix{scale, 0, 0, -scale, offX, offY + scale*bbox.URy}
	}

	res := make([]path.Stroke, len(strokes))
	for i, s := range strokes {
		res[i] = path.Stroke{
			Segments: path.Transform(s.Segments, M),
			Width:    s.Width * scale,
			Color:    s.Color,
		}
	}
	return res, nil
}

// ApplySignature builds and commits a vector appearance stream for a
// hand-drawn signature.  Nothing is written if the annotation has no
// usable rectangle.
func ApplySignature(e engine.Engine, cfg *SignatureConfig) error {
	rect, err := signatureRect(e, cfg)
	if err != nil || !rect.IsValid() {
		return err
	}
	data, err := SignatureStream(rect, cfg.Strokes)
	if err != nil {
		return err
	}
	return commit(e, cfg.Mode, data)
}

// ApplySignatureBitmap is like [ApplySignature], but the strokes are
// rendered into an inline image.
func ApplySignatureBitmap(e engine.Engine, cfg *SignatureConfig, bm BitmapConfig) error {
	rect, err := signatureRect(e, cfg)
	if err != nil || !rect.IsValid() {
		return err
	}
	data, err := SignatureBitmapStream(rect, cfg.Strokes, bm)
	if err != nil {
		return err
	}
	return commit(e, cfg.Mode, data)
}

// signatureRect returns the rectangle for a signature annotation.  The zero
// rectangle is returned if the annotation has no usable rectangle.
func signatureRect(e engine.Engine, cfg *SignatureConfig) (apstream.Rect, error) {
	if cfg == nil || !hasSegments(cfg.Strokes) {
		return apstream.Rect{}, apstream.ErrEmptyGeometry
	}
	rect, ok, err := currentRect(e)
	if err != nil || !ok || !rect.IsValid() {
		return apstream.Rect{}, err
	}
	return rect, nil
}
