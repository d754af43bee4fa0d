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
	"errors"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/textlayout"
)

// Defaults for watermark annotations.
const (
	defaultWatermarkText   = "WATERMARK"
	defaultWatermarkFont   = "Helv"
	defaultWatermarkWidth  = 200
	defaultWatermarkHeight = 100
)

var defaultWatermarkColor = apstream.Color{R: 128, G: 128, B: 128, A: 128}

// WatermarkFontSize returns the font size used for a watermark in a
// rectangle of the given size: 15% of the smaller side, clamped to the
// range from 12 to 72.
func WatermarkFontSize(rect apstream.Rect) float64 {
	return min(max(min(rect.Dx(), rect.Dy())*0.15, 12), 72)
}

// WatermarkMatrix returns the text matrix for a watermark: the text is
// scaled and rotated, and then moved so that the centre of its estimated
// bounding box lies at the centre of a width×height box.
func WatermarkMatrix(width, height, textWidth, fontSize, rotationDeg, scale float64) matrix.Matrix {
	M := matrix.Scale(scale, scale).Mul(matrix.RotateDeg(rotationDeg))
	cx, cy := M.Apply(textWidth/2, fontSize/2)
	M[4] = width/2 - cx
	M[5] = height/2 - cy
	return M
}

// WatermarkStream returns the appearance stream for a watermark annotation
// showing text in the given color.  If the color is not opaque, the
// stream uses the "/GS" graphics state, which the engine creates from the
// /ca and /CA entries.
func WatermarkStream(rect apstream.Rect, text string, col apstream.Color, cfg *WatermarkConfig) ([]byte, error) {
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}
	if cfg == nil {
		cfg = &WatermarkConfig{}
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}
	font := cfg.FontName
	if font == "" {
		font = defaultWatermarkFont
	}

	size := WatermarkFontSize(rect)
	textWidth := textlayout.EstimateWidth(text, size)
	M := WatermarkMatrix(rect.Dx(), rect.Dy(), textWidth, size, cfg.RotationDeg, scale)

	b := content.New()
	b.PushGraphicsState()
	if !col.IsOpaque() {
		b.SetExtGState(gsName)
	}
	b.Translate(rect.LLx, rect.LLy)
	b.Transform(M)
	b.SetFillColor(col)
	b.TextBegin()
	b.TextSetFont(font, size)
	b.TextShowLiteral(textlayout.Literal(text, false))
	b.TextEnd()
	b.PopGraphicsState()
	return b.Bytes()
}

// ApplyWatermark builds and commits the appearance stream of a watermark
// annotation.  If the annotation has no valid rectangle, a 200×100
// rectangle is created at the lower left corner of the old one.
func ApplyWatermark(e engine.Engine, cfg *WatermarkConfig) error {
	if cfg == nil {
		cfg = &WatermarkConfig{}
	}

	rect, ok, err := currentRect(e)
	if err != nil {
		return err
	}
	if !ok {
		rect.URx = rect.LLx + defaultWatermarkWidth
		rect.URy = rect.LLy + defaultWatermarkHeight
		if err := setRect(e, rect); err != nil {
			return err
		}
	}

	text := cfg.Text
	if text == "" {
		s, err := e.StringValue(engine.KeyContents)
		if err != nil && !errors.Is(err, engine.ErrNoValue) {
			return engineErr("StringValue", engine.KeyContents, err)
		}
		text = s
	}
	if text == "" {
		text = defaultWatermarkText
	}

	def := defaultWatermarkColor
	col, _, err := ResolveColor(e, ColorQuery{
		Explicit: cfg.Color,
		Entry:    engine.StrokeColor,
		Stroke:   false,
		Mode:     cfg.Mode,
		Default:  &def,
	})
	if err != nil {
		return err
	}

	data, err := WatermarkStream(rect, text, col, cfg)
	if err != nil {
		return err
	}
	if !col.IsOpaque() {
		if err := setOpacity(e, col.Alpha()); err != nil {
			return err
		}
	}
	if err := commit(e, cfg.Mode, data); err != nil {
		return err
	}
	TryRestoreColor(e, engine.StrokeColor, col)
	return nil
}
