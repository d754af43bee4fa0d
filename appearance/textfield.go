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

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/textlayout"
)

// TextFieldStream returns the appearance stream for a text form field
// with the given value.  The text is wrapped in a "/Tx BMC" ... "EMC"
// marked-content sequence.  An empty value gives an empty stream.
func TextFieldStream(rect apstream.Rect, value string, da textlayout.DefaultAppearance, cfg *TextFieldConfig) ([]byte, error) {
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}
	if cfg == nil {
		cfg = DefaultTextFieldConfig()
	}
	if cfg.Password {
		value = textlayout.Mask(value, cfg.Mask)
	}
	if value == "" {
		return []byte{}, nil
	}

	w, h := rect.Dx(), rect.Dy()
	size := da.Size
	pad := cfg.Padding

	b := content.New()
	b.BeginMarkedContent("Tx")
	b.PushGraphicsState()
	b.Translate(rect.LLx, rect.LLy)
	b.TextBegin()
	b.SetFillColor(da.Color)
	b.TextSetFont(da.Font, size)

	switch {
	case cfg.Multiline:
		area := pad.Inset(apstream.Rect{URx: w, URy: h})
		lines := textlayout.Lines(value, size, max(area.Dx(), 0), true)
		y0 := textlayout.BaselineStart(area, len(lines), size, defaultLineSpacing, cfg.VAlign)
		showLines(b, lines, func(i int, line string) (float64, float64) {
			x := textlayout.LineStart(area, textlayout.EstimateWidth(line, size), cfg.HAlign)
			return x, y0 - float64(i)*size*defaultLineSpacing
		}, true)

	case cfg.Comb && cfg.MaxLen > 0:
		y := singleLineY(h, size, pad, cfg.VAlign)
		cell := w / float64(cfg.MaxLen)
		glyph := size * textlayout.CharWidth
		var chars []string
		for _, r := range value {
			if len(chars) == cfg.MaxLen {
				break
			}
			chars = append(chars, string(r))
		}
		showLines(b, chars, func(i int, _ string) (float64, float64) {
			return float64(i)*cell + (cell-glyph)/2, y
		}, false)

	default:
		width := textlayout.EstimateWidth(value, size)
		var x float64
		switch cfg.HAlign {
		case textlayout.Center:
			x = w/2 - width/2
		case textlayout.Right:
			x = w - width - pad.Right
		default:
			x = pad.Left
		}
		x = max(x, pad.Left)
		y := singleLineY(h, size, pad, cfg.VAlign)
		b.TextMove(x, y)
		b.TextShowLiteral(textlayout.Literal(value, false))
	}

	b.TextEnd()
	b.PopGraphicsState()
	b.EndMarkedContent()
	return b.Bytes()
}

// singleLineY returns the baseline of a single line of text in a field of
// height h.  The baseline never goes below the bottom padding.
func singleLineY(h, size float64, pad textlayout.Padding, align textlayout.VAlign) float64 {
	var y float64
	switch align {
	case textlayout.Top:
		y = h - size - pad.Top
	case textlayout.Bottom:
		y = pad.Bottom
	default:
		y = (h - size) / 2
	}
	return max(y, pad.Bottom)
}

// ApplyTextField builds and commits the appearance stream of a text form
// field, and rewrites the /DA entry to match the font, size and color
// used.  For comb fields without an explicit MaxLen, the /MaxLen entry of
// the field is used.
func ApplyTextField(e engine.Engine, cfg *TextFieldConfig) error {
	if cfg == nil {
		cfg = DefaultTextFieldConfig()
	}

	rect, ok, err := currentRect(e)
	if err != nil || !ok {
		return err
	}

	da := overrideDA(readDA(e), cfg.FontName, cfg.FontSize, cfg.TextColor)

	if cfg.Comb && cfg.MaxLen <= 0 {
		n, err := e.NumberValue(engine.KeyMaxLen)
		if err != nil && !errors.Is(err, engine.ErrNoValue) {
			return engineErr("NumberValue", engine.KeyMaxLen, err)
		}
		c := *cfg
		c.MaxLen = int(n)
		cfg = &c
	}

	data, err := TextFieldStream(rect, cfg.Value, da, cfg)
	if err != nil {
		return err
	}
	if err := e.SetStringValue(engine.KeyDefaultAppearance, da.String()); err != nil {
		return engineErr("SetStringValue", engine.KeyDefaultAppearance, err)
	}
	return commit(e, cfg.Mode, data)
}
