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
	"strings"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/logging"
	"seehuhn.de/go/apstream/textlayout"
)

const defaultLineSpacing = 1.2

// FreeTextStream returns the appearance stream for a free text annotation.
// The stream draws the background, then the border, and then the text,
// laid out inside the padded rectangle.  Font, size and text color are
// taken from da.  Empty text gives an empty stream.
//
// Rectangles smaller than 1×1 are reported as [apstream.ErrInvalidRect].
func FreeTextStream(rect apstream.Rect, text string, da textlayout.DefaultAppearance, cfg *FreeTextConfig) ([]byte, error) {
	if rect.Dx() < 1 || rect.Dy() < 1 {
		return nil, apstream.ErrInvalidRect
	}
	if text == "" {
		return []byte{}, nil
	}
	if cfg == nil {
		cfg = DefaultFreeTextConfig()
	}
	spacing := cfg.LineSpacing
	if spacing <= 0 {
		spacing = defaultLineSpacing
	}

	w, h := rect.Dx(), rect.Dy()

	b := content.New()
	b.PushGraphicsState()
	b.Translate(rect.LLx, rect.LLy)

	if cfg.Background != nil {
		b.SetFillColor(*cfg.Background)
		b.Rectangle(0, 0, w, h)
		b.Fill()
	}

	if bw := cfg.BorderWidth; cfg.BorderColor != nil && bw > 0 {
		b.SetStrokeColor(*cfg.BorderColor)
		b.SetLineWidth(bw)
		switch cfg.BorderStyle {
		case Dashed:
			b.SetLineDash(freeTextDash, 0)
		case Dotted:
			b.SetLineDash(dottedDash, 0)
		default:
			b.SetLineDash(nil, 0)
		}
		b.Rectangle(bw/2, bw/2, max(w-bw, 0), max(h-bw, 0))
		b.Stroke()
	}

	b.TextBegin()
	b.TextSetFont(da.Font, da.Size)
	b.SetFillColor(da.Color)

	area := cfg.Padding.Inset(apstream.Rect{URx: w, URy: h})
	if area.IsValid() {
		lines := textlayout.Lines(text, da.Size, area.Dx(), cfg.WordWrap)
		y0 := textlayout.BaselineStart(area, len(lines), da.Size, spacing, cfg.VAlign)
		showLines(b, lines, func(i int, line string) (float64, float64) {
			x := textlayout.LineStart(area, textlayout.EstimateWidth(line, da.Size), cfg.HAlign)
			return x, y0 - float64(i)*da.Size*spacing
		}, false)
	}

	b.TextEnd()
	b.PopGraphicsState()
	return b.Bytes()
}

// showLines shows the non-blank lines at the positions given by pos.  The
// positions are converted into relative "Td" offsets.
func showLines(b *content.Builder, lines []string, pos func(int, string) (float64, float64), multiline bool) {
	var prevX, prevY float64
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		x, y := pos(i, line)
		b.TextMove(x-prevX, y-prevY)
		b.TextShowLiteral(textlayout.Literal(line, multiline))
		prevX, prevY = x, y
	}
}

// readDA returns the parsed /DA entry of the annotation, or the default
// values if the entry is missing.
func readDA(e engine.Engine) textlayout.DefaultAppearance {
	s, err := e.StringValue(engine.KeyDefaultAppearance)
	if err != nil {
		if !errors.Is(err, engine.ErrNoValue) {
			logging.Logger().Debug("/DA not readable", "error", err)
		}
		return textlayout.DefaultDA
	}
	return textlayout.ParseDA(s)
}

// overrideDA replaces the parts of da which are set explicitly.
func overrideDA(da textlayout.DefaultAppearance, font string, size float64, col *apstream.Color) textlayout.DefaultAppearance {
	if font != "" {
		da.Font = font
	}
	if size > 0 {
		da.Size = size
	}
	if col != nil {
		da.Color = *col
	}
	return da
}

// ApplyFreeText builds and commits the appearance stream of a free text
// annotation.  The /DA entry is updated to match the font, size and color
// used.  Nothing is written if the annotation rectangle is smaller than
// 1×1.
func ApplyFreeText(e engine.Engine, cfg *FreeTextConfig) error {
	if cfg == nil {
		cfg = DefaultFreeTextConfig()
	}

	rect, ok, err := currentRect(e)
	if err != nil {
		return err
	}
	if !ok || rect.Dx() < 1 || rect.Dy() < 1 {
		logging.Logger().Debug("free text skipped, rect too small", "rect", rect)
		return nil
	}

	da := overrideDA(readDA(e), cfg.FontName, cfg.FontSize, cfg.TextColor)

	text := cfg.Text
	if text == "" {
		s, err := e.StringValue(engine.KeyContents)
		if err != nil && !errors.Is(err, engine.ErrNoValue) {
			return engineErr("StringValue", engine.KeyContents, err)
		}
		text = s
	}

	data, err := FreeTextStream(rect, text, da, cfg)
	if err != nil {
		return err
	}
	if err := e.SetStringValue(engine.KeyDefaultAppearance, da.String()); err != nil {
		return engineErr("SetStringValue", engine.KeyDefaultAppearance, err)
	}
	return commit(e, cfg.Mode, data)
}
