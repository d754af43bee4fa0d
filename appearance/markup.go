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
	"fmt"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/logging"
	"seehuhn.de/go/apstream/wave"
)

// MarkupKind is the subtype of a text markup annotation.
type MarkupKind int

// These are the text markup subtypes.
const (
	Highlight MarkupKind = iota
	Underline
	StrikeOut
	Squiggly
)

func (k MarkupKind) String() string {
	switch k {
	case Highlight:
		return "Highlight"
	case Underline:
		return "Underline"
	case StrikeOut:
		return "StrikeOut"
	case Squiggly:
		return "Squiggly"
	default:
		return fmt.Sprintf("MarkupKind(%d)", int(k))
	}
}

const (
	// HighlightOpacity is the fill opacity of highlight annotations.
	HighlightOpacity = 0.3

	// WavePadding is added above and below the quad points when the
	// rectangle of a squiggly annotation is computed, so that the waves
	// are not clipped.
	WavePadding = 7.0

	// gsName is the graphics state resource which engines create from the
	// /ca and /CA entries.
	gsName = "GS"
)

func (k MarkupKind) defaultColor() apstream.Color {
	if k == Highlight {
		return apstream.Yellow
	}
	return apstream.Black
}

// HighlightStream returns the appearance stream for a highlight annotation.
// Each quad is filled as a closed path.  If there are no quads, the whole
// rectangle is filled.
func HighlightStream(rect apstream.Rect, quads []apstream.QuadPoint, col apstream.Color) ([]byte, error) {
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}
	b := content.New()
	b.PushGraphicsState()
	b.SetExtGState(gsName)
	b.Translate(rect.LLx, rect.LLy)
	b.SetFillColor(col)

	if len(quads) == 0 {
		b.Rectangle(0, 0, rect.Dx(), rect.Dy())
		b.Fill()
	}
	origin := rect.Origin()
	for _, q := range quads {
		b.MovePoint(apstream.ToLocal(q[0], origin))
		b.LinePoint(apstream.ToLocal(q[1], origin))
		b.LinePoint(apstream.ToLocal(q[2], origin))
		b.LinePoint(apstream.ToLocal(q[3], origin))
		b.ClosePath()
		b.Fill()
	}

	b.PopGraphicsState()
	return b.Bytes()
}

// UnderlineStream returns the appearance stream for an underline
// annotation: one horizontal line along the bottom edge of every quad.
// Without quads, a line along the bottom of the rectangle is drawn.
func UnderlineStream(rect apstream.Rect, quads []apstream.QuadPoint, col apstream.Color, width float64) ([]byte, error) {
	return lineMarkupStream(Underline, rect, quads, col, width)
}

// StrikeOutStream returns the appearance stream for a strikeout annotation:
// one horizontal line through the vertical centre of every quad.  Without
// quads, the line goes through the centre of the rectangle.
func StrikeOutStream(rect apstream.Rect, quads []apstream.QuadPoint, col apstream.Color, width float64) ([]byte, error) {
	return lineMarkupStream(StrikeOut, rect, quads, col, width)
}

// SquigglyStream returns the appearance stream for a squiggly annotation:
// a wavy line along the bottom edge of every quad, see
// [wave.Segments].  Without quads, the wave runs along the bottom of the
// rectangle.
func SquigglyStream(rect apstream.Rect, quads []apstream.QuadPoint, col apstream.Color, width float64) ([]byte, error) {
	return lineMarkupStream(Squiggly, rect, quads, col, width)
}

func lineMarkupStream(kind MarkupKind, rect apstream.Rect, quads []apstream.QuadPoint, col apstream.Color, width float64) ([]byte, error) {
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}
	b := content.New()
	b.PushGraphicsState()
	b.Translate(rect.LLx, rect.LLy)
	b.SetStrokeColor(col)
	b.SetLineWidth(width)

	// horizontal extent and baseline of each line, in local coordinates
	type span struct{ x0, x1, y float64 }
	var spans []span
	if len(quads) == 0 {
		y := 0.0
		if kind == StrikeOut {
			y = rect.Dy() / 2
		}
		spans = append(spans, span{0, rect.Dx(), y})
	}
	for _, q := range quads {
		y := q.Bottom()
		if kind == StrikeOut {
			y = (q.Top() + q.Bottom()) / 2
		}
		spans = append(spans, span{q.Left() - rect.LLx, q.Right() - rect.LLx, y - rect.LLy})
	}

	for _, s := range spans {
		if kind == Squiggly {
			emitSegments(b, wave.Segments(s.x0, s.y, s.x1-s.x0))
		} else {
			b.MoveTo(s.x0, s.y)
			b.LineTo(s.x1, s.y)
		}
		b.Stroke()
	}

	b.PopGraphicsState()
	return b.Bytes()
}

// ApplyMarkup builds and commits the appearance stream of a text markup
// annotation, using the current annotation rectangle.
//
// The color is resolved as described in [ResolveColor], with yellow as the
// default for highlights and black for the other kinds.  Highlights always
// use an opacity of [HighlightOpacity].
func ApplyMarkup(e engine.Engine, kind MarkupKind, quads []apstream.QuadPoint, cfg *MarkupConfig) error {
	if cfg == nil {
		cfg = &MarkupConfig{}
	}

	rect, ok, err := currentRect(e)
	if err != nil {
		return err
	}
	if !ok {
		logging.Logger().Debug("markup skipped, no valid rect", "kind", kind)
		return nil
	}

	def := kind.defaultColor()
	col, src, err := ResolveColor(e, ColorQuery{
		Explicit: cfg.Color,
		Entry:    engine.StrokeColor,
		Stroke:   kind != Highlight,
		Mode:     cfg.Mode,
		Default:  &def,
	})
	if err != nil {
		return err
	}
	logging.Logger().Debug("markup color", "kind", kind, "source", src)

	var data []byte
	switch kind {
	case Highlight:
		data, err = HighlightStream(rect, quads, col)
	case Underline, StrikeOut, Squiggly:
		data, err = lineMarkupStream(kind, rect, quads, col, cfg.strokeWidth())
	default:
		return fmt.Errorf("unknown markup kind %d", int(kind))
	}
	if err != nil {
		return err
	}

	if kind == Highlight {
		if err := setOpacity(e, HighlightOpacity); err != nil {
			return err
		}
	}
	if err := commit(e, cfg.Mode, data); err != nil {
		return err
	}
	TryRestoreColor(e, engine.StrokeColor, col)
	return nil
}

// ApplyHighlight is a shorthand for ApplyMarkup(e, Highlight, quads, cfg).
func ApplyHighlight(e engine.Engine, quads []apstream.QuadPoint, cfg *MarkupConfig) error {
	return ApplyMarkup(e, Highlight, quads, cfg)
}

// ApplyUnderline is a shorthand for ApplyMarkup(e, Underline, quads, cfg).
func ApplyUnderline(e engine.Engine, quads []apstream.QuadPoint, cfg *MarkupConfig) error {
	return ApplyMarkup(e, Underline, quads, cfg)
}

// ApplyStrikeOut is a shorthand for ApplyMarkup(e, StrikeOut, quads, cfg).
func ApplyStrikeOut(e engine.Engine, quads []apstream.QuadPoint, cfg *MarkupConfig) error {
	return ApplyMarkup(e, StrikeOut, quads, cfg)
}

// ApplySquiggly is a shorthand for ApplyMarkup(e, Squiggly, quads, cfg).
func ApplySquiggly(e engine.Engine, quads []apstream.QuadPoint, cfg *MarkupConfig) error {
	return ApplyMarkup(e, Squiggly, quads, cfg)
}

// MarkupRect returns the annotation rectangle for the given quads: their
// bounding box, extended by [WavePadding] above and below for squiggly
// annotations.
func MarkupRect(kind MarkupKind, quads []apstream.QuadPoint) (apstream.Rect, error) {
	r, err := apstream.QuadsBounds(quads)
	if err != nil {
		return apstream.Rect{}, err
	}
	if kind == Squiggly {
		r.LLy -= WavePadding
		r.URy += WavePadding
	}
	return r, nil
}

// RegenerateMarkup recomputes the rectangle of a text markup annotation
// from its quads, writes it to the engine, and then rebuilds the
// appearance stream.  This is used after the quads of an annotation have
// changed.  If there are no quads, the existing rectangle is kept.
func RegenerateMarkup(e engine.Engine, kind MarkupKind, quads []apstream.QuadPoint, cfg *MarkupConfig) error {
	if len(quads) > 0 {
		r, err := MarkupRect(kind, quads)
		if err != nil {
			return err
		}
		if r.IsValid() {
			if err := setRect(e, r); err != nil {
				return err
			}
		}
	}
	return ApplyMarkup(e, kind, quads, cfg)
}
