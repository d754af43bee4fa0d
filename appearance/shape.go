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
	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/path"
)

// ShapeStyle holds the resolved drawing parameters of a shape annotation.
type ShapeStyle struct {
	Stroke apstream.Color

	// Fill is the interior color, or nil if the shape is not filled.
	Fill *apstream.Color

	Width     float64
	Dash      []float64
	DashPhase float64
}

// begin starts a shape appearance stream with the origin moved to (x, y).
func (s *ShapeStyle) begin(x, y float64) *content.Builder {
	b := content.New()
	b.PushGraphicsState()
	b.Translate(x, y)
	b.SetLineCap(content.LineCapRound)
	b.SetLineJoin(content.LineJoinRound)
	b.SetStrokeColor(s.Stroke)
	if s.Fill != nil {
		b.SetFillColor(*s.Fill)
	}
	b.SetLineWidth(s.Width)
	setDash(b, s.Dash, s.DashPhase)
	return b
}

// paint fills and strokes, or only strokes, the current path.
func (s *ShapeStyle) paint(b *content.Builder) {
	if s.Fill != nil {
		b.FillAndStroke()
	} else {
		b.Stroke()
	}
}

// LineStream returns the appearance stream for a line annotation from p to q.
func LineStream(rect apstream.Rect, p, q apstream.Point, style *ShapeStyle) ([]byte, error) {
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}
	origin := rect.Origin()

	b := style.begin(rect.LLx, rect.LLy)
	b.MovePoint(apstream.ToLocal(p, origin))
	b.LinePoint(apstream.ToLocal(q, origin))
	b.Stroke()
	b.PopGraphicsState()
	return b.Bytes()
}

// PolygonStream returns the appearance stream for a polygon annotation.
// The path is always closed.  It is filled if style.Fill is set.
func PolygonStream(rect apstream.Rect, vertices []apstream.Point, style *ShapeStyle) ([]byte, error) {
	return polyStream(rect, vertices, style, true)
}

// PolylineStream returns the appearance stream for a polyline annotation.
// The path is left open and is never filled.
func PolylineStream(rect apstream.Rect, vertices []apstream.Point, style *ShapeStyle) ([]byte, error) {
	open := *style
	open.Fill = nil
	return polyStream(rect, vertices, &open, false)
}

func polyStream(rect apstream.Rect, vertices []apstream.Point, style *ShapeStyle, closed bool) ([]byte, error) {
	if len(vertices) == 0 {
		return nil, apstream.ErrEmptyGeometry
	}
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}

	origin := rect.Origin()
	local := make([]apstream.Point, len(vertices))
	for i, p := range vertices {
		local[i] = apstream.ToLocal(p, origin)
	}

	b := style.begin(rect.LLx, rect.LLy)
	if closed {
		b.Polygon(local)
	} else {
		b.Polyline(local)
	}
	style.paint(b)
	b.PopGraphicsState()
	return b.Bytes()
}

// SquareStream returns the appearance stream for a square annotation.  The
// rectangle is inset by half the line width, so that the outline stays
// inside rect.
func SquareStream(rect apstream.Rect, style *ShapeStyle) ([]byte, error) {
	if !rect.IsValid() {
		return nil, apstream.ErrInvalidRect
	}
	half := style.Width / 2

	b := style.begin(rect.LLx+half, rect.LLy+half)
	b.Rectangle(0, 0, max(rect.Dx()-style.Width, 0), max(rect.Dy()-style.Width, 0))
	style.paint(b)
	b.PopGraphicsState()
	return b.Bytes()
}

// ApplyLine sets the rectangle of a line annotation to the padded bounding
// box of the two end points, then builds and commits its appearance
// stream.
func ApplyLine(e engine.Engine, p, q apstream.Point, cfg *ShapeConfig) error {
	return applyShape(e, []apstream.Point{p, q}, cfg, func(rect apstream.Rect, style *ShapeStyle) ([]byte, error) {
		style.Fill = nil
		if cfg == nil || cfg.BorderStyle != Dashed {
			// lines only support dashed outlines
			style.Dash, style.DashPhase = nil, 0
		}
		return LineStream(rect, p, q, style)
	})
}

// ApplyPolygon sets the rectangle of a polygon annotation to the padded
// bounding box of the vertices, then builds and commits its appearance
// stream.  If vertices is empty, [apstream.ErrEmptyGeometry] is returned.
func ApplyPolygon(e engine.Engine, vertices []apstream.Point, cfg *ShapeConfig) error {
	return applyShape(e, vertices, cfg, func(rect apstream.Rect, style *ShapeStyle) ([]byte, error) {
		return PolygonStream(rect, vertices, style)
	})
}

// ApplyPolyline sets the rectangle of a polyline annotation to the padded
// bounding box of the vertices, then builds and commits its appearance
// stream.  If vertices is empty, [apstream.ErrEmptyGeometry] is returned.
func ApplyPolyline(e engine.Engine, vertices []apstream.Point, cfg *ShapeConfig) error {
	return applyShape(e, vertices, cfg, func(rect apstream.Rect, style *ShapeStyle) ([]byte, error) {
		style.Fill = nil
		return PolylineStream(rect, vertices, style)
	})
}

// ApplySquare builds and commits the appearance stream of a square
// annotation.  If bounds is not nil, the annotation rectangle is first set
// to bounds, extended by half the line width on every side.  Otherwise the
// current rectangle is used.
func ApplySquare(e engine.Engine, bounds *apstream.Rect, cfg *ShapeConfig) error {
	if bounds != nil {
		half := cfg.strokeWidth() / 2
		r := apstream.Rect{
			LLx: bounds.LLx - half,
			LLy: bounds.LLy - half,
			URx: bounds.URx + half,
			URy: bounds.URy + half,
		}
		if err := setRect(e, r); err != nil {
			return err
		}
	}

	rect, ok, err := currentRect(e)
	if err != nil || !ok {
		return err
	}
	style, err := resolveShapeStyle(e, cfg)
	if err != nil {
		return err
	}
	data, err := SquareStream(rect, style)
	if err != nil {
		return err
	}
	return commitShape(e, cfg, style, data)
}

func applyShape(e engine.Engine, points []apstream.Point, cfg *ShapeConfig, build func(apstream.Rect, *ShapeStyle) ([]byte, error)) error {
	bounds, err := apstream.BoundingRect(points...)
	if err != nil {
		return err
	}
	rect := bounds.Pad(cfg.strokeWidth())
	if !rect.IsValid() {
		return nil
	}
	if err := setRect(e, rect); err != nil {
		return err
	}

	style, err := resolveShapeStyle(e, cfg)
	if err != nil {
		return err
	}
	data, err := build(rect, style)
	if err != nil {
		return err
	}
	return commitShape(e, cfg, style, data)
}

// resolveShapeStyle reads the colors of a shape annotation.  This must
// happen before the appearance stream is written.
func resolveShapeStyle(e engine.Engine, cfg *ShapeConfig) (*ShapeStyle, error) {
	var explicitStroke, explicitFill *apstream.Color
	var mode engine.Mode
	if cfg != nil {
		explicitStroke, explicitFill, mode = cfg.StrokeColor, cfg.FillColor, cfg.Mode
	}

	def := apstream.Black
	stroke, _, err := ResolveColor(e, ColorQuery{
		Explicit: explicitStroke,
		Entry:    engine.StrokeColor,
		Stroke:   true,
		Mode:     mode,
		Default:  &def,
	})
	if err != nil {
		return nil, err
	}

	style := &ShapeStyle{
		Stroke: stroke,
		Width:  cfg.strokeWidth(),
	}
	style.Dash, style.DashPhase = cfg.dash()
	if fill, ok := resolveFill(e, explicitFill, mode); ok {
		style.Fill = &fill
	}
	return style, nil
}

func commitShape(e engine.Engine, cfg *ShapeConfig, style *ShapeStyle, data []byte) error {
	var mode engine.Mode
	if cfg != nil {
		mode = cfg.Mode
	}
	if err := commit(e, mode, data); err != nil {
		return err
	}
	TryRestoreColor(e, engine.StrokeColor, style.Stroke)
	if style.Fill != nil {
		TryRestoreColor(e, engine.InteriorColor, *style.Fill)
	}
	return nil
}

// emitSegments replays path segments on b.
func emitSegments(b *content.Builder, segs []path.Segment) {
	for _, seg := range segs {
		switch seg.Kind {
		case path.MoveTo:
			b.MovePoint(seg.P[0])
		case path.LineTo:
			b.LinePoint(seg.P[0])
		case path.CurveTo:
			b.CurvePoints(seg.P[0], seg.P[1], seg.P[2])
		case path.Close:
			b.ClosePath()
		}
	}
}
