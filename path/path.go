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

// Package path describes vector paths as sequences of segments.
//
// A [Segment] is one of MoveTo, LineTo, CurveTo or Close.  Paths are used
// for signature strokes, and can be imported from SVG path data using
// [ParseSVG].
package path

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/apstream"
)

// Kind identifies the type of a path segment.
type Kind byte

// These are the segment kinds.
const (
	MoveTo Kind = iota
	LineTo
	CurveTo
	Close
)

func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	case Close:
		return "Close"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Segment is one element of a path.
//
// For MoveTo and LineTo, only P[0] is used.  For CurveTo, P[0] and P[1] are
// the control points and P[2] is the end point.  Close uses no points.
type Segment struct {
	Kind Kind
	P    [3]apstream.Point
}

// Move returns a MoveTo segment.
func Move(x, y float64) Segment {
	return Segment{Kind: MoveTo, P: [3]apstream.Point{{X: x, Y: y}}}
}

// Line returns a LineTo segment.
func Line(x, y float64) Segment {
	return Segment{Kind: LineTo, P: [3]apstream.Point{{X: x, Y: y}}}
}

// Curve returns a CurveTo segment.
func Curve(x1, y1, x2, y2, x3, y3 float64) Segment {
	return Segment{
		Kind: CurveTo,
		P:    [3]apstream.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}},
	}
}

// ClosePath returns a Close segment.
func ClosePath() Segment {
	return Segment{Kind: Close}
}

// Points returns the points used by the segment.
func (s Segment) Points() []apstream.Point {
	switch s.Kind {
	case MoveTo, LineTo:
		return s.P[:1]
	case CurveTo:
		return s.P[:]
	default:
		return nil
	}
}

// Stroke is a path which is stroked with a given color and line width.
type Stroke struct {
	Segments []Segment
	Width    float64
	Color    apstream.Color
}

// Bounds returns the bounding box of all points (including curve control
// points) of the given strokes.  If there are no points,
// [apstream.ErrEmptyGeometry] is returned.
func Bounds(strokes ...Stroke) (apstream.Rect, error) {
	var pp []apstream.Point
	for _, s := range strokes {
		for _, seg := range s.Segments {
			pp = append(pp, seg.Points()...)
		}
	}
	return apstream.BoundingRect(pp...)
}

// MaxWidth returns the largest line width of the given strokes.
func MaxWidth(strokes ...Stroke) float64 {
	w := 0.0
	for _, s := range strokes {
		w = max(w, s.Width)
	}
	return w
}

// Transform applies M to all points of the path.
func Transform(segs []Segment, M matrix.Matrix) []Segment {
	res := make([]Segment, len(segs))
	for i, seg := range segs {
		res[i].Kind = seg.Kind
		for j, p := range seg.Points() {
			x, y := M.Apply(p.X, p.Y)
			res[i].P[j] = apstream.Point{X: x, Y: y}
		}
	}
	return res
}
