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

package content

import (
	"errors"

	"seehuhn.de/go/apstream"
)

// MoveTo starts a new subpath at (x, y).
//
// This implements the PDF graphics operator "m".
func (b *Builder) MoveTo(x, y float64) {
	b.emitNumbers("m", x, y)
}

// MovePoint is like MoveTo, but takes a point argument.
func (b *Builder) MovePoint(p apstream.Point) {
	b.MoveTo(p.X, p.Y)
}

// LineTo appends a straight line segment to the current subpath.
//
// This implements the PDF graphics operator "l".
func (b *Builder) LineTo(x, y float64) {
	b.emitNumbers("l", x, y)
}

// LinePoint is like LineTo, but takes a point argument.
func (b *Builder) LinePoint(p apstream.Point) {
	b.LineTo(p.X, p.Y)
}

// CurveTo appends a cubic Bezier curve to the current subpath.
//
// This implements the PDF graphics operator "c".
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	b.emitNumbers("c", x1, y1, x2, y2, x3, y3)
}

// CurvePoints is like CurveTo, but takes point arguments.
func (b *Builder) CurvePoints(p1, p2, p3 apstream.Point) {
	b.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (b *Builder) ClosePath() {
	b.emit("h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (b *Builder) Rectangle(x, y, width, height float64) {
	b.emitNumbers("re", x, y, width, height)
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (b *Builder) Stroke() {
	b.emit("S")
}

// Fill fills the current path, using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (b *Builder) Fill() {
	b.emit("f")
}

// FillAndStroke fills and strokes the current path.
//
// This implements the PDF graphics operator "B".
func (b *Builder) FillAndStroke() {
	b.emit("B")
}

// EndPath ends the path without filling and stroking it.
//
// This implements the PDF graphics operator "n".
func (b *Builder) EndPath() {
	b.emit("n")
}

// ClipNonZero intersects the current clipping path with the current path,
// using the nonzero winding number rule.
//
// This implements the PDF graphics operator "W".
func (b *Builder) ClipNonZero() {
	b.emit("W")
}

// Polyline appends an open subpath through the given points.
func (b *Builder) Polyline(pp []apstream.Point) {
	if b.Err != nil {
		return
	}
	if len(pp) == 0 {
		b.Err = errors.New("Polyline: no points")
		return
	}
	b.MovePoint(pp[0])
	for _, p := range pp[1:] {
		b.LinePoint(p)
	}
}

// Polygon appends a closed subpath through the given points.
func (b *Builder) Polygon(pp []apstream.Point) {
	b.Polyline(pp)
	b.ClosePath()
}
