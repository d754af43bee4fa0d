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

package apstream

import "math"

// QuadPoint describes one region of a text markup annotation, typically one
// run of glyphs on a single line.  The corners are stored in the order used
// by the /QuadPoints array; they need not form an axis-aligned rectangle.
type QuadPoint [4]Point

// Quad returns a QuadPoint for the axis-aligned rectangle r.  The corner
// order is lower left, lower right, upper right, upper left.
func Quad(r Rect) QuadPoint {
	return QuadPoint{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
}

// QuadsFromFloats converts a flat /QuadPoints array into QuadPoints.
// Values beyond the last complete group of eight are ignored.
func QuadsFromFloats(xx []float64) []QuadPoint {
	n := len(xx) / 8
	res := make([]QuadPoint, n)
	for quad := range n {
		for corner := range 4 {
			idx := quad*8 + corner*2
			res[quad][corner] = Point{X: xx[idx], Y: xx[idx+1]}
		}
	}
	return res
}

// Left returns the smallest x coordinate of the four corners.
func (q QuadPoint) Left() float64 {
	return math.Min(math.Min(q[0].X, q[1].X), math.Min(q[2].X, q[3].X))
}

// Right returns the largest x coordinate of the four corners.
func (q QuadPoint) Right() float64 {
	return math.Max(math.Max(q[0].X, q[1].X), math.Max(q[2].X, q[3].X))
}

// Bottom returns the smallest y coordinate of the four corners.
func (q QuadPoint) Bottom() float64 {
	return math.Min(math.Min(q[0].Y, q[1].Y), math.Min(q[2].Y, q[3].Y))
}

// Top returns the largest y coordinate of the four corners.
func (q QuadPoint) Top() float64 {
	return math.Max(math.Max(q[0].Y, q[1].Y), math.Max(q[2].Y, q[3].Y))
}

// Bounds returns the bounding box of the four corners.
func (q QuadPoint) Bounds() Rect {
	return Rect{LLx: q.Left(), LLy: q.Bottom(), URx: q.Right(), URy: q.Top()}
}

// QuadsBounds returns the bounding box of all corners of all quads.
// If quads is empty, [ErrEmptyGeometry] is returned.
func QuadsBounds(quads []QuadPoint) (Rect, error) {
	if len(quads) == 0 {
		return Rect{}, ErrEmptyGeometry
	}
	r := quads[0].Bounds()
	for _, q := range quads[1:] {
		for _, p := range q {
			r.ExtendVec(p)
		}
	}
	return r, nil
}
