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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a location in PDF page space, measured in PDF units of 1/72 inch.
type Point = vec.Vec2

// Rect is an axis-aligned rectangle in PDF page space.
//
// LLx and LLy give the lower left corner (left, bottom), URx and URy the upper
// right corner (right, top).  A rectangle with zero width or height is
// considered unset.
type Rect struct {
	LLx, LLy, URx, URy float64
}

// BoundingRect returns the smallest rectangle which contains all the given
// points.  If no points are given, [ErrEmptyGeometry] is returned.
func BoundingRect(points ...Point) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrEmptyGeometry
	}
	r := Rect{
		LLx: points[0].X,
		LLy: points[0].Y,
		URx: points[0].X,
		URy: points[0].Y,
	}
	for _, p := range points[1:] {
		r.ExtendVec(p)
	}
	return r, nil
}

// ExtendVec enlarges the rectangle, if needed, so that it contains p.
func (r *Rect) ExtendVec(p Point) {
	r.LLx = math.Min(r.LLx, p.X)
	r.LLy = math.Min(r.LLy, p.Y)
	r.URx = math.Max(r.URx, p.X)
	r.URy = math.Max(r.URy, p.Y)
}

// StrokePadding returns the margin which is added around path geometry
// stroked with the given line width: half the line width, but at least one
// unit.
func StrokePadding(strokeWidth float64) float64 {
	return math.Max(strokeWidth/2, 1)
}

// Pad returns the rectangle enlarged on all four sides by
// StrokePadding(strokeWidth).  The result always has positive width and
// height.
func (r Rect) Pad(strokeWidth float64) Rect {
	d := StrokePadding(strokeWidth)
	return Rect{
		LLx: r.LLx - d,
		LLy: r.LLy - d,
		URx: r.URx + d,
		URy: r.URy + d,
	}
}

// Origin returns the lower left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.LLx, Y: r.LLy}
}

// ToLocal converts p from page space into the coordinate system of an
// appearance stream whose origin is at the given point.
func ToLocal(p, origin Point) Point {
	return Point{X: p.X - origin.X, Y: p.Y - origin.Y}
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 {
	return r.URx - r.LLx
}

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 {
	return r.URy - r.LLy
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Dx() * r.Dy()
}

// IsValid reports whether the rectangle has positive width and height.
func (r Rect) IsValid() bool {
	return r.Dx() > 0 && r.Dy() > 0
}

// IsZero is true if all four coordinates are zero.
func (r Rect) IsZero() bool {
	return r.LLx == 0 && r.LLy == 0 && r.URx == 0 && r.URy == 0
}

// Contains reports whether p lies inside the rectangle or on its boundary.
func (r Rect) Contains(p Point) bool {
	return r.LLx <= p.X && p.X <= r.URx && r.LLy <= p.Y && p.Y <= r.URy
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than `eps`.
func (r Rect) NearlyEqual(other Rect, eps float64) bool {
	return (math.Abs(r.LLx-other.LLx) < eps &&
		math.Abs(r.LLy-other.LLy) < eps &&
		math.Abs(r.URx-other.URx) < eps &&
		math.Abs(r.URy-other.URy) < eps)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.LLx, r.LLy, r.URx, r.URy)
}
