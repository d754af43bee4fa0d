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

// Package raster renders stroked paths into grayscale images.
//
// This is used for signature appearances which embed the signature as an
// inline image instead of vector strokes.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/path"
)

// curveSteps is the number of line segments used to approximate one Bezier
// curve.
const curveSteps = 16

// capSides is the number of sides of the polygons used for round caps and
// joins.
const capSides = 16

// Canvas maps a rectangle in PDF page space onto a grayscale image.
type Canvas struct {
	Image *image.Gray

	bounds apstream.Rect
	sx, sy float64
	rast   *vector.Rasterizer
}

// NewCanvas allocates a white width×height image which covers bounds.
func NewCanvas(bounds apstream.Rect, width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("raster: image size must be positive")
	}
	if !bounds.IsValid() {
		return nil, apstream.ErrInvalidRect
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		Image:  img,
		bounds: bounds,
		sx:     float64(width) / bounds.Dx(),
		sy:     float64(height) / bounds.Dy(),
		rast:   vector.NewRasterizer(width, height),
	}, nil
}

// device converts a point from page space to pixel coordinates, with the
// y axis pointing down.
func (c *Canvas) device(p apstream.Point) vec.Vec2 {
	return vec.Vec2{
		X: (p.X - c.bounds.LLx) * c.sx,
		Y: (c.bounds.URy - p.Y) * c.sy,
	}
}

// Stroke draws s with round caps and joins.
func (c *Canvas) Stroke(s path.Stroke) {
	halfWidth := max(s.Width, 0.5) * (c.sx + c.sy) / 4

	b := c.rast.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	for _, poly := range c.flatten(s.Segments) {
		for i, p := range poly {
			c.dot(p, halfWidth)
			if i > 0 {
				c.band(poly[i-1], p, halfWidth)
			}
		}
	}

	r, g, bl := s.Color.Components()
	ink := color.GrayModel.Convert(color.RGBA64{
		R: uint16(r * 0xffff),
		G: uint16(g * 0xffff),
		B: uint16(bl * 0xffff),
		A: 0xffff,
	})
	c.rast.Draw(c.Image, c.Image.Bounds(), image.NewUniform(ink), image.Point{})
}

// Pix returns the pixel values, one byte per pixel, row by row starting at
// the top of the image.
func (c *Canvas) Pix() []byte {
	img := c.Image
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == w {
		return img.Pix[:w*h]
	}
	res := make([]byte, 0, w*h)
	for y := range h {
		res = append(res, img.Pix[y*img.Stride:y*img.Stride+w]...)
	}
	return res
}

// flatten converts a path into polylines in device space.
func (c *Canvas) flatten(segs []path.Segment) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	var start vec.Vec2
	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}
	for _, seg := range segs {
		switch seg.Kind {
		case path.MoveTo:
			flush()
			start = c.device(seg.P[0])
			cur = []vec.Vec2{start}
		case path.LineTo:
			if cur == nil {
				cur = []vec.Vec2{start}
			}
			cur = append(cur, c.device(seg.P[0]))
		case path.CurveTo:
			if cur == nil {
				cur = []vec.Vec2{start}
			}
			p0 := cur[len(cur)-1]
			p1, p2, p3 := c.device(seg.P[0]), c.device(seg.P[1]), c.device(seg.P[2])
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, vec.Vec2{
					X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
					Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
				})
			}
		case path.Close:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return res
}

// band adds the rectangle of half-width w around the segment from p to q.
// All polygons are added with the same orientation, so that overlapping
// parts do not cancel under the nonzero winding rule.
func (c *Canvas) band(p, q vec.Vec2, w float64) {
	d := q.Sub(p)
	if d.Length() == 0 {
		return
	}
	n := d.Normalize().Rot90().Mul(w)
	a, b := p.Add(n), q.Add(n)
	e, f := q.Sub(n), p.Sub(n)
	if cross(b.Sub(a), e.Sub(a)) < 0 {
		a, b, e, f = f, e, b, a
	}
	c.rast.MoveTo(float32(a.X), float32(a.Y))
	c.rast.LineTo(float32(b.X), float32(b.Y))
	c.rast.LineTo(float32(e.X), float32(e.Y))
	c.rast.LineTo(float32(f.X), float32(f.Y))
	c.rast.ClosePath()
}

// dot adds a disc of radius w around p.
func (c *Canvas) dot(p vec.Vec2, w float64) {
	for i := range capSides {
		phi := 2 * math.Pi * float64(i) / capSides
		x := float32(p.X + w*math.Cos(phi))
		y := float32(p.Y + w*math.Sin(phi))
		if i == 0 {
			c.rast.MoveTo(x, y)
		} else {
			c.rast.LineTo(x, y)
		}
	}
	c.rast.ClosePath()
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Render draws all strokes into a width×height image covering bounds and
// returns the pixel data in the format of [Canvas.Pix].
func Render(bounds apstream.Rect, width, height int, strokes ...path.Stroke) ([]byte, error) {
	c, err := NewCanvas(bounds, width, height)
	if err != nil {
		return nil, err
	}
	for _, s := range strokes {
		c.Stroke(s)
	}
	return c.Pix(), nil
}
