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
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/apstream"
)

// LineCapStyle is the style of the end of a stroked open path.
type LineCapStyle int

// These are the line cap styles defined by PDF.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corners of a stroked path.
type LineJoinStyle int

// These are the line join styles defined by PDF.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (b *Builder) PushGraphicsState() {
	if b.Err != nil {
		return
	}
	if b.inText {
		b.Err = errors.New("PushGraphicsState: not allowed inside text object")
		return
	}
	b.nested++
	b.emit("q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (b *Builder) PopGraphicsState() {
	if b.Err != nil {
		return
	}
	if b.nested == 0 {
		b.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	if b.inText {
		b.Err = errors.New("PopGraphicsState: not allowed inside text object")
		return
	}
	b.nested--
	b.emit("Q")
}

// Transform applies a transformation matrix to the coordinate system.
// The new transformation is applied to the user coordinates first, followed
// by the existing transformation.
//
// This implements the PDF graphics operator "cm".
func (b *Builder) Transform(m matrix.Matrix) {
	b.emitNumbers("cm", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Translate moves the origin of the coordinate system to (x, y).
// The identity part of the matrix is written as integers.
//
// This implements the PDF graphics operator "cm".
func (b *Builder) Translate(x, y float64) {
	b.emit("cm", "1", "0", "0", "1", Number(x), Number(y))
}

// SetExtGState applies the named graphics state parameter dictionary.  The
// resource itself is managed by the external engine.
//
// This implements the PDF graphics operator "gs".
func (b *Builder) SetExtGState(name string) {
	if b.Err != nil {
		return
	}
	if name == "" {
		b.Err = errors.New("SetExtGState: empty resource name")
		return
	}
	b.emit("gs", "/"+name)
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (b *Builder) SetLineWidth(width float64) {
	if b.Err != nil {
		return
	}
	if width < 0 {
		b.Err = fmt.Errorf("SetLineWidth: negative width %f", width)
		return
	}
	b.emitNumbers("w", width)
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (b *Builder) SetLineCap(cap LineCapStyle) {
	if b.Err != nil {
		return
	}
	if cap < 0 || cap > 2 {
		b.Err = fmt.Errorf("SetLineCap: invalid line cap style %d", cap)
		return
	}
	b.emit("J", strconv.Itoa(int(cap)))
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (b *Builder) SetLineJoin(join LineJoinStyle) {
	if b.Err != nil {
		return
	}
	if join < 0 || join > 2 {
		b.Err = fmt.Errorf("SetLineJoin: invalid line join style %d", join)
		return
	}
	b.emit("j", strconv.Itoa(int(join)))
}

// SetLineDash sets the line dash pattern.  An empty pattern gives solid
// lines.
//
// This implements the PDF graphics operator "d".
func (b *Builder) SetLineDash(pattern []float64, phase float64) {
	if b.Err != nil {
		return
	}
	allZero := len(pattern) > 0
	for _, x := range pattern {
		if x < 0 {
			b.Err = fmt.Errorf("SetLineDash: negative dash length %f", x)
			return
		}
		if x != 0 {
			allZero = false
		}
	}
	if allZero {
		b.Err = errors.New("SetLineDash: all dash lengths are zero")
		return
	}
	arr := "["
	for i, x := range pattern {
		if i > 0 {
			arr += " "
		}
		arr += Number(x)
	}
	arr += "]"
	b.emit("d", arr, Number(phase))
}

// SetFillColor sets the non-stroking color to the RGB part of c.
//
// This implements the PDF graphics operator "rg".
func (b *Builder) SetFillColor(c apstream.Color) {
	r, g, bl := c.Components()
	b.emitNumbers("rg", r, g, bl)
}

// SetStrokeColor sets the stroking color to the RGB part of c.
//
// This implements the PDF graphics operator "RG".
func (b *Builder) SetStrokeColor(c apstream.Color) {
	r, g, bl := c.Components()
	b.emitNumbers("RG", r, g, bl)
}
