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

package raster

import (
	"testing"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/path"
)

func TestRenderLine(t *testing.T) {
	bounds := apstream.Rect{LLx: 100, LLy: 200, URx: 120, URy: 210}
	stroke := path.Stroke{
		Segments: []path.Segment{path.Move(102, 205), path.Line(118, 205)},
		Width:    2,
		Color:    apstream.Black,
	}

	pix, err := Render(bounds, 20, 10, stroke)
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != 200 {
		t.Fatalf("got %d pixels, want 200", len(pix))
	}

	at := func(x, y int) byte { return pix[y*20+x] }
	if v := at(10, 4); v > 16 {
		t.Errorf("pixel on the line has value %d", v)
	}
	if v := at(10, 0); v != 255 {
		t.Errorf("pixel above the line has value %d", v)
	}
	if v := at(0, 9); v != 255 {
		t.Errorf("corner pixel has value %d", v)
	}
}

func TestRenderCurveAndColor(t *testing.T) {
	bounds := apstream.Rect{LLx: 0, LLy: 0, URx: 40, URy: 40}
	stroke := path.Stroke{
		Segments: []path.Segment{
			path.Move(5, 20),
			path.Curve(15, 35, 25, 5, 35, 20),
			path.ClosePath(),
		},
		Width: 3,
		Color: apstream.RGB(128, 128, 128),
	}

	c, err := NewCanvas(bounds, 40, 40)
	if err != nil {
		t.Fatal(err)
	}
	c.Stroke(stroke)

	v := c.Image.GrayAt(5, 20).Y
	if v < 100 || v > 160 {
		t.Errorf("start point has value %d, want mid grey", v)
	}
	if v := c.Image.GrayAt(20, 38).Y; v != 255 {
		t.Errorf("pixel away from the curve has value %d", v)
	}
}

func TestNewCanvasErrors(t *testing.T) {
	if _, err := NewCanvas(apstream.Rect{URx: 1, URy: 1}, 0, 10); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewCanvas(apstream.Rect{}, 10, 10); err == nil {
		t.Error("empty bounds accepted")
	}
}
