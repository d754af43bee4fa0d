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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoundingRect(t *testing.T) {
	r, err := BoundingRect(Point{X: 3, Y: 4}, Point{X: -1, Y: 10}, Point{X: 2, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Rect{LLx: -1, LLy: 0, URx: 3, URy: 10}, r); d != "" {
		t.Error(d)
	}

	if _, err := BoundingRect(); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("got %v, want ErrEmptyGeometry", err)
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		width float64
		want  Rect
	}{
		{0, Rect{LLx: 9, LLy: 9, URx: 11, URy: 11}},
		{1, Rect{LLx: 9, LLy: 9, URx: 11, URy: 11}},
		{6, Rect{LLx: 7, LLy: 7, URx: 13, URy: 13}},
	}
	point := Rect{LLx: 10, LLy: 10, URx: 10, URy: 10}
	for _, c := range cases {
		got := point.Pad(c.width)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("width %g: %s", c.width, d)
		}
		if !got.IsValid() {
			t.Errorf("width %g: padded rect %s not valid", c.width, got)
		}
	}
}

func TestRectPredicates(t *testing.T) {
	cases := []struct {
		r     Rect
		valid bool
		zero  bool
	}{
		{Rect{}, false, true},
		{Rect{URx: 1, URy: 1}, true, false},
		{Rect{LLx: 5, LLy: 5, URx: 5, URy: 8}, false, false},
		{Rect{LLx: 5, LLy: 5, URx: 3, URy: 8}, false, false},
	}
	for _, c := range cases {
		if got := c.r.IsValid(); got != c.valid {
			t.Errorf("%s.IsValid() = %t", c.r, got)
		}
		if got := c.r.IsZero(); got != c.zero {
			t.Errorf("%s.IsZero() = %t", c.r, got)
		}
	}

	r := Rect{LLx: 0, LLy: 0, URx: 4, URy: 2}
	if r.Area() != 8 {
		t.Errorf("Area = %g", r.Area())
	}
	if !r.Contains(Point{X: 4, Y: 0}) || r.Contains(Point{X: 4.1, Y: 1}) {
		t.Error("Contains is wrong at the boundary")
	}
	if !r.NearlyEqual(Rect{URx: 4.0001, URy: 2}, 1e-3) {
		t.Error("NearlyEqual too strict")
	}
	if got := ToLocal(Point{X: 5, Y: 7}, Point{X: 2, Y: 3}); got != (Point{X: 3, Y: 4}) {
		t.Errorf("ToLocal = %v", got)
	}
}

func TestQuads(t *testing.T) {
	xx := []float64{0, 0, 10, 0, 10, 5, 0, 5, 20, 20, 30, 20, 30, 25, 20, 25, 99}
	quads := QuadsFromFloats(xx)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}
	if d := cmp.Diff(Quad(Rect{URx: 10, URy: 5}), quads[0]); d != "" {
		t.Error(d)
	}

	r, err := QuadsBounds(quads)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Rect{URx: 30, URy: 25}, r); d != "" {
		t.Error(d)
	}

	// a rotated quad
	q := QuadPoint{{X: 5, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 5}}
	if q.Left() != 0 || q.Right() != 10 || q.Bottom() != 0 || q.Top() != 10 {
		t.Errorf("wrong extent for %v", q)
	}

	if _, err := QuadsBounds(nil); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("got %v, want ErrEmptyGeometry", err)
	}
}

func TestBoundingRectContains(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		n := 1 + rng.IntN(10)
		points := make([]Point, n)
		for i := range points {
			points[i] = Point{X: rng.NormFloat64() * 100, Y: rng.NormFloat64() * 100}
		}
		r, err := BoundingRect(points...)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range points {
			if !r.Contains(p) {
				t.Fatalf("%s does not contain %v", r, p)
			}
		}
	}
}

func TestPadMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		r := Rect{LLx: rng.Float64() * 100, LLy: rng.Float64() * 100}
		r.URx = r.LLx + rng.Float64()*50
		r.URy = r.LLy + rng.Float64()*50
		w := rng.Float64() * 10

		p := r.Pad(w)
		if p.Area() < r.Area() {
			t.Fatalf("Pad(%g) shrinks %s to %s", w, r, p)
		}
		d := max(w/2, 1)
		if !p.NearlyEqual(Rect{LLx: r.LLx - d, LLy: r.LLy - d, URx: r.URx + d, URy: r.URy + d}, 1e-9) {
			t.Fatalf("Pad(%g) of %s gave %s", w, r, p)
		}
	}
}
