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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/engine"
)

func TestApplyLine(t *testing.T) {
	m := engine.NewMemory()
	p := apstream.Point{X: 10, Y: 10}
	q := apstream.Point{X: 50, Y: 30}
	if err := ApplyLine(m, p, q, nil); err != nil {
		t.Fatal(err)
	}

	r, err := m.Rect()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(apstream.Rect{LLx: 9, LLy: 9, URx: 51, URy: 31}, r); d != "" {
		t.Errorf("rect (-want +got):\n%s", d)
	}

	want := `q
1 0 0 1 9.0000 9.0000 cm
1 J
1 j
0.0000 0.0000 0.0000 RG
1.0000 w
1.0000 1.0000 m
41.0000 21.0000 l
S
Q
`
	if d := cmp.Diff(want, normalAppearance(t, m)); d != "" {
		t.Errorf("stream (-want +got):\n%s", d)
	}
}

func TestApplyLineBorderStyle(t *testing.T) {
	p := apstream.Point{X: 10, Y: 10}
	q := apstream.Point{X: 50, Y: 30}
	cases := []struct {
		style BorderStyle
		dash  bool
	}{
		{Solid, false},
		{Dashed, true},
		{Dotted, false},
	}
	for _, c := range cases {
		t.Run(c.style.String(), func(t *testing.T) {
			m := engine.NewMemory()
			if err := ApplyLine(m, p, q, &ShapeConfig{BorderStyle: c.style}); err != nil {
				t.Fatal(err)
			}
			got := strings.Contains(normalAppearance(t, m), " d\n")
			if got != c.dash {
				t.Errorf("dash pattern present = %t, want %t", got, c.dash)
			}
		})
	}
}

func TestPolygonAndPolyline(t *testing.T) {
	vertices := []apstream.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	fill := apstream.Red
	cfg := &ShapeConfig{FillColor: &fill}

	m := engine.NewMemory()
	if err := ApplyPolygon(m, vertices, cfg); err != nil {
		t.Fatal(err)
	}
	polygon := normalAppearance(t, m)
	if !strings.Contains(polygon, "1.0000 0.0000 0.0000 rg") {
		t.Errorf("polygon not filled:\n%s", polygon)
	}
	if !strings.HasSuffix(polygon, "l\nh\nB\nQ\n") {
		t.Errorf("polygon not closed and filled:\n%s", polygon)
	}

	m = engine.NewMemory()
	if err := ApplyPolyline(m, vertices, cfg); err != nil {
		t.Fatal(err)
	}
	polyline := normalAppearance(t, m)
	if strings.Contains(polyline, " rg\n") || strings.Contains(polyline, "\nh\n") {
		t.Errorf("polyline closed or filled:\n%s", polyline)
	}
	if !strings.HasSuffix(polyline, "6.0000 11.0000 l\nS\nQ\n") {
		t.Errorf("unexpected polyline ending:\n%s", polyline)
	}
}

func TestShapeEmptyGeometry(t *testing.T) {
	m := engine.NewMemory()
	if err := ApplyPolygon(m, nil, nil); !errors.Is(err, apstream.ErrEmptyGeometry) {
		t.Errorf("ApplyPolygon: got %v", err)
	}
	if err := ApplyPolyline(m, []apstream.Point{}, nil); !errors.Is(err, apstream.ErrEmptyGeometry) {
		t.Errorf("ApplyPolyline: got %v", err)
	}
	_, err := PolygonStream(apstream.Rect{URx: 1, URy: 1}, nil, &ShapeStyle{Width: 1})
	if !errors.Is(err, apstream.ErrEmptyGeometry) {
		t.Errorf("PolygonStream: got %v", err)
	}
	if len(m.Calls) != 0 {
		t.Errorf("unexpected engine calls %v", m.Calls)
	}
}

func TestSquare(t *testing.T) {
	data, err := SquareStream(apstream.Rect{URx: 10, URy: 10}, &ShapeStyle{Stroke: apstream.Black, Width: 2})
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, "1 0 0 1 1.0000 1.0000 cm\n") {
		t.Errorf("outline not inset:\n%s", s)
	}
	if !strings.Contains(s, "0.0000 0.0000 8.0000 8.0000 re\nS\n") {
		t.Errorf("unexpected rectangle:\n%s", s)
	}

	m := engine.NewMemory()
	cfg := &ShapeConfig{StrokeWidth: 4, BorderStyle: Dashed}
	if err := ApplySquare(m, &apstream.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}, cfg); err != nil {
		t.Fatal(err)
	}
	r, _ := m.Rect()
	if d := cmp.Diff(apstream.Rect{LLx: 8, LLy: 8, URx: 22, URy: 22}, r); d != "" {
		t.Errorf("rect (-want +got):\n%s", d)
	}
	if ap := normalAppearance(t, m); !strings.Contains(ap, "[3.0000 3.0000] 0.0000 d\n") {
		t.Errorf("dash pattern missing:\n%s", ap)
	}
}

func TestBorderStyles(t *testing.T) {
	cases := []struct {
		cfg  *ShapeConfig
		want []float64
	}{
		{nil, nil},
		{&ShapeConfig{}, nil},
		{&ShapeConfig{BorderStyle: Dashed}, []float64{3, 3}},
		{&ShapeConfig{BorderStyle: Dashed, Dash: []float64{5, 1}}, []float64{5, 1}},
		{&ShapeConfig{BorderStyle: Dotted}, []float64{1, 2}},
	}
	for i, c := range cases {
		got, _ := c.cfg.dash()
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%d: %s", i, d)
		}
	}
}

func TestFillPlaceholder(t *testing.T) {
	cases := []struct {
		c    apstream.Color
		want bool
	}{
		{apstream.Transparent, true},
		{apstream.Color{R: 255, A: 0}, true},
		{apstream.Black, true},
		{apstream.Color{R: 128, G: 128, B: 128, A: 128}, true},
		{apstream.Color{R: 200, G: 200, B: 200, A: 191}, true},
		{apstream.White, true},
		{apstream.Color{R: 128, G: 128, B: 128, A: 100}, false},
		{apstream.Red, false},
		{apstream.Color{R: 0, G: 0, B: 0, A: 128}, true},
		{apstream.RGB(255, 255, 200), false},
	}
	for _, c := range cases {
		if got := isFillPlaceholder(c.c); got != c.want {
			t.Errorf("isFillPlaceholder(%v) = %t, want %t", c.c, got, c.want)
		}
	}
}

func TestShapeFillFromDictionary(t *testing.T) {
	vertices := []apstream.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}

	t.Run("placeholder", func(t *testing.T) {
		m := engine.NewMemory()
		m.PutColor(engine.InteriorColor, apstream.Black)
		if err := ApplyPolygon(m, vertices, nil); err != nil {
			t.Fatal(err)
		}
		if ap := normalAppearance(t, m); !strings.HasSuffix(ap, "h\nS\nQ\n") {
			t.Errorf("placeholder fill used:\n%s", ap)
		}
	})

	t.Run("real color", func(t *testing.T) {
		m := engine.NewMemory()
		m.PutColor(engine.InteriorColor, apstream.Green)
		if err := ApplyPolygon(m, vertices, nil); err != nil {
			t.Fatal(err)
		}
		if ap := normalAppearance(t, m); !strings.Contains(ap, "0.0000 1.0000 0.0000 rg\n") {
			t.Errorf("interior color not used:\n%s", ap)
		}
	})

	t.Run("explicit transparent", func(t *testing.T) {
		m := engine.NewMemory()
		m.PutColor(engine.InteriorColor, apstream.Green)
		none := apstream.Transparent
		if err := ApplyPolygon(m, vertices, &ShapeConfig{FillColor: &none}); err != nil {
			t.Fatal(err)
		}
		if ap := normalAppearance(t, m); strings.Contains(ap, " rg\n") {
			t.Errorf("shape filled:\n%s", ap)
		}
	})
}
