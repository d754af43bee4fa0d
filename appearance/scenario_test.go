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
	"strings"
	"testing"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/textlayout"
)

// countOps returns how often the operator op occurs in a content stream.
func countOps(stream, op string) int {
	n := 0
	for _, line := range strings.Split(stream, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[len(fields)-1] == op {
			n++
		}
	}
	return n
}

func TestScenarioHighlight(t *testing.T) {
	quad := apstream.QuadPoint{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}}
	m := newAnnot(t, quad.Bounds())
	yellow := apstream.RGB(255, 255, 0)
	if err := ApplyHighlight(m, []apstream.QuadPoint{quad}, &MarkupConfig{Color: &yellow}); err != nil {
		t.Fatal(err)
	}
	ap := normalAppearance(t, m)
	if !strings.Contains(ap, "1.0000 1.0000 0.0000 rg") {
		t.Errorf("fill color missing:\n%s", ap)
	}
	if n := countOps(ap, "f"); n != 1 {
		t.Errorf("got %d fill operators, want 1", n)
	}
	for _, key := range []string{engine.KeyFillAlpha, engine.KeyStrokeAlpha} {
		if x, err := m.NumberValue(key); err != nil || x != 0.3 {
			t.Errorf("/%s = %g, %v", key, x, err)
		}
	}
}

func TestScenarioUnderline(t *testing.T) {
	word := apstream.Rect{LLx: 72, LLy: 100, URx: 152, URy: 112}
	m := newAnnot(t, word)
	if err := ApplyUnderline(m, []apstream.QuadPoint{apstream.Quad(word)}, nil); err != nil {
		t.Fatal(err)
	}
	ap := normalAppearance(t, m)
	if !strings.Contains(ap, "0.0000 0.0000 m\n80.0000 0.0000 l\nS\n") {
		t.Errorf("unexpected underline:\n%s", ap)
	}
}

func TestScenarioSquiggly(t *testing.T) {
	quad := apstream.Quad(apstream.Rect{LLx: 0, LLy: 10, URx: 10.5, URy: 20})
	rect, err := MarkupRect(Squiggly, []apstream.QuadPoint{quad})
	if err != nil {
		t.Fatal(err)
	}
	data, err := SquigglyStream(rect, []apstream.QuadPoint{quad}, apstream.Black, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n := countOps(string(data), "c"); n != 3 {
		t.Errorf("got %d curves, want 3", n)
	}
}

func TestScenarioFreeTextNoWrap(t *testing.T) {
	cfg := DefaultFreeTextConfig()
	cfg.WordWrap = false
	text := strings.Repeat("lorem ipsum ", 17)[:200]

	data, err := FreeTextStream(apstream.Rect{URx: 100, URy: 300}, text, textlayout.DefaultDA, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := countOps(string(data), "Tj"); n != 1 {
		t.Errorf("got %d lines, want 1", n)
	}
}

func TestScenarioPolyline(t *testing.T) {
	m := engine.NewMemory()
	vertices := []apstream.Point{{X: 0, Y: 0}, {X: 50, Y: 20}, {X: 100, Y: 0}}
	if err := ApplyPolyline(m, vertices, nil); err != nil {
		t.Fatal(err)
	}
	ap := normalAppearance(t, m)
	want := map[string]int{"m": 1, "l": 2, "h": 0, "S": 1, "f": 0, "B": 0}
	for op, n := range want {
		if got := countOps(ap, op); got != n {
			t.Errorf("%q: got %d, want %d", op, got, n)
		}
	}
}
