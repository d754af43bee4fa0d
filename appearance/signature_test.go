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
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/path"
)

func testStrokes() []path.Stroke {
	return []path.Stroke{
		{
			Segments: []path.Segment{path.Move(1, 1), path.Line(9, 4)},
			Color:    apstream.Blue,
		},
	}
}

func TestSignatureStream(t *testing.T) {
	data, err := SignatureStream(apstream.Rect{LLx: 10, LLy: 10, URx: 20, URy: 15}, testStrokes())
	if err != nil {
		t.Fatal(err)
	}
	want := `q
1 0 0 1 10.0000 10.0000 cm
1 J
1 j
0.0000 0.0000 1.0000 RG
1.0000 w
1.0000 1.0000 m
9.0000 4.0000 l
S
Q
`
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("stream (-want +got):\n%s", d)
	}
}

func TestSignatureEmpty(t *testing.T) {
	rect := apstream.Rect{URx: 10, URy: 10}
	for _, strokes := range [][]path.Stroke{nil, {{Width: 2}}} {
		if _, err := SignatureStream(rect, strokes); !errors.Is(err, apstream.ErrEmptyGeometry) {
			t.Errorf("SignatureStream: got %v", err)
		}
		if _, err := SignatureBitmapStream(rect, strokes, BitmapConfig{}); !errors.Is(err, apstream.ErrEmptyGeometry) {
			t.Errorf("SignatureBitmapStream: got %v", err)
		}
	}

	m := newAnnot(t, rect)
	if err := ApplySignature(m, &SignatureConfig{}); !errors.Is(err, apstream.ErrEmptyGeometry) {
		t.Errorf("ApplySignature: got %v", err)
	}
	if len(m.Calls) != 0 {
		t.Errorf("unexpected engine calls %v", m.Calls)
	}
}

func TestSignatureBitmapStream(t *testing.T) {
	rect := apstream.Rect{LLx: 10, LLy: 10, URx: 20, URy: 15}
	data, err := SignatureBitmapStream(rect, testStrokes(), BitmapConfig{})
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{
		"1 0 0 1 10.0000 10.0000 cm\n",
		"10.0000 0.0000 0.0000 5.0000 0.0000 0.0000 cm\n",
		"BI /W 10 /H 5 /BPC 8 /CS /G /F /AHx ID\n",
		">\nEI\nQ\n",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
	if !strings.Contains(s, "ff") {
		t.Error("no white background pixels")
	}
}

func TestApplySignature(t *testing.T) {
	m := newAnnot(t, apstream.Rect{URx: 50, URy: 20})
	stroke, err := StrokeFromSVG("M 2 2 C 10 18 20 2 30 10 L 48 10", 1.5, apstream.Black)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &SignatureConfig{Strokes: []path.Stroke{stroke}}
	if err := ApplySignature(m, cfg); err != nil {
		t.Fatal(err)
	}
	ap := normalAppearance(t, m)
	if !strings.Contains(ap, "10.0000 18.0000 20.0000 2.0000 30.0000 10.0000 c\n48.0000 10.0000 l\nS\n") {
		t.Errorf("unexpected path:\n%s", ap)
	}
	if !strings.Contains(ap, "1.5000 w\n") {
		t.Errorf("stroke width missing:\n%s", ap)
	}

	m = newAnnot(t, apstream.Rect{URx: 50, URy: 20})
	if err := ApplySignatureBitmap(m, cfg, BitmapConfig{Width: 25, Height: 10}); err != nil {
		t.Fatal(err)
	}
	if ap := normalAppearance(t, m); !strings.Contains(ap, "BI /W 25 /H 10 ") {
		t.Errorf("bitmap size not used:\n%s", ap)
	}

	m = engine.NewMemory()
	if err := ApplySignature(m, cfg); err != nil {
		t.Fatal(err)
	}
	if m.HasKey(engine.KeyAppearance) {
		t.Error("appearance written without rectangle")
	}
}

func TestStrokeFromSVGError(t *testing.T) {
	if _, err := StrokeFromSVG("L 1 1", 1, apstream.Black); err == nil {
		t.Error("missing error for path without move")
	}
}

func TestFitStrokes(t *testing.T) {
	strokes := []path.Stroke{{
		Segments: []path.Segment{path.Move(10, 10), path.Line(30, 20)},
		Width:    0,
		Color:    apstream.Black,
	}}

	fitted, err := FitStrokes(strokes, 100, 100, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []path.Segment{path.Move(0, 25), path.Line(100, 75)}
	if d := cmp.Diff(want, fitted[0].Segments, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}

	flipped, err := FitStrokes(strokes, 100, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	want = []path.Segment{path.Move(0, 75), path.Line(100, 25)}
	if d := cmp.Diff(want, flipped[0].Segments, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("flipped segments (-want +got):\n%s", d)
	}

	strokes[0].Width = 4
	fitted, err = FitStrokes(strokes, 50, 50, false)
	if err != nil {
		t.Fatal(err)
	}
	r, err := path.Bounds(fitted...)
	if err != nil {
		t.Fatal(err)
	}
	half := fitted[0].Width / 2
	if r.LLx-half < -1e-9 || r.URx+half > 50+1e-9 {
		t.Errorf("wide stroke not inside box: %s, width %g", r, fitted[0].Width)
	}

	if _, err := FitStrokes(nil, 10, 10, false); !errors.Is(err, apstream.ErrEmptyGeometry) {
		t.Errorf("got %v, want ErrEmptyGeometry", err)
	}
}
