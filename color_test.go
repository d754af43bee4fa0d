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
	"testing"
)

func TestColorFromStream(t *testing.T) {
	cases := []struct {
		stream string
		stroke bool
		want   Color
		ok     bool
	}{
		{"1 0 0 rg", false, Red, true},
		{"q 0 0 1 RG 1 0 0 rg Q", true, Blue, true},
		{"q 0 0 1 RG 1 0 0 rg Q", false, Red, true},
		{"0 1 0 rg 0 0 1 rg", false, Blue, true},
		{"0 1 0 rg\n/X 1 2 rg", false, Green, true},
		{".5 .5 .5 RG", true, Color{128, 128, 128, 255}, true},
		{"2 -1 0.2 rg", false, Color{255, 0, 51, 255}, true},
		{"1 0 0 rgx", false, Color{}, false},
		{"0 0 rg", false, Color{}, false},
		{"1 0 0 RG", false, Color{}, false},
		{"", true, Color{}, false},
	}
	for _, c := range cases {
		got, err := ColorFromStream([]byte(c.stream), c.stroke)
		if c.ok {
			if err != nil {
				t.Errorf("%q: %v", c.stream, err)
			} else if got != c.want {
				t.Errorf("%q: got %v, want %v", c.stream, got, c.want)
			}
		} else if !errors.Is(err, ErrNoColorFound) {
			t.Errorf("%q: got %v, want ErrNoColorFound", c.stream, err)
		}
	}
}

func TestColorComponents(t *testing.T) {
	c := RGB(255, 0, 51)
	r, g, b := c.Components()
	if r != 1 || g != 0 || b != 0.2 {
		t.Errorf("Components = %g %g %g", r, g, b)
	}
	if !c.IsOpaque() || c.WithAlpha(128).IsOpaque() {
		t.Error("IsOpaque is wrong")
	}
	if got := ColorFromComponents(r, g, b); got != c {
		t.Errorf("round trip gave %v", got)
	}
	if Transparent.Alpha() != 0 || Black.Alpha() != 1 {
		t.Error("Alpha is wrong")
	}
}

func TestEngineError(t *testing.T) {
	base := errors.New("disk full")
	cases := []struct {
		err  *EngineError
		msg  string
		base bool
	}{
		{&EngineError{Op: "SetAppearance", Key: "N"}, "apstream: SetAppearance /N rejected by engine", false},
		{&EngineError{Op: "Rect", Err: ErrEngineRejected}, "apstream: Rect rejected by engine", false},
		{&EngineError{Op: "SetColor", Key: "C", Err: base}, "apstream: SetColor /C rejected by engine: disk full", true},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.msg {
			t.Errorf("Error() = %q, want %q", got, c.msg)
		}
		if !errors.Is(c.err, ErrEngineRejected) {
			t.Errorf("%v does not match ErrEngineRejected", c.err)
		}
		if errors.Is(c.err, base) != c.base {
			t.Errorf("%v: wrong wrapping of %v", c.err, base)
		}
	}
}
