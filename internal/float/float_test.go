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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		prec int
		want string
	}{
		{0, 2, "0"},
		{1, 4, "1"},
		{0.5, 4, ".5"},
		{-0.25, 4, "-.25"},
		{10.5, 2, "10.5"},
		{12, 2, "12"},
		{-0.00001, 3, "0"},
		{1.23456, 3, "1.235"},
		{100, 0, "100"},
	}
	for _, c := range cases {
		if got := Format(c.x, c.prec); got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.prec, got, c.want)
		}
	}
}

func TestFixed(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0.0000"},
		{1, "1.0000"},
		{-2.5, "-2.5000"},
		{0.78431372, "0.7843"},
		{-0.00001, "0.0000"},
		{math.NaN(), "0.0000"},
		{math.Inf(-1), "0.0000"},
	}
	for _, c := range cases {
		if got := Fixed(c.x, 4); got != c.want {
			t.Errorf("Fixed(%g, 4) = %q, want %q", c.x, got, c.want)
		}
	}
}
