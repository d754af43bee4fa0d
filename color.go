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
	"bytes"
	"math"
	"strconv"
)

// Color is an 8-bit RGBA color, as used in annotation dictionaries by the
// external engine.
type Color struct {
	R, G, B, A uint8
}

// Some frequently used colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Components returns the red, green and blue components in the range [0, 1],
// as used by the "rg" and "RG" operators.
func (c Color) Components() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Alpha returns the opacity in the range [0, 1].
func (c Color) Alpha() float64 {
	return float64(c.A) / 255
}

// IsOpaque reports whether the alpha channel is 255.
func (c Color) IsOpaque() bool {
	return c.A == 255
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ColorFromComponents converts red, green and blue components in [0, 1] into
// an opaque Color.  Components outside the range are clamped, and values are
// rounded to the nearest 8-bit level.
func ColorFromComponents(r, g, b float64) Color {
	return Color{R: toByte(r), G: toByte(g), B: toByte(b), A: 255}
}

func toByte(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// ColorFromStream locates the last color operator of the given kind in a
// content stream and returns the color it sets.  If stroke is true, the
// stroking operator "RG" is used, otherwise the non-stroking operator "rg".
// The three tokens preceding the operator must be numbers.  Otherwise, or if
// the operator does not occur, [ErrNoColorFound] is returned.
//
// The returned color is always opaque, since "rg" and "RG" carry no alpha.
func ColorFromStream(stream []byte, stroke bool) (Color, error) {
	op := []byte(" rg")
	if stroke {
		op = []byte(" RG")
	}

	end := len(stream)
	for end > 0 {
		pos := bytes.LastIndex(stream[:end], op)
		if pos < 0 {
			break
		}
		end = pos
		after := pos + len(op)
		if after < len(stream) && !isSpace(stream[after]) {
			continue // e.g. " rgx"
		}

		tokens := lastFields(stream[:pos], 3)
		if len(tokens) < 3 {
			continue
		}
		var comp [3]float64
		ok := true
		for i, tok := range tokens {
			x, err := strconv.ParseFloat(string(tok), 64)
			if err != nil {
				ok = false
				break
			}
			comp[i] = x
		}
		if ok {
			return ColorFromComponents(comp[0], comp[1], comp[2]), nil
		}
	}
	return Color{}, ErrNoColorFound
}

// lastFields returns up to n whitespace-separated tokens from the end of
// data, in their original order.
func lastFields(data []byte, n int) [][]byte {
	res := make([][]byte, n)
	i := len(data)
	k := n
	for k > 0 {
		for i > 0 && isSpace(data[i-1]) {
			i--
		}
		if i == 0 {
			break
		}
		j := i
		for j > 0 && !isSpace(data[j-1]) {
			j--
		}
		k--
		res[k] = data[j:i]
		i = j
	}
	return res[k:]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}
