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

package textlayout

import (
	"strconv"
	"strings"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/internal/float"
)

// DefaultAppearance holds the parts of a /DA string which are used for
// laying out text.
type DefaultAppearance struct {
	Font  string
	Size  float64
	Color apstream.Color
}

// DefaultDA is used when an annotation has no usable /DA entry.
var DefaultDA = DefaultAppearance{
	Font:  "Helv",
	Size:  12,
	Color: apstream.Black,
}

// ParseDA extracts font, font size and fill color from a default
// appearance string of the form "/Helv 12 Tf 0 0 0 rg".  Components which
// are missing or malformed keep their values from [DefaultDA].  Surrounding
// quotes are ignored.
func ParseDA(da string) DefaultAppearance {
	res := DefaultDA

	tokens := strings.Fields(strings.Trim(strings.TrimSpace(da), `"`))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if name, ok := strings.CutPrefix(tok, "/"); ok {
			if name != "" {
				res.Font = name
			}
			if i+1 < len(tokens) {
				if size, err := strconv.ParseFloat(tokens[i+1], 64); err == nil && size >= 0 {
					res.Size = size
					i++
				}
			}
			if i+1 < len(tokens) && tokens[i+1] == "Tf" {
				i++
			}
			continue
		}

		if i+3 < len(tokens) && tokens[i+3] == "rg" {
			r, err1 := strconv.ParseFloat(tok, 64)
			g, err2 := strconv.ParseFloat(tokens[i+1], 64)
			b, err3 := strconv.ParseFloat(tokens[i+2], 64)
			if err1 == nil && err2 == nil && err3 == nil {
				res.Color = apstream.ColorFromComponents(r, g, b)
				i += 3
			}
		}
	}
	return res
}

// String formats da as a /DA string.
func (da DefaultAppearance) String() string {
	r, g, b := da.Color.Components()
	return "/" + da.Font + " " + float.Format(da.Size, 2) + " Tf " +
		float.Format(r, 4) + " " + float.Format(g, 4) + " " + float.Format(b, 4) + " rg"
}
