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

package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var svgCmdSub = strings.NewReplacer(",", " ",
	"M", " M ", "m", " m ",
	"L", " L ", "l", " l ",
	"H", " H ", "h", " h ",
	"V", " V ", "v", " v ",
	"C", " C ", "c", " c ",
	"Q", " Q ", "q", " q ",
	"Z", " Z ", "z", " z ")

// ParseSVG converts SVG path data (the "d" attribute of an SVG path element)
// into path segments.  The commands M, L, H, V, C, Q and Z are supported,
// both in absolute and relative form.  Quadratic curves are converted to
// cubic ones.  Coordinates are used as given, without flipping the y axis.
func ParseSVG(d string) ([]Segment, error) {
	fields := strings.Fields(svgCmdSub.Replace(d))

	var segs []Segment
	var cmd byte
	var cur, start [2]float64
	pos := 0

	args := func(n int) ([]float64, error) {
		if pos+n > len(fields) {
			return nil, fmt.Errorf("svg path: command %q needs %d arguments", cmd, n)
		}
		res := make([]float64, n)
		for i := range n {
			x, err := strconv.ParseFloat(fields[pos+i], 64)
			if err != nil {
				return nil, fmt.Errorf("svg path: invalid number %q", fields[pos+i])
			}
			res[i] = x
		}
		pos += n
		return res, nil
	}

	for pos < len(fields) {
		tok := fields[pos]
		switch c := tok[0]; {
		case c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z':
			if len(tok) != 1 || !strings.ContainsRune("MmLlHhVvCcQqZz", rune(c)) {
				return nil, fmt.Errorf("svg path: unsupported command %q", tok)
			}
			cmd = c
			pos++
		case cmd == 0:
			return nil, fmt.Errorf("svg path: expected command, got %q", tok)
		case cmd == 'Z' || cmd == 'z':
			return nil, fmt.Errorf("svg path: unexpected argument %q after Z", tok)
		}

		rel := cmd >= 'a'
		off := [2]float64{}
		if rel {
			off = cur
		}

		switch cmd {
		case 'M', 'm':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			cur = [2]float64{a[0] + off[0], a[1] + off[1]}
			start = cur
			segs = append(segs, Move(cur[0], cur[1]))
			// further coordinate pairs are implicit line commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			cur = [2]float64{a[0] + off[0], a[1] + off[1]}
			segs = append(segs, Line(cur[0], cur[1]))
		case 'H', 'h':
			a, err := args(1)
			if err != nil {
				return nil, err
			}
			cur[0] = a[0] + off[0]
			segs = append(segs, Line(cur[0], cur[1]))
		case 'V', 'v':
			a, err := args(1)
			if err != nil {
				return nil, err
			}
			cur[1] = a[0] + off[1]
			segs = append(segs, Line(cur[0], cur[1]))
		case 'C', 'c':
			a, err := args(6)
			if err != nil {
				return nil, err
			}
			for i := range 6 {
				a[i] += off[i%2]
			}
			segs = append(segs, Curve(a[0], a[1], a[2], a[3], a[4], a[5]))
			cur = [2]float64{a[4], a[5]}
		case 'Q', 'q':
			a, err := args(4)
			if err != nil {
				return nil, err
			}
			for i := range 4 {
				a[i] += off[i%2]
			}
			// degree elevation of the quadratic curve
			x1 := cur[0] + 2.0/3.0*(a[0]-cur[0])
			y1 := cur[1] + 2.0/3.0*(a[1]-cur[1])
			x2 := a[2] + 2.0/3.0*(a[0]-a[2])
			y2 := a[3] + 2.0/3.0*(a[1]-a[3])
			segs = append(segs, Curve(x1, y1, x2, y2, a[2], a[3]))
			cur = [2]float64{a[2], a[3]}
		case 'Z', 'z':
			segs = append(segs, ClosePath())
			cur = start
		}

		if len(segs) > 0 && segs[0].Kind != MoveTo {
			return nil, errMissingMove
		}
	}
	return segs, nil
}

var errMissingMove = errors.New("svg path: path must start with a move command")
