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

// Package wave generates the wavy lines used for squiggly underlines.
//
// A wave is a sequence of cubic Bezier segments of equal width.  Each
// segment starts and ends on the baseline and swings Amplitude units above
// and then below it.
package wave

import (
	"math"

	"seehuhn.de/go/apstream/path"
)

// These constants determine the shape of the wave.
const (
	// Period is the target width of a single wave.
	Period = 3.5

	// Amplitude is the vertical offset of the control points from the
	// baseline.
	Amplitude = 2.0

	// MinCount and MaxCount bound the number of waves along one line.
	MinCount = 2
	MaxCount = 100
)

// Count returns the number of waves used for a line of the given width.
// The result is always in the range [MinCount, MaxCount].
func Count(width float64) int {
	if math.IsNaN(width) || width <= 0 {
		return MinCount
	}
	n := math.Ceil(width / Period)
	if n > MaxCount {
		return MaxCount
	}
	return max(int(n), MinCount)
}

// Segments returns the path for a wave along the horizontal line at height
// y, from x0 to x0+width.  The result starts with a MoveTo segment, followed
// by Count(width) CurveTo segments.
func Segments(x0, y, width float64) []path.Segment {
	n := Count(width)
	w := width / float64(n)

	segs := make([]path.Segment, 0, n+1)
	segs = append(segs, path.Move(x0, y))
	for i := range n {
		start := x0 + float64(i)*w
		segs = append(segs, path.Curve(
			start+0.33*w, y+Amplitude,
			start+0.67*w, y-Amplitude,
			start+w, y))
	}
	return segs
}
