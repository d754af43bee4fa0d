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

// Package float formats numbers for use in content streams.
package float

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format formats x with at most the given number of digits after the decimal
// point.  Trailing zeros are removed, and a leading "0." is shortened to ".".
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	return out
}

// Fixed formats x with exactly the given number of digits after the decimal
// point.  Values which round to zero are always written without a sign, so
// that the output does not depend on the sign of tiny rounding errors.
func Fixed(x float64, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.HasPrefix(out, "-") && strings.Trim(out[1:], "0.") == "" {
		out = out[1:]
	}
	return out
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
