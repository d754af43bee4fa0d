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
	"fmt"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/logging"
)

// ColorSource tells where a resolved color came from.
type ColorSource int

// The color sources, in order of precedence.
const (
	FromConfig ColorSource = iota
	FromDictionary
	FromStream
	FromDefault
)

func (s ColorSource) String() string {
	switch s {
	case FromConfig:
		return "config"
	case FromDictionary:
		return "dictionary"
	case FromStream:
		return "stream"
	case FromDefault:
		return "default"
	default:
		return fmt.Sprintf("ColorSource(%d)", int(s))
	}
}

// ColorQuery describes where to look for one color of an annotation.
type ColorQuery struct {
	// Explicit is a color given by the caller.  If set, it is used
	// unconditionally.
	Explicit *apstream.Color

	// Entry is the dictionary entry holding the color.
	Entry engine.ColorType

	// Accept filters the dictionary value.  If Accept returns false, the
	// dictionary entry is treated as missing.  A nil function accepts all
	// colors.
	Accept func(apstream.Color) bool

	// Stroke selects the operator searched for in the existing appearance
	// stream: "RG" if true, "rg" otherwise.
	Stroke bool

	// Mode selects the existing appearance stream to search.
	Mode engine.Mode

	// Default is used if no other source gives a color.  If Default is
	// nil, ResolveColor returns [apstream.ErrNoColorFound] in this case.
	Default *apstream.Color
}

// ResolveColor determines a color of an annotation.  The sources are
// tried in the following order, and the first one which gives a color is
// used:
//
//  1. the explicit color from q.Explicit,
//  2. the dictionary entry q.Entry,
//  3. the last "RG" or "rg" operator in the existing appearance stream,
//  4. the default color q.Default.
//
// Since many engines refuse to read color entries once an appearance
// stream has been set, ResolveColor must be called before new appearance
// bytes are written.  Read failures from the engine are treated as missing
// values.
func ResolveColor(e engine.Engine, q ColorQuery) (apstream.Color, ColorSource, error) {
	log := logging.Logger()

	if q.Explicit != nil {
		return *q.Explicit, FromConfig, nil
	}

	c, err := e.Color(q.Entry)
	if err == nil && (q.Accept == nil || q.Accept(c)) {
		log.Debug("color from dictionary", "entry", q.Entry, "color", c)
		return c, FromDictionary, nil
	} else if err != nil && !errors.Is(err, engine.ErrNoValue) {
		log.Debug("color entry not readable", "entry", q.Entry, "error", err)
	}

	if data, err := e.Appearance(q.Mode); err == nil {
		c, err := apstream.ColorFromStream(data, q.Stroke)
		if err == nil {
			log.Debug("color from appearance stream", "entry", q.Entry, "color", c)
			return c, FromStream, nil
		}
	}

	if q.Default != nil {
		return *q.Default, FromDefault, nil
	}
	return apstream.Color{}, FromDefault, apstream.ErrNoColorFound
}

// TryRestoreColor writes a color back into the annotation dictionary after
// the appearance stream has been set.  Engines may refuse this once an
// appearance stream exists; since the color is already part of the
// appearance stream, failures are only logged.
func TryRestoreColor(e engine.Engine, which engine.ColorType, c apstream.Color) {
	if err := e.SetColor(which, c); err != nil {
		logging.Logger().Warn("color not restored",
			"entry", which, "color", c, "error", err)
	}
}

// isFillPlaceholder reports whether an interior color read from the
// annotation dictionary should be treated as "no fill".  Besides fully
// transparent colors, this covers the opaque black and grey values which
// some engines report for annotations without an interior color.
func isFillPlaceholder(c apstream.Color) bool {
	switch {
	case c.A == 0:
		return true
	case c.R == 0 && c.G == 0 && c.B == 0 && c.A == 255:
		return true
	case c.R == c.G && c.G == c.B && (c.A == 128 || c.A == 191 || c.A == 255):
		return true
	}
	return false
}

// acceptFill is the Accept function for interior colors.
func acceptFill(c apstream.Color) bool {
	return !isFillPlaceholder(c)
}

// resolveFill determines the interior color of a shape.  The second return
// value is false if the shape should not be filled.
func resolveFill(e engine.Engine, explicit *apstream.Color, mode engine.Mode) (apstream.Color, bool) {
	if explicit != nil {
		return *explicit, explicit.A > 0
	}
	c, _, err := ResolveColor(e, ColorQuery{
		Entry:  engine.InteriorColor,
		Accept: acceptFill,
		Stroke: false,
		Mode:   mode,
	})
	if err != nil {
		return apstream.Color{}, false
	}
	return c, c.A > 0
}
