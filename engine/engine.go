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

// Package engine describes the external PDF engine which owns annotation
// dictionaries.
//
// Appearance builders only ever talk to the engine through the [Engine]
// interface.  The interface exposes get/set primitives for the few
// dictionary entries the builders need: the annotation rectangle, the color
// entries, plain string and number values, and the raw bytes of the
// appearance streams.
//
// [Memory] is an in-memory implementation of the interface, used for tests
// and for the demo command.  It mimics the behaviour of native engines in
// that the color accessors stop working once an appearance stream has been
// installed.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/apstream"
)

// Engine gives access to the dictionary of a single annotation.
//
// Implementations are not required to be safe for concurrent use.  Callers
// must serialize access to a given annotation.
type Engine interface {
	// Rect returns the /Rect entry.
	Rect() (apstream.Rect, error)

	// SetRect sets the /Rect entry.
	SetRect(r apstream.Rect) error

	// Color returns the /C or /IC entry.
	Color(which ColorType) (apstream.Color, error)

	// SetColor sets the /C or /IC entry.
	SetColor(which ColorType, c apstream.Color) error

	// StringValue returns a string or name valued entry, e.g. /DA or
	// /Contents.
	StringValue(key string) (string, error)

	// SetStringValue sets a string or name valued entry.
	SetStringValue(key, value string) error

	// NumberValue returns a number valued entry, e.g. /ca.
	NumberValue(key string) (float64, error)

	// SetNumberValue sets a number valued entry.
	SetNumberValue(key string, value float64) error

	// Appearance returns the content of the appearance stream for the
	// given mode.
	Appearance(mode Mode) ([]byte, error)

	// SetAppearance replaces the appearance stream for the given mode.
	SetAppearance(mode Mode, content []byte) error

	// HasKey reports whether the annotation dictionary contains the key.
	HasKey(key string) bool
}

// ErrNoValue is returned by engines when a requested entry is not present.
var ErrNoValue = errors.New("no such entry")

// ColorType selects one of the color entries of an annotation dictionary.
type ColorType int

// These are the supported color entries.
const (
	// StrokeColor is the /C entry: the border or stroke color, and the fill
	// color of highlight annotations.
	StrokeColor ColorType = iota

	// InteriorColor is the /IC entry: the fill color of closed shapes.
	InteriorColor
)

// Key returns the dictionary key of the color entry.
func (t ColorType) Key() string {
	switch t {
	case StrokeColor:
		return "C"
	case InteriorColor:
		return "IC"
	default:
		return fmt.Sprintf("ColorType(%d)", int(t))
	}
}

func (t ColorType) String() string {
	return "/" + t.Key()
}

// Mode selects one of the appearance streams of an annotation.
type Mode int

// The appearance modes defined by the PDF specification.
const (
	Normal Mode = iota
	RollOver
	Down
)

// Name returns the key of the appearance in the /AP dictionary.
func (m Mode) Name() string {
	switch m {
	case Normal:
		return "N"
	case RollOver:
		return "R"
	case Down:
		return "D"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Selector returns the value written to /AS to select this appearance.
func (m Mode) Selector() string {
	return "/" + m.Name()
}

func (m Mode) String() string {
	return m.Selector()
}

// ParseMode converts an appearance name, with or without leading slash,
// into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimPrefix(s, "/") {
	case "N":
		return Normal, nil
	case "R":
		return RollOver, nil
	case "D":
		return Down, nil
	}
	return Normal, fmt.Errorf("unknown appearance mode %q", s)
}

// Dictionary keys used by the appearance builders.
const (
	KeyRect              = "Rect"
	KeyAppearance        = "AP"
	KeyAppearanceState   = "AS"
	KeyDefaultAppearance = "DA"
	KeyContents          = "Contents"
	KeyFillAlpha         = "ca"
	KeyStrokeAlpha       = "CA"
	KeyMaxLen            = "MaxLen"
	KeyStrokeColor       = "C"
	KeyInteriorColor     = "IC"
)
