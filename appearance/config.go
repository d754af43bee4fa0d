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
	"fmt"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/content"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/path"
	"seehuhn.de/go/apstream/textlayout"
)

// BorderStyle selects how shape outlines and free text borders are drawn.
type BorderStyle int

// These are the supported border styles.
const (
	Solid BorderStyle = iota
	Dashed
	Dotted
)

func (s BorderStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
}

// Dash patterns used when no explicit pattern is given.
var (
	shapeDash    = []float64{3, 3}
	freeTextDash = []float64{3, 2}
	dottedDash   = []float64{1, 2}
)

// MarkupConfig controls the appearance of highlight, underline, strikeout
// and squiggly annotations.  A nil *MarkupConfig is the same as the zero
// value.
type MarkupConfig struct {
	// Color overrides the color stored in the annotation.
	Color *apstream.Color

	// StrokeWidth is the line width for underline, strikeout and squiggly
	// annotations.  Zero means 1.
	StrokeWidth float64

	// Mode selects the appearance which is written.
	Mode engine.Mode
}

func (c *MarkupConfig) strokeWidth() float64 {
	if c == nil || c.StrokeWidth <= 0 {
		return 1
	}
	return c.StrokeWidth
}

// ShapeConfig controls the appearance of line, polygon, polyline and square
// annotations.  A nil *ShapeConfig is the same as the zero value.
type ShapeConfig struct {
	// StrokeColor overrides the /C entry of the annotation.
	StrokeColor *apstream.Color

	// FillColor overrides the /IC entry of the annotation.  A color with
	// alpha zero disables filling.  Ignored for lines and polylines.
	FillColor *apstream.Color

	// StrokeWidth is the line width.  Zero means 1.
	StrokeWidth float64

	// BorderStyle selects solid, dashed or dotted outlines.
	BorderStyle BorderStyle

	// Dash is the dash array used for dashed outlines.  If this is empty,
	// [3 3] is used.
	Dash []float64

	// DashPhase is the phase of the dash pattern.
	DashPhase float64

	// Mode selects the appearance which is written.
	Mode engine.Mode
}

func (c *ShapeConfig) strokeWidth() float64 {
	if c == nil || c.StrokeWidth <= 0 {
		return 1
	}
	return c.StrokeWidth
}

// dash returns the dash pattern for the outline, or nil for solid lines.
func (c *ShapeConfig) dash() ([]float64, float64) {
	if c == nil {
		return nil, 0
	}
	switch c.BorderStyle {
	case Dashed:
		if len(c.Dash) > 0 {
			return c.Dash, c.DashPhase
		}
		return shapeDash, c.DashPhase
	case Dotted:
		return dottedDash, c.DashPhase
	default:
		return nil, 0
	}
}

// WatermarkConfig controls the appearance of watermark annotations.
// A nil *WatermarkConfig is the same as the zero value.
type WatermarkConfig struct {
	// Text is the watermark text.  If this is empty, the /Contents entry of
	// the annotation is used, and if that is empty as well, "WATERMARK".
	Text string

	// RotationDeg is the counter-clockwise rotation in degrees.
	RotationDeg float64

	// Scale multiplies the size of the text.  Zero means 1.
	Scale float64

	// Color overrides the /C entry of the annotation.  The alpha channel
	// determines the opacity of the text.
	Color *apstream.Color

	// FontName is the name of the font resource.  Empty means "Helv".
	FontName string

	// Mode selects the appearance which is written.
	Mode engine.Mode
}

// FreeTextConfig controls the appearance of free text annotations.  Use
// [DefaultFreeTextConfig] to get the standard settings; a nil
// *FreeTextConfig is the same as the value returned by this function.
type FreeTextConfig struct {
	// Text is the text to show.  If this is empty, the /Contents entry of
	// the annotation is used.
	Text string

	// FontName, FontSize and TextColor override the corresponding parts of
	// the /DA entry when set.
	FontName  string
	FontSize  float64
	TextColor *apstream.Color

	HAlign  textlayout.HAlign
	VAlign  textlayout.VAlign
	Padding textlayout.Padding

	// BorderColor and BorderWidth describe the frame around the text.
	// The frame is omitted if BorderColor is nil or BorderWidth is zero.
	BorderColor *apstream.Color
	BorderWidth float64
	BorderStyle BorderStyle

	// Background is the fill color of the box, or nil for no background.
	Background *apstream.Color

	// WordWrap enables line breaking at the right edge of the text area.
	WordWrap bool

	// LineSpacing is the distance between baselines, as a multiple of the
	// font size.  Zero means 1.2.
	LineSpacing float64

	// Mode selects the appearance which is written.
	Mode engine.Mode
}

// DefaultFreeTextConfig returns the standard free text settings: 4 units of
// padding, a solid black border of width 1, a light yellow background,
// word wrapping, and a line spacing of 1.2.
func DefaultFreeTextConfig() *FreeTextConfig {
	border := apstream.Black
	background := apstream.RGB(255, 255, 200)
	return &FreeTextConfig{
		Padding:     textlayout.Uniform(4),
		BorderColor: &border,
		BorderWidth: 1,
		BorderStyle: Solid,
		Background:  &background,
		WordWrap:    true,
		LineSpacing: 1.2,
	}
}

// TextFieldConfig controls the appearance of text form fields.  Use
// [DefaultTextFieldConfig] to get the standard settings; a nil
// *TextFieldConfig is the same as the value returned by this function.
type TextFieldConfig struct {
	// Value is the field value to show.
	Value string

	// FontName, FontSize and TextColor override the corresponding parts of
	// the /DA entry when set.
	FontName  string
	FontSize  float64
	TextColor *apstream.Color

	HAlign  textlayout.HAlign
	VAlign  textlayout.VAlign
	Padding textlayout.Padding

	// Password replaces every character by Mask (or '*' if Mask is zero).
	Password bool
	Mask     rune

	// Multiline breaks the value into lines at line breaks and at the
	// right edge of the field.
	Multiline bool

	// Comb spreads the characters over MaxLen equally wide cells.  If
	// MaxLen is zero, the /MaxLen entry of the field is used.  Comb is
	// ignored for multiline fields.
	Comb   bool
	MaxLen int

	// Mode selects the appearance which is written.
	Mode engine.Mode
}

// DefaultTextFieldConfig returns the standard text field settings: 2 units
// of padding, left aligned and vertically centred.
func DefaultTextFieldConfig() *TextFieldConfig {
	return &TextFieldConfig{
		Padding: textlayout.Uniform(2),
		VAlign:  textlayout.Middle,
	}
}

// SignatureConfig describes a hand-drawn signature.  The stroke coordinates
// are relative to the lower left corner of the annotation rectangle.
type SignatureConfig struct {
	Strokes []path.Stroke
	Mode    engine.Mode
}

// BitmapConfig gives the size in pixels of the image used by
// [ApplySignatureBitmap].  Zero values select one pixel per unit of the
// annotation rectangle.
type BitmapConfig struct {
	Width, Height int
}

// setDash emits the dash pattern for a shape outline, if needed.
func setDash(b *content.Builder, pattern []float64, phase float64) {
	if len(pattern) > 0 {
		b.SetLineDash(pattern, phase)
	}
}
