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

// Package textlayout positions single- and multi-line text inside a box.
//
// There are no font metrics here.  The width of a string is estimated as
// half the font size per character (see [EstimateWidth]); all wrapping and
// alignment decisions are based on this estimate.
package textlayout

import (
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/apstream"
)

// CharWidth is the estimated width of one character, as a fraction of the
// font size.
const CharWidth = 0.5

// EstimateWidth returns the approximate width of text set at the given font
// size.  Every rune counts as one character, including combining marks.
func EstimateWidth(text string, fontSize float64) float64 {
	n := utf8.RuneCountInString(text)
	return float64(n) * fontSize * CharWidth
}

// Wrap breaks text into lines which fit into maxWidth, based on
// [EstimateWidth].  Words are separated by white space and are never
// split: a word which is wider than maxWidth on its own is placed on a line
// by itself.  Runs of white space inside a line are collapsed into a single
// space.
func Wrap(text string, fontSize, maxWidth float64) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if EstimateWidth(candidate, fontSize) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// Lines splits text into the lines of a text block.  If wrap is false, the
// whole text is returned as a single line.  Otherwise each paragraph (as
// delimited by line breaks) is wrapped separately using [Wrap]; empty
// paragraphs give empty lines.
func Lines(text string, fontSize, maxWidth float64, wrap bool) []string {
	if text == "" {
		return nil
	}
	if !wrap {
		return []string{text}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := Wrap(para, fontSize, maxWidth)
		if len(wrapped) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// HAlign is the horizontal alignment of text lines.
type HAlign int

// These are the supported horizontal alignments.
const (
	Left HAlign = iota
	Center
	Right
)

func (a HAlign) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "HAlign(?)"
	}
}

// VAlign is the vertical alignment of a text block.
type VAlign int

// These are the supported vertical alignments.
const (
	Top VAlign = iota
	Middle
	Bottom
)

func (a VAlign) String() string {
	switch a {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	default:
		return "VAlign(?)"
	}
}

// Padding gives the distance between the edges of a box and its text.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// Uniform returns a padding with the same value on all four sides.
func Uniform(p float64) Padding {
	return Padding{Left: p, Right: p, Top: p, Bottom: p}
}

// Inset returns the part of r which is available for text.  The result may
// be invalid if the padding is larger than the box.
func (p Padding) Inset(r apstream.Rect) apstream.Rect {
	return apstream.Rect{
		LLx: r.LLx + p.Left,
		LLy: r.LLy + p.Bottom,
		URx: r.URx - p.Right,
		URy: r.URy - p.Top,
	}
}

// BaselineStart returns the y coordinate of the first baseline of a block
// of n lines inside the text area box.  Consecutive baselines are
// fontSize*lineSpacing apart.
//
// For Top alignment the first baseline is one font size below the top of
// the box.  Middle centres the block height n*fontSize*lineSpacing in the
// box.  For Bottom alignment the last baseline is at the bottom of the box.
func BaselineStart(box apstream.Rect, n int, fontSize, lineSpacing float64, align VAlign) float64 {
	lineHeight := fontSize * lineSpacing
	total := float64(n) * lineHeight
	switch align {
	case Middle:
		return box.URy - (box.Dy()-total)/2 - fontSize
	case Bottom:
		return box.LLy + total - lineHeight
	default:
		return box.URy - fontSize
	}
}

// LineStart returns the x coordinate where a line of the given estimated
// width starts inside the text area box.
func LineStart(box apstream.Rect, lineWidth float64, align HAlign) float64 {
	switch align {
	case Center:
		return box.LLx + (box.Dx()-lineWidth)/2
	case Right:
		return box.URx - lineWidth
	default:
		return box.LLx
	}
}
