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

package content

import (
	"errors"
	"fmt"
	"strings"
)

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (b *Builder) TextBegin() {
	if b.Err != nil {
		return
	}
	if b.inText {
		b.Err = errors.New("TextBegin: text objects cannot be nested")
		return
	}
	b.inText = true
	b.emit("BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (b *Builder) TextEnd() {
	if b.Err != nil {
		return
	}
	if !b.inText {
		b.Err = errors.New("TextEnd: no matching TextBegin")
		return
	}
	b.inText = false
	b.emit("ET")
}

// TextSetFont sets the font and font size.  The font is referenced by the
// name of a font resource, which is managed by the external engine.
//
// This implements the PDF graphics operator "Tf".
func (b *Builder) TextSetFont(name string, size float64) {
	if b.Err != nil {
		return
	}
	if name == "" || strings.ContainsAny(name, " /()<>[]{}%") {
		b.Err = fmt.Errorf("TextSetFont: invalid font name %q", name)
		return
	}
	b.emit("Tf", "/"+name, Number(size))
}

// TextSetLeading sets the distance between baselines used by TextNextLine.
//
// This implements the PDF graphics operator "TL".
func (b *Builder) TextSetLeading(leading float64) {
	b.emitNumbers("TL", leading)
}

// TextMove starts a new line, offset by (dx, dy) from the start of the
// current line.
//
// This implements the PDF graphics operator "Td".
func (b *Builder) TextMove(dx, dy float64) {
	if b.Err != nil {
		return
	}
	if !b.inText {
		b.Err = errors.New("TextMove: not in text object")
		return
	}
	b.emitNumbers("Td", dx, dy)
}

// TextNextLine moves to the start of the next line, using the current
// leading.
//
// This implements the PDF graphics operator "T*".
func (b *Builder) TextNextLine() {
	if b.Err != nil {
		return
	}
	if !b.inText {
		b.Err = errors.New("TextNextLine: not in text object")
		return
	}
	b.emit("T*")
}

// TextShowLiteral shows a string.  The argument must already be escaped for
// use inside a PDF string literal; the enclosing parentheses are added here.
//
// This implements the PDF graphics operator "Tj".
func (b *Builder) TextShowLiteral(escaped string) {
	if b.Err != nil {
		return
	}
	if !b.inText {
		b.Err = errors.New("TextShowLiteral: not in text object")
		return
	}
	b.emit("Tj", "("+escaped+")")
}
