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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/apstream/logging"
)

// DefaultMask is the character used by [Mask] when no other character is
// given.
const DefaultMask = '*'

// Mask replaces every character of text by mask.  The result has as many
// runes as text.  If mask is zero, [DefaultMask] is used.
func Mask(text string, mask rune) string {
	if mask == 0 {
		mask = DefaultMask
	}
	n := utf8.RuneCountInString(text)
	return strings.Repeat(string(mask), n)
}

// Escape prepares s for use inside a PDF string literal.  Backslashes and
// parentheses are always escaped.  If multiline is true, carriage returns,
// line feeds and tabs are escaped as well.
func Escape(s string, multiline bool) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '(', ')':
			b.WriteByte('\\')
			b.WriteByte(c)
			continue
		}
		if multiline {
			switch c {
			case '\r':
				b.WriteString(`\r`)
				continue
			case '\n':
				b.WriteString(`\n`)
				continue
			case '\t':
				b.WriteString(`\t`)
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// EncodeWinAnsi converts text to the single-byte encoding used by the
// standard text fonts.  Characters which cannot be represented are
// replaced by '?', and the number of replacements is logged at debug level.
func EncodeWinAnsi(text string) string {
	text = norm.NFC.String(text)
	buf := make([]byte, 0, len(text))
	replaced := 0
	for _, r := range text {
		if r < 0x80 {
			buf = append(buf, byte(r))
			continue
		}
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
			replaced++
		}
		buf = append(buf, c)
	}
	if replaced > 0 {
		logging.Logger().Debug("characters not representable in WinAnsi",
			"replaced", replaced)
	}
	return string(buf)
}

// Literal returns the escaped WinAnsi form of text, ready to be passed to
// [seehuhn.de/go/apstream/content.Builder.TextShowLiteral].
func Literal(text string, multiline bool) string {
	return Escape(EncodeWinAnsi(text), multiline)
}
