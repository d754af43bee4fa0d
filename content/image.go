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
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// BeginMarkedContent starts a marked-content sequence.
//
// This implements the PDF graphics operator "BMC".
func (b *Builder) BeginMarkedContent(tag string) {
	if b.Err != nil {
		return
	}
	if tag == "" {
		b.Err = errors.New("BeginMarkedContent: empty tag")
		return
	}
	b.emit("BMC", "/"+tag)
}

// EndMarkedContent ends a marked-content sequence.
//
// This implements the PDF graphics operator "EMC".
func (b *Builder) EndMarkedContent() {
	b.emit("EMC")
}

// InlineGrayImage draws an 8-bit grayscale image into the unit square of
// the current user space.  The pixels are given row by row, starting at
// the top row, and are written using the ASCIIHexDecode filter.
//
// This implements the PDF graphics operators "BI", "ID" and "EI".
func (b *Builder) InlineGrayImage(width, height int, pix []byte) {
	if b.Err != nil {
		return
	}
	if width <= 0 || height <= 0 {
		b.Err = fmt.Errorf("InlineGrayImage: invalid size %dx%d", width, height)
		return
	}
	if len(pix) != width*height {
		b.Err = fmt.Errorf("InlineGrayImage: expected %d pixels, got %d",
			width*height, len(pix))
		return
	}

	b.buf.WriteString("BI /W ")
	b.buf.WriteString(strconv.Itoa(width))
	b.buf.WriteString(" /H ")
	b.buf.WriteString(strconv.Itoa(height))
	b.buf.WriteString(" /BPC 8 /CS /G /F /AHx ID\n")
	for i := 0; i < len(pix); i += width {
		b.buf.WriteString(hex.EncodeToString(pix[i : i+width]))
		b.buf.WriteByte('\n')
	}
	b.buf.WriteString(">\nEI\n")
	b.nOps++
}
