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

// Package content writes content-stream programs for appearance streams.
//
// The [Builder] type offers one method per PDF graphics operator.  Operands
// are formatted with a fixed number of digits after the decimal point (see
// [Precision]), so that identical input always produces byte-identical
// output.  Errors are reported using the Builder.Err field.  Once an error
// occurs, all methods return immediately without doing anything.
//
// The following code draws a red square with a black outline:
//
//	b := content.New()
//	b.PushGraphicsState()
//	b.SetLineWidth(2)
//	b.SetFillColor(apstream.Red)
//	b.SetStrokeColor(apstream.Black)
//	b.Rectangle(10, 10, 80, 80)
//	b.FillAndStroke()
//	b.PopGraphicsState()
//
//	data, err := b.Bytes()
//	if err != nil {
//		log.Fatal(err)
//	}
package content
