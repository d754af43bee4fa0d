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

// Package apstream synthesizes appearance streams for PDF annotations.
//
// An appearance stream is a small content-stream program which describes how
// an annotation is drawn.  This module computes such programs from the
// geometry and style of an annotation and writes them back through an
// external PDF engine, described by the narrow [engine.Engine] interface.
// Parsing, rendering and saving PDF files are left to that engine.
//
// This package contains the shared data types: points and rectangles in PDF
// page space, quad points of text markup annotations, 8-bit RGBA colors, and
// the error values used throughout the module.  The appearance builders
// live in the sub-package [seehuhn.de/go/apstream/appearance].
//
// All coordinates are in PDF units of 1/72 inch.  Every generated program
// starts by translating to the lower left corner of the annotation rectangle,
// so that drawing commands use coordinates relative to that corner:
//
//	q
//	1 0 0 1 <left> <bottom> cm
//	... style and path operators ...
//	Q
//
// Numbers in generated programs are written with four digits after the
// decimal point, so that the output is byte-for-byte reproducible.
package apstream
