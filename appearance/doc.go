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

// Package appearance synthesizes appearance streams for PDF annotations
// and commits them through an [engine.Engine].
//
// Every annotation type has an Apply function, which reads the current
// rectangle and colors from the engine, builds the content stream, and
// writes it back.  The stream builders are also available as pure
// functions, which take all their inputs as arguments and return the
// content stream without touching an engine.
//
// All appearance streams use the same skeleton: a "q" ... "Q" pair around a
// translation to the lower left corner of the annotation rectangle, so that
// all drawing happens in annotation-local coordinates.
//
// If the annotation rectangle is not valid (zero width or height), Apply
// functions return nil without writing anything.  The caller is expected to
// try again once the geometry is known.
package appearance
