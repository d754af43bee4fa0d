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
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/apstream/internal/float"
)

// Precision is the number of digits after the decimal point used for all
// numeric operands.
const Precision = 4

// Number formats x the way the Builder writes numeric operands.
func Number(x float64) string {
	return float.Fixed(x, Precision)
}

// Builder accumulates a content stream.
type Builder struct {
	Err error

	buf    bytes.Buffer
	nested int
	inText bool
	nOps   int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// emit appends one operator, preceded by its operands, to the stream.
func (b *Builder) emit(op string, args ...string) {
	if b.Err != nil {
		return
	}
	for _, arg := range args {
		b.buf.WriteString(arg)
		b.buf.WriteByte(' ')
	}
	b.buf.WriteString(op)
	b.buf.WriteByte('\n')
	b.nOps++
}

// emitNumbers appends an operator with numeric operands.
func (b *Builder) emitNumbers(op string, xx ...float64) {
	if b.Err != nil {
		return
	}
	args := make([]string, len(xx))
	for i, x := range xx {
		args[i] = Number(x)
	}
	b.emit(op, args...)
}

// Len returns the number of operators written so far.
func (b *Builder) Len() int {
	return b.nOps
}

// Close checks that all "q" and "BT" operators have been matched by "Q"
// and "ET".  It returns b.Err if an error occurred earlier.
func (b *Builder) Close() error {
	if b.Err != nil {
		return b.Err
	}
	if b.inText {
		return errUnclosedText
	}
	if b.nested > 0 {
		return fmt.Errorf("%d unclosed graphics state(s)", b.nested)
	}
	return nil
}

// Bytes returns the content stream.  An error is returned if the stream is
// incomplete or if an error occurred while building it.
func (b *Builder) Bytes() ([]byte, error) {
	if err := b.Close(); err != nil {
		return nil, err
	}
	return bytes.Clone(b.buf.Bytes()), nil
}

// String returns the content stream written so far, regardless of errors.
func (b *Builder) String() string {
	return b.buf.String()
}

var (
	errUnclosedText = errors.New("BT without matching ET")
)
