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

package apstream

import (
	"errors"
)

var (
	// ErrEmptyGeometry is returned when a shape is given no points at all,
	// so that not even a fallback rectangle can be computed.
	ErrEmptyGeometry = errors.New("empty geometry")

	// ErrInvalidRect indicates a rectangle with non-positive width or height.
	// Appearance builders treat this as "nothing to draw yet" and return
	// without error; the value is only reported by helper functions.
	ErrInvalidRect = errors.New("invalid annotation rectangle")

	// ErrNoColorFound is returned when no color operator can be located in
	// an existing content stream.
	ErrNoColorFound = errors.New("no color found in content stream")

	// ErrEngineRejected is the error kind for all failures reported by the
	// external PDF engine.
	ErrEngineRejected = errors.New("external engine operation failed")
)

// EngineError records a failed call into the external PDF engine.
type EngineError struct {
	// Op is the name of the engine operation, e.g. "SetAppearance".
	Op string

	// Key is the dictionary key involved, if any.
	Key string

	// Err is the error reported by the engine.  If this is nil,
	// ErrEngineRejected is used.
	Err error
}

func (err *EngineError) Error() string {
	msg := "apstream: " + err.Op
	if err.Key != "" {
		msg += " /" + err.Key
	}
	msg += " rejected by engine"
	if err.Err != nil && err.Err != ErrEngineRejected {
		msg += ": " + err.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying engine error.
func (err *EngineError) Unwrap() []error {
	if err.Err == nil || err.Err == ErrEngineRejected {
		return []error{ErrEngineRejected}
	}
	return []error{ErrEngineRejected, err.Err}
}
