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

package engine

import (
	"errors"
	"maps"
	"slices"

	"seehuhn.de/go/apstream"
)

// ErrColorLocked is returned by [Memory] when the color entries are
// accessed after an appearance stream has been installed.
var ErrColorLocked = errors.New("color entry not accessible while an appearance stream exists")

// Memory is an in-memory annotation dictionary which implements [Engine].
//
// Like native engines, Memory refuses appearance bytes while the rectangle
// has zero area, and the color accessors fail once an appearance stream has
// been set (unless KeepColors is true).
type Memory struct {
	// KeepColors disables the locking of color entries after an
	// appearance stream has been set.
	KeepColors bool

	// Calls records the names of all mutating calls, in order, in the form
	// "SetNumberValue ca".  This allows tests to check the order of
	// operations.
	Calls []string

	rect       apstream.Rect
	hasRect    bool
	colors     map[ColorType]apstream.Color
	strings    map[string]string
	numbers    map[string]float64
	appearance map[Mode][]byte
	reject     map[string]error
}

var _ Engine = (*Memory)(nil)

// NewMemory returns an empty annotation dictionary.
func NewMemory() *Memory {
	return &Memory{
		colors:     make(map[ColorType]apstream.Color),
		strings:    make(map[string]string),
		numbers:    make(map[string]float64),
		appearance: make(map[Mode][]byte),
		reject:     make(map[string]error),
	}
}

// Reject makes all future calls of the named operation fail.  If key is
// non-empty, only calls for this key fail.  Key is a dictionary key (e.g.
// "AS") or, for the appearance and color methods, the name of the mode or
// color entry (e.g. "N" or "IC").
func (m *Memory) Reject(op, key string) {
	m.reject[op+" "+key] = apstream.ErrEngineRejected
}

func (m *Memory) check(op, key string) error {
	if err, ok := m.reject[op+" "]; ok {
		return err
	}
	if err, ok := m.reject[op+" "+key]; ok {
		return err
	}
	return nil
}

func (m *Memory) record(op, key string) {
	if key != "" {
		op += " " + key
	}
	m.Calls = append(m.Calls, op)
}

func (m *Memory) colorsLocked() bool {
	return !m.KeepColors && len(m.appearance) > 0
}

// Rect implements the [Engine] interface.
func (m *Memory) Rect() (apstream.Rect, error) {
	if err := m.check("Rect", ""); err != nil {
		return apstream.Rect{}, err
	}
	if !m.hasRect {
		return apstream.Rect{}, ErrNoValue
	}
	return m.rect, nil
}

// SetRect implements the [Engine] interface.
func (m *Memory) SetRect(r apstream.Rect) error {
	m.record("SetRect", "")
	if err := m.check("SetRect", ""); err != nil {
		return err
	}
	if r.URx < r.LLx || r.URy < r.LLy {
		return apstream.ErrInvalidRect
	}
	m.rect = r
	m.hasRect = true
	return nil
}

// Color implements the [Engine] interface.
func (m *Memory) Color(which ColorType) (apstream.Color, error) {
	if err := m.check("Color", which.Key()); err != nil {
		return apstream.Color{}, err
	}
	if m.colorsLocked() {
		return apstream.Color{}, ErrColorLocked
	}
	c, ok := m.colors[which]
	if !ok {
		return apstream.Color{}, ErrNoValue
	}
	return c, nil
}

// SetColor implements the [Engine] interface.
func (m *Memory) SetColor(which ColorType, c apstream.Color) error {
	m.record("SetColor", which.Key())
	if err := m.check("SetColor", which.Key()); err != nil {
		return err
	}
	if m.colorsLocked() {
		return ErrColorLocked
	}
	m.colors[which] = c
	return nil
}

// StringValue implements the [Engine] interface.
func (m *Memory) StringValue(key string) (string, error) {
	if err := m.check("StringValue", key); err != nil {
		return "", err
	}
	s, ok := m.strings[key]
	if !ok {
		return "", ErrNoValue
	}
	return s, nil
}

// SetStringValue implements the [Engine] interface.
func (m *Memory) SetStringValue(key, value string) error {
	m.record("SetStringValue", key)
	if err := m.check("SetStringValue", key); err != nil {
		return err
	}
	m.strings[key] = value
	return nil
}

// NumberValue implements the [Engine] interface.
func (m *Memory) NumberValue(key string) (float64, error) {
	if err := m.check("NumberValue", key); err != nil {
		return 0, err
	}
	x, ok := m.numbers[key]
	if !ok {
		return 0, ErrNoValue
	}
	return x, nil
}

// SetNumberValue implements the [Engine] interface.
func (m *Memory) SetNumberValue(key string, value float64) error {
	m.record("SetNumberValue", key)
	if err := m.check("SetNumberValue", key); err != nil {
		return err
	}
	m.numbers[key] = value
	return nil
}

// Appearance implements the [Engine] interface.
func (m *Memory) Appearance(mode Mode) ([]byte, error) {
	if err := m.check("Appearance", mode.Name()); err != nil {
		return nil, err
	}
	data, ok := m.appearance[mode]
	if !ok {
		return nil, ErrNoValue
	}
	return slices.Clone(data), nil
}

// SetAppearance implements the [Engine] interface.
func (m *Memory) SetAppearance(mode Mode, content []byte) error {
	m.record("SetAppearance", mode.Name())
	if err := m.check("SetAppearance", mode.Name()); err != nil {
		return err
	}
	if !m.rect.IsValid() {
		return apstream.ErrInvalidRect
	}
	m.appearance[mode] = slices.Clone(content)
	return nil
}

// HasKey implements the [Engine] interface.
func (m *Memory) HasKey(key string) bool {
	switch key {
	case KeyRect:
		return m.hasRect
	case KeyAppearance:
		return len(m.appearance) > 0
	case KeyStrokeColor:
		_, ok := m.colors[StrokeColor]
		return ok
	case KeyInteriorColor:
		_, ok := m.colors[InteriorColor]
		return ok
	}
	if _, ok := m.strings[key]; ok {
		return true
	}
	_, ok := m.numbers[key]
	return ok
}

// Keys returns the sorted list of all keys present in the dictionary.
func (m *Memory) Keys() []string {
	seen := make(map[string]bool)
	for _, key := range []string{KeyRect, KeyAppearance, KeyStrokeColor, KeyInteriorColor} {
		if m.HasKey(key) {
			seen[key] = true
		}
	}
	for key := range m.strings {
		seen[key] = true
	}
	for key := range m.numbers {
		seen[key] = true
	}
	return slices.Sorted(maps.Keys(seen))
}

// PutColor stores a color entry directly, bypassing the lock which applies
// once an appearance stream exists.  This is used to set up test fixtures.
func (m *Memory) PutColor(which ColorType, c apstream.Color) {
	m.colors[which] = c
}

// PutAppearance stores appearance bytes directly, bypassing the rectangle
// check.  This is used to set up annotations which already carry an
// appearance stream.
func (m *Memory) PutAppearance(mode Mode, content []byte) {
	m.appearance[mode] = slices.Clone(content)
}

// PeekColor returns a color entry, ignoring the lock.
func (m *Memory) PeekColor(which ColorType) (apstream.Color, bool) {
	c, ok := m.colors[which]
	return c, ok
}
