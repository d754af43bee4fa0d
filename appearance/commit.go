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

package appearance

import (
	"errors"

	"seehuhn.de/go/apstream"
	"seehuhn.de/go/apstream/engine"
	"seehuhn.de/go/apstream/logging"
)

func engineErr(op, key string, err error) error {
	return &apstream.EngineError{Op: op, Key: key, Err: err}
}

// currentRect returns the annotation rectangle.  The second return value
// is false if the rectangle is missing or has zero area.
func currentRect(e engine.Engine) (apstream.Rect, bool, error) {
	r, err := e.Rect()
	if errors.Is(err, engine.ErrNoValue) {
		return apstream.Rect{}, false, nil
	} else if err != nil {
		return apstream.Rect{}, false, engineErr("Rect", engine.KeyRect, err)
	}
	return r, r.IsValid(), nil
}

func setRect(e engine.Engine, r apstream.Rect) error {
	if err := e.SetRect(r); err != nil {
		return engineErr("SetRect", engine.KeyRect, err)
	}
	logging.Logger().Debug("rect updated", "rect", r)
	return nil
}

// setOpacity sets the /ca and /CA entries.  Engines create the graphics
// state resource "/GS" from these entries when the appearance stream is
// set, so this must be called before commit.
func setOpacity(e engine.Engine, alpha float64) error {
	for _, key := range []string{engine.KeyFillAlpha, engine.KeyStrokeAlpha} {
		if err := e.SetNumberValue(key, alpha); err != nil {
			return engineErr("SetNumberValue", key, err)
		}
	}
	return nil
}

// commit stores the appearance stream and selects it using the /AS entry.
func commit(e engine.Engine, mode engine.Mode, data []byte) error {
	if err := e.SetAppearance(mode, data); err != nil {
		return engineErr("SetAppearance", mode.Name(), err)
	}
	if err := e.SetStringValue(engine.KeyAppearanceState, mode.Selector()); err != nil {
		return engineErr("SetStringValue", engine.KeyAppearanceState, err)
	}
	logging.Logger().Debug("appearance committed", "mode", mode, "bytes", len(data))
	return nil
}
