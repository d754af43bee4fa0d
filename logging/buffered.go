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

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// BufferedLogHandler is a [slog.Handler] which keeps all records in memory,
// one JSON object per line.  It is used to inspect log output in tests.
//
//	h := logging.NewBufferedLogHandler(nil)
//	logging.SetLogger(slog.New(h))
//	...
//	if h.Contains("restore failed") { ... }
type BufferedLogHandler struct {
	level  slog.Leveler
	shared *buffer
	attrs  []string
	groups []string
}

type buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Entry is one captured log record.
type Entry struct {
	Level   string   `json:"level"`
	Message string   `json:"message"`
	Attrs   []string `json:"attrs,omitempty"`
}

// NewBufferedLogHandler returns an empty handler.  If opts is nil or has no
// level, records of all levels are kept.
func NewBufferedLogHandler(opts *slog.HandlerOptions) *BufferedLogHandler {
	h := &BufferedLogHandler{shared: &buffer{}}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled implements the [slog.Handler] interface.
func (h *BufferedLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

// Handle implements the [slog.Handler] interface.
func (h *BufferedLogHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{
		Level:   r.Level.String(),
		Message: r.Message,
	}
	e.Attrs = append(e.Attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs = append(e.Attrs, h.qualify(a))
		return true
	})

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	h.shared.buf.Write(data)
	h.shared.buf.WriteByte('\n')
	return nil
}

func (h *BufferedLogHandler) qualify(a slog.Attr) string {
	if len(h.groups) == 0 {
		return a.String()
	}
	return strings.Join(h.groups, ".") + "." + a.String()
}

// WithAttrs implements the [slog.Handler] interface.  The new handler
// writes into the same buffer.
func (h *BufferedLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := *h
	res.attrs = h.attrs[:len(h.attrs):len(h.attrs)]
	for _, a := range attrs {
		res.attrs = append(res.attrs, h.qualify(a))
	}
	return &res
}

// WithGroup implements the [slog.Handler] interface.  The new handler
// writes into the same buffer.
func (h *BufferedLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	res := *h
	res.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &res
}

// String returns all captured output.
func (h *BufferedLogHandler) String() string {
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	return h.shared.buf.String()
}

// Entries returns the captured records, oldest first.
func (h *BufferedLogHandler) Entries() []Entry {
	var res []Entry
	for _, line := range strings.Split(h.String(), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		if json.Unmarshal([]byte(line), &e) == nil {
			res = append(res, e)
		}
	}
	return res
}

// Contains reports whether the captured output contains s.
func (h *BufferedLogHandler) Contains(s string) bool {
	return strings.Contains(h.String(), s)
}

// Len returns the number of bytes captured.
func (h *BufferedLogHandler) Len() int {
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	return h.shared.buf.Len()
}

// Reset discards all captured output.
func (h *BufferedLogHandler) Reset() {
	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	h.shared.buf.Reset()
}
