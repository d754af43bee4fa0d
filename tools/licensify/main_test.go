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

package main

import (
	"strings"
	"testing"
)

func TestAddHeader(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status headerStatus
	}{
		{"plain", "package x\n", added},
		{"doc comment", "// Package x does things.\npackage x\n", added},
		{"present", header + "package x\n", hasHeader},
		{"other license", "// Copyright somebody else\n\npackage x\n", unknownPrefix},
		{"build tag", "//go:build ignore\n\npackage x\n", unknownPrefix},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, status := addHeader([]byte(c.body))
			if status != c.status {
				t.Fatalf("status = %d, want %d", status, c.status)
			}
			if status == added && string(out) != header+c.body {
				t.Errorf("unexpected output:\n%s", out)
			}
			if status != added && string(out) != c.body {
				t.Error("body modified")
			}
			if status != unknownPrefix && !strings.HasPrefix(string(out), header) {
				t.Error("header missing")
			}
		})
	}
}
