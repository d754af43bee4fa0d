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

// Licensify adds the GPL license header to all Go source files below the
// current directory which do not have it yet.  Directories starting with
// "_" or "." are skipped.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/apstream - appearance streams for PDF annotations
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

`

func main() {
	dryRun := flag.Bool("n", false, "only list the files which need a header")
	flag.Parse()

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, status := addHeader(body)
		switch status {
		case hasHeader:
			return nil
		case unknownPrefix:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		fmt.Println("updating " + path)
		if *dryRun {
			return nil
		}
		return os.WriteFile(path, out, 0o644)
	})
	if err != nil {
		log.Fatal(err)
	}
}

type headerStatus int

const (
	hasHeader headerStatus = iota
	added
	unknownPrefix
)

// addHeader returns body with the license header prepended.  Files which
// start with some other comment block, which is not a package doc comment,
// are left alone.
func addHeader(body []byte) ([]byte, headerStatus) {
	if bytes.HasPrefix(body, []byte(header)) {
		return body, hasHeader
	}
	if !bytes.HasPrefix(body, []byte("package ")) && !isDocComment(body) {
		return body, unknownPrefix
	}
	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	return out, added
}

// isDocComment reports whether body starts with a line comment block which
// is directly followed by the package clause.
func isDocComment(body []byte) bool {
	lines := bytes.SplitAfter(body, []byte("\n"))
	for _, line := range lines {
		switch {
		case bytes.HasPrefix(line, []byte("//")):
			continue
		case bytes.HasPrefix(line, []byte("package ")):
			return true
		default:
			return false
		}
	}
	return false
}
