// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vfs reads shader source files from an fs.FS.
//
// Shader files are text. ReadText honors a leading byte order mark, so files
// saved as UTF-16 by some editors decode the same as plain UTF-8, and
// normalizes line endings to "\n".
package vfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText reads the named file from fsys and decodes it to UTF-8 text.
func ReadText(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("vfs: %w", err)
	}
	return Decode(data)
}

// Decode converts raw file bytes to UTF-8 text. A UTF-8 or UTF-16 byte order
// mark selects the encoding; without one the bytes are read as UTF-8.
func Decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("vfs: decode: %w", err)
	}

	s := string(text)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return s, nil
}

// Resolve returns the fs.FS path of include as referenced from the file
// from. Relative includes are resolved against the directory of from; an
// include starting with "/" is relative to the root of the file system.
func Resolve(from, include string) (string, error) {
	var name string
	if strings.HasPrefix(include, "/") {
		name = path.Clean(strings.TrimLeft(include, "/"))
	} else {
		name = path.Join(path.Dir(from), include)
	}

	if !fs.ValidPath(name) {
		return "", fmt.Errorf("vfs: invalid include path %q from %q", include, from)
	}
	return name, nil
}

// Ext returns the lower-case extension of name without the dot, e.g.
// "shady" for "sprites/hero.Shady".
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}
