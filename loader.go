// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shaders/kernel"
	"github.com/gogpu/shaders/passthrough"
	"github.com/gogpu/shaders/vfs"
)

// ErrUnknownExtension is returned when no language is registered for a
// file's extension.
var ErrUnknownExtension = errors.New("no language registered for extension")

// fileLanguage is implemented by languages that resolve includes relative
// to the file being loaded.
type fileLanguage interface {
	ForFile(name string) kernel.Language
}

// Loader compiles shader files from a file system, selecting a
// kernel.Language by file extension.
//
// A Loader is safe for concurrent use.
type Loader struct {
	fsys fs.FS

	mu        sync.RWMutex
	languages map[string]kernel.Language
}

// NewLoader creates a loader reading from fsys with the "shady", "glsl" and
// "wgsl" languages registered.
func NewLoader(fsys fs.FS, opts Options) *Loader {
	l := &Loader{
		fsys:      fsys,
		languages: make(map[string]kernel.Language),
	}
	l.Register("shady", Shady{Options: opts})
	l.Register("glsl", passthrough.Language{Environment: opts.Environment, FS: fsys})
	l.Register("wgsl", WGSL{Version: opts.WGSLVersion})
	return l
}

// Register sets the language for files with extension ext, replacing any
// previous registration. The extension is matched case-insensitively, with
// or without a leading dot.
func (l *Loader) Register(ext string, lang kernel.Language) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.languages[ext] = lang
}

// Language returns the language registered for the extension of name.
func (l *Loader) Language(name string) (kernel.Language, error) {
	ext := vfs.Ext(name)

	l.mu.RLock()
	lang, ok := l.languages[ext]
	l.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnknownExtension, ext)
	}
	if fl, ok := lang.(fileLanguage); ok {
		lang = fl.ForFile(name)
	}
	return lang, nil
}

// Load reads and compiles the named file.
func (l *Loader) Load(name string) ([]kernel.Kernel, error) {
	lang, err := l.Language(name)
	if err != nil {
		return nil, err
	}

	source, err := vfs.ReadText(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	kernels, err := lang.ParseKernels(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	Logger().Debug("shader compiled",
		"file", name,
		"language", vfs.Ext(name),
		"kernels", len(kernels))

	return kernels, nil
}

// LoadAll compiles the named files in parallel. The result holds the kernels
// of names[i] at index i. The first error cancels the remaining files and is
// returned.
func (l *Loader) LoadAll(ctx context.Context, names []string) ([][]kernel.Kernel, error) {
	results := make([][]kernel.Kernel, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			kernels, err := l.Load(name)
			if err != nil {
				Logger().Warn("shader failed to compile", "file", name, "error", err)
				return err
			}
			results[i] = kernels
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
