// Command shadyc is the Shady shader compiler CLI.
//
// Usage:
//
//	shadyc [options] <input>...
//
// Examples:
//
//	shadyc sprite.shady                      # Compile to stdout
//	shadyc -o build sprite.shady quad.glsl   # Write build/sprite.vertex.glsl, ...
//	shadyc -version "300 es" triangle.wgsl   # Target GLSL ES 3.00
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/shaders"
	"github.com/gogpu/shaders/kernel"
	"github.com/gogpu/shaders/shady"
)

var (
	output     = flag.String("o", "", "output directory (default: stdout)")
	version    = flag.String("version", "", "GLSL version, e.g. \"330 core\" or \"300 es\"")
	precedence = flag.Bool("precedence", false, "parse binary expressions with operator precedence")
	root       = flag.String("root", ".", "directory inputs and includes are resolved in")
	verbose    = flag.Bool("v", false, "log compiled files to stderr")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	if *verbose {
		shaders.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := shaders.DefaultOptions()
	opts.Precedence = *precedence
	if *version != "" {
		v, err := shaders.ParseVersion(*version)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = opts.WithVersion(v)
	}

	names := make([]string, len(args))
	for i, arg := range args {
		rel, err := filepath.Rel(*root, arg)
		if err != nil || !fs.ValidPath(filepath.ToSlash(rel)) {
			fmt.Fprintf(os.Stderr, "Error: %s is outside %s\n", arg, *root)
			os.Exit(1)
		}
		names[i] = filepath.ToSlash(rel)
	}

	loader := shaders.NewLoader(os.DirFS(*root), opts)
	results, err := loader.LoadAll(context.Background(), names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %s\n", describe(err))
		os.Exit(1)
	}

	for i, kernels := range results {
		if *output != "" {
			err = writeKernels(*output, args[i], kernels)
		} else {
			err = printKernels(os.Stdout, args[i], kernels)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

// describe renders Shady parse errors with their source line.
func describe(err error) string {
	var serr *shady.Error
	if errors.As(err, &serr) {
		return err.Error() + "\n" + serr.FormatWithContext()
	}
	return err.Error()
}

func printKernels(w io.Writer, input string, kernels []kernel.Kernel) error {
	for _, k := range kernels {
		if _, err := fmt.Fprintf(w, "// %s %s\n%s\n", input, kernel.StageName(k.Stage), k.Code); err != nil {
			return err
		}
	}
	return nil
}

func writeKernels(dir, input string, kernels []kernel.Kernel) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	for _, k := range kernels {
		out := filepath.Join(dir, base+"."+kernel.StageName(k.Stage)+".glsl")
		if err := os.WriteFile(out, []byte(k.Code), 0o644); err != nil {
			return err
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", input, out, len(k.Code))
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shadyc [options] <input>...\n\n")
	fmt.Fprintf(os.Stderr, "Inputs are .shady, .glsl or .wgsl files.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shadyc sprite.shady                     Compile to stdout\n")
	fmt.Fprintf(os.Stderr, "  shadyc -o build sprite.shady quad.glsl  Write one file per kernel\n")
	fmt.Fprintf(os.Stderr, "  shadyc -version \"300 es\" tri.wgsl       Target GLSL ES 3.00\n")
}
