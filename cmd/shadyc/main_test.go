package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shaders"
	"github.com/gogpu/shaders/kernel"
)

var testKernels = []kernel.Kernel{
	{Stage: gputypes.ShaderStageVertex, Code: "void main() {\n}\n"},
	{Stage: gputypes.ShaderStageFragment, Code: "void main() {\n  return 1;\n}\n"},
}

func TestPrintKernels(t *testing.T) {
	var buf bytes.Buffer
	if err := printKernels(&buf, "sprite.shady", testKernels); err != nil {
		t.Fatalf("printKernels failed: %v", err)
	}

	want := "// sprite.shady vertex\nvoid main() {\n}\n\n" +
		"// sprite.shady fragment\nvoid main() {\n  return 1;\n}\n\n"
	if buf.String() != want {
		t.Errorf("printKernels() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteKernels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	if err := writeKernels(dir, filepath.Join("shaders", "sprite.shady"), testKernels); err != nil {
		t.Fatalf("writeKernels failed: %v", err)
	}

	for i, name := range []string{"sprite.vertex.glsl", "sprite.fragment.glsl"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != testKernels[i].Code {
			t.Errorf("%s = %q, want %q", name, data, testKernels[i].Code)
		}
	}
}

func TestDescribe(t *testing.T) {
	_, err := shaders.Compile("fn fragment() {\n  return 1 +\n")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	got := describe(err)
	if !strings.Contains(got, "^") {
		t.Errorf("describe() = %q, want a caret under the error", got)
	}

	plain := errors.New("plain failure")
	if describe(plain) != "plain failure" {
		t.Errorf("describe() = %q, want the plain message", describe(plain))
	}
}
