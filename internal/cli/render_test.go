package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/matzehuels/scadgen/pkg/errors"
)

const cubeModel = `
[[object]]
kind = "translate"
params = { v = [0, 0, 5] }
  [[object.children]]
  kind = "cube"
  params = { size = 10, center = true }
`

const cubeSCAD = "translate([0, 0, 5])\n  cube(size = 10, center = true);\n"

func writeModel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, dir, want string
		wantErr          bool
	}{
		{input: "models/part.toml", want: filepath.Join("models", "part.scad")},
		{input: "models/part.toml", dir: "out", want: filepath.Join("out", "part.scad")},
		{input: "part", want: "part.scad"},
		{input: "a.b.toml", dir: "out", want: filepath.Join("out", "a.b.scad")},
		{input: "models/.toml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := outputPath(tt.input, tt.dir, ".scad")
		if (err != nil) != tt.wantErr {
			t.Errorf("outputPath(%q, %q) error = %v, wantErr %v", tt.input, tt.dir, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.dir, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	model := writeModel(t, dir, "part.toml", cubeModel)

	if _, err := runCLI(t, "render", model); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "part.scad"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != cubeSCAD {
		t.Errorf("part.scad = %q, want %q", got, cubeSCAD)
	}
}

func TestRenderCommandOutputDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	a := writeModel(t, dir, "a.toml", cubeModel)
	b := writeModel(t, dir, "b.toml", "[[object]]\nkind = \"circle\"\nparams = { r = 2 }\n")
	out := filepath.Join(dir, "build")

	if _, err := runCLI(t, "render", "--no-cache", "-o", out, a, b); err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]string{"a.scad": cubeSCAD, "b.scad": "circle(r = 2);\n"} {
		got, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestRenderCommandStdout(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	model := writeModel(t, t.TempDir(), "part.toml", cubeModel)

	out, err := runCLI(t, "render", "--stdout", "--stamp", model)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "// Generated by scadgen ") {
		t.Errorf("missing generator comment: %q", out)
	}
	if !strings.HasSuffix(out, "\n\n"+cubeSCAD) {
		t.Errorf("stdout = %q", out)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	bad := writeModel(t, dir, "bad.toml", "[[object]]\nkind = \"linear_extrude\"\nparams = { height = 1 }\n  [[object.children]]\n  kind = \"sphere\"\n  params = { r = 1 }\n")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.toml")}, errors.ErrCodeFileNotFound},
		{"dimension mismatch", []string{"render", bad}, errors.ErrCodeDimensionMismatch},
		{"tree format", []string{"tree", "-f", "png", bad}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.scad")); !os.IsNotExist(err) {
		t.Error("a failed render should not write output")
	}
}

func TestTreeCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	model := writeModel(t, dir, "part.toml", cubeModel)

	out, err := runCLI(t, "tree", "--detailed", model)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"digraph G {", "translate([0, 0, 5])", "n0 -> n1;"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}

	file := filepath.Join(dir, "part.dot")
	if _, err := runCLI(t, "tree", "-o", file, model); err != nil {
		t.Fatal(err)
	}
	if data, err := os.ReadFile(file); err != nil || !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("part.dot = %q, err = %v", data, err)
	}
}

func TestStatsLine(t *testing.T) {
	if got := statsLine(3, false); !strings.Contains(got, "3 nodes") || !strings.Contains(got, iconFresh) {
		t.Errorf("statsLine(3, false) = %q", got)
	}
	if got := statsLine(0, true); strings.Contains(got, "nodes") || !strings.Contains(got, iconCached) {
		t.Errorf("statsLine(0, true) = %q", got)
	}
}

func TestRenderCommandMemFS(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/models/part.toml", []byte(cubeModel), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLIFS(t, fs, "render", "--no-cache", "-o", "/out", "/models/part.toml"); err != nil {
		t.Fatal(err)
	}
	got, err := afero.ReadFile(fs, filepath.Join("/out", "part.scad"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != cubeSCAD {
		t.Errorf("part.scad = %q", got)
	}
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	if err := highlight(&buf, []byte(cubeSCAD)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("highlighted output has no escape codes")
	}
	if !strings.Contains(out, "cube") || !strings.Contains(out, "translate") {
		t.Errorf("highlighted output lost tokens: %q", out)
	}
}
