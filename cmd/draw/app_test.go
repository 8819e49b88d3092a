package main

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/chartkit/decode"
)

const document = `charts:
  - name: sales
    type: line
    data:
      labels: [Jan, Feb, Mar]
      datasets:
        - data: [20, 45, 28]
  - name: goals
    type: progress
    data: [0.4, 0.6]
`

func TestRender(t *testing.T) {
	var (
		dir  = t.TempDir()
		file = filepath.Join(dir, "charts.yaml")
		out  = filepath.Join(dir, "out")
	)
	if err := os.WriteFile(file, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	app := NewApp().WithOutput(&stdout, &stderr)
	if err := app.ExecuteWithArgs(context.Background(), []string{"render", "-o", out, file}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, name := range []string{"sales.svg", "goals.svg"} {
		buf, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("%s not written: %s", name, err)
		}
		if !strings.Contains(string(buf), "<svg") {
			t.Errorf("%s: svg element not found", name)
		}
	}
	if !strings.Contains(stdout.String(), "2 chart(s)") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}

func TestRenderMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := NewApp().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), []string{"render", "-o", t.TempDir(), "missing.yaml"})
	if err == nil {
		t.Fatalf("expected error for missing document")
	}
}

func TestRenderInvalidNames(t *testing.T) {
	tests := []struct {
		Name string
		Doc  string
	}{
		{
			Name: "parent",
			Doc:  "charts:\n  - name: ../../escape\n    type: progress\n    data: [0.5]\n",
		},
		{
			Name: "duplicate",
			Doc:  "charts:\n  - name: goals\n    type: progress\n    data: [0.5]\n  - name: goals\n    type: progress\n    data: [0.2]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var (
				dir  = t.TempDir()
				file = filepath.Join(dir, "charts.yaml")
				out  = filepath.Join(dir, "nested", "out")
			)
			if err := os.WriteFile(file, []byte(tt.Doc), 0o644); err != nil {
				t.Fatal(err)
			}
			var stdout, stderr bytes.Buffer
			app := NewApp().WithOutput(&stdout, &stderr)
			if err := app.ExecuteWithArgs(context.Background(), []string{"render", "-o", out, file}); err == nil {
				t.Fatalf("expected error for chart names")
			}
			if _, err := os.Stat(filepath.Join(dir, "escape.svg")); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("file written outside of the output directory")
			}
			if list, _ := os.ReadDir(out); len(list) != 0 {
				t.Errorf("no file expected in the output directory, got %d", len(list))
			}
		})
	}
}

func TestWriteChartName(t *testing.T) {
	dir := t.TempDir()
	if err := writeChart(decode.Entry{Name: "../escape"}, filepath.Join(dir, "out")); err == nil {
		t.Fatalf("expected error for a name leaving the output directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.svg")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file written outside of the output directory")
	}
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := NewApp().WithOutput(&stdout, &stderr)
	if err := app.ExecuteWithArgs(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("version not printed: %s", stdout.String())
	}
}
