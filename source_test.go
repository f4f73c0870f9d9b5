package lscondense_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abemedia/lscondense"
)

var update = flag.Bool("update", false, "update .golden files")

func TestLintSource(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.input")
	if err != nil {
		t.Fatal(err)
	}

	linter, err := lscondense.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, inputFile := range matches {
		base := strings.TrimSuffix(inputFile, ".input")
		goldenFile := base + ".golden"

		name := filepath.Base(base)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			if err != nil {
				t.Fatalf("failed to read input file %s: %v", inputFile, err)
			}

			_, got, err := linter.LintSource(inputFile, input)
			if err != nil {
				t.Fatalf("failed to lint %s: %v", inputFile, err)
			}

			if *update { // Update golden file
				if err := os.WriteFile(goldenFile, got, 0o600); err != nil {
					t.Fatalf("failed to update golden file %s: %v", goldenFile, err)
				}
				return
			}

			want, err := os.ReadFile(goldenFile)
			if err != nil {
				t.Fatalf("failed to read golden file %s: %v", goldenFile, err)
			}

			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLintSourceFindings(t *testing.T) {
	src := `package main

import "os/exec"

func main() {
	exec.Command("ls", "-l", "-z", "-l").Run()
	exec.Command("ls", "-l", "-a").Run()
}
`

	linter, err := lscondense.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	findings, out, err := linter.LintSource("main.go", []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range findings {
		got = append(got, f.String())
	}
	want := []string{
		"main.go:6:27: Unknown argument: z",
		"main.go:6:33: Duplicate argument: l",
		"main.go:7:2: Could have combined short arguments into -la",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}

	if !bytes.Contains(out, []byte(`exec.Command("ls", "-la").Run()`)) {
		t.Errorf("output not condensed:\n%s", out)
	}
	if !bytes.Contains(out, []byte(`exec.Command("ls", "-l", "-z", "-l").Run()`)) {
		t.Errorf("output with unknown option was rewritten:\n%s", out)
	}
}

func TestLintSourceUnchanged(t *testing.T) {
	linter, err := lscondense.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("no_exec_import", func(t *testing.T) {
		src := []byte("package main\n\nfunc main() {}\n")
		findings, out, err := linter.LintSource("main.go", src)
		if err != nil {
			t.Fatal(err)
		}
		if len(findings) != 0 {
			t.Errorf("unexpected findings: %v", findings)
		}
		if !bytes.Equal(src, out) {
			t.Errorf("source changed:\n%s", out)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		if _, _, err := linter.LintSource("main.go", []byte("package main\n\nfunc {")); err == nil {
			t.Error("expected error")
		}
	})
}
