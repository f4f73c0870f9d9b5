package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(catalog, []byte("optstring: \"xyo:\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		catalog string
		want    string
	}{
		{
			name: "clean",
			args: []string{"-lah", "--color=auto", "/tmp"},
		},
		{
			name: "combine",
			args: []string{"-l", "-a", "-h"},
			want: "[LS-WATCH] Could have combined short arguments into -lah\n",
		},
		{
			name: "all_diagnostics",
			args: []string{"-l", "-lz", "-a", "-T"},
			want: "[LS-WATCH] Duplicate argument: l\n" +
				"[LS-WATCH] Unknown argument: z\n" +
				"[LS-WATCH] Missing value for argument: T\n" +
				"[LS-WATCH] Could have combined short arguments into -la\n",
		},
		{
			name:    "custom_catalog",
			args:    []string{"-x", "-y", "-o", "out", "-l"},
			catalog: catalog,
			want: "[LS-WATCH] Unknown argument: l\n" +
				"[LS-WATCH] Could have combined short arguments into -xyoout\n",
		},
		{
			name:    "missing_catalog",
			args:    []string{"-l", "-a"},
			catalog: filepath.Join(t.TempDir(), "missing.yaml"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			run(test.args, test.catalog, &buf)

			got := buf.String()
			if test.name == "missing_catalog" {
				// Falls back to the default catalog after a warning.
				if !bytes.HasPrefix(buf.Bytes(), []byte("[LS-WATCH] Ignoring LSWATCH_CATALOG: ")) ||
					!bytes.HasSuffix(buf.Bytes(), []byte("[LS-WATCH] Could have combined short arguments into -la\n")) {
					t.Errorf("unexpected output:\n%s", got)
				}
				return
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
