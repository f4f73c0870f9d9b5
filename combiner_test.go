package lscondense_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/abemedia/lscondense"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		tokens   []string
		clusters int
		str      string
	}{
		{
			name: "empty",
		},
		{
			name:     "flags",
			args:     []string{"-l", "-a", "-h"},
			tokens:   []string{"-lah"},
			clusters: 1,
			str:      "-lah",
		},
		{
			// A lone value option still needs a token of its own.
			name:     "single_value",
			args:     []string{"-I", "pat"},
			tokens:   []string{"-Ipat"},
			clusters: 1,
			str:      "-Ipat",
		},
		{
			name:     "flags_and_value",
			args:     []string{"-I", "pat", "-l"},
			tokens:   []string{"-lIpat"},
			clusters: 1,
			str:      "-lIpat",
		},
		{
			name:     "flags_and_values",
			args:     []string{"-l", "-w", "80", "-T", "4", "-I", "*.o"},
			tokens:   []string{"-lw80", "-T4", "-I*.o"},
			clusters: 3,
			str:      `-lw80 -T4 -I\*.o`,
		},
		{
			name:     "value_with_space",
			args:     []string{"-a", "-I", "my file"},
			tokens:   []string{"-aImy file"},
			clusters: 1,
			str:      "'-aImy file'",
		},
		{
			name:     "empty_value",
			args:     []string{"-a", "-I", ""},
			tokens:   []string{"-aI", ""},
			clusters: 1,
			str:      "-aI ''",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := lscondense.Combine(lscondense.Lint(test.args).Observed)

			if diff := cmp.Diff(test.tokens, got.Tokens, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if got.Clusters != test.clusters {
				t.Errorf("clusters = %d, want %d", got.Clusters, test.clusters)
			}
			if s := got.String(); s != test.str {
				t.Errorf("String() = %q, want %q", s, test.str)
			}
		})
	}
}
