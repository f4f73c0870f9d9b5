package lscondense

import (
	"fmt"
	"slices"

	"github.com/gobwas/glob"
)

// DiagnosticKind identifies the kind of a Diagnostic.
type DiagnosticKind uint8

const (
	// UnknownOption reports a character that is not in the catalog.
	UnknownOption DiagnosticKind = iota

	// DuplicateOption reports an option that was already given.
	DuplicateOption

	// MissingValue reports a value option at the end of the argument list
	// with no value.
	MissingValue

	// Suggestion reports that the options could be given in fewer tokens.
	Suggestion
)

// Diagnostic is a single finding of the linter.
type Diagnostic struct {
	Kind DiagnosticKind

	// Option is the offending option character. It is zero for suggestions.
	Option rune

	// Arg is the index of the argument the diagnostic refers to, or -1 for
	// suggestions, which refer to the argument list as a whole.
	Arg int

	// Suggestion holds the combined form for suggestions.
	Suggestion string
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case UnknownOption:
		return fmt.Sprintf("Unknown argument: %c", d.Option)
	case DuplicateOption:
		return fmt.Sprintf("Duplicate argument: %c", d.Option)
	case MissingValue:
		return fmt.Sprintf("Missing value for argument: %c", d.Option)
	case Suggestion:
		return "Could have combined short arguments into " + d.Suggestion
	default:
		return fmt.Sprintf("diagnostic(%d)", d.Kind)
	}
}

// Config holds the configuration settings for the linter.
type Config struct {
	// Catalog describes the options of the linted command.
	// If nil, DefaultCatalog is used instead.
	Catalog *Catalog

	// Commands holds glob patterns matching the command names linted in shell
	// scripts and Go source, e.g. "ls" or "**/ls". Lint ignores it.
	// If empty, DefaultConfig.Commands is used instead.
	Commands []string
}

// DefaultConfig lints ls invocations, by bare name or by path, against
// DefaultCatalog.
var DefaultConfig = &Config{
	Catalog:  DefaultCatalog,
	Commands: []string{"ls", "**/ls"},
}

// Lint is a convenience function that lints args using the default
// configuration. This is equivalent to calling:
//
//	New(DefaultConfig).Lint(args)
func Lint(args []string) *Result {
	return newLinter(DefaultCatalog, nil).Lint(args)
}

// Linter lints argument lists using the specified configuration.
type Linter struct {
	catalog  *Catalog
	commands []glob.Glob
}

// New creates a new linter with the given configuration. If config is nil,
// DefaultConfig is used instead. New fails if the catalog is invalid or a
// command pattern does not compile.
func New(config *Config) (*Linter, error) {
	if config == nil {
		config = DefaultConfig
	}

	catalog := config.Catalog
	if catalog == nil {
		catalog = DefaultCatalog
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	patterns := config.Commands
	if len(patterns) == 0 {
		patterns = DefaultConfig.Commands
	}
	commands := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid command pattern %q: %w", pattern, err)
		}
		commands = append(commands, g)
	}

	return newLinter(catalog, commands), nil
}

func newLinter(catalog *Catalog, commands []glob.Glob) *Linter {
	return &Linter{catalog: catalog, commands: commands}
}

// Result is the outcome of linting an argument list.
type Result struct {
	// Args is the linted argument list.
	Args []string

	// Observed holds the distinct options found in Args.
	Observed *Observed

	// Clusters is the number of tokens in Args that contributed at least one
	// new option.
	Clusters int

	// Combined is the shortest clustered form of Observed.
	Combined Combined

	// Diagnostics holds the findings in argument order, followed by the
	// suggestion if there is one.
	Diagnostics []Diagnostic

	roles    []role
	repeated bool
}

// Lint analyzes the short options in args. It never fails: anomalies are
// reported as diagnostics on the result.
func (l *Linter) Lint(args []string) *Result {
	c := classify(args, l.catalog)

	r := &Result{
		Args:        args,
		Observed:    c.observed,
		Clusters:    c.clusters,
		Combined:    Combine(c.observed),
		Diagnostics: c.diags,
		roles:       c.roles,
		repeated:    c.repeated,
	}

	if r.Observed.Len() > 0 && r.Clusters > r.Combined.Clusters {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Kind:       Suggestion,
			Arg:        -1,
			Suggestion: r.Combined.String(),
		})
	}

	return r
}

// Suggested reports whether the result carries a suggestion.
func (r *Result) Suggested() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool { return d.Kind == Suggestion })
}

// Condensed returns Args rewritten to the combined form: the combined tokens
// first, followed by every operand in its original order. It returns false if
// there is nothing to condense, or if the rewritten list could mean something
// else: unknown options, a missing value, a value option given more than once
// (ls keeps the last -w but every -I), or options following a "--" terminator.
func (r *Result) Condensed() ([]string, bool) {
	if !r.Suggested() || r.repeated {
		return nil, false
	}
	for _, d := range r.Diagnostics {
		if d.Kind == UnknownOption || d.Kind == MissingValue {
			return nil, false
		}
	}

	args := slices.Clone(r.Combined.Tokens)
	var terminated bool
	for i, arg := range r.Args {
		switch r.roles[i] {
		case roleOperand:
			terminated = terminated || arg == "--"
			args = append(args, arg)
		case roleCluster:
			if terminated {
				// Would move in front of the terminator.
				return nil, false
			}
		}
	}
	return args, true
}
