// Package lscondense provides a linter for the short options of ls-style
// command invocations. It reports single-dash option tokens that could be
// clustered into fewer tokens, following POSIX short-option clustering:
//
//	ls -l -a -h    =>    ls -lah
//
// Along the way it flags unknown short options, options given more than once
// and value-taking options that are missing their value. Long options
// (--foo) and operands are never analyzed.
//
// Which characters are valid options, and which of them take a value, is
// described by a Catalog. DefaultCatalog holds the grammar of GNU ls.
//
// Basic usage:
//
//	// Using the default configuration
//	result := lscondense.Lint([]string{"-l", "-a", "-h"})
//	for _, d := range result.Diagnostics {
//		fmt.Println(d) // Could have combined short arguments into -lah
//	}
//
//	// Using a custom catalog
//	catalog, err := lscondense.ParseOptString("lahI:")
//	linter, err := lscondense.New(&lscondense.Config{Catalog: catalog})
//	result := linter.Lint(args)
//
// Besides raw argument lists, a Linter can inspect shell scripts (LintScript)
// and exec.Command calls in Go source (LintSource), rewriting the latter to
// their condensed form.
package lscondense
