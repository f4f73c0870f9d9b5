// Package main provides ls-watch, a drop-in companion for ls that reports
// short options which could have been combined into fewer arguments.
//
// Every argument is linted as if it was passed to ls:
//
//	$ ls-watch -l -a -h
//	[LS-WATCH] Could have combined short arguments into -lah
//
// The option catalog defaults to GNU ls and can be replaced with a YAML file
// named by the LSWATCH_CATALOG environment variable. ls-watch always exits
// with status 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/abemedia/lscondense"
)

const prefix = "[LS-WATCH] "

func main() {
	run(os.Args[1:], os.Getenv("LSWATCH_CATALOG"), os.Stderr)
}

func run(args []string, catalogPath string, w io.Writer) {
	catalog := lscondense.DefaultCatalog
	if catalogPath != "" {
		c, err := lscondense.ReadCatalog(catalogPath)
		if err != nil {
			fmt.Fprintf(w, "%sIgnoring LSWATCH_CATALOG: %v\n", prefix, err)
		} else {
			catalog = c
		}
	}

	linter, err := lscondense.New(&lscondense.Config{Catalog: catalog})
	if err != nil {
		fmt.Fprintf(w, "%s%v\n", prefix, err)
		return
	}

	for _, d := range linter.Lint(args).Diagnostics {
		fmt.Fprintf(w, "%s%s\n", prefix, d)
	}
}
