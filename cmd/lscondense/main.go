// Package main provides the lscondense command-line tool for finding ls
// invocations whose short options could be combined into fewer arguments.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abemedia/lscondense"
)

//nolint:cyclop,funlen
func main() {
	var (
		catalogPath = flag.String("catalog", "", "YAML file describing the command's short options (default: GNU ls)")
		commands    = flag.String("commands", "ls,**/ls", "Comma-separated glob patterns of the command names to lint")
		write       = flag.Bool("w", false, "Write condensed exec.Command calls back to Go source files")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file|dir|path/...]", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nReports ls invocations whose short options could be combined into fewer arguments.\n")
		fmt.Fprintf(os.Stderr, "Go files (.go) and shell scripts (.sh, .bash) are linted.\n")
		fmt.Fprintf(os.Stderr, "If no file is provided, reads a shell script from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	config := &lscondense.Config{Commands: parseList(*commands)}
	if *catalogPath != "" {
		catalog, err := lscondense.ReadCatalog(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --catalog flag: %v\n", err)
			os.Exit(1)
		}
		config.Catalog = catalog
	}

	linter, err := lscondense.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating linter: %v\n", err)
		os.Exit(1)
	}

	out := &printer{w: os.Stdout}

	if flag.NArg() == 0 {
		// Read from stdin
		findings, err := linter.LintScript("<stdin>", os.Stdin)
		out.print(findings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, path := range flag.Args() {
		err := lintPath(path, func(file string) {
			g.Go(func() error {
				processFile(linter, out, file, *write)
				return nil
			})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error walking path %s: %v\n", path, err)
		}
	}

	_ = g.Wait()
}

// printer serializes findings from concurrent workers.
type printer struct {
	mu sync.Mutex
	w  io.Writer
}

func (p *printer) print(findings []lscondense.Finding) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, f := range findings {
		fmt.Fprintln(p.w, f)
	}
}

// lintPath calls visit for every lintable file at path. A directory is only
// descended into when path ends in "/...".
func lintPath(path string, visit func(string)) error {
	root, recursive := strings.CutSuffix(path, "/...")

	return filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir() && name != root && !recursive:
			return filepath.SkipDir
		case !d.IsDir() && isLintable(name):
			visit(name)
		}
		return nil
	})
}

func parseList(s string) []string {
	var list []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

func isLintable(path string) bool {
	switch filepath.Ext(path) {
	case ".go", ".sh", ".bash":
		return true
	default:
		return false
	}
}

func processFile(linter *lscondense.Linter, out *printer, filename string, write bool) {
	input, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		return
	}

	if filepath.Ext(filename) != ".go" {
		findings, err := linter.LintScript(filename, bytes.NewReader(input))
		out.print(findings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error linting file %s: %v\n", filename, err)
		}
		return
	}

	findings, output, err := linter.LintSource(filename, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error linting file %s: %v\n", filename, err)
		return
	}
	out.print(findings)

	if !write || bytes.Equal(input, output) {
		return
	}

	err = os.WriteFile(filename, output, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file %s: %v\n", filename, err)
	}
}
