package lscondense

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// LintSource lints the exec.Command and exec.CommandContext calls in the
// given Go source. Only calls whose command and arguments are all string
// literals are analyzed, and only if the command matches the configured
// command patterns.
//
// Single-line calls that can be condensed safely are rewritten in place, and
// the rewritten source is returned. If nothing was rewritten, src is returned
// as is. Generated files are never analyzed.
//
// Returns an error if the source cannot be parsed or formatted.
func (l *Linter) LintSource(filename string, src []byte) ([]Finding, []byte, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse source: %w", err)
	}

	if ast.IsGenerated(file) {
		return nil, src, nil
	}

	s := &sourceLinter{
		linter: l,
		fset:   fset,
		file:   file,
		exec:   execImportName(file),
	}
	if s.exec == "" {
		return nil, src, nil
	}

	astutil.Apply(file, s.applyPre, nil)

	if !s.changed {
		return s.findings, src, nil
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, nil, fmt.Errorf("failed to format AST: %w", err)
	}

	return s.findings, buf.Bytes(), nil
}

// sourceLinter lints and rewrites command invocations in a Go file.
type sourceLinter struct {
	linter   *Linter
	fset     *token.FileSet
	file     *ast.File
	exec     string // local name of the os/exec package
	findings []Finding
	changed  bool
}

// execImportName returns the name os/exec is imported as, or "" if it is not
// imported by name.
func execImportName(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != "os/exec" {
			continue
		}
		if imp.Name == nil {
			return "exec"
		}
		if imp.Name.Name == "_" || imp.Name.Name == "." {
			return ""
		}
		return imp.Name.Name
	}
	return ""
}

// applyPre is called before visiting children nodes.
func (s *sourceLinter) applyPre(c *astutil.Cursor) bool {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return true
	}

	first := s.commandArg(call)
	if first < 0 || call.Ellipsis.IsValid() || len(call.Args) <= first {
		return true
	}

	words := make([]string, 0, len(call.Args)-first)
	for _, arg := range call.Args[first:] {
		lit, ok := arg.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		word, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		words = append(words, word)
	}

	if !s.linter.matchCommand(words[0]) {
		return true
	}

	result := s.linter.Lint(words[1:])
	for _, d := range result.Diagnostics {
		pos := call.Pos()
		if d.Arg >= 0 {
			pos = call.Args[first+1+d.Arg].Pos()
		}
		s.findings = append(s.findings, Finding{Pos: s.fset.Position(pos), Diagnostic: d})
	}

	args, ok := result.Condensed()
	if !ok || !s.isSingleLine(call) || s.hasComments(call) {
		return true
	}

	c.Replace(s.replaceArgs(call, first+1, args))
	s.changed = true

	return true
}

// commandArg returns the index of the command name argument if call is an
// exec.Command or exec.CommandContext call, and -1 otherwise.
func (s *sourceLinter) commandArg(call *ast.CallExpr) int {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return -1
	}
	if x, ok := sel.X.(*ast.Ident); !ok || x.Name != s.exec {
		return -1
	}
	switch sel.Sel.Name {
	case "Command":
		return 0
	case "CommandContext":
		return 1
	default:
		return -1
	}
}

// replaceArgs returns a copy of call with the arguments from index start on
// replaced by args. The new literals take over the positions of the old
// arguments so the call stays on its line.
func (s *sourceLinter) replaceArgs(call *ast.CallExpr, start int, args []string) *ast.CallExpr {
	newArgs := make([]ast.Expr, 0, start+len(args))
	newArgs = append(newArgs, call.Args[:start]...)

	old := call.Args[start:]
	for i, arg := range args {
		pos := old[len(old)-1].Pos()
		if i < len(old) {
			pos = old[i].Pos()
		}
		newArgs = append(newArgs, &ast.BasicLit{
			ValuePos: pos,
			Kind:     token.STRING,
			Value:    strconv.Quote(arg),
		})
	}

	return &ast.CallExpr{
		Fun:    call.Fun,
		Lparen: call.Lparen,
		Args:   newArgs,
		Rparen: call.Rparen,
	}
}

// hasComments checks if there are any comments within the node's range.
func (s *sourceLinter) hasComments(node ast.Node) bool {
	for _, cg := range s.file.Comments {
		if cg.Pos() >= node.Pos() && cg.End() <= node.End() {
			return true
		}
	}
	return false
}

// isSingleLine checks if a node is on a single line.
func (s *sourceLinter) isSingleLine(node ast.Node) bool {
	return s.fset.Position(node.Pos()).Line == s.fset.Position(node.End()).Line
}
