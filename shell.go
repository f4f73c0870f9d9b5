package lscondense

import (
	"bufio"
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Finding is a diagnostic located in a file.
type Finding struct {
	Pos        token.Position
	Diagnostic Diagnostic

	// Err is set instead of Diagnostic when the location could not be
	// analyzed, e.g. a shell line with unbalanced quotes.
	Err error
}

func (f Finding) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Pos, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Pos, f.Diagnostic)
}

// separators are the words that end a simple command.
var separators = map[string]bool{
	"|": true, "||": true, "&&": true, ";": true, "&": true,
}

// LintLine lints every matching command on a shell command line and returns
// one result per command. Only whitespace-separated control operators are
// recognized, as in "ls -l | wc -l".
func (l *Linter) LintLine(line string) ([]*Result, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split command line: %w", err)
	}

	var results []*Result
	for len(words) > 0 {
		end := len(words)
		for i, w := range words {
			if separators[w] {
				end = i
				break
			}
		}
		cmd := words[:end]
		if end < len(words) {
			words = words[end+1:]
		} else {
			words = nil
		}

		for len(cmd) > 0 && isAssignment(cmd[0]) {
			cmd = cmd[1:]
		}
		if len(cmd) == 0 || !l.matchCommand(cmd[0]) {
			continue
		}
		results = append(results, l.Lint(cmd[1:]))
	}

	return results, nil
}

// LintScript lints a shell script line by line. Blank lines and comment lines
// are skipped, and lines ending in a backslash are joined with the next.
// Findings are positioned at the first line of their command. An error is
// only returned if reading fails.
func (l *Linter) LintScript(name string, r io.Reader) ([]Finding, error) {
	var (
		findings []Finding
		buf      strings.Builder
		lineNo   int
		start    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if buf.Len() == 0 {
			start = lineNo
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
		}

		if cont, ok := strings.CutSuffix(line, `\`); ok {
			buf.WriteString(cont)
			buf.WriteByte(' ')
			continue
		}
		buf.WriteString(line)

		findings = append(findings, l.lintScriptLine(name, start, buf.String())...)
		buf.Reset()
	}
	if err := scanner.Err(); err != nil {
		return findings, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if buf.Len() > 0 {
		findings = append(findings, l.lintScriptLine(name, start, buf.String())...)
	}

	return findings, nil
}

func (l *Linter) lintScriptLine(name string, line int, text string) []Finding {
	pos := token.Position{Filename: name, Line: line, Column: 1}

	results, err := l.LintLine(text)
	if err != nil {
		return []Finding{{Pos: pos, Err: err}}
	}

	var findings []Finding
	for _, r := range results {
		for _, d := range r.Diagnostics {
			findings = append(findings, Finding{Pos: pos, Diagnostic: d})
		}
	}
	return findings
}

func (l *Linter) matchCommand(name string) bool {
	for _, g := range l.commands {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// isAssignment reports whether word is a NAME=value environment assignment.
func isAssignment(word string) bool {
	name, _, ok := strings.Cut(word, "=")
	if !ok || name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
