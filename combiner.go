package lscondense

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Combined is the shortest clustered form of a set of observed options.
type Combined struct {
	// Tokens holds the arguments of the combined form.
	Tokens []string

	// Clusters is the number of dash-prefixed tokens in Tokens.
	Clusters int
}

// String returns the combined form as a shell command-line fragment. Tokens
// are quoted only where the shell requires it.
func (c Combined) String() string {
	return shellquote.Join(c.Tokens...)
}

// Combine computes the combined form of the observed options. All boolean
// options share a single token, which also carries the first value option.
// Each further value option needs a token of its own:
//
//	-l -a -h -I cache -T 4    =>    -lahIcache -T4
func Combine(o *Observed) Combined {
	var (
		flags  strings.Builder
		valued []Option
	)
	for _, opt := range o.opts {
		if opt.Valued {
			valued = append(valued, opt)
		} else {
			flags.WriteRune(opt.Name)
		}
	}

	if flags.Len() == 0 && len(valued) == 0 {
		return Combined{}
	}

	var c Combined
	prefix := "-" + flags.String()
	if len(valued) == 0 {
		c.Tokens = append(c.Tokens, prefix)
		c.Clusters++
	}
	for _, opt := range valued {
		c.Tokens = append(c.Tokens, prefix+string(opt.Name)+opt.Value)
		if opt.Value == "" {
			c.Tokens = append(c.Tokens, "")
		}
		c.Clusters++
		prefix = "-"
	}

	return c
}
