package lscondense

import "slices"

// Option is a short option seen in an argument list.
type Option struct {
	Name rune

	// Value is the value captured for a value-taking option. It is empty for
	// boolean options, and may also be empty for a value option given an
	// explicitly empty argument.
	Value string

	// Valued reports whether the option takes a value.
	Valued bool
}

// Observed records the short options seen in an argument list. Each option is
// kept once, in the order it was first seen.
type Observed struct {
	opts  []Option
	index map[rune]int
}

func newObserved() *Observed {
	return &Observed{index: map[rune]int{}}
}

// add records opt unless an option with the same name was already seen.
func (o *Observed) add(opt Option) bool {
	if o.Has(opt.Name) {
		return false
	}
	o.index[opt.Name] = len(o.opts)
	o.opts = append(o.opts, opt)
	return true
}

// Has reports whether the option was seen.
func (o *Observed) Has(name rune) bool {
	_, ok := o.index[name]
	return ok
}

// Get returns the option with the given name.
func (o *Observed) Get(name rune) (Option, bool) {
	i, ok := o.index[name]
	if !ok {
		return Option{}, false
	}
	return o.opts[i], true
}

// Len returns the number of distinct options seen.
func (o *Observed) Len() int { return len(o.opts) }

// Options returns the observed options in the order they were first seen.
func (o *Observed) Options() []Option { return slices.Clone(o.opts) }
