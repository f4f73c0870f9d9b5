package lscondense

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// ErrInvalidCatalog is returned when a catalog is malformed.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Kind classifies a short option character against a Catalog.
type Kind uint8

const (
	// Unknown is a character that is not a valid option.
	Unknown Kind = iota

	// NoValue is a boolean option such as -l. It carries no value and may be
	// clustered freely with other options.
	NoValue

	// Value is an option that requires a value, given either in the same
	// token (-Ipattern) or as the following token (-I pattern). It ends the
	// cluster it appears in.
	Value
)

func (k Kind) String() string {
	switch k {
	case NoValue:
		return "no-value"
	case Value:
		return "value"
	default:
		return "unknown"
	}
}

// Catalog describes the short options a command accepts.
type Catalog struct {
	// NoValue holds the characters of the boolean options.
	NoValue string `json:"noValue"`

	// Value holds the characters of the options that require a value.
	Value string `json:"value"`
}

// DefaultCatalog holds the short options of GNU ls.
var DefaultCatalog = &Catalog{
	NoValue: "aAbcCdDfFghHiklLmnNopqrRsStuUvxX1",
	Value:   "ITw",
}

// Kind reports how r is classified by the catalog.
func (c *Catalog) Kind(r rune) Kind {
	switch {
	case strings.ContainsRune(c.NoValue, r):
		return NoValue
	case strings.ContainsRune(c.Value, r):
		return Value
	default:
		return Unknown
	}
}

// Validate checks that the two option sets are disjoint and hold no dashes.
func (c *Catalog) Validate() error {
	for _, r := range c.NoValue {
		if r == '-' {
			return fmt.Errorf("%w: '-' is not a valid option", ErrInvalidCatalog)
		}
		if strings.ContainsRune(c.Value, r) {
			return fmt.Errorf("%w: option %q is both a no-value and a value option", ErrInvalidCatalog, r)
		}
	}
	if strings.ContainsRune(c.Value, '-') {
		return fmt.Errorf("%w: '-' is not a valid option", ErrInvalidCatalog)
	}
	return nil
}

// ParseOptString builds a catalog from a getopt-style option string, where a
// character followed by a colon takes a value:
//
//	ParseOptString("laI:T:") // -l, -a boolean; -I, -T take a value
func ParseOptString(s string) (*Catalog, error) {
	var noValue, value strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ':' {
			return nil, fmt.Errorf("%w: unexpected ':' at offset %d in %q", ErrInvalidCatalog, i, s)
		}
		if i+1 < len(runes) && runes[i+1] == ':' {
			value.WriteRune(r)
			i++
		} else {
			noValue.WriteRune(r)
		}
	}

	c := &Catalog{NoValue: noValue.String(), Value: value.String()}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type catalogFile struct {
	NoValue   string `json:"noValue,omitempty"`
	Value     string `json:"value,omitempty"`
	OptString string `json:"optstring,omitempty"`
}

// LoadCatalog decodes a catalog from YAML. The document either lists the two
// option sets:
//
//	noValue: laAh
//	value: IT
//
// or gives a single getopt-style option string:
//
//	optstring: "laAhI:T:"
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if f.OptString != "" {
		if f.NoValue != "" || f.Value != "" {
			return nil, fmt.Errorf("%w: optstring cannot be combined with noValue or value", ErrInvalidCatalog)
		}
		return ParseOptString(f.OptString)
	}

	c := &Catalog{NoValue: f.NoValue, Value: f.Value}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadCatalog reads and decodes the YAML catalog stored at path.
func ReadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := LoadCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return c, nil
}
