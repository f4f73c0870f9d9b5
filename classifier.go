package lscondense

import "unicode/utf8"

// role describes what an argument token was used for.
type role uint8

const (
	roleOperand role = iota // not analyzed: operands, long options, bare dashes
	roleCluster             // a short option cluster
	roleValue               // the value of the preceding option token
)

// cursor walks an argument list, allowing an option to take the next token
// as its value.
type cursor struct {
	args []string
	pos  int
}

// next returns the next token and its index, advancing the cursor.
func (c *cursor) next() (string, int, bool) {
	if c.pos >= len(c.args) {
		return "", -1, false
	}
	c.pos++
	return c.args[c.pos-1], c.pos - 1, true
}

// classifier scans an argument list against a catalog.
type classifier struct {
	catalog  *Catalog
	observed *Observed
	clusters int
	diags    []Diagnostic
	roles    []role

	// repeated is set when a value option was given more than once.
	repeated bool
}

// isCluster reports whether arg has the shape of a short option cluster.
// Tokens that are not valid UTF-8 are never clusters.
func isCluster(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && arg[1] != '-' && utf8.ValidString(arg)
}

func classify(args []string, catalog *Catalog) *classifier {
	c := &classifier{
		catalog:  catalog,
		observed: newObserved(),
		roles:    make([]role, len(args)),
	}

	cur := &cursor{args: args}
	for {
		arg, i, ok := cur.next()
		if !ok {
			break
		}
		if !isCluster(arg) {
			continue
		}
		c.roles[i] = roleCluster
		if c.scan(cur, arg, i) {
			c.clusters++
		}
	}

	return c
}

// scan classifies the characters of the cluster arg at index i, and reports
// whether it recorded at least one new option.
func (c *classifier) scan(cur *cursor, arg string, i int) bool {
	var contributed bool

	for off := 1; off < len(arg); {
		r, size := utf8.DecodeRuneInString(arg[off:])
		off += size

		switch c.catalog.Kind(r) {
		case NoValue:
			if !c.observed.add(Option{Name: r}) {
				c.report(DuplicateOption, r, i)
				continue
			}
			contributed = true

		case Value:
			dup := c.observed.Has(r)
			if dup {
				c.report(DuplicateOption, r, i)
				c.repeated = true
			}

			val := arg[off:]
			if val == "" {
				next, j, ok := cur.next()
				if !ok {
					if !dup {
						c.report(MissingValue, r, i)
					}
					return contributed
				}
				c.roles[j] = roleValue
				val = next
			}

			if !dup {
				c.observed.add(Option{Name: r, Value: val, Valued: true})
				contributed = true
			}
			return contributed

		default:
			c.report(UnknownOption, r, i)
		}
	}

	return contributed
}

func (c *classifier) report(kind DiagnosticKind, r rune, i int) {
	c.diags = append(c.diags, Diagnostic{Kind: kind, Option: r, Arg: i})
}
