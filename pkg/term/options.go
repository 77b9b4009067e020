package term

import (
	"fmt"
	"strings"
)

// Options is a set of term flags.
type Options uint8

const (
	// Reverse puts the placeholder on the left of LIKE and the column on the right.
	Reverse Options = 1 << iota
	// StartWith anchors the pattern at the start of the text.
	StartWith
	// EndWith anchors the pattern at the end of the text.
	EndWith
)

var optionNames = []struct {
	flag Options
	name string
}{
	{Reverse, "reverse"},
	{StartWith, "startWith"},
	{EndWith, "endWith"},
}

// Has reports whether every flag in o is set.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// Names returns the set flag names in declaration order.
func (opts Options) Names() []string {
	var names []string
	for _, n := range optionNames {
		if opts.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

// String returns the flags joined by commas.
func (opts Options) String() string {
	return strings.Join(opts.Names(), ",")
}

func (opts Options) suffix() string {
	if opts == 0 {
		return ""
	}
	return " [" + opts.String() + "]"
}

// ParseOptions parses flag names. Names are case-insensitive and may also
// be comma separated within a single argument. Unknown names are an error.
func ParseOptions(names ...string) (Options, error) {
	var opts Options
	for _, arg := range names {
		for _, raw := range strings.Split(arg, ",") {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			flag, ok := lookupOption(name)
			if !ok {
				return 0, fmt.Errorf("unknown term option %q", name)
			}
			opts |= flag
		}
	}
	return opts, nil
}

func lookupOption(name string) (Options, bool) {
	for _, n := range optionNames {
		if strings.EqualFold(n.name, name) {
			return n.flag, true
		}
	}
	return 0, false
}
