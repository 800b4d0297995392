package compose

import (
	"maps"
	"slices"

	"github.com/spf13/cast"
)

// Invocation is a parsed verb command line: the flags the user set and the
// positional arguments that followed PROJECT.
type Invocation struct {
	// Flags maps a flag name to its values in input order. Flags the user
	// did not set are absent.
	Flags map[string][]string
	Args  []string
}

// Set returns a copy of the invocation with values recorded for a flag. The
// receiver is left untouched.
func (inv Invocation) Set(name string, values ...string) Invocation {
	flags := make(map[string][]string, len(inv.Flags)+1)
	maps.Copy(flags, inv.Flags)
	flags[name] = append(slices.Clone(flags[name]), values...)
	inv.Flags = flags
	return inv
}

// Compile turns an invocation into the verb's argument vector:
// the verb word, set flags in table order, then positionals in input order.
func (s Spec) Compile(inv Invocation) []string {
	argv := []string{string(s.Verb)}

	for _, f := range s.Flags {
		values := inv.Flags[f.Name]
		if len(values) == 0 {
			continue
		}

		switch f.Kind {
		case Bool:
			if cast.ToBool(values[len(values)-1]) {
				argv = append(argv, "--"+f.Name)
			}
		case Value:
			argv = append(argv, "--"+f.Name, values[len(values)-1])
		case Repeat:
			for _, v := range values {
				argv = append(argv, "--"+f.Name, v)
			}
		}
	}

	return append(argv, inv.Args...)
}
