package compose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmpty(t *testing.T) {
	for _, spec := range Specs {
		t.Run(string(spec.Verb), func(t *testing.T) {
			assert.Equal(t, []string{string(spec.Verb)}, spec.Compile(Invocation{}))
		})
	}
}

// Every flag set at once must come out in table order, whatever order the
// user typed them in, followed by the positionals.
func TestCompileAllFlagsInTableOrder(t *testing.T) {
	for _, spec := range Specs {
		t.Run(string(spec.Verb), func(t *testing.T) {
			inv := Invocation{Args: []string{"svc1", "svc2"}}
			want := []string{string(spec.Verb)}

			for i := len(spec.Flags) - 1; i >= 0; i-- {
				f := spec.Flags[i]
				switch f.Kind {
				case Bool:
					inv = inv.Set(f.Name, "true")
				case Value:
					inv = inv.Set(f.Name, fmt.Sprintf("v%d", i))
				case Repeat:
					inv = inv.Set(f.Name, fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i))
				}
			}
			for i, f := range spec.Flags {
				switch f.Kind {
				case Bool:
					want = append(want, "--"+f.Name)
				case Value:
					want = append(want, "--"+f.Name, fmt.Sprintf("v%d", i))
				case Repeat:
					want = append(want, "--"+f.Name, fmt.Sprintf("a%d", i), "--"+f.Name, fmt.Sprintf("b%d", i))
				}
			}
			want = append(want, "svc1", "svc2")

			assert.Equal(t, want, spec.Compile(inv))
		})
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		verb Verb
		inv  Invocation
		want []string
	}{
		{
			name: "stop with timeout",
			verb: Stop,
			inv:  Invocation{}.Set("timeout", "10"),
			want: []string{"stop", "--timeout", "10"},
		},
		{
			name: "exec with repeated env and command",
			verb: Exec,
			inv: Invocation{
				Flags: map[string][]string{"env": {"A=1", "B=2"}},
				Args:  []string{"web", "sh", "-c", "echo hi"},
			},
			want: []string{"exec", "--env", "A=1", "--env", "B=2", "web", "sh", "-c", "echo hi"},
		},
		{
			name: "bool set to false is omitted",
			verb: Up,
			inv:  Invocation{}.Set("detach", "false").Set("build", "true"),
			want: []string{"up", "--build"},
		},
		{
			name: "value flag keeps last occurrence",
			verb: Logs,
			inv:  Invocation{Args: []string{"web"}}.Set("tail", "10", "20"),
			want: []string{"logs", "--tail", "20", "web"},
		},
		{
			name: "down flags in table order",
			verb: Down,
			inv:  Invocation{}.Set("volumes", "true").Set("rmi", "all").Set("remove-orphans", "true"),
			want: []string{"down", "--remove-orphans", "--rmi", "all", "--volumes"},
		},
		{
			name: "port positionals",
			verb: Port,
			inv:  Invocation{Args: []string{"web", "80"}}.Set("protocol", "udp"),
			want: []string{"port", "--protocol", "udp", "web", "80"},
		},
		{
			name: "ps repeatable status",
			verb: Ps,
			inv:  Invocation{}.Set("status", "running", "exited").Set("quiet", "true"),
			want: []string{"ps", "--quiet", "--status", "running", "--status", "exited"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := Lookup(tt.verb)
			require.True(t, ok)
			assert.Equal(t, tt.want, spec.Compile(tt.inv))
		})
	}
}

func TestInvocationSetCopies(t *testing.T) {
	base := Invocation{Args: []string{"web"}}.Set("quiet", "true")
	all := base.Set("all", "true")
	more := base.Set("quiet", "false")

	assert.Equal(t, map[string][]string{"quiet": {"true"}}, base.Flags)
	assert.Equal(t, map[string][]string{"quiet": {"true"}, "all": {"true"}}, all.Flags)
	assert.Equal(t, []string{"true", "false"}, more.Flags["quiet"])
	assert.Equal(t, []string{"web"}, all.Args)
}

func TestSpecsAreConsistent(t *testing.T) {
	seenVerbs := map[Verb]bool{}
	for _, spec := range Specs {
		assert.False(t, seenVerbs[spec.Verb], "duplicate verb %s", spec.Verb)
		seenVerbs[spec.Verb] = true
		assert.NotEmpty(t, spec.Short, spec.Verb)

		names := map[string]bool{}
		shorts := map[string]bool{}
		for _, f := range spec.Flags {
			assert.False(t, names[f.Name], "%s: duplicate flag %s", spec.Verb, f.Name)
			names[f.Name] = true
			if f.Short != "" {
				assert.Len(t, f.Short, 1, "%s: shorthand of %s", spec.Verb, f.Name)
				assert.False(t, shorts[f.Short], "%s: duplicate shorthand %s", spec.Verb, f.Short)
				shorts[f.Short] = true
			}
			if len(f.Choices) > 0 {
				assert.NotEqual(t, Bool, f.Kind, "%s: bool flag %s cannot have choices", spec.Verb, f.Name)
			}
		}
		for _, group := range spec.Exclusive {
			for _, name := range group {
				assert.True(t, names[name], "%s: exclusive group names unknown flag %s", spec.Verb, name)
			}
		}
	}
	assert.Len(t, seenVerbs, 23)
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup(Up)
	require.True(t, ok)
	f, ok := spec.Flag("pull")
	require.True(t, ok)
	assert.Equal(t, []string{"always", "missing", "never"}, f.Choices)

	_, ok = spec.Flag("nope")
	assert.False(t, ok)

	_, ok = Lookup(Verb("config"))
	assert.False(t, ok)
}
