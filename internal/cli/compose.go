package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kris-hansen/dctl/internal/compose"
	"github.com/kris-hansen/dctl/internal/process"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ComposeCmd returns the command forwarding a compose verb to a project
func ComposeCmd(app *App, spec compose.Spec) *cobra.Command {
	cmd := &cobra.Command{
		Use:               string(spec.Verb) + " PROJECT" + argsUsage(spec.Arity),
		Short:             spec.Short,
		Long:              fmt.Sprintf("Runs 'docker compose %s' on the project registered as PROJECT.", spec.Verb),
		GroupID:           groupCompose,
		Args:              argsValidator(spec.Arity),
		ValidArgsFunction: app.completeProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(app, spec, cmd, args)
		},
	}

	flags := cmd.Flags()
	for _, f := range spec.Flags {
		switch {
		case len(f.Choices) > 0:
			usage := fmt.Sprintf("%s (%s)", f.Usage, strings.Join(f.Choices, "|"))
			flags.VarP(newEnumValue(f.Choices, f.Kind == compose.Repeat), f.Name, f.Short, usage)
			_ = cmd.RegisterFlagCompletionFunc(f.Name, cobra.FixedCompletions(f.Choices, cobra.ShellCompDirectiveNoFileComp))
		case f.Kind == compose.Bool:
			flags.BoolP(f.Name, f.Short, false, f.Usage)
		case f.Kind == compose.Repeat:
			flags.StringArrayP(f.Name, f.Short, nil, f.Usage)
		default:
			flags.StringP(f.Name, f.Short, "", f.Usage)
		}
	}

	for _, group := range spec.Exclusive {
		cmd.MarkFlagsMutuallyExclusive(group...)
	}

	// Everything after COMMAND belongs to the container command.
	if spec.Arity == compose.ServiceCommand {
		flags.SetInterspersed(false)
	}

	return cmd
}

func runCompose(app *App, spec compose.Spec, cmd *cobra.Command, args []string) error {
	alias, rest := args[0], args[1:]

	if spec.Arity == compose.ServiceCommand {
		// Parsing stopped at PROJECT; pick up the flags between PROJECT and
		// SERVICE.
		if err := cmd.Flags().Parse(rest); err != nil {
			return err
		}
		app.applyVerbosity()
		if help, _ := cmd.Flags().GetBool("help"); help {
			return cmd.Help()
		}
		if err := cmd.ValidateFlagGroups(); err != nil {
			return err
		}
		rest = cmd.Flags().Args()
		if len(rest) < 2 {
			return fmt.Errorf("%s requires SERVICE and COMMAND arguments", spec.Verb)
		}
	}

	cfg, reg, err := app.load()
	if err != nil {
		return err
	}

	inv := invocation(cmd.Flags(), spec, rest)
	d := compose.NewDispatcher(cfg, reg, app.executor(cmd), app.Logger)

	if app.Print {
		bin, argv, err := d.Command(alias, spec.Verb, inv)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), process.CommandLine(bin, argv))
		return nil
	}

	return d.Dispatch(cmd.Context(), alias, spec.Verb, inv)
}

// invocation collects the verb flags the user set.
func invocation(flags *pflag.FlagSet, spec compose.Spec, args []string) compose.Invocation {
	inv := compose.Invocation{Flags: make(map[string][]string), Args: args}
	for _, f := range spec.Flags {
		flag := flags.Lookup(f.Name)
		if flag == nil || !flag.Changed {
			continue
		}
		if sv, ok := flag.Value.(pflag.SliceValue); ok {
			inv.Flags[f.Name] = sv.GetSlice()
		} else {
			inv.Flags[f.Name] = []string{flag.Value.String()}
		}
	}
	return inv
}

func argsUsage(arity compose.Arity) string {
	switch arity {
	case compose.NoArgs:
		return ""
	case compose.ServiceCommand:
		return " SERVICE COMMAND [ARGS...]"
	case compose.ServicePort:
		return " SERVICE PRIVATE_PORT"
	default:
		return " [SERVICE...]"
	}
}

func argsValidator(arity compose.Arity) cobra.PositionalArgs {
	switch arity {
	case compose.NoArgs:
		return cobra.ExactArgs(1)
	case compose.ServiceCommand:
		// SERVICE and COMMAND are checked once flags after PROJECT are parsed.
		return cobra.MinimumNArgs(1)
	case compose.ServicePort:
		return cobra.ExactArgs(3)
	default:
		return cobra.MinimumNArgs(1)
	}
}

// enumValue is a pflag.Value restricted to a fixed set of choices.
type enumValue struct {
	allowed []string
	repeat  bool
	values  []string
}

func newEnumValue(allowed []string, repeat bool) *enumValue {
	return &enumValue{allowed: allowed, repeat: repeat}
}

func (e *enumValue) Set(v string) error {
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	if e.repeat {
		e.values = append(e.values, v)
	} else {
		e.values = []string{v}
	}
	return nil
}

func (e *enumValue) String() string {
	return strings.Join(e.values, ",")
}

func (e *enumValue) Type() string {
	if e.repeat {
		return "stringArray"
	}
	return "string"
}

func (e *enumValue) GetSlice() []string {
	return append([]string(nil), e.values...)
}

func (e *enumValue) Append(v string) error {
	return e.Set(v)
}

func (e *enumValue) Replace(vals []string) error {
	e.values = nil
	for _, v := range vals {
		if err := e.Set(v); err != nil {
			return err
		}
	}
	return nil
}
