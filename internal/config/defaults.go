package config

// DefaultCommandArgs are extra arguments appended to every invocation of a
// compose verb, e.g. "-d" for up.
type DefaultCommandArgs struct {
	CommandName string   `mapstructure:"command_name" toml:"command_name"`
	CommandArgs []string `mapstructure:"command_args" toml:"command_args"`
}

// Default returns the empty override for a verb.
func Default(name string) DefaultCommandArgs {
	return DefaultCommandArgs{CommandName: name, CommandArgs: []string{}}
}

// Args returns the override tokens in configured order. Never nil.
func (d DefaultCommandArgs) Args() []string {
	args := make([]string, len(d.CommandArgs))
	copy(args, d.CommandArgs)
	return args
}

// DefaultArgsFor returns the first override configured for name, or the
// empty default.
func (c *Config) DefaultArgsFor(name string) DefaultCommandArgs {
	for _, d := range c.Main.DefaultCommandArgs {
		if d.CommandName == name {
			return d
		}
	}
	return Default(name)
}
