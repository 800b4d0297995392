package compose

// Verb is a docker compose subcommand that dctl forwards.
type Verb string

const (
	Build   Verb = "build"
	Create  Verb = "create"
	Down    Verb = "down"
	Events  Verb = "events"
	Exec    Verb = "exec"
	Images  Verb = "images"
	Kill    Verb = "kill"
	Logs    Verb = "logs"
	Ls      Verb = "ls"
	Pause   Verb = "pause"
	Port    Verb = "port"
	Ps      Verb = "ps"
	Pull    Verb = "pull"
	Push    Verb = "push"
	Restart Verb = "restart"
	Rm      Verb = "rm"
	Run     Verb = "run"
	Start   Verb = "start"
	Stop    Verb = "stop"
	Top     Verb = "top"
	Unpause Verb = "unpause"
	Up      Verb = "up"
	Watch   Verb = "watch"
)

// FlagKind describes how a flag is rendered into the argument vector.
type FlagKind int

const (
	// Bool renders "--name" when set to true.
	Bool FlagKind = iota
	// Value renders "--name value".
	Value
	// Repeat renders one "--name value" pair per occurrence.
	Repeat
)

// Arity describes the positional arguments a verb accepts after PROJECT.
type Arity int

const (
	// Services accepts zero or more service names.
	Services Arity = iota
	// NoArgs accepts nothing after PROJECT.
	NoArgs
	// ServiceCommand requires SERVICE and COMMAND, then any number of ARGS.
	ServiceCommand
	// ServicePort requires SERVICE and PRIVATE_PORT.
	ServicePort
)

// Flag is one entry of a verb's flag table.
type Flag struct {
	Name    string
	Short   string
	Kind    FlagKind
	Choices []string
	Usage   string
}

// Spec declares everything dctl knows about a verb. Flags are emitted in
// the order they appear here.
type Spec struct {
	Verb      Verb
	Short     string
	Flags     []Flag
	Arity     Arity
	Exclusive [][]string
}

func boolFlag(name, short, usage string) Flag {
	return Flag{Name: name, Short: short, Kind: Bool, Usage: usage}
}

func valueFlag(name, short, usage string) Flag {
	return Flag{Name: name, Short: short, Kind: Value, Usage: usage}
}

func repeatFlag(name, short, usage string) Flag {
	return Flag{Name: name, Short: short, Kind: Repeat, Usage: usage}
}

func choiceFlag(name, short, usage string, choices ...string) Flag {
	return Flag{Name: name, Short: short, Kind: Value, Choices: choices, Usage: usage}
}

var dryRun = boolFlag("dry-run", "", "Execute command in dry run mode")

var pullPolicies = []string{"always", "missing", "never"}

var psStatuses = []string{"paused", "restarting", "removing", "running", "dead", "created", "exited"}

// Specs is the verb table, in the order commands are listed in help output.
var Specs = []Spec{
	{
		Verb:  Build,
		Short: "Build or rebuild services",
		Flags: []Flag{
			repeatFlag("build-arg", "", "Set build-time variables for services"),
			valueFlag("memory", "m", "Set memory limit for the build container"),
			boolFlag("no-cache", "", "Do not use cache when building the image"),
			choiceFlag("progress", "", "Set type of progress output", "auto", "tty", "plain", "quiet"),
			boolFlag("pull", "", "Always attempt to pull a newer version of the image"),
			boolFlag("push", "", "Push service images"),
			boolFlag("quiet", "q", "Don't print anything to STDOUT"),
			valueFlag("ssh", "", "Set SSH authentications used when building service images"),
			boolFlag("with-dependencies", "", "Also build dependencies (transitively)"),
			dryRun,
		},
	},
	{
		Verb:  Create,
		Short: "Creates containers for a service",
		Flags: []Flag{
			boolFlag("build", "", "Build images before starting containers"),
			boolFlag("force-recreate", "", "Recreate containers even if their configuration and image haven't changed"),
			boolFlag("no-build", "", "Don't build an image, even if it's policy"),
			boolFlag("no-recreate", "", "If containers already exist, don't recreate them"),
			choiceFlag("pull", "", "Pull image before running", pullPolicies...),
			boolFlag("quiet-pull", "", "Pull without printing progress information"),
			boolFlag("remove-orphans", "", "Remove containers for services not defined in the Compose file"),
			repeatFlag("scale", "", "Scale SERVICE to NUM instances"),
			dryRun,
		},
		Exclusive: [][]string{{"force-recreate", "no-recreate"}},
	},
	{
		Verb:  Down,
		Short: "Stop and remove containers, networks",
		Flags: []Flag{
			boolFlag("remove-orphans", "", "Remove containers for services not defined in the Compose file"),
			choiceFlag("rmi", "", "Remove images used by services", "local", "all"),
			valueFlag("timeout", "t", "Specify a shutdown timeout in seconds"),
			boolFlag("volumes", "v", "Remove named volumes and anonymous volumes attached to containers"),
			dryRun,
		},
	},
	{
		Verb:  Events,
		Short: "Receive real time events from containers",
		Flags: []Flag{
			boolFlag("json", "", "Output events as a stream of json objects"),
		},
	},
	{
		Verb:  Exec,
		Short: "Execute a command in a running container",
		Flags: []Flag{
			boolFlag("detach", "d", "Detached mode: Run command in the background"),
			boolFlag("privileged", "", "Give extended privileges to the process"),
			repeatFlag("env", "e", "Set environment variables"),
			valueFlag("index", "", "Index of the container if service has multiple replicas"),
			boolFlag("no-TTY", "T", "Disable pseudo-TTY allocation"),
			valueFlag("user", "u", "Run the command as this user"),
			valueFlag("workdir", "w", "Path to workdir directory for this command"),
			dryRun,
		},
		Arity: ServiceCommand,
	},
	{
		Verb:  Images,
		Short: "List images used by the created containers",
		Flags: []Flag{
			boolFlag("quiet", "q", "Only display IDs"),
			choiceFlag("format", "", "Format the output", "table", "json"),
		},
	},
	{
		Verb:  Kill,
		Short: "Force stop service containers",
		Flags: []Flag{
			boolFlag("remove-orphans", "", "Remove containers for services not defined in the Compose file"),
			valueFlag("signal", "s", "SIGNAL to send to the container"),
			dryRun,
		},
	},
	{
		Verb:  Logs,
		Short: "View output from containers",
		Flags: []Flag{
			boolFlag("follow", "f", "Follow log output"),
			boolFlag("no-color", "", "Produce monochrome output"),
			boolFlag("no-log-prefix", "", "Don't print prefix in logs"),
			valueFlag("since", "", "Show logs since timestamp or relative time"),
			valueFlag("tail", "n", "Number of lines to show from the end of the logs for each container"),
			boolFlag("timestamps", "", "Show timestamps"),
			valueFlag("until", "", "Show logs before a timestamp or relative time"),
			dryRun,
		},
	},
	{
		Verb:  Ls,
		Short: "List running compose projects",
		Flags: []Flag{
			boolFlag("all", "a", "Show all stopped Compose projects"),
			valueFlag("filter", "", "Filter output based on conditions provided"),
			choiceFlag("format", "", "Format the output", "table", "json"),
			boolFlag("quiet", "q", "Only display IDs"),
		},
		Arity: NoArgs,
	},
	{
		Verb:  Pause,
		Short: "Pause services",
		Flags: []Flag{dryRun},
	},
	{
		Verb:  Port,
		Short: "Print the public port for a port binding",
		Flags: []Flag{
			valueFlag("index", "", "Index of the container if service has multiple replicas"),
			choiceFlag("protocol", "", "tcp or udp", "tcp", "udp"),
		},
		Arity: ServicePort,
	},
	{
		Verb:  Ps,
		Short: "List containers",
		Flags: []Flag{
			boolFlag("all", "a", "Show all stopped containers (including those created by the run command)"),
			valueFlag("filter", "", "Filter services by a property"),
			choiceFlag("format", "", "Format the output", "table", "json"),
			boolFlag("quiet", "q", "Only display IDs"),
			{Name: "status", Kind: Repeat, Choices: psStatuses, Usage: "Filter services by status"},
			boolFlag("services", "", "Display services"),
			dryRun,
		},
	},
	{
		Verb:  Pull,
		Short: "Pull service images",
		Flags: []Flag{
			boolFlag("ignore-buildable", "", "Ignore images that can be built"),
			boolFlag("ignore-pull-failures", "", "Pull what it can and ignores images with pull failures"),
			boolFlag("include-deps", "", "Also pull services declared as dependencies"),
			choiceFlag("policy", "", "Apply pull policy", "missing", "always"),
			boolFlag("quiet", "q", "Pull without printing progress information"),
			dryRun,
		},
	},
	{
		Verb:  Push,
		Short: "Push service images",
		Flags: []Flag{
			boolFlag("ignore-push-failures", "", "Push what it can and ignores images with push failures"),
			boolFlag("include-deps", "", "Also push images of services declared as dependencies"),
			boolFlag("quiet", "q", "Push without printing progress information"),
			dryRun,
		},
	},
	{
		Verb:  Restart,
		Short: "Restart service containers",
		Flags: []Flag{
			boolFlag("no-deps", "", "Don't restart dependent services"),
			valueFlag("timeout", "t", "Specify a shutdown timeout in seconds"),
			dryRun,
		},
	},
	{
		Verb:  Rm,
		Short: "Removes stopped service containers",
		Flags: []Flag{
			boolFlag("force", "f", "Don't ask to confirm removal"),
			boolFlag("stop", "s", "Stop the containers, if required, before removing"),
			boolFlag("volumes", "v", "Remove any anonymous volumes attached to containers"),
			dryRun,
		},
	},
	{
		Verb:  Run,
		Short: "Run a one-off command on a service",
		Flags: []Flag{
			boolFlag("build", "", "Build image before starting container"),
			boolFlag("detach", "d", "Run container in background and print container ID"),
			valueFlag("entrypoint", "", "Override the entrypoint of the image"),
			repeatFlag("env", "e", "Set environment variables"),
			boolFlag("interactive", "i", "Keep STDIN open even if not attached"),
			repeatFlag("label", "l", "Add or override a label"),
			valueFlag("name", "", "Assign a name to the container"),
			boolFlag("no-TTY", "T", "Disable pseudo-TTY allocation"),
			boolFlag("no-deps", "", "Don't start linked services"),
			repeatFlag("publish", "p", "Publish a container's port(s) to the host"),
			boolFlag("quiet-pull", "", "Pull without printing progress information"),
			boolFlag("remove-orphans", "", "Remove containers for services not defined in the Compose file"),
			boolFlag("rm", "", "Automatically remove the container when it exits"),
			boolFlag("service-ports", "", "Run command with all service's ports enabled and mapped to the host"),
			boolFlag("use-aliases", "", "Use the service's network useAliases in the network(s) the container connects to"),
			valueFlag("user", "u", "Run as specified username or uid"),
			repeatFlag("volume", "v", "Bind mount a volume"),
			valueFlag("workdir", "w", "Working directory inside the container"),
			dryRun,
		},
		Arity: ServiceCommand,
	},
	{
		Verb:  Start,
		Short: "Start services",
		Flags: []Flag{dryRun},
	},
	{
		Verb:  Stop,
		Short: "Stop services",
		Flags: []Flag{
			valueFlag("timeout", "t", "Specify a shutdown timeout in seconds"),
			dryRun,
		},
	},
	{
		Verb:  Top,
		Short: "Display the running processes",
		Flags: []Flag{dryRun},
	},
	{
		Verb:  Unpause,
		Short: "Unpause services",
		Flags: []Flag{dryRun},
	},
	{
		Verb:  Up,
		Short: "Create and start containers",
		Flags: []Flag{
			boolFlag("abort-on-container-exit", "", "Stops all containers if any container was stopped"),
			boolFlag("always-recreate-deps", "", "Recreate dependent containers"),
			repeatFlag("attach", "", "Restrict attaching to the specified services"),
			boolFlag("attach-dependencies", "", "Automatically attach to log output of dependent services"),
			boolFlag("build", "", "Build images before starting containers"),
			boolFlag("detach", "d", "Detached mode: Run containers in the background"),
			valueFlag("exit-code-from", "", "Return the exit code of the selected service container"),
			boolFlag("force-recreate", "", "Recreate containers even if their configuration and image haven't changed"),
			repeatFlag("no-attach", "", "Do not attach (stream logs) to the specified services"),
			boolFlag("no-build", "", "Don't build an image, even if it's policy"),
			boolFlag("no-color", "", "Produce monochrome output"),
			boolFlag("no-deps", "", "Don't start linked services"),
			boolFlag("no-log-prefix", "", "Don't print prefix in logs"),
			boolFlag("no-recreate", "", "If containers already exist, don't recreate them"),
			boolFlag("no-start", "", "Don't start the services after creating them"),
			choiceFlag("pull", "", "Pull image before running", pullPolicies...),
			boolFlag("quiet-pull", "", "Pull without printing progress information"),
			boolFlag("remove-orphans", "", "Remove containers for services not defined in the Compose file"),
			boolFlag("renew-anon-volumes", "V", "Recreate anonymous volumes instead of retrieving data from the previous containers"),
			repeatFlag("scale", "", "Scale SERVICE to NUM instances"),
			valueFlag("timeout", "t", "Use this timeout in seconds for container shutdown"),
			boolFlag("timestamps", "", "Show timestamps"),
			boolFlag("wait", "", "Wait for services to be running|healthy"),
			valueFlag("wait-timeout", "", "Maximum duration to wait for the project to be running|healthy"),
			dryRun,
		},
		Exclusive: [][]string{
			{"force-recreate", "no-recreate"},
			{"always-recreate-deps", "no-recreate"},
			{"abort-on-container-exit", "detach"},
		},
	},
	{
		Verb:  Watch,
		Short: "Watch build context for service and rebuild/refresh containers when files are updated",
		Flags: []Flag{
			boolFlag("no-up", "", "Do not build & start services before watching"),
			boolFlag("quiet", "", "Hide build output"),
			dryRun,
		},
	},
}

// Lookup returns the table entry for a verb.
func Lookup(v Verb) (Spec, bool) {
	for _, s := range Specs {
		if s.Verb == v {
			return s, true
		}
	}
	return Spec{}, false
}

// Flag returns the named flag of the spec.
func (s Spec) Flag(name string) (Flag, bool) {
	for _, f := range s.Flags {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}
