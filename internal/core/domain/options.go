package domain

// Mode selects what snodelist prints.
type Mode int

const (
	// ModeExpand prints every host name separated by a delimiter.
	ModeExpand Mode = iota
	// ModeCompress prints the compact range-string form of the host list.
	ModeCompress
	// ModeMachinefile prints an MPI machine file from the Slurm job environment.
	ModeMachinefile
)

// ModeDefault is the mode used when no mode flag is given.
const ModeDefault = ModeExpand

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeExpand:
		return "expand"
	case ModeCompress:
		return "compress"
	case ModeMachinefile:
		return "machinefile"
	default:
		return "unknown"
	}
}

// SourceKind tells where a host expression comes from.
type SourceKind int

const (
	// SourceExpression is a host expression given literally on the command line.
	SourceExpression SourceKind = iota
	// SourceEnv names an environment variable holding a host expression.
	SourceEnv
	// SourceFile names a file of host expressions, "-" meaning standard input.
	SourceFile
)

// Source is one input to the host list, kept in command-line order.
type Source struct {
	Kind  SourceKind
	Value string
}

// Built-in defaults.
const (
	DefaultFormat       = "%h%[:]C"
	DefaultDelimiter    = "\n"
	DefaultNodeListEnv  = "SLURM_JOB_NODELIST"
	DefaultTaskCountEnv = "SLURM_TASKS_PER_NODE"
	// StdinPath is the node-list path that reads from standard input.
	StdinPath = "-"
)

// Defaults holds values read from the config file. Empty fields fall back to
// the built-in defaults.
type Defaults struct {
	Format       string
	Delimiter    string
	NodeListEnv  string
	TaskCountEnv string
}

// Options is the immutable configuration of a single snodelist run.
type Options struct {
	Mode      Mode
	Sources   []Source
	Unique    bool
	Delimiter string
	Format    string
	NoRepeats bool

	// NodeListEnv and TaskCountEnv name the variables read in machinefile mode.
	NodeListEnv  string
	TaskCountEnv string
}

// NewOptions returns options in the default mode with every field taken from
// d, falling back to the built-in defaults for fields d leaves empty.
func NewOptions(d Defaults) Options {
	return Options{
		Mode:         ModeDefault,
		Format:       firstNonEmpty(d.Format, DefaultFormat),
		Delimiter:    firstNonEmpty(d.Delimiter, DefaultDelimiter),
		NodeListEnv:  firstNonEmpty(d.NodeListEnv, DefaultNodeListEnv),
		TaskCountEnv: firstNonEmpty(d.TaskCountEnv, DefaultTaskCountEnv),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
