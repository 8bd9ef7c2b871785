// Package commands implements the command line interface of snodelist.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/snodelist/internal/build"
	"go.trai.ch/snodelist/internal/core/domain"
)

// CLI represents the command line interface for snodelist.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	jsonLogFn  func(bool)
	mode       domain.Mode
	sources    []domain.Source
	configPath string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts domain.Options) error
	LoadDefaults(path string) (domain.Defaults, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:  a,
		mode: domain.ModeDefault,
	}

	rootCmd := &cobra.Command{
		Use:   "snodelist [options] [host expression ...]",
		Short: "Expand, compress, or turn Slurm host lists into MPI machine files",
		Long: `snodelist prints the hosts of a Slurm host list one per line (expand),
as a compact range string (compress), or as an MPI machine file built from
SLURM_JOB_NODELIST and SLURM_TASKS_PER_NODE (machinefile).

Machine-file line format tokens:
  %h      host name
  %c      task count
  %C      task count, only when greater than one
  %[D]c   delimiter D followed by the task count
  %[D]C   delimiter D and task count, only when greater than one
  %%      a literal percent sign

The delimiter D is one or more of the characters - _ : ; . , / \ | or
whitespace. Any other delimiter, or an empty one, is rejected.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.SortFlags = false

	flags.VarP(&modeFlag{target: &c.mode, mode: domain.ModeExpand}, "expand", "e",
		"Print every host name separated by the delimiter (default)")
	flags.VarP(&modeFlag{target: &c.mode, mode: domain.ModeCompress}, "compress", "c",
		"Print the host list as a compact range string")
	flags.VarP(&modeFlag{target: &c.mode, mode: domain.ModeMachinefile}, "machinefile", "m",
		"Print an MPI machine file from the Slurm job environment")
	for _, name := range []string{"expand", "compress", "machinefile"} {
		flags.Lookup(name).NoOptDefVal = "true"
	}

	flags.VarP(&sourceFlag{sources: &c.sources, kind: domain.SourceEnv}, "include-env", "i",
		"Add the host list held in environment variable VAR")
	flags.Lookup("include-env").NoOptDefVal = domain.DefaultNodeListEnv
	flags.VarP(&sourceFlag{sources: &c.sources, kind: domain.SourceFile}, "nodelist", "l",
		"Add host expressions read from FILE, - for standard input")

	flags.BoolP("unique", "u", false, "Drop duplicate host names")
	flags.StringP("delimiter", "d", domain.DefaultDelimiter, "Separator between expanded host names")
	flags.StringP("format", "f", domain.DefaultFormat, "Line format of the machine file (%[D]c delimiters: -_:;.,/\\| or whitespace)")
	flags.BoolP("no-repeats", "n", false, "Never repeat a line without a count token once per task")

	flags.StringVar(&c.configPath, "config", "", "Path to a YAML defaults file")
	flags.Bool("json-log", false, "Write diagnostics as JSON")

	rootCmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		if c.jsonLogFn != nil {
			jsonLog, _ := cmd.Flags().GetBool("json-log")
			c.jsonLogFn(jsonLog)
		}
		return nil
	}

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	defaults, err := c.app.LoadDefaults(c.configPath)
	if err != nil {
		return err
	}

	opts := domain.NewOptions(defaults)
	opts.Mode = c.mode
	opts.Sources = append(opts.Sources, c.sources...)
	for _, arg := range args {
		opts.Sources = append(opts.Sources, domain.Source{Kind: domain.SourceExpression, Value: arg})
	}

	flags := cmd.Flags()
	opts.Unique, _ = flags.GetBool("unique")
	opts.NoRepeats, _ = flags.GetBool("no-repeats")
	if flags.Changed("delimiter") {
		opts.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("format") {
		opts.Format, _ = flags.GetString("format")
	}

	return c.app.Run(cmd.Context(), opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetJSONLogHook registers fn to receive the --json-log setting before the
// command runs.
func (c *CLI) SetJSONLogHook(fn func(bool)) {
	c.jsonLogFn = fn
}
