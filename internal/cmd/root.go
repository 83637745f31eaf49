// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/newcrate/cli/internal/config"
	oerrors "github.com/newcrate/cli/internal/errors"
	"github.com/newcrate/cli/internal/generator"
	"github.com/newcrate/cli/internal/output"
	"github.com/newcrate/cli/internal/templates"
	"github.com/newcrate/cli/internal/version"
	"github.com/newcrate/cli/internal/workspace"
)

// rootOptions holds the flags and resolved configuration of one invocation.
type rootOptions struct {
	verbosity  int
	names      string
	readme     bool
	configFlag string

	loader   *config.Loader
	resolved *config.Resolved
	loadErr  error

	// newWorkspace builds the gateway used for generation.
	newWorkspace func() generator.Workspace
}

// NewRootCmd creates the root command for newcrate.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		newWorkspace: func() generator.Workspace { return workspace.NewOS() },
	}

	rootCmd := &cobra.Command{
		Use:   "newcrate <path>",
		Short: "Create a new Rust crate",
		Long: `newcrate creates a new binary crate at <path>.

The crate is named after the final component of <path>. The target must not
exist or must be an empty directory. newcrate initializes a git repository
and writes src/main.rs, Cargo.toml and .gitignore. With --names it adds an
MIT LICENSE; with --readme it adds a README.md.

A bare "config" is the config subcommand; to create a crate named config,
pass ./config.

Examples:
  # Create a crate
  newcrate ./myapp

  # Create a crate with a license and readme
  newcrate ./myapp --names "Jane Doe" --readme

  # Show what is happening
  newcrate -vvv ./myapp

  # Create a crate named config
  newcrate ./config`,
		Version:       version.Get().Version,
		Args:          exactlyOnePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportFailure(opts.run(cmd, args[0]))
		},
	}

	rootCmd.SetVersionTemplate(version.Get().String() + "\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return oerrors.NewValidationError(err.Error(), "", "Run 'newcrate --help' for usage.")
	})

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v",
		"Increase log verbosity (-v warn, -vv info, -vvv debug, -vvvv trace)")
	rootCmd.PersistentFlags().StringVar(&opts.configFlag, "config", "",
		"Path to config file (env: "+config.EnvConfig+")")

	rootCmd.Flags().StringVarP(&opts.names, "names", "n", config.NoLicenseNames,
		"Copyright holders for an MIT license (env: "+config.EnvVar(config.KeyNames)+")")
	rootCmd.Flags().BoolVarP(&opts.readme, "readme", "r", false,
		"Create a README.md (env: "+config.EnvVar(config.KeyReadme)+")")

	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// reportFailure logs a generation failure and marks it printed so main
// only sets the exit code.
func reportFailure(err error) error {
	if err == nil {
		return nil
	}
	code := oerrors.ExitCodeFromError(err)
	output.Error(err.Error())
	output.Debug("generation failed", "code", code, "reason", oerrors.ExitCodeName(code))
	return &oerrors.ExitError{Code: code, Err: err, Printed: true}
}

func exactlyOnePath(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "Usage: newcrate <path>")
	}
	return nil
}

// initialize loads configuration and sets up logging. A broken config file
// does not fail here so that subcommands such as config init still work.
func (o *rootOptions) initialize(cmd *cobra.Command) error {
	o.loader = config.NewLoader()

	cfg, err := o.loader.LoadWithDefaults(o.configFlag)
	if err != nil {
		o.loadErr = oerrors.NewValidationError(err.Error(), o.configFlag,
			"Fix the config file or regenerate it with 'newcrate config init --force'.")
		cfg = config.DefaultConfig()
	}

	flags := config.FlagValues{
		Names:     o.names,
		NamesSet:  cmd.Flags().Changed("names"),
		Readme:    o.readme,
		ReadmeSet: cmd.Flags().Changed("readme"),
	}
	o.resolved = config.Resolve(o.loader, cfg, flags)

	output.SetupLogging(output.LogConfig{
		Verbosity:  o.verbosity,
		Timestamps: o.resolved.Timestamps,
	})

	info := version.Get()
	output.Debug("newcrate started",
		"version", info.Version,
		"commit", info.GitCommit,
		"config", o.loader.ConfigFileUsed(),
	)
	if o.loadErr != nil {
		output.Debug("config load error", "error", o.loadErr)
	}
	config.LogResolvedValues(o.resolved.Values)

	return nil
}

func (o *rootOptions) run(cmd *cobra.Command, path string) error {
	if o.loadErr != nil {
		return o.loadErr
	}
	if err := o.resolved.Generation.Validate(); err != nil {
		return err
	}

	gen, err := generator.New(o.newWorkspace(), generator.Options{
		Path:   path,
		Config: o.resolved.Generation,
	})
	if err != nil {
		return err
	}

	msg, err := gen.Run()
	if err != nil {
		return err
	}

	output.Info(msg)
	printSummary(cmd, gen)

	return nil
}

// printSummary writes the checkmark line and the created file tree to stdout.
func printSummary(cmd *cobra.Command, gen *generator.Generator) {
	target := gen.Target()
	files := gen.Files()

	entries := make([]output.FileEntry, 0, len(files))
	for _, f := range files {
		status := output.StatusCreated
		if gen.Rewritten(f) {
			status = output.StatusUpdated
		}
		entries = append(entries, output.FileEntry{
			Path:        f,
			Description: templates.Describe(f),
			Status:      status,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(
		fmt.Sprintf("Created crate %s", output.StyleNoun.Render(target.PackageName))))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(filepath.Base(filepath.Clean(target.Path)), entries))
}
