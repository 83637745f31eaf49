package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/newcrate/cli/internal/config"
	oerrors "github.com/newcrate/cli/internal/errors"
	"github.com/newcrate/cli/internal/output"
)

// configHeader is written above the generated YAML.
const configHeader = `# newcrate configuration.
#
# names:           default copyright holders; "<copyright holders>" skips the license
# readme:          create README.md unless --readme=false is passed
# package.version: initial crate version (semantic version)
# package.edition: Rust edition (2015, 2018, 2021, 2024)
# log.timestamps:  show timestamps below debug verbosity
`

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for newcrate.`,
	}

	cmd.AddCommand(NewConfigInitCmd())

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file.

The file is written to ~/.newcrate/config.yaml, or to the path given by
--config or ` + config.EnvConfig + `.

Examples:
  # Initialize configuration
  newcrate config init

  # Overwrite existing configuration
  newcrate config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("could not determine config file path: %w", err)
	}
	// --config is inherited from the root command when present.
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		configFile = f.Value.String()
	}
	configFile, err = config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
		return oerrors.NewIOError("creating config directory", filepath.Dir(configFile), err)
	}

	if err := os.WriteFile(configFile, append([]byte(configHeader), data...), 0o600); err != nil {
		return oerrors.NewIOError("writing config file", configFile, err)
	}

	output.Debug("wrote config file", "path", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(
		"Configuration initialized at "+output.StyleNoun.Render(configFile)))

	return nil
}
