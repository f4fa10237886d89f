package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/gsmdata/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configTemplate lists every key of config.File set to its default.
//
//go:embed templates/gsmdata.yaml
var configTemplate []byte

// errConfigExists is returned when init would replace a file without --force.
var errConfigExists = errors.New("configuration file already exists")

// NewInitCmd creates the init command. It writes the commented template that
// covers the site root, search thresholds, layout, output format, page error
// policy, worker count, timeout, request headers and field selectors.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented gsmdata configuration file",
		Long: `init writes a configuration template in which every key gsmdata reads is
set to its default. Keep the keys you want to change and delete the rest;
command line flags still win over the file.

Without flags the template goes to .gsmdata.yaml in the current directory,
where the next gsmdata run started here finds it. --xdg writes it to the
user configuration directory so that it applies from any directory.

Examples:
  # Per-directory configuration
  gsmdata init

  # User-wide configuration
  gsmdata init --xdg

  # A named file, used explicitly
  gsmdata init -o mirror.yaml && gsmdata -c mirror.yaml

  # Replace an existing file with the defaults
  gsmdata init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Path of the file to write")
	cmd.Flags().Bool("xdg", false,
		"Write to "+xdgConfigPath()+" instead")
	cmd.Flags().BoolP("force", "f", false,
		"Replace the file if it already exists")
	cmd.MarkFlagsMutuallyExclusive("output", "xdg")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	path, err := initPath(flags)
	if err != nil {
		return err
	}
	force, err := flags.GetBool("force")
	if err != nil {
		return err
	}

	if err := writeTemplate(path, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote configuration template: %s\n", path)
	if flags.Changed("output") {
		fmt.Fprintf(out, "Run gsmdata -c %s to use it.\n", path)
	}
	return nil
}

// initPath returns the file init writes to.
func initPath(flags *pflag.FlagSet) (string, error) {
	xdgTarget, err := flags.GetBool("xdg")
	if err != nil {
		return "", err
	}
	if xdgTarget {
		return xdgConfigPath(), nil
	}
	return flags.GetString("output")
}

// xdgConfigPath is the user-wide file found by config.FindConfigFile.
func xdgConfigPath() string {
	return filepath.Join(config.XDGConfigDir(), config.XDGConfigFile)
}

// writeTemplate writes configTemplate to path, creating parent directories.
// An existing file is only replaced when force is set.
func writeTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use -f to replace it)", errConfigExists, path)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, configTemplate, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
