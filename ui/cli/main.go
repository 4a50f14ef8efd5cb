// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command: configuration loading, logging and i18n
// initialization, and the default action of launching the TUI.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ciphershield/ciphershield/internal/config"
	"github.com/ciphershield/ciphershield/internal/i18n"
	"github.com/ciphershield/ciphershield/internal/logging"
	"github.com/ciphershield/ciphershield/ui/tui"
)

// state is shared by the root command and its subcommands. A fresh value is
// created by every NewRootCmd call so tests do not leak into each other.
type state struct {
	cfg config.Config
	// runTUI is swapped out in tests.
	runTUI func(tui.Options) error
}

// Execute runs the CLI entrypoint. The main package should call this function
// and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&state{runTUI: tui.Run})
}

func newRootCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ciphershield",
		Short:         i18n.T("cli.short"),
		Long:          i18n.T("cli.long"),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Debugf("starting interactive checker (language=%s)", st.cfg.Language)
			return st.runTUI(tui.Options{Reveal: st.cfg.Reveal})
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("reveal", false, "Start the checker with the password visible")

	cmd.AddCommand(newCheckCmd(st), newCriteriaCmd(st), newVersionCmd())
	return cmd
}

// setup loads the configuration for cmd and initializes logging and i18n.
func (st *state) setup(cmd *cobra.Command) error {
	explicit, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	st.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	firstRun := errors.As(err, &viper.ConfigFileNotFoundError{})
	if err != nil && !firstRun {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := st.cfg.Validate(); err != nil {
		return err
	}
	if firstRun {
		writeDefaultConfig()
	}
	if err := logging.SetLevel(st.cfg.LogLevel); err != nil {
		return err
	}
	i18n.Init(st.cfg.Language)
	return nil
}

// writeDefaultConfig persists the built-in defaults. Flags and environment
// overrides of the current run stay out of the file.
func writeDefaultConfig() {
	defaults, err := config.FromDefaults[config.Config](config.Defaults())
	if err != nil {
		logging.Warnf("could not build default config: %v", err)
		return
	}
	if path, err := config.WriteConfigFile(&defaults, false); err != nil {
		logging.Warnf("could not write default config file: %v", err)
	} else {
		logging.Infof("wrote default config to %s", path)
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}
