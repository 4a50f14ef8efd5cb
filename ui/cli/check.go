// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ciphershield/ciphershield/core/security"
	"github.com/ciphershield/ciphershield/core/strength"
	"github.com/ciphershield/ciphershield/internal/i18n"
	"github.com/ciphershield/ciphershield/internal/logging"
)

// readClipboard is replaced in tests; CI machines rarely have a clipboard.
var readClipboard = clipboard.ReadAll

func newCheckCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: i18n.T("cli.check_short"),
		Long: `Scores a single password and prints the report.

The password is taken from the argument, the clipboard (--clipboard), the first
line of standard input (--stdin), or a hidden prompt when attached to a terminal.
Passing it as an argument leaves it in your shell history.`,
		Example: `  ciphershield check 'abc12345'
  printf 'Abc12345!' | ciphershield check --stdin --output json
  ciphershield check --clipboard --min-band strong`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, err := readCandidate(cmd, args)
			if err != nil {
				return err
			}
			defer candidate.Zero()

			var res strength.Result
			if err := candidate.Use(func(b []byte) error {
				res = strength.Evaluate(string(b))
				return nil
			}); err != nil {
				return err
			}
			logging.Debugf("evaluated candidate: score=%d band=%s", res.Score, res.Band)

			// --output is bound to the "output" config key.
			if err := writeReport(cmd.OutOrStdout(), st.cfg.Output, res); err != nil {
				return err
			}

			minBand, _ := cmd.Flags().GetString("min-band")
			if minBand == "" {
				return nil
			}
			want, err := strength.ParseBand(minBand)
			if err != nil {
				return fmt.Errorf("invalid --min-band: %w", err)
			}
			if res.Band < want {
				return fmt.Errorf("%w: %s", ErrBelowMinimumBand, i18n.T("cli.below_min_band", res.Band, want))
			}
			return nil
		},
	}

	cmd.Flags().Bool("clipboard", false, "Read the password from the clipboard")
	cmd.Flags().Bool("stdin", false, "Read the password from the first line of standard input")
	cmd.Flags().StringP("output", "o", "", "Output format (text, json, yaml)")
	cmd.Flags().String("min-band", "", "Fail unless the password reaches this band (weak, medium, strong)")
	return cmd
}

// readCandidate resolves the password in precedence order: argument,
// clipboard, stdin, terminal prompt.
func readCandidate(cmd *cobra.Command, args []string) (security.Secret, error) {
	if len(args) == 1 {
		return security.FromString(args[0]), nil
	}

	if fromClipboard, _ := cmd.Flags().GetBool("clipboard"); fromClipboard {
		text, err := readClipboard()
		if err != nil {
			return nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return security.FromString(strings.TrimRight(text, "\r\n")), nil
	}

	fromStdin, _ := cmd.Flags().GetBool("stdin")
	if !fromStdin && cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		// Prompt on stderr so redirected stdout only carries the report.
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), i18n.T("cli.prompt"))
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		defer clear(b)
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		return security.FromBytes(b), nil
	}

	return readFirstLine(cmd.InOrStdin())
}

func readFirstLine(r io.Reader) (security.Secret, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	defer clear(line)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	if errors.Is(err, io.EOF) && len(line) == 0 {
		return nil, ErrNoCandidate
	}
	return security.FromBytes(bytes.TrimRight(line, "\r\n")), nil
}
