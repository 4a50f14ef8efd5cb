// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ciphershield/ciphershield/core/strength"
	"github.com/ciphershield/ciphershield/internal/i18n"
	"github.com/ciphershield/ciphershield/util/slicest"
)

type ruleView struct {
	Name      string `json:"name" yaml:"name"`
	Points    int    `json:"points" yaml:"points"`
	Criterion string `json:"criterion,omitempty" yaml:"criterion,omitempty"`
}

type criteriaView struct {
	Rules      []ruleView     `json:"rules" yaml:"rules"`
	Thresholds map[string]int `json:"thresholds" yaml:"thresholds"`
	MaxScore   int            `json:"max_score" yaml:"max_score"`
}

func newCriteriaView() criteriaView {
	return criteriaView{
		Rules: slicest.Map(strength.Rules(), func(r strength.Rule) ruleView {
			return ruleView{Name: r.Name, Points: r.Points, Criterion: string(r.Criterion)}
		}),
		Thresholds: map[string]int{
			strength.Medium.String(): strength.MediumThreshold,
			strength.Strong.String(): strength.StrongThreshold,
		},
		MaxScore: strength.MaxScore(),
	}
}

func newCriteriaCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "criteria",
		Short: i18n.T("cli.criteria_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := newCriteriaView()
			out := cmd.OutOrStdout()
			if done, err := writeStructured(out, st.cfg.Output, view); done {
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			header := []string{i18n.T("cli.rule"), i18n.T("cli.points"), i18n.T("cli.criterion")}
			fmt.Fprintln(w, strings.Join(header, "\t"))
			for _, r := range view.Rules {
				crit := r.Criterion
				if crit == "" {
					crit = "-"
				}
				fmt.Fprintln(w, strings.Join([]string{r.Name, strconv.Itoa(r.Points), crit}, "\t"))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out, i18n.T("cli.thresholds", strength.MediumThreshold, strength.StrongThreshold, view.MaxScore))
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output format (text, json, yaml)")
	return cmd
}
