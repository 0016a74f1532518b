package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/intent/registry"
)

func newActionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the actions available to --role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd.Context(), false)
			if err != nil {
				return err
			}
			actions, err := a.Intent.ListActions(cmd.Context(), opts.scope())
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), actions, func(w io.Writer) {
				for _, act := range actions {
					fmt.Fprintf(w, "%-24s %-14s %s\n", act.ID, act.Category, act.Name)
				}
			})
		},
	}
}

func newSuggestCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest [query]",
		Short: "Suggest actions for partially typed input",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd.Context(), false)
			if err != nil {
				return err
			}
			s, err := a.Intent.Suggest(cmd.Context(), opts.scope(), intent.SuggestInput{
				Query: strings.Join(args, " "),
				Limit: limit,
			})
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), s, func(w io.Writer) {
				for _, sg := range s {
					fmt.Fprintf(w, "%-24s %s\n", sg.ActionID, sg.Matched)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum suggestions")
	return cmd
}

type validateResult struct {
	File    string `json:"file"`
	Version string `json:"version"`
	Actions int    `json:"actions"`
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalogue.yaml>",
		Short: "Check a catalogue file without starting anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.LoadFile(args[0])
			if err != nil {
				return err
			}
			res := validateResult{File: args[0], Version: reg.Version(), Actions: len(reg.All())}
			return opts.print(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "%s: ok (version %s, %d actions)\n", res.File, res.Version, res.Actions)
			})
		},
	}
}
