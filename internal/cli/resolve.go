package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"smartfactory-assistant/internal/intent"
)

func newResolveCmd(opts *options) *cobra.Command {
	var hybrid bool
	cmd := &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve a command to an action",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd.Context(), hybrid)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")

			var res *intent.Resolved
			if hybrid {
				res, err = a.Intent.ResolveHybrid(cmd.Context(), opts.scope(), text)
			} else {
				res, err = a.Intent.Resolve(cmd.Context(), opts.scope(), text)
			}
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res, func(w io.Writer) { printResolved(w, res) })
		},
	}
	cmd.Flags().BoolVar(&hybrid, "hybrid", false, "Use the semantic fallback for ambiguous input")
	return cmd
}

func printResolved(w io.Writer, res *intent.Resolved) {
	if res == nil {
		fmt.Fprintln(w, "no match")
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", res.ActionID, res.Name)
	fmt.Fprintf(w, "  confidence: %.2f via %s\n", res.Confidence, res.Method)
	if res.MatchedKeyword != "" {
		fmt.Fprintf(w, "  keyword:    %s\n", res.MatchedKeyword)
	}
	if res.LLMConfirmed {
		fmt.Fprintf(w, "  confirmed:  %s\n", res.SemanticReason)
	}
	if res.NeedsClarification {
		fmt.Fprintln(w, "  needs clarification")
	}
	keys := make([]string, 0, len(res.Params))
	for k := range res.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s = %v\n", k, res.Params[k])
	}
	if p := res.Payload; p != nil {
		fmt.Fprintf(w, "  payload:    %q (%s)\n", p.Content, p.Source)
	}
}
