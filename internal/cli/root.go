// Package cli implements the intentctl commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smartfactory-assistant/config"
	"smartfactory-assistant/internal/app"
	"smartfactory-assistant/internal/model"
	"smartfactory-assistant/pkg/log"
)

const (
	formatJSON = "json"
	formatText = "text"
)

type options struct {
	role      string
	user      string
	catalogue string
	format    string
	verbose   bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "intentctl",
		Short:         "Resolve factory chat commands from the terminal",
		Long:          "intentctl runs the command resolver locally: resolve text, list and suggest actions, validate catalogues.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.role, "role", "r", "", "Actor role (e.g. operator, manager, admin)")
	root.PersistentFlags().StringVarP(&opts.user, "user", "u", "cli", "Actor id")
	root.PersistentFlags().StringVarP(&opts.catalogue, "catalogue", "c", "", "Catalogue file (default: built-in catalogue or intent.catalogue_path)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "Output format: json or text")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log resolver decisions to stderr")

	root.AddCommand(
		newResolveCmd(opts),
		newActionsCmd(opts),
		newSuggestCmd(opts),
		newValidateCmd(opts),
	)
	return root
}

func (o *options) scope() model.Scope {
	return model.Scope{UserID: o.user, Role: o.role}
}

func (o *options) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ToStderr: true})
}

// build assembles the resolver. The semantic fallback is only wired for hybrid runs.
func (o *options) build(ctx context.Context, hybrid bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.catalogue != "" {
		cfg.Intent.CataloguePath = o.catalogue
	}
	cfg.Intent.SemanticEnabled = cfg.Intent.SemanticEnabled && hybrid
	cfg.Reasoning.ServeRoutes = false
	return app.Build(ctx, cfg, o.logger())
}

func (o *options) print(w io.Writer, v any, text func(io.Writer)) error {
	switch o.format {
	case formatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatText:
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}
