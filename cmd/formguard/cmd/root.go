package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/formspec"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// NewRootCmd builds the formguard command tree.
func NewRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "formguard",
		Short: "Declarative form validation",
		Long: `formguard validates form submissions against rule declarations such as
"required,email" or "minLength:8".

Commands:
  serve  - HTTP API for live and submit-time validation
  lint   - report rule declarations that cannot be bound
  check  - validate a submission from the command line`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before reading the environment")

	root.AddCommand(newServeCmd(), newLintCmd(), newCheckCmd())
	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func loadApp() (config.App, error) {
	var cfg config.App
	if err := config.Load(&cfg); err != nil {
		return config.App{}, err
	}
	return cfg, nil
}

// newBinder builds the registry from the environment and a binder on top.
func newBinder(cfg config.App, opts ...binder.Option) (*binder.Binder, error) {
	reg, err := validator.NewRegistry(cfg.RegistryOptions()...)
	if err != nil {
		return nil, fmt.Errorf("rule registry: %w", err)
	}
	return binder.New(reg, opts...), nil
}

func loadDocument(path string) (formspec.Document, error) {
	doc, err := formspec.LoadFile(path)
	if err != nil {
		return formspec.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
