package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formguard/api"
	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	var formsFile, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API",
		Long: `Loads the forms file, binds every form and serves the HTTP API until
interrupted. Forms with configuration errors stop the server from starting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadApp()
			if err != nil {
				return err
			}
			if formsFile != "" {
				cfg.FormsFile = formsFile
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			opts := append(cfg.LoggerOptions(),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.Extractor(), clientip.Extractor()),
			)
			log := logger.New(opts...)
			logger.SetAsDefault(log)

			b, err := newBinder(cfg, binder.WithLogger(log))
			if err != nil {
				return err
			}
			doc, err := loadDocument(cfg.FormsFile)
			if err != nil {
				return err
			}
			if err := b.BindAll(doc); err != nil {
				log.Error("forms file rejected", logger.Error(err))
				return fmt.Errorf("bind %s: %w", cfg.FormsFile, err)
			}
			log.Info("forms bound", logger.Count("forms", len(b.Forms())), logger.Component("cli"))

			srv := httpserver.New(cfg.HTTP, log)
			return srv.Run(cmd.Context(), api.New(b, api.WithLogger(log)).Router())
		},
	}
	cmd.Flags().StringVarP(&formsFile, "forms", "f", "", "forms file (overrides FORMGUARD_FORMS_FILE)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
