package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const serviceName = "formcheck"

// app holds what every subcommand shares once the root has run its setup.
type app struct {
	envFile  string
	settings config.Settings
	logger   *slog.Logger
	registry *validator.Registry
}

// NewRootCmd builds the formcheck command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Validate form field values",
		Long: `formcheck sanitizes and validates values the way a server side form
field would: text, search, tel, url, password, email and textarea kinds.

Password and URL policies, log settings and message overrides are read
from FORMKIT_* environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this .env file")

	root.AddCommand(newCheckCmd(a), newServeCmd(a))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger.New(
		logger.WithEnvironment(settings.Log.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(settings.Log.Format)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(httpserver.RequestIDExtractor()),
	)

	a.registry, err = settings.Registry(cmd.Context(), a.logger)
	return err
}
