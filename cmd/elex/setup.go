package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/elex/internal/config"
	"github.com/sandevgo/elex/internal/service/installer"
	"github.com/sandevgo/elex/pkg/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Store the AP API key and defaults in the runtime .env file",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting setup")

		// run wizard (includes save step)
		if _, err := installer.RunWizard(); err != nil {
			return err
		}

		envPath := config.NewAppConfig(ctx).GetEnvPath()
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("configuration written to: %s", envPath)
		logger.Info().Msg("Setup complete! Try 'elex elections'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
