package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cartCmd "github.com/Alturino/salon/cart/cmd"
	"github.com/Alturino/salon/internal/common/constants"
	"github.com/Alturino/salon/internal/log"
)

func Start() {
	logger := log.InitLogger("/var/log/salon.log").
		With().
		Str(log.KeyAppName, constants.APP_MAIN_SALON).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "salon"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "cart",
		Short: "Run cart service",
		Run: func(cmd *cobra.Command, args []string) {
			cartCmd.RunCartService(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
