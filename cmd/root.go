package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wave",
		Short:         "Wave Portal: send and read waves on the WavePortal contract",
		Long:          "wave connects a keystore wallet to the WavePortal contract, lists every wave sent to it, sends new waves and follows NewWave events live.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newUICmd(app),
		newConnectCmd(app),
		newWavesCmd(app),
		newSendCmd(app),
		newWatchCmd(app),
		newTotalCmd(app),
		newServeCmd(app),
		newAccountCmd(app),
		newPassphraseCmd(app),
	)

	return rootCmd
}
