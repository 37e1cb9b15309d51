package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"test-grid/src/core/cli"
)

var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "Test Grid Node CLI",
	Long: `CLI for test-grid worker nodes: resolve the effective node configuration
from defaults, config files, environment variables and flags, and inspect
what the node would register with the hub.`,
	Version: "1.0.0",
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "INFO", "log level (DEBUG, INFO, WARNING, ERROR)")
	rootCmd.PersistentFlags().Bool("debug", false, "force debug logging")

	rootCmd.AddCommand(cli.NewResolveCommand())
	rootCmd.AddCommand(cli.NewInitCommand())
	rootCmd.AddCommand(cli.NewWatchCommand())
	rootCmd.AddCommand(cli.NewServeCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
