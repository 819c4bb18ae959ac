package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screenmenu",
	Short: "World-space menu reference host",
	Long: `screenmenu runs the reference host for world-space player menus.
Use serve to accept viewer clients over websocket, or preview to step a
menu in the terminal without a network.`,
	SilenceUsage: true,
	Version:      version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is <user config dir>/screenmenu/screenmenu.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "screenmenu version %s\n" .Version}}`)

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPreviewCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error
		os.Exit(1)
	}
}
