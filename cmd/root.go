package cmd

import (
	"github.com/spf13/cobra"
	"ydlctl/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ydlctl",
	Short: "Command-line front-end for youtube-dl compatible downloaders",
	Long: `ydlctl drives an external youtube-dl compatible binary: it assembles the
command line, runs downloads with parsed progress, and can archive the
downloads directory to S3-compatible storage.
Configuration is loaded from .env file or environment variables`,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(commandCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(infoCmd)

	rootCmd.PersistentFlags().StringP("binary", "b", "", "Override downloader binary from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func getBinary(cmd *cobra.Command) string {
	binary, _ := cmd.Flags().GetString("binary")
	if binary != "" {
		return binary
	}
	return cfg.Binary
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
