package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"ydlctl/internal/downloader"
	"ydlctl/pkg/utils"
)

var downloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Download a URL with the configured downloader binary",
	Long: `Run the configured downloader binary for a URL.

Progress lines from the binary are parsed and logged while it runs; a JSON
summary with the total size and exit code is printed when it finishes.`,
	Example: `  # Download a video
  ydlctl download https://www.youtube.com/watch?v=aaaaaaaaaaa

  # With extra downloader options
  ydlctl download https://www.youtube.com/watch?v=aaaaaaaaaaa --option --no-playlist

  # With a different binary
  ydlctl download https://www.youtube.com/watch?v=aaaaaaaaaaa --binary yt-dlp`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDownloadCmd(cmd, args)
	},
}

func runDownloadCmd(cmd *cobra.Command, args []string) {
	url := args[0]
	extra, _ := cmd.Flags().GetStringArray("option")

	runCfg := *cfg
	runCfg.Binary = getBinary(cmd)

	client, err := downloader.New(&runCfg)
	if err != nil {
		utils.PrintError(err, "download")
		return
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Starting download...\n")
		cmd.Printf("  Command: %s\n", client.CommandLine(url, extra))
	}

	result, err := client.Download(ctx, url, extra)
	if err != nil {
		utils.PrintError(err, "download")
		return
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "download")
		return
	}

	if isVerbose(cmd) {
		cmd.Println("Download finished")
	}
}

func init() {
	downloadCmd.Flags().StringArray("option", nil, "Extra option token passed to the downloader (repeatable)")
	downloadCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}
