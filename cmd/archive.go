package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"ydlctl/internal/remotestore"
	"ydlctl/pkg/utils"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Zip the downloads directory and upload it to S3",
	Long: `Zip the configured downloads directory and upload the archive to the
configured S3-compatible bucket.

The bucket and credentials are taken from the configuration; the source
directory defaults to the configured download directory.`,
	Example: `  # Archive the configured downloads directory
  ydlctl archive

  # Archive a different directory under a prefix
  ydlctl archive --source /mnt/media --destination backups/

  # Skip the confirmation prompt
  ydlctl archive --confirm`,
	Run: func(cmd *cobra.Command, args []string) {
		runArchive(cmd)
	},
}

func runArchive(cmd *cobra.Command) {
	source, _ := cmd.Flags().GetString("source")
	destination, _ := cmd.Flags().GetString("destination")
	confirm, _ := cmd.Flags().GetBool("confirm")

	if source == "" {
		source = cfg.DownloadDir
	}

	if !confirm {
		fmt.Printf("Archive operation summary:\n")
		fmt.Printf("Bucket: %s\n", cfg.BucketName)
		fmt.Printf("Source: %s\n", source)
		fmt.Printf("Destination: %s\n", destination)

		fmt.Print("Continue with archive? (y/N): ")
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			utils.PrintError(err, "archive")
			return
		}
		if !slices.Contains([]string{"y", "yes"}, strings.ToLower(response)) {
			fmt.Println("Archive cancelled.")
			return
		}
	}

	client, err := remotestore.New(cfg)
	if err != nil {
		utils.PrintError(err, "archive")
		return
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Archiving %s to bucket %s\n", source, cfg.BucketName)
	}

	result, err := client.ArchiveDownloads(ctx, source, destination)
	if err != nil {
		utils.PrintError(err, "archive")
		return
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "archive")
		return
	}

	if isVerbose(cmd) {
		cmd.Println("Archive uploaded successfully")
	}
}

func init() {
	archiveCmd.Flags().StringP("source", "s", "", "Directory to archive (default: configured download directory)")
	archiveCmd.Flags().StringP("destination", "d", "", "Remote path prefix inside the bucket")
	archiveCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	archiveCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}
