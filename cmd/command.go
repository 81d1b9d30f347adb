package cmd

import (
	"github.com/spf13/cobra"
	"ydlctl/internal/downloader"
	"ydlctl/internal/models"
	"ydlctl/pkg/utils"
)

var commandCmd = &cobra.Command{
	Use:   "command [url]",
	Short: "Print the assembled downloader command line",
	Long: `Assemble the full downloader command line for a URL without running it.

The output template and the URL are double-quoted so the printed line can be
pasted into a shell even when they contain spaces.`,
	Example: `  # Show the command line for a video
  ydlctl command https://www.youtube.com/watch?v=aaaaaaaaaaa

  # With extra downloader options
  ydlctl command https://www.youtube.com/watch?v=aaaaaaaaaaa --option -f --option mp4`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand(cmd, args)
	},
}

func runCommand(cmd *cobra.Command, args []string) {
	url := args[0]
	extra, _ := cmd.Flags().GetStringArray("option")

	runCfg := *cfg
	runCfg.Binary = getBinary(cmd)

	client, err := downloader.New(&runCfg)
	if err != nil {
		utils.PrintError(err, "command")
		return
	}

	result := &models.CommandResult{
		Binary:         runCfg.Binary,
		URL:            url,
		OutputTemplate: runCfg.OutputTemplate,
		Options:        extra,
		CommandLine:    client.CommandLine(url, extra),
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "command")
		return
	}
}

func init() {
	commandCmd.Flags().StringArray("option", nil, "Extra option token passed to the downloader (repeatable)")
}
