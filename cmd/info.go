package cmd

import (
	"github.com/spf13/cobra"
	"ydlctl/config"
	"ydlctl/internal/locale"
	"ydlctl/pkg/utils"
)

type environmentInfo struct {
	Binary     string `json:"binary"`
	ConfigPath string `json:"config_path"`
	Language   string `json:"language"`
	Encoding   string `json:"encoding"`
	WinWidth   int    `json:"win_width"`
	WinHeight  int    `json:"win_height"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved environment",
	Long: `Show the environment the front-end resolved at startup: downloader
binary, settings location, locale and persisted window geometry.

The language and encoding fall back to "en_US" and "utf-8" when the
platform locale cannot be probed.`,
	Run: func(cmd *cobra.Command, args []string) {
		runInfo(cmd)
	},
}

func runInfo(cmd *cobra.Command) {
	language := cfg.Language
	if language == "" {
		language = locale.DefaultLang()
	}

	width, height, err := config.DecodeWinSize(cfg.WinSize)
	if err != nil {
		utils.PrintError(err, "info")
		return
	}

	info := &environmentInfo{
		Binary:     getBinary(cmd),
		ConfigPath: config.Path(),
		Language:   language,
		Encoding:   locale.PreferredEncoding(),
		WinWidth:   width,
		WinHeight:  height,
	}

	if err := utils.PrintJSON(info); err != nil {
		utils.PrintError(err, "info")
		return
	}
}
