package downloader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"ydlctl/config"
	"ydlctl/internal/command"
	"ydlctl/internal/models"
	"ydlctl/pkg/utils"
)

// Client wraps the external downloader binary configured for this run.
type Client struct {
	config *config.Config
}

func New(cfg *config.Config) (*Client, error) {
	if cfg.Binary == "" {
		return nil, fmt.Errorf("no downloader binary configured")
	}
	return &Client{config: cfg}, nil
}

// Options assembles the option list for one invocation: the output
// template (quoted), --newline so progress arrives one line at a time,
// then any extra caller-supplied tokens.
func (c *Client) Options(extra []string) []command.Option {
	options := []command.Option{
		command.NewOption("-o"),
		command.NewQuotedOption(c.config.OutputTemplate),
		command.NewOption("--newline"),
	}
	return append(options, command.ParseTokens(extra)...)
}

// CommandLine returns the full shell command line for downloading url.
func (c *Client) CommandLine(url string, extra []string) string {
	return command.Build(c.config.Binary, c.Options(extra), url)
}

// Download spawns the downloader binary for url and streams its progress
// output until it exits. The process is spawned with an argv list, so the
// quoted command line in the result is the loggable form, not what the
// kernel sees.
func (c *Client) Download(ctx context.Context, url string, extra []string) (*models.DownloadResult, error) {
	startTime := time.Now()

	options := c.Options(extra)
	args := make([]string, 0, len(options)+1)
	for _, opt := range options {
		args = append(args, opt.Token)
	}
	args = append(args, url)

	cmd := exec.CommandContext(ctx, c.config.Binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", c.config.Binary, err)
	}

	last, readErr := consumeOutput(stdout)

	err = cmd.Wait()
	if readErr != nil {
		return nil, readErr
	}
	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode == -1 {
		return nil, fmt.Errorf("downloader failed: %w", err)
	}

	result := &models.DownloadResult{
		URL:           url,
		CommandLine:   command.Build(c.config.Binary, options, url),
		Destination:   c.config.OutputTemplate,
		ExitCode:      exitCode,
		OperationTime: utils.FormatTime(startTime),
		Elapsed:       formatElapsed(time.Since(startTime)),
	}
	if last != nil {
		result.TotalSizeBytes = int64(last.TotalBytes)
		result.TotalSizeHuman = utils.FormatBytes(last.TotalBytes)
		result.AverageSpeed = last.Speed
	}
	return result, nil
}

// consumeOutput scans the downloader's output line by line, logging as it
// goes, and returns the last parsed progress report. A stream read error
// is returned rather than treated as end of output.
func consumeOutput(r io.Reader) (*Progress, error) {
	var last *Progress
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		progress, ok := ParseProgress(line)
		if !ok {
			slog.Debug("downloader output", "line", line)
			continue
		}
		last = progress
		slog.Debug("download progress",
			"percent", progress.Percent,
			"total", utils.FormatBytes(progress.TotalBytes),
			"speed", progress.Speed,
			"eta", progress.ETA)
	}
	if err := scanner.Err(); err != nil {
		return last, fmt.Errorf("failed to read downloader output: %w", err)
	}
	return last, nil
}

// Progress is one parsed "[download]" status line.
type Progress struct {
	Percent    float64
	TotalBytes float64
	Speed      string
	ETA        string
}

// With --newline, youtube-dl prints lines like
// "[download]  51.2% of 13.64MiB at 1.00MiB/s ETA 00:10".
var progressRe = regexp.MustCompile(`^\[download\]\s+([\d.]+)% of ~?(\S+) at\s+(\S+) ETA (\S+)`)

// ParseProgress parses a single downloader output line. Lines that are not
// progress reports, or whose size field does not parse, return ok=false.
func ParseProgress(line string) (*Progress, bool) {
	match := progressRe.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}

	percent, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil, false
	}
	total, err := utils.ToBytes(match[2])
	if err != nil {
		return nil, false
	}

	return &Progress{
		Percent:    percent,
		TotalBytes: total,
		Speed:      match[3],
		ETA:        match[4],
	}, true
}

// formatElapsed renders a wall-clock duration as "2d 01:17:38", omitting
// the day count when zero.
func formatElapsed(d time.Duration) string {
	t := utils.GetTime(d.Seconds())
	if t.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", t.Days, t.Hours, t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}
