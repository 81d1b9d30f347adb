package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"ydlctl/internal/models"
)

// ErrFormat is returned when a size string cannot be parsed.
var ErrFormat = errors.New("invalid size format")

// sizeUnits maps IEC suffixes to their 1024-based scale factor, largest
// first so that "B" never shadows the longer suffixes during parsing.
var sizeUnits = []struct {
	suffix string
	scale  float64
}{
	{"TiB", 1 << 40},
	{"GiB", 1 << 30},
	{"MiB", 1 << 20},
	{"KiB", 1 << 10},
	{"B", 1},
}

// FormatBytes renders a byte count as a fixed two-decimal IEC size string,
// e.g. "1.55GiB". Values equal to a unit boundary report in the larger unit.
func FormatBytes(bytes float64) string {
	for _, unit := range sizeUnits {
		if bytes >= unit.scale {
			return fmt.Sprintf("%.2f%s", bytes/unit.scale, unit.suffix)
		}
	}
	return fmt.Sprintf("%.2fB", bytes)
}

// ToBytes parses a size string produced by FormatBytes (or by youtube-dl's
// progress output) back into a raw byte count.
func ToBytes(text string) (float64, error) {
	for _, unit := range sizeUnits {
		if !strings.HasSuffix(text, unit.suffix) {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSuffix(text, unit.suffix), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad numeric prefix in %q", ErrFormat, text)
		}
		return value * unit.scale, nil
	}
	return 0, fmt.Errorf("%w: no recognized unit suffix in %q", ErrFormat, text)
}

// Time is the breakdown of an elapsed-seconds timestamp.
type Time struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// GetTime decomposes a non-negative elapsed-seconds timestamp into whole
// days, hours, minutes and seconds. Fractional seconds are discarded.
func GetTime(timestamp float64) Time {
	total := int64(timestamp)

	days := total / 86400
	total %= 86400
	hours := total / 3600
	total %= 3600

	return Time{
		Days:    days,
		Hours:   hours,
		Minutes: total / 60,
		Seconds: total % 60,
	}
}

func PrintJSON(data interface{}) error {
	jsonOutput, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonOutput))
	return nil
}

func PrintError(err error, command string) {
	errorResp := models.ErrorResponse{
		Error:     err.Error(),
		Timestamp: time.Now().Format(time.RFC3339),
		Command:   command,
	}
	err = PrintJSON(errorResp)
	if err != nil {
		slog.Error("Failed to print error in JSON format", "error", err)
		fmt.Println("Error: ", errorResp)
		return
	}
}

func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
