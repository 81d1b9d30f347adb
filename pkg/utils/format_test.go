package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"time"
	"ydlctl/internal/models"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    float64
		expected string
	}{
		{"Zero bytes", 0, "0.00B"},
		{"Bytes", 518.00, "518.00B"},
		{"Kilobytes", 1024.00, "1.00KiB"},
		{"Fractional kilobytes", 5683.20, "5.55KiB"},
		{"Megabytes", 1048576.00, "1.00MiB"},
		{"Gigabytes", 1073741824.00, "1.00GiB"},
		{"Fractional gigabytes", 1664299827.20, "1.55GiB"},
		{"Terabytes", 1099511627776.00, "1.00TiB"},
		{"Just below a boundary", 1023.99, "1023.99B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBytes(tt.bytes)
			if result != tt.expected {
				t.Errorf("FormatBytes(%f) = %s, want %s", tt.bytes, result, tt.expected)
			}
		})
	}
}

func TestToBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Bytes", "596.00B", 596.00},
		{"Fractional bytes", "133.55B", 133.55},
		{"Kilobytes", "1.00KiB", 1024.00},
		{"Fractional kilobytes", "5.55KiB", 5683.20},
		{"Megabytes", "1.00MiB", 1048576.00},
		{"Fractional megabytes", "13.64MiB", 14302576.64},
		{"Gigabytes", "1.00GiB", 1073741824.00},
		{"Fractional gigabytes", "1.55GiB", 1664299827.20},
		{"Terabytes", "1.00TiB", 1099511627776.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToBytes(tt.input)
			if err != nil {
				t.Fatalf("ToBytes(%q) error = %v", tt.input, err)
			}
			if math.Abs(result-tt.expected) > 1e-3 {
				t.Errorf("ToBytes(%q) = %f, want %f", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToBytesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"No suffix", "1024"},
		{"Unknown suffix", "1.00KB"},
		{"Lowercase suffix", "1.00kib"},
		{"Bad numeric prefix", "x.yzMiB"},
		{"Empty string", ""},
		{"Suffix only", "MiB"},
		{"Surrounding whitespace", " 1.00KiB "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBytes(tt.input)
			if err == nil {
				t.Fatalf("ToBytes(%q) expected an error", tt.input)
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("ToBytes(%q) error = %v, want ErrFormat", tt.input, err)
			}
		})
	}
}

func TestFormatBytesRoundTrip(t *testing.T) {
	samples := []float64{0, 1, 518, 1023, 1024, 5683.2, 1048576, 14302576.64, 1073741824, 1664299827.2, 1099511627776}

	for _, b := range samples {
		formatted := FormatBytes(b)
		parsed, err := ToBytes(formatted)
		if err != nil {
			t.Fatalf("ToBytes(%q) error = %v", formatted, err)
		}

		// Formatting keeps two decimals of the scaled value, so the
		// round trip is exact only up to half a unit at that precision.
		scale := 1.0
		for _, unit := range sizeUnits {
			if strings.HasSuffix(formatted, unit.suffix) {
				scale = unit.scale
				break
			}
		}
		if math.Abs(parsed-b) > scale*0.005+1e-9 {
			t.Errorf("round trip %f -> %s -> %f exceeds rounding tolerance", b, formatted, parsed)
		}
	}
}

func TestGetTime(t *testing.T) {
	result := GetTime(1621991858.3169)
	expected := Time{Days: 18773, Hours: 1, Minutes: 17, Seconds: 38}
	if result != expected {
		t.Errorf("GetTime() = %+v, want %+v", result, expected)
	}
}

func TestGetTimeInvariant(t *testing.T) {
	samples := []float64{0, 0.9, 59, 60, 3599, 3600, 86399, 86400, 90061.5, 1621991858.3169}

	for _, ts := range samples {
		got := GetTime(ts)

		if got.Seconds < 0 || got.Seconds >= 60 {
			t.Errorf("GetTime(%f).Seconds = %d, out of range", ts, got.Seconds)
		}
		if got.Minutes < 0 || got.Minutes >= 60 {
			t.Errorf("GetTime(%f).Minutes = %d, out of range", ts, got.Minutes)
		}
		if got.Hours < 0 || got.Hours >= 24 {
			t.Errorf("GetTime(%f).Hours = %d, out of range", ts, got.Hours)
		}

		total := got.Days*86400 + got.Hours*3600 + got.Minutes*60 + got.Seconds
		if total != int64(ts) {
			t.Errorf("GetTime(%f) recomposes to %d, want %d", ts, total, int64(ts))
		}
	}
}

func TestPrintJSON(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	testData := map[string]string{"key": "value"}

	err := PrintJSON(testData)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Errorf("PrintJSON() returned error: %v", err)
	}

	var result map[string]string
	err = json.Unmarshal([]byte(output), &result)
	if err != nil {
		t.Errorf("PrintJSON() produced invalid JSON: %v", err)
	}

	if result["key"] != "value" {
		t.Errorf("PrintJSON() output = %v, want %v", result, testData)
	}
}

func TestPrintError(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	testErr := errors.New("test error")
	testCmd := "test-command"

	PrintError(testErr, testCmd)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "test error") {
		t.Errorf("PrintError() output doesn't contain error message: %s", output)
	}

	var result models.ErrorResponse
	err := json.Unmarshal([]byte(output), &result)
	if err != nil {
		t.Errorf("PrintError() produced invalid JSON: %v", err)
	}

	if result.Error != "test error" {
		t.Errorf("PrintError() error = %s, want %s", result.Error, "test error")
	}

	if result.Command != "test-command" {
		t.Errorf("PrintError() command = %s, want %s", result.Command, "test-command")
	}
}

func TestFormatTime(t *testing.T) {
	testTime := time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC)
	expected := "2023-05-15T10:30:00Z"

	result := FormatTime(testTime)
	if result != expected {
		t.Errorf("FormatTime() = %s, want %s", result, expected)
	}
}
