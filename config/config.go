package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Binary         string
	OutputTemplate string
	DownloadDir    string
	Language       string
	WinSize        string
	LogLevel       slog.Level
	LogFile        string

	// S3 archive settings, used by the archive command only.
	ApiURL     string
	AccessKey  string
	SecretKey  string
	BucketName string
	Region     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		Binary:         getEnv("YDL_BINARY", defaultBinary()),
		OutputTemplate: getEnv("OUTPUT_TEMPLATE", filepath.Join(defaultDownloadDir(), "%(title)s.%(ext)s")),
		DownloadDir:    getEnv("DOWNLOAD_DIR", defaultDownloadDir()),
		Language:       getEnv("LANGUAGE", ""),
		WinSize:        getEnv("WIN_SIZE", "740/490"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:        getEnv("LOG_FILE", ""),
		ApiURL:         getEnv("API_URL", ""),
		AccessKey:      getEnv("ACCESS_KEY", ""),
		SecretKey:      getEnv("SECRET_KEY", ""),
		BucketName:     getEnv("BUCKET_NAME", ""),
		Region:         getEnv("REGION", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultBinary() string {
	if strings.HasPrefix(os.Getenv("OS"), "Windows") {
		return "youtube-dl.exe"
	}
	return "youtube-dl"
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns the location of the persisted settings directory.
// The returned path is always non-empty.
func Path() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ydlctl")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".ydlctl")
	}
	return ".ydlctl"
}

// EncodeWinSize encodes a window geometry pair as the persisted "width/height" form.
func EncodeWinSize(width, height int) string {
	return fmt.Sprintf("%d/%d", width, height)
}

// DecodeWinSize decodes a persisted "width/height" geometry string.
func DecodeWinSize(s string) (int, int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid window size %q", s)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window width %q: %w", parts[0], err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window height %q: %w", parts[1], err)
	}
	return width, height, nil
}
