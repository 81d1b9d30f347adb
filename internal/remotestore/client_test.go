package remotestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"ydlctl/config"
)

func TestNewWithoutBucket(t *testing.T) {
	_, err := New(&config.Config{})
	if err == nil {
		t.Error("New() with no bucket expected an error")
	}
}

func TestBuildRemotePath(t *testing.T) {
	client := &Client{config: &config.Config{BucketName: "test"}}

	tests := []struct {
		name        string
		destination string
		filename    string
		expected    string
	}{
		{"Empty destination", "", "a.zip", "a.zip"},
		{"Simple destination", "archives", "a.zip", "archives/a.zip"},
		{"Trailing slash", "archives/", "a.zip", "archives/a.zip"},
		{"Leading slash stripped", "/archives", "a.zip", "archives/a.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := client.buildRemotePath(tt.destination, tt.filename)
			if result != tt.expected {
				t.Errorf("buildRemotePath(%q, %q) = %s, want %s", tt.destination, tt.filename, result, tt.expected)
			}
		})
	}
}

// Integration test for the archive upload path
// Requires a real S3 connection and is skipped by default
// To run, set the environment variable S3_INTEGRATION_TEST=true

func TestArchiveDownloads(t *testing.T) {
	if os.Getenv("S3_INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test; set S3_INTEGRATION_TEST=true to run")
	}

	cfg := &config.Config{
		BucketName: os.Getenv("TEST_BUCKET_NAME"),
		Region:     os.Getenv("TEST_REGION"),
		ApiURL:     os.Getenv("TEST_API_URL"),
		AccessKey:  os.Getenv("TEST_ACCESS_KEY"),
		SecretKey:  os.Getenv("TEST_SECRET_KEY"),
	}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	tempDir, err := os.MkdirTemp("", "remotestore-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, "video.mp4"), []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	result, err := client.ArchiveDownloads(context.Background(), tempDir, "test-archives")
	if err != nil {
		t.Fatalf("ArchiveDownloads() error = %v", err)
	}

	if result.BucketName != cfg.BucketName {
		t.Errorf("BucketName = %s, want %s", result.BucketName, cfg.BucketName)
	}

	if result.SourceDir != tempDir {
		t.Errorf("SourceDir = %s, want %s", result.SourceDir, tempDir)
	}

	if !strings.HasPrefix(result.RemotePath, "test-archives/") {
		t.Errorf("RemotePath = %s, want test-archives/ prefix", result.RemotePath)
	}

	if result.TotalSizeBytes <= 0 {
		t.Errorf("TotalSizeBytes = %d, want > 0", result.TotalSizeBytes)
	}
}
