package models

import "time"

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}

type CommandResult struct {
	Binary         string   `json:"binary"`
	URL            string   `json:"url"`
	OutputTemplate string   `json:"output_template"`
	Options        []string `json:"options"`
	CommandLine    string   `json:"command_line"`
}

type DownloadResult struct {
	URL            string `json:"url"`
	CommandLine    string `json:"command_line"`
	Destination    string `json:"destination"`
	TotalSizeBytes int64  `json:"total_size_bytes"`
	TotalSizeHuman string `json:"total_size_human"`
	AverageSpeed   string `json:"average_speed,omitempty"`
	ExitCode       int    `json:"exit_code"`
	OperationTime  string `json:"operation_time"`
	Elapsed        string `json:"elapsed"`
}

type ArchiveInfo struct {
	ArchivePath    string    `json:"archive_path"`
	OriginalPaths  []string  `json:"original_paths"`
	CompressedSize int64     `json:"compressed_size"`
	OriginalSize   int64     `json:"original_size"`
	CreatedAt      time.Time `json:"created_at"`
}

type ArchiveResult struct {
	BucketName     string `json:"bucket_name"`
	SourceDir      string `json:"source_dir"`
	RemotePath     string `json:"remote_path"`
	TotalSizeBytes int64  `json:"total_size_bytes"`
	TotalSizeHuman string `json:"total_size_human"`
	OperationTime  string `json:"operation_time"`
	UploadDuration string `json:"upload_duration"`
}
