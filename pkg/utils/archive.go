package utils

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"ydlctl/internal/models"
)

// CreateArchive zips the given paths into a single archive at outputPath.
// Directories are walked recursively and stored with paths relative to
// their parent, so a downloads directory keeps its name inside the zip.
func CreateArchive(paths []string, outputPath string) (*models.ArchiveInfo, error) {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)
	defer zipWriter.Close()

	var originalSize int64
	createdAt := time.Now()

	for _, path := range paths {
		if err := addToArchive(zipWriter, path); err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", path, err)
		}

		size, err := getPathSize(path)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate size for %s: %w", path, err)
		}
		originalSize += size
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	fileInfo, err := outFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get archive info: %w", err)
	}

	return &models.ArchiveInfo{
		ArchivePath:    outputPath,
		OriginalPaths:  paths,
		CompressedSize: fileInfo.Size(),
		OriginalSize:   originalSize,
		CreatedAt:      createdAt,
	}, nil
}

func addToArchive(zipWriter *zip.Writer, sourcePath string) error {
	return filepath.Walk(sourcePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}

		if sourcePath == path {
			header.Name = filepath.Base(path)
		} else {
			relPath, err := filepath.Rel(filepath.Dir(sourcePath), path)
			if err != nil {
				return err
			}
			header.Name = relPath
		}
		header.Name = filepath.ToSlash(header.Name)
		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
}

func getPathSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})

	return size, err
}

// GenerateArchiveName builds a timestamped archive name for a downloads
// directory, e.g. "Downloads_20230515_103000.zip".
func GenerateArchiveName(dir, extension string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) {
		base = "downloads"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), extension)
}

func ValidatePaths(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("path does not exist: %s", path)
			}
			return fmt.Errorf("cannot access path %s: %w", path, err)
		}
	}
	return nil
}

func CleanupTempFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to cleanup temporary file %s: %w", path, err)
	}
	return nil
}
