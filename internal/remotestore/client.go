package remotestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "ydlctl/config"
	"ydlctl/internal/models"
	"ydlctl/pkg/utils"
)

// Client uploads finished downloads to an S3-compatible bucket.
type Client struct {
	s3Client *s3.Client
	config   *appConfig.Config
}

func New(cfg *appConfig.Config) (*Client, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("no archive bucket configured")
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// ArchiveDownloads zips sourceDir and uploads the archive under
// destinationPath in the configured bucket. The temporary archive is
// removed afterwards.
func (c *Client) ArchiveDownloads(ctx context.Context, sourceDir, destinationPath string) (*models.ArchiveResult, error) {
	startTime := time.Now()

	if err := utils.ValidatePaths([]string{sourceDir}); err != nil {
		return nil, fmt.Errorf("path validation failed: %w", err)
	}

	archivePath := filepath.Join(os.TempDir(), utils.GenerateArchiveName(sourceDir, ".zip"))
	archiveInfo, err := utils.CreateArchive([]string{sourceDir}, archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer utils.CleanupTempFile(archivePath)

	remotePath := c.buildRemotePath(destinationPath, filepath.Base(archivePath))
	if err := c.uploadFile(ctx, archivePath, remotePath); err != nil {
		return nil, fmt.Errorf("failed to upload archive: %w", err)
	}

	return &models.ArchiveResult{
		BucketName:     c.config.BucketName,
		SourceDir:      sourceDir,
		RemotePath:     remotePath,
		TotalSizeBytes: archiveInfo.CompressedSize,
		TotalSizeHuman: utils.FormatBytes(float64(archiveInfo.CompressedSize)),
		OperationTime:  utils.FormatTime(startTime),
		UploadDuration: time.Since(startTime).String(),
	}, nil
}

func (c *Client) uploadFile(ctx context.Context, localPath, remotePath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	uploader := manager.NewUploader(c.s3Client)
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(remotePath),
		Body:        file,
		ContentType: aws.String("application/zip"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

func (c *Client) buildRemotePath(destinationPath, filename string) string {
	if destinationPath == "" {
		return filename
	}

	destinationPath = strings.TrimPrefix(destinationPath, "/")
	if !strings.HasSuffix(destinationPath, "/") {
		destinationPath += "/"
	}

	return destinationPath + filename
}
