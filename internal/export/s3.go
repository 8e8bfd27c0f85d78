package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

type S3Uploader struct {
	client *s3.Client
	cfg    *config.S3Config
}

func NewS3Uploader(ctx context.Context, cfg *config.S3Config) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKeyID,
				SecretAccessKey: cfg.SecretAccessKey,
			}, nil
		})))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{client: client, cfg: cfg}, nil
}

// Upload streams each file to {prefix}/{program}/{filename}.
func (u *S3Uploader) Upload(ctx context.Context, program string, files []string) error {
	for _, name := range files {
		if err := u.uploadFile(ctx, program, name); err != nil {
			return err
		}
	}
	return nil
}

func (u *S3Uploader) uploadFile(ctx context.Context, program string, name string) error {
	file, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	checksum, err := calculateFileChecksum(file)
	if err != nil {
		return fmt.Errorf("failed to calculate file checksum: %w", err)
	}

	key := S3Key(u.cfg.Prefix, program, filepath.Base(name))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("application/octet-stream"),
		Metadata: map[string]string{
			"program":   program,
			"checksum":  checksum,
			"file_size": fmt.Sprintf("%d", fileInfo.Size()),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Info().Str("bucket", u.cfg.Bucket).Str("key", key).Int64("bytes", fileInfo.Size()).Msg("Uploaded snapshot file")
	return nil
}

func S3Key(prefix string, program string, filename string) string {
	return path.Join(strings.Trim(prefix, "/"), program, filename)
}

// calculateFileChecksum hashes the file and rewinds it for the upload.
func calculateFileChecksum(file *os.File) (string, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek to beginning of file: %w", err)
	}

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to read file for checksum: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek to beginning of file: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
