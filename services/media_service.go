package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// UploadResult is what the media host hands back: a durable public URL and
// the stored object name.
type UploadResult struct {
	URL      string
	Filename string
}

// Uploader stores one file's bytes with an external media host (or local
// staging) and returns where they ended up.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, originalName, contentType string) (*UploadResult, error)
}

// allowedUploadExts is the recognized set of image and video uploads.
var allowedUploadExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".mov":  true,
	".avi":  true,
}

// AllowedUploadType reports whether the file may be uploaded at all. Both
// the extension and the declared MIME type must look like a recognized
// image or video; anything else is rejected before any host call.
func AllowedUploadType(originalName, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedUploadExts[ext] {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/") || strings.HasPrefix(mediaType, "video/")
}

// objectName builds a collision-free stored name keeping the original
// extension.
func objectName(originalName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}

// S3Uploader pushes files to an S3 bucket and serves them through
// CloudFront when a distribution URL is configured.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET not set")
	}

	return &S3Uploader{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		publicURL: os.Getenv("CLOUDFRONT_URL"),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, file io.Reader, originalName, contentType string) (*UploadResult, error) {
	name := objectName(originalName)
	key := "uploads/" + name

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("upload to S3: %w", err)
	}

	base := u.publicURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", u.bucket, u.region)
	}
	return &UploadResult{
		URL:      fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), key),
		Filename: name,
	}, nil
}

// LocalUploader stages files on local disk; the router serves the directory
// under /uploads.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, file io.Reader, originalName, contentType string) (*UploadResult, error) {
	name := objectName(originalName)

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	return &UploadResult{URL: "/uploads/" + name, Filename: name}, nil
}
