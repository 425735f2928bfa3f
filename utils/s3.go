package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/BiniyamTG/Injera-Beyond/config"
)

// S3Uploader stores catalog photos in a public S3 bucket and hands back the
// CloudFront URL to append to an entry's photo_urls.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Uploader builds the uploader, or returns nil when no bucket is
// configured (photo upload endpoints then report the feature as unavailable).
func NewS3Uploader(cfg *config.Config) (*S3Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &S3Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.S3Bucket,
		baseURL: cfg.CloudFrontURL,
	}, nil
}

// UploadBase64Image accepts a "data:<mime>;base64,<data>" payload, stores the
// decoded bytes under photos/ and returns the public URL.
func (u *S3Uploader) UploadBase64Image(ctx context.Context, base64Data, filenamePrefix string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	metaParts := strings.SplitN(meta, ":", 2)
	if len(metaParts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(metaParts[1], ";", 2)[0]

	ext := extensionFor(contentType)

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("photos/%s-%d%s", filenamePrefix, time.Now().UnixNano(), ext)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
