// Package media turns object-storage keys (course thumbnails, user avatars)
// into URLs a client can fetch directly.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/codecrafted/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// DefaultAvatarKey is assigned to accounts created without an avatar.
const DefaultAvatarKey = "avatars/default.png"

// URLResolver maps a stored key to a fetchable URL.
type URLResolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// Presigner issues presigned S3 GET URLs. With no bucket configured it
// returns keys unchanged.
type Presigner struct {
	client   *s3.PresignClient
	bucket   string
	validity time.Duration
}

func NewPresigner(ctx context.Context, cfg *sc.Config) (*Presigner, error) {
	p := &Presigner{bucket: cfg.S3Bucket, validity: cfg.MediaURLValidityDuration}
	if p.bucket == "" {
		return p, nil
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})
	p.client = newS3PresignClient(client)

	return p, nil
}

// URL returns "" for an empty key. Keys that are already absolute URLs are
// passed through.
func (p *Presigner) URL(ctx context.Context, key string) (string, error) {
	if key == "" || p.client == nil || isAbsolute(key) {
		return key, nil
	}

	bucket := p.bucket
	req, err := presignGetObject(p.client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(p.validity))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}

	return req.URL, nil
}

func isAbsolute(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}
