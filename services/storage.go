package services

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"chimney_care_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// mediaURLExpiry is how long presigned comparison image URLs stay valid
const mediaURLExpiry = time.Hour

// MediaStore resolves storage keys of site images to browser URLs
type MediaStore interface {
	URL(ctx context.Context, key string) (string, error)
	IsConfigured() bool
}

// Media is the global media store
var Media MediaStore

// InitializeMedia picks R2 when fully configured, local static files otherwise
func InitializeMedia(cfg *config.Config) {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" {
		r2, err := NewR2Media(cfg)
		if err != nil {
			log.Printf("[WARNING] Failed to initialize R2 media: %v. Falling back to local static files.", err)
			Media = NewLocalMedia(cfg.StaticDir)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(cfg.R2BucketName)}); err != nil {
			log.Printf("[WARNING] R2 bucket connection test failed: %v. Falling back to local static files.", err)
			Media = NewLocalMedia(cfg.StaticDir)
			return
		}

		Media = r2
		log.Printf("Media storage established (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
		return
	}

	Media = NewLocalMedia(cfg.StaticDir)
	log.Printf("Media storage established (Local static files - path: %s)", cfg.StaticDir)
}

// R2Media serves images from a Cloudflare R2 bucket
type R2Media struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

// NewR2Media creates an R2-backed media store
func NewR2Media(cfg *config.Config) (*R2Media, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Media{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

func (r *R2Media) IsConfigured() bool {
	return r.client != nil && r.bucket != ""
}

// URL returns the public URL when one is configured, a presigned GET otherwise
func (r *R2Media) URL(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if r.publicURL != "" {
		return strings.TrimSuffix(r.publicURL, "/") + "/" + key, nil
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(mediaURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return req.URL, nil
}

// LocalMedia serves images from the static directory
type LocalMedia struct {
	staticDir string
}

// NewLocalMedia creates a store for files under staticDir, served at /static
func NewLocalMedia(staticDir string) *LocalMedia {
	return &LocalMedia{staticDir: staticDir}
}

func (l *LocalMedia) IsConfigured() bool {
	return true
}

func (l *LocalMedia) URL(ctx context.Context, key string) (string, error) {
	return path.Join("/static", path.Clean("/"+key)), nil
}

// ComparisonMedia holds the optional images behind the slider layers.
// Empty URLs mean the built-in gradient visuals are used.
type ComparisonMedia struct {
	BeforeURL string
	AfterURL  string
}

// ResolveComparisonMedia looks up the configured before/after images
func ResolveComparisonMedia(ctx context.Context, store MediaStore, cfg *config.Config) ComparisonMedia {
	var media ComparisonMedia
	if store == nil || cfg == nil {
		return media
	}

	resolve := func(key string) string {
		if key == "" {
			return ""
		}
		u, err := store.URL(ctx, key)
		if err != nil {
			log.Printf("[WARNING] Failed to resolve media %s: %v", key, err)
			return ""
		}
		return u
	}

	media.BeforeURL = resolve(cfg.ComparisonBeforeImage)
	media.AfterURL = resolve(cfg.ComparisonAfterImage)
	return media
}
