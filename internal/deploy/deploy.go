package deploy

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/razen-core/rynex/internal/errors"
)

// S3API is the subset of the S3 client used by the deployer.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options configures the deployer.
type Options struct {
	// Bucket is the target S3 bucket.
	Bucket string

	// Prefix is the key prefix inside the bucket.
	Prefix string

	// Prune deletes remote objects that no longer exist locally.
	Prune bool

	// Logger receives deploy log output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes a completed deploy.
type Result struct {
	// Uploaded is the number of files uploaded.
	Uploaded int

	// Pruned is the number of stale remote objects deleted.
	Pruned int

	// Bytes is the total number of bytes uploaded.
	Bytes int64

	// Duration is how long the deploy took.
	Duration time.Duration
}

// Deployer syncs a build output directory to S3.
type Deployer struct {
	client  S3API
	options Options
	logger  *slog.Logger
}

// New creates a deployer.
func New(client S3API, options Options) *Deployer {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Deployer{
		client:  client,
		options: options,
		logger:  logger,
	}
}

// NewClient builds an S3 client for the given region. Credentials come
// from the standard AWS environment variables.
func NewClient(region string) *s3.Client {
	return s3.New(s3.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	})
}

// Deploy uploads every file under distDir to the bucket, then optionally
// prunes remote objects that have no local counterpart.
func (d *Deployer) Deploy(ctx context.Context, distDir string) (*Result, error) {
	start := time.Now()

	entries, err := os.ReadDir(distDir)
	if err != nil || len(entries) == 0 {
		return nil, errors.New("RX400").
			WithDetail("No build output found in " + distDir)
	}

	result := &Result{}
	local := make(map[string]bool)

	err = filepath.WalkDir(distDir, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(distDir, path)
		if err != nil {
			return err
		}
		key := d.key(filepath.ToSlash(rel))
		local[key] = true

		n, err := d.upload(ctx, path, key)
		if err != nil {
			return errors.New("RX401").
				WithDetail("Failed to upload " + rel).
				Wrap(err)
		}

		d.logger.Info("uploaded", "key", key, "bytes", n)
		result.Uploaded++
		result.Bytes += n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if d.options.Prune {
		pruned, err := d.prune(ctx, local)
		if err != nil {
			return nil, err
		}
		result.Pruned = pruned
	}

	result.Duration = time.Since(start)
	return result, nil
}

// upload puts a single file and returns its size.
func (d *Deployer) upload(ctx context.Context, path, key string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(d.options.Bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentType:   aws.String(contentType(path)),
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// prune deletes remote objects under the prefix that are not in local.
func (d *Deployer) prune(ctx context.Context, local map[string]bool) (int, error) {
	var stale []string
	var token *string

	for {
		page, err := d.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(d.options.Bucket),
			Prefix:            aws.String(d.key("")),
			ContinuationToken: token,
		})
		if err != nil {
			return 0, errors.New("RX401").Wrap(err)
		}

		for _, obj := range page.Contents {
			if obj.Key != nil && !local[*obj.Key] {
				stale = append(stale, *obj.Key)
			}
		}

		if page.IsTruncated == nil || !*page.IsTruncated {
			break
		}
		token = page.NextContinuationToken
	}

	for _, key := range stale {
		if _, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(d.options.Bucket),
			Key:    aws.String(key),
		}); err != nil {
			return 0, errors.New("RX401").Wrap(err)
		}
		d.logger.Info("pruned", "key", key)
	}

	return len(stale), nil
}

// key joins the configured prefix with a relative path.
func (d *Deployer) key(rel string) string {
	prefix := strings.Trim(d.options.Prefix, "/")
	if prefix == "" {
		return rel
	}
	if rel == "" {
		return prefix + "/"
	}
	return prefix + "/" + rel
}

// contentType guesses a MIME type from the file extension.
func contentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
