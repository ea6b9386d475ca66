package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
)

// Config holds the connection settings for one S3-compatible bucket.
type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	KeyID     string
	AccessKey string
}

type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}

type ListResult struct {
	Objects     []ObjectInfo `json:"files"`
	Count       int          `json:"count"`
	IsTruncated bool         `json:"is_truncated"`
	NextToken   string       `json:"next_token,omitempty"`
}

// ObjectStore is the gateway to the S3-compatible bucket holding raw media
// blobs. Delete and Head report a missing key as ErrObjectNotFound rather
// than a generic error so callers can tell already-gone from unreachable.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string, maxKeys int32, continuationToken string) (*ListResult, error)
	Head(ctx context.Context, key string) (*ObjectInfo, error)
	Presign(ctx context.Context, key, method string, expiry time.Duration) (string, error)
	HealthCheck(ctx context.Context) error
	PublicURL(key string) string
}

type objectStore struct {
	log      *logger.Logger
	client   *awss3.Client
	presign  *awss3.PresignClient
	uploader *manager.Uploader
	bucket   string
	endpoint string
}

func New(log *logger.Logger, cfg Config) (ObjectStore, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" ||
		strings.TrimSpace(cfg.Region) == "" ||
		strings.TrimSpace(cfg.Bucket) == "" ||
		strings.TrimSpace(cfg.KeyID) == "" ||
		strings.TrimSpace(cfg.AccessKey) == "" {
		return nil, ErrIncompleteConfig
	}

	client := awss3.New(awss3.Options{
		UsePathStyle: true,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Region:       cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.KeyID, cfg.AccessKey, ""),
		),
	})

	serviceLog := log.With("service", "ObjectStore", "bucket", cfg.Bucket)
	serviceLog.Info("S3 client initialized", "endpoint", cfg.Endpoint)

	return &objectStore{
		log:      serviceLog,
		client:   client,
		presign:  awss3.NewPresignClient(client),
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
	}, nil
}

// Upload streams body to the bucket under key and returns the public URL.
// The manager uploader splits large bodies into multipart uploads and aborts
// them on failure, so a failed Upload leaves no partial object behind.
func (os *objectStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &awss3.PutObjectInput{
		Bucket: aws.String(os.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := os.uploader.Upload(ctx, input); err != nil {
		os.log.Error("upload failed", "key", key, "error", err)
		return "", fmt.Errorf("upload %q: %w", key, err)
	}
	os.log.Info("object uploaded", "key", key)
	return os.PublicURL(key), nil
}

func (os *objectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := os.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(os.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return out.Body, nil
}

// Delete removes key from the bucket. S3 DeleteObject succeeds on missing
// keys, so existence is checked first to keep NotFound distinguishable.
func (os *objectStore) Delete(ctx context.Context, key string) error {
	if _, err := os.Head(ctx, key); err != nil {
		return err
	}
	if _, err := os.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(os.bucket),
		Key:    aws.String(key),
	}); err != nil {
		os.log.Error("delete failed", "key", key, "error", err)
		return fmt.Errorf("delete %q: %w", key, err)
	}
	os.log.Info("object deleted", "key", key)
	return nil
}

func (os *objectStore) List(ctx context.Context, prefix string, maxKeys int32, continuationToken string) (*ListResult, error) {
	input := &awss3.ListObjectsV2Input{
		Bucket:  aws.String(os.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(maxKeys),
	}
	if continuationToken != "" {
		input.ContinuationToken = aws.String(continuationToken)
	}
	out, err := os.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("list prefix %q: %w", prefix, err)
	}

	result := &ListResult{
		Objects:     make([]ObjectInfo, 0, len(out.Contents)),
		IsTruncated: aws.ToBool(out.IsTruncated),
		NextToken:   aws.ToString(out.NextContinuationToken),
	}
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		result.Objects = append(result.Objects, ObjectInfo{
			Key:          key,
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
			URL:          os.PublicURL(key),
		})
	}
	result.Count = len(result.Objects)
	return result, nil
}

func (os *objectStore) Head(ctx context.Context, key string) (*ObjectInfo, error) {
	out, err := os.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(os.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("head %q: %w", key, err)
	}
	return &ObjectInfo{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
		URL:          os.PublicURL(key),
	}, nil
}

func (os *objectStore) Presign(ctx context.Context, key, method string, expiry time.Duration) (string, error) {
	opts := func(po *awss3.PresignOptions) { po.Expires = expiry }
	switch strings.ToUpper(method) {
	case "", "GET":
		req, err := os.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
			Bucket: aws.String(os.bucket),
			Key:    aws.String(key),
		}, opts)
		if err != nil {
			return "", fmt.Errorf("presign GET %q: %w", key, err)
		}
		return req.URL, nil
	case "PUT":
		req, err := os.presign.PresignPutObject(ctx, &awss3.PutObjectInput{
			Bucket: aws.String(os.bucket),
			Key:    aws.String(key),
		}, opts)
		if err != nil {
			return "", fmt.Errorf("presign PUT %q: %w", key, err)
		}
		return req.URL, nil
	default:
		return "", fmt.Errorf("unsupported presign method %q", method)
	}
}

func (os *objectStore) HealthCheck(ctx context.Context) error {
	if _, err := os.client.HeadBucket(ctx, &awss3.HeadBucketInput{
		Bucket: aws.String(os.bucket),
	}); err != nil {
		return fmt.Errorf("head bucket %q: %w", os.bucket, err)
	}
	return nil
}

func (os *objectStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", os.endpoint, os.bucket, key)
}
