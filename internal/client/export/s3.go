package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/marketadmin/internal/client/config"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) (objectPutter, objectPresigner) {
		c := s3.NewFromConfig(cfg, optFns...)
		return c, s3.NewPresignClient(c)
	}
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Sink uploads exports to a bucket under
// <prefix>/reports/<yyyy>/<mm>/<dd>/<uuid>-<name>. With a presign TTL the
// returned location is a download link valid for that long instead of an
// s3:// path.
type S3Sink struct {
	bucket     string
	prefix     string
	presignTTL time.Duration
	client     objectPutter
	presigner  objectPresigner
	now        func() time.Time
}

// NewS3Sink builds the S3 client. Static credentials are used when both
// keys are configured; otherwise the default AWS credential chain applies.
func NewS3Sink(ctx context.Context, cfg config.S3Config) (*S3Sink, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client, presigner := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Sink{
		bucket:     cfg.Bucket,
		prefix:     cfg.Prefix,
		presignTTL: cfg.PresignTTL,
		client:     client,
		presigner:  presigner,
		now:        time.Now,
	}, nil
}

func (s *S3Sink) key(name string) string {
	d := s.now().UTC()
	return path.Join(s.prefix, "reports", d.Format("2006/01/02"), uuid.NewString()+"-"+path.Base(name))
}

func (s *S3Sink) Save(ctx context.Context, blob *models.Blob) (string, error) {
	key := s.key(blob.Name)
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(blob.Data),
	}
	if blob.ContentType != "" {
		in.ContentType = aws.String(blob.ContentType)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	if s.presignTTL <= 0 {
		return "s3://" + s.bucket + "/" + key, nil
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign s3://%s/%s: %w", s.bucket, key, err)
	}
	return req.URL, nil
}
