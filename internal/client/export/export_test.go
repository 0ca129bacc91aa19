package export

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/marketadmin/internal/client/config"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in  *s3.PutObjectInput
	err error

	get        *s3.GetObjectInput
	expires    time.Duration
	presignErr error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakePutter) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.get = in
	var o s3.PresignOptions
	for _, fn := range optFns {
		fn(&o)
	}
	f.expires = o.Expires
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return &v4.PresignedHTTPRequest{URL: "https://s3.example/" + *in.Key + "?X-Amz-Signature=abc", Method: http.MethodGet}, nil
}

func stubAWS(t *testing.T, put *fakePutter, check func(lo awsconfig.LoadOptions, o s3.Options)) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) (objectPutter, objectPresigner) {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		check(lo, o)
		return put, put
	}
}

var blob = &models.Blob{Name: "reports.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := DirSink{Dir: dir}

	p1, err := sink.Save(context.Background(), blob)
	require.NoError(t, err)
	p2, err := sink.Save(context.Background(), blob)
	require.NoError(t, err)

	assert.Equal(t, "reports.pdf", filepath.Base(p1))
	assert.Equal(t, "reports-1.pdf", filepath.Base(p2))
	data, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Equal(t, blob.Data, data)
}

func TestURLSink(t *testing.T) {
	var got []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		got, _ = io.ReadAll(r.Body)
	}))
	defer ts.Close()

	where, err := URLSink{URL: ts.URL + "/upload?sig=1", HTTP: ts.Client()}.Save(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/upload?sig=1", where)
	assert.Equal(t, blob.Data, got)
}

func TestS3Sink_Save(t *testing.T) {
	put := &fakePutter{}
	stubAWS(t, put, func(lo awsconfig.LoadOptions, o s3.Options) {
		assert.Equal(t, "eu-central-1", lo.Region)
		assert.NotNil(t, lo.Credentials, "static credentials expected")
		require.NotNil(t, o.BaseEndpoint)
		assert.Equal(t, "http://127.0.0.1:9000", *o.BaseEndpoint)
		assert.True(t, o.UsePathStyle)
	})

	sink, err := NewS3Sink(context.Background(), config.S3Config{
		Bucket: "admin-exports", Prefix: "staging", Region: "eu-central-1",
		Endpoint: "http://127.0.0.1:9000", AccessKeyID: "minio", SecretAccessKey: "minio123", UsePathStyle: true,
	})
	require.NoError(t, err)
	sink.now = func() time.Time { return time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC) }

	where, err := sink.Save(context.Background(), blob)
	require.NoError(t, err)

	require.NotNil(t, put.in)
	assert.Equal(t, "admin-exports", *put.in.Bucket)
	assert.Equal(t, "application/pdf", *put.in.ContentType)
	key := *put.in.Key
	assert.True(t, strings.HasPrefix(key, "staging/reports/2025/02/03/"), key)
	assert.True(t, strings.HasSuffix(key, "-reports.pdf"), key)
	assert.Equal(t, "s3://admin-exports/"+key, where)
}

func TestS3Sink_PresignedLocation(t *testing.T) {
	put := &fakePutter{}
	stubAWS(t, put, func(awsconfig.LoadOptions, s3.Options) {})

	sink, err := NewS3Sink(context.Background(), config.S3Config{Bucket: "b", Region: "us-east-1", PresignTTL: 30 * time.Minute})
	require.NoError(t, err)

	where, err := sink.Save(context.Background(), blob)
	require.NoError(t, err)
	require.NotNil(t, put.get)
	assert.Equal(t, *put.in.Key, *put.get.Key)
	assert.Equal(t, 30*time.Minute, put.expires)
	assert.Equal(t, "https://s3.example/"+*put.in.Key+"?X-Amz-Signature=abc", where)

	put.presignErr = errors.New("signing failed")
	_, err = sink.Save(context.Background(), blob)
	assert.ErrorContains(t, err, "signing failed")
}

func TestS3Sink_Errors(t *testing.T) {
	put := &fakePutter{err: errors.New("access denied")}
	stubAWS(t, put, func(lo awsconfig.LoadOptions, o s3.Options) {
		assert.Nil(t, lo.Credentials, "default chain without keys")
		assert.Nil(t, o.BaseEndpoint)
	})

	sink, err := NewS3Sink(context.Background(), config.S3Config{Bucket: "b", Region: "us-east-1"})
	require.NoError(t, err)
	_, err = sink.Save(context.Background(), blob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no region")
	}
	_, err = NewS3Sink(context.Background(), config.S3Config{Bucket: "b"})
	require.Error(t, err)
}

func TestNew_SelectsSink(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, config.ExportConfig{Dir: "out"})
	require.NoError(t, err)
	assert.Equal(t, DirSink{Dir: "out"}, s)

	s, err = New(ctx, config.ExportConfig{Dir: "out", UploadURL: "https://upload.example/x"})
	require.NoError(t, err)
	assert.IsType(t, URLSink{}, s)

	stubAWS(t, &fakePutter{}, func(awsconfig.LoadOptions, s3.Options) {})
	s, err = New(ctx, config.ExportConfig{S3: config.S3Config{Bucket: "b"}})
	require.NoError(t, err)
	assert.IsType(t, &S3Sink{}, s)
}
