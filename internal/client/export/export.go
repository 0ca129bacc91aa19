package export

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/config"
	"github.com/dmitrijs2005/marketadmin/internal/client/services"
)

// New returns the sink selected by cfg: S3 when a bucket is configured,
// then an upload URL, then the export directory.
func New(ctx context.Context, cfg config.ExportConfig) (services.ExportSink, error) {
	switch {
	case cfg.S3.Bucket != "":
		s, err := NewS3Sink(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	case cfg.UploadURL != "":
		return URLSink{URL: cfg.UploadURL}, nil
	default:
		return DirSink{Dir: cfg.Dir}, nil
	}
}
