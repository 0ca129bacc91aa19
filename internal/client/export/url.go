package export

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/netx"
)

// URLSink uploads exports with a PUT to a fixed, usually presigned, URL.
type URLSink struct {
	URL  string
	HTTP *http.Client
}

func (s URLSink) Save(ctx context.Context, blob *models.Blob) (string, error) {
	if err := netx.PutBytes(ctx, s.HTTP, s.URL, blob.ContentType, blob.Data); err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	return s.URL, nil
}
