package client

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Client is the transport contract used by resources and the online watcher.
type Client interface {
	// Do sends a JSON request and decodes the envelope into out.
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
	// Download fetches a binary document.
	Download(ctx context.Context, path string, query url.Values) (*models.Blob, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token() (string, bool)
}

// Backend paths.
const (
	PathHealth             = "/health"
	PathAdmin              = "/admin"
	PathReportsExportExcel = "/admin/reports/export/excel"
	PathReportsExportPDF   = "/admin/reports/export/pdf"
)

// ResourcePath returns the collection path of an admin resource.
func ResourcePath(resource string) string {
	return PathAdmin + "/" + resource
}
