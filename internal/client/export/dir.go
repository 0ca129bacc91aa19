package export

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/filex"
)

// DirSink writes exports into a local directory, never replacing a file.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(_ context.Context, blob *models.Blob) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}
	return filex.WriteUnique(dir, blob.Name, blob.Data)
}
