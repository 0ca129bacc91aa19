package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Export formats accepted by ExportTo.
const (
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// ExportSink stores an exported document and returns where it went.
type ExportSink interface {
	Save(ctx context.Context, blob *models.Blob) (string, error)
}

// ReportService handles user reports.
//
// Exports are produced by the backend only. They have no local equivalent,
// so any failure is returned to the caller.
type ReportService interface {
	CRUD[models.Report, models.ReportInput, models.ReportPatch]
	UpdateStatus(ctx context.Context, id int64, ch models.StatusChange) (*models.Envelope[*models.Report], error)
	ExportExcel(ctx context.Context, q models.Query) (*models.Blob, error)
	ExportPDF(ctx context.Context, q models.Query) (*models.Blob, error)
	// ExportTo downloads the export in format and hands it to sink.
	ExportTo(ctx context.Context, format string, q models.Query, sink ExportSink) (string, error)
}

type reportService struct {
	*facade[models.Report, models.ReportInput, models.ReportPatch]
	c      client.Client
	remote *client.Resource[models.Report, models.ReportInput, models.ReportPatch]
	local  *fallback.Reports
	now    func() time.Time
}

func NewReportService(c client.Client, local *fallback.Reports, state *failover.State) ReportService {
	remote := client.NewResource[models.Report, models.ReportInput, models.ReportPatch](c, models.ResourceReports)
	return &reportService{
		facade: newFacade[models.Report, models.ReportInput, models.ReportPatch](state, remote, local),
		c:      c,
		remote: remote,
		local:  local,
		now:    time.Now,
	}
}

func (s *reportService) UpdateStatus(ctx context.Context, id int64, ch models.StatusChange) (*models.Envelope[*models.Report], error) {
	return run(ctx, s.state, "update-status",
		func(ctx context.Context) (*models.Envelope[*models.Report], error) {
			return s.remote.Action(ctx, id, verbStatus, ch)
		},
		func(ctx context.Context) (*models.Envelope[*models.Report], error) {
			return s.local.UpdateStatus(ctx, id, ch)
		})
}

func (s *reportService) ExportExcel(ctx context.Context, q models.Query) (*models.Blob, error) {
	return s.export(ctx, client.PathReportsExportExcel, q, "csv")
}

func (s *reportService) ExportPDF(ctx context.Context, q models.Query) (*models.Blob, error) {
	return s.export(ctx, client.PathReportsExportPDF, q, "pdf")
}

func (s *reportService) export(ctx context.Context, p string, q models.Query, ext string) (*models.Blob, error) {
	blob, err := s.c.Download(ctx, p, q.Values())
	if err != nil {
		return nil, fmt.Errorf("export reports: %w", err)
	}
	if blob.Name == "" {
		blob.Name = fmt.Sprintf("reports-%s.%s", s.now().Format("20060102-150405"), ext)
	}
	blob.Name = path.Base(blob.Name)
	return blob, nil
}

func (s *reportService) ExportTo(ctx context.Context, format string, q models.Query, sink ExportSink) (string, error) {
	var (
		blob *models.Blob
		err  error
	)
	switch format {
	case FormatExcel:
		blob, err = s.ExportExcel(ctx, q)
	case FormatPDF:
		blob, err = s.ExportPDF(ctx, q)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", err
	}
	return sink.Save(ctx, blob)
}
