package fallback

import (
	"context"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Reports is the local report store. Status changes are checked against the
// allowed values only; any status may follow any other.
type Reports struct {
	c *Collection[models.Report, *models.Report]
}

func NewReports(opts ...Option) *Reports {
	return NewReportsWithSeed(SeedReports(), opts...)
}

func NewReportsWithSeed(seed []models.Report, opts ...Option) *Reports {
	return &Reports{c: newCollection[models.Report, *models.Report](models.ResourceReports, "report", seed, newSettings(opts))}
}

func reportStats(items []models.Report) models.Stats {
	by := func(status string) int {
		return count(items, func(r *models.Report) bool { return r.Status == status })
	}
	return models.Stats{
		"totalReports":         len(items),
		"pendingReports":       by(models.StatusPending),
		"investigatingReports": by(models.StatusInvestigating),
		"resolvedReports":      by(models.StatusResolved),
		"rejectedReports":      by(models.StatusRejected),
	}
}

// stampResolution keeps resolved_at in line with the status.
func stampResolution(r *models.Report, now time.Time) {
	if r.Closed() {
		if r.ResolvedAt == nil {
			t := now
			r.ResolvedAt = &t
		}
		return
	}
	r.ResolvedAt = nil
}

func (s *Reports) Reset() { s.c.Reset() }

func (s *Reports) All(ctx context.Context) []models.Report { return s.c.all(ctx) }

func (s *Reports) List(ctx context.Context, q models.Query) (*models.Envelope[[]models.Report], error) {
	return s.c.list(ctx, q, reportStats), nil
}

func (s *Reports) Get(ctx context.Context, id int64) (*models.Envelope[*models.Report], error) {
	return s.c.get(ctx, id), nil
}

func (s *Reports) Create(ctx context.Context, in models.ReportInput) (*models.Envelope[*models.Report], error) {
	rec := models.Report{
		ReporterName: in.ReporterName,
		ReportType:   in.ReportType,
		ReportedID:   in.ReportedID,
		ReportedName: in.ReportedName,
		Reason:       in.Reason,
		Description:  in.Description,
		Status:       models.StatusPending,
	}
	return s.c.create(ctx, rec, nil), nil
}

func (s *Reports) Update(ctx context.Context, id int64, p models.ReportPatch) (*models.Envelope[*models.Report], error) {
	return s.c.update(ctx, id, "", func(_ []models.Report, r *models.Report, now time.Time) error {
		if p.Status != nil {
			if err := checkStatus(models.ReportStatuses, *p.Status); err != nil {
				return err
			}
		}
		p.Apply(r)
		stampResolution(r, now)
		return nil
	}), nil
}

func (s *Reports) Delete(ctx context.Context, id int64) (*models.Envelope[*models.Report], error) {
	return s.c.remove(ctx, id, nil, nil), nil
}

// UpdateStatus moves a report to ch.Status and records the admin notes when
// given.
func (s *Reports) UpdateStatus(ctx context.Context, id int64, ch models.StatusChange) (*models.Envelope[*models.Report], error) {
	return s.c.update(ctx, id, "Report status updated successfully", func(_ []models.Report, r *models.Report, now time.Time) error {
		if err := checkStatus(models.ReportStatuses, ch.Status); err != nil {
			return err
		}
		r.Status = ch.Status
		if ch.Notes != "" {
			r.AdminNotes = ch.Notes
		}
		stampResolution(r, now)
		return nil
	}), nil
}
