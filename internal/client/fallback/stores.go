package fallback

import (
	"context"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Stores is the local seller-store moderation store.
type Stores struct {
	c *Collection[models.Store, *models.Store]
}

func NewStores(opts ...Option) *Stores {
	return NewStoresWithSeed(SeedStores(), opts...)
}

func NewStoresWithSeed(seed []models.Store, opts ...Option) *Stores {
	return &Stores{c: newCollection[models.Store, *models.Store](models.ResourceStores, "store", seed, newSettings(opts))}
}

func storeStats(items []models.Store) models.Stats {
	by := func(status string) int {
		return count(items, func(s *models.Store) bool { return s.Status == status })
	}
	return models.Stats{
		"totalStores":     len(items),
		"pendingStores":   by(models.StatusPending),
		"approvedStores":  by(models.StatusApproved),
		"rejectedStores":  by(models.StatusRejected),
		"suspendedStores": by(models.StatusSuspended),
	}
}

func (s *Stores) Reset() { s.c.Reset() }

func (s *Stores) All(ctx context.Context) []models.Store { return s.c.all(ctx) }

func (s *Stores) List(ctx context.Context, q models.Query) (*models.Envelope[[]models.Store], error) {
	return s.c.list(ctx, q, storeStats), nil
}

func (s *Stores) Get(ctx context.Context, id int64) (*models.Envelope[*models.Store], error) {
	return s.c.get(ctx, id), nil
}

func (s *Stores) Create(ctx context.Context, in models.StoreInput) (*models.Envelope[*models.Store], error) {
	rec := models.Store{
		StoreName: in.StoreName,
		OwnerName: in.OwnerName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    models.StatusPending,
	}
	return s.c.create(ctx, rec, nil), nil
}

func (s *Stores) Update(ctx context.Context, id int64, p models.StorePatch) (*models.Envelope[*models.Store], error) {
	return s.c.update(ctx, id, "", func(_ []models.Store, r *models.Store, _ time.Time) error {
		if p.Status != nil {
			if err := checkStatus(models.StoreStatuses, *p.Status); err != nil {
				return err
			}
		}
		p.Apply(r)
		return nil
	}), nil
}

func (s *Stores) Delete(ctx context.Context, id int64) (*models.Envelope[*models.Store], error) {
	return s.c.remove(ctx, id, nil, nil), nil
}

func (s *Stores) setStatus(ctx context.Context, id int64, msg string, ch models.StatusChange) *models.Envelope[*models.Store] {
	return s.c.update(ctx, id, msg, func(_ []models.Store, r *models.Store, _ time.Time) error {
		if err := checkStatus(models.StoreStatuses, ch.Status); err != nil {
			return err
		}
		r.Status = ch.Status
		if ch.Notes != "" {
			r.VerificationNotes = ch.Notes
		}
		return nil
	})
}

func (s *Stores) Approve(ctx context.Context, id int64, notes string) (*models.Envelope[*models.Store], error) {
	return s.setStatus(ctx, id, "Store approved successfully", models.StatusChange{Status: models.StatusApproved, Notes: notes}), nil
}

func (s *Stores) Reject(ctx context.Context, id int64, notes string) (*models.Envelope[*models.Store], error) {
	return s.setStatus(ctx, id, "Store rejected successfully", models.StatusChange{Status: models.StatusRejected, Notes: notes}), nil
}

// UpdateStatus sets any allowed status, e.g. suspending an approved store.
func (s *Stores) UpdateStatus(ctx context.Context, id int64, ch models.StatusChange) (*models.Envelope[*models.Store], error) {
	return s.setStatus(ctx, id, "Store status updated successfully", ch), nil
}
