package fallback

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Categories is the local category store. Deleting a category that still
// has products deactivates it instead.
type Categories struct {
	c *Collection[models.Category, *models.Category]
}

func NewCategories(opts ...Option) *Categories {
	return NewCategoriesWithSeed(SeedCategories(), opts...)
}

func NewCategoriesWithSeed(seed []models.Category, opts ...Option) *Categories {
	return &Categories{c: newCollection[models.Category, *models.Category](models.ResourceCategories, "category", seed, newSettings(opts))}
}

func categoryStats(items []models.Category) models.Stats {
	products := 0
	for _, c := range items {
		products += c.ProductCount
	}
	return models.Stats{
		"totalCategories":    len(items),
		"activeCategories":   count(items, func(c *models.Category) bool { return c.Status == models.StatusActive }),
		"inactiveCategories": count(items, func(c *models.Category) bool { return c.Status == models.StatusInactive }),
		"totalProducts":      products,
	}
}

func checkStatus(set models.StatusSet, status string) error {
	if !set.Contains(status) {
		return fmt.Errorf("%w: status %q is not allowed", ErrInvalid, status)
	}
	return nil
}

func (s *Categories) Reset() { s.c.Reset() }

func (s *Categories) All(ctx context.Context) []models.Category { return s.c.all(ctx) }

func (s *Categories) List(ctx context.Context, q models.Query) (*models.Envelope[[]models.Category], error) {
	return s.c.list(ctx, q, categoryStats), nil
}

func (s *Categories) Get(ctx context.Context, id int64) (*models.Envelope[*models.Category], error) {
	return s.c.get(ctx, id), nil
}

func (s *Categories) Create(ctx context.Context, in models.CategoryInput) (*models.Envelope[*models.Category], error) {
	rec := models.Category{Name: in.Name, Description: in.Description, Icon: in.Icon, Status: in.Status}
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	return s.c.create(ctx, rec, func(_ []models.Category, r *models.Category, _ time.Time) error {
		return checkStatus(models.CategoryStatuses, r.Status)
	}), nil
}

func (s *Categories) Update(ctx context.Context, id int64, p models.CategoryPatch) (*models.Envelope[*models.Category], error) {
	return s.c.update(ctx, id, "", func(_ []models.Category, r *models.Category, _ time.Time) error {
		if p.Status != nil {
			if err := checkStatus(models.CategoryStatuses, *p.Status); err != nil {
				return err
			}
		}
		p.Apply(r)
		return nil
	}), nil
}

func (s *Categories) Delete(ctx context.Context, id int64) (*models.Envelope[*models.Category], error) {
	return s.c.remove(ctx, id, func(_ []models.Category, r *models.Category) (deleteMode, error) {
		if r.ProductCount > 0 {
			r.Status = models.StatusInactive
			return keepRecord, nil
		}
		return removeRecord, nil
	}, nil), nil
}
