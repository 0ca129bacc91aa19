package fallback

import (
	"context"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// FAQs is the local FAQ store.
type FAQs struct {
	c *Collection[models.FAQ, *models.FAQ]
}

func NewFAQs(opts ...Option) *FAQs {
	return NewFAQsWithSeed(SeedFAQs(), opts...)
}

func NewFAQsWithSeed(seed []models.FAQ, opts ...Option) *FAQs {
	return &FAQs{c: newCollection[models.FAQ, *models.FAQ](models.ResourceFAQs, "FAQ", seed, newSettings(opts))}
}

func faqStats(items []models.FAQ) models.Stats {
	return models.Stats{
		"totalFaqs":    len(items),
		"activeFaqs":   count(items, func(f *models.FAQ) bool { return f.Status == models.StatusActive }),
		"inactiveFaqs": count(items, func(f *models.FAQ) bool { return f.Status == models.StatusInactive }),
	}
}

func (s *FAQs) Reset() { s.c.Reset() }

func (s *FAQs) All(ctx context.Context) []models.FAQ { return s.c.all(ctx) }

func (s *FAQs) List(ctx context.Context, q models.Query) (*models.Envelope[[]models.FAQ], error) {
	return s.c.list(ctx, q, faqStats), nil
}

func (s *FAQs) Get(ctx context.Context, id int64) (*models.Envelope[*models.FAQ], error) {
	return s.c.get(ctx, id), nil
}

// Create appends the FAQ to the end of the display order unless one is given.
func (s *FAQs) Create(ctx context.Context, in models.FAQInput) (*models.Envelope[*models.FAQ], error) {
	rec := models.FAQ{Question: in.Question, Answer: in.Answer, Category: in.Category, Status: in.Status, DisplayOrder: in.DisplayOrder}
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	return s.c.create(ctx, rec, func(items []models.FAQ, r *models.FAQ, _ time.Time) error {
		if err := checkStatus(models.FAQStatuses, r.Status); err != nil {
			return err
		}
		if r.DisplayOrder == 0 {
			for _, f := range items {
				r.DisplayOrder = max(r.DisplayOrder, f.DisplayOrder)
			}
			r.DisplayOrder++
		}
		return nil
	}), nil
}

func (s *FAQs) Update(ctx context.Context, id int64, p models.FAQPatch) (*models.Envelope[*models.FAQ], error) {
	return s.c.update(ctx, id, "", func(_ []models.FAQ, r *models.FAQ, _ time.Time) error {
		if p.Status != nil {
			if err := checkStatus(models.FAQStatuses, *p.Status); err != nil {
				return err
			}
		}
		p.Apply(r)
		return nil
	}), nil
}

func (s *FAQs) Delete(ctx context.Context, id int64) (*models.Envelope[*models.FAQ], error) {
	return s.c.remove(ctx, id, nil, nil), nil
}

// ToggleStatus flips an FAQ between active and inactive.
func (s *FAQs) ToggleStatus(ctx context.Context, id int64) (*models.Envelope[*models.FAQ], error) {
	return s.c.update(ctx, id, "FAQ status updated successfully", func(_ []models.FAQ, r *models.FAQ, _ time.Time) error {
		if r.Status == models.StatusActive {
			r.Status = models.StatusInactive
		} else {
			r.Status = models.StatusActive
		}
		return nil
	}), nil
}
