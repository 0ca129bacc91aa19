package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// ResourceSummary is the dashboard line of one resource.
type ResourceSummary struct {
	Resource string       `json:"resource"`
	Stats    models.Stats `json:"stats"`
	Fallback bool         `json:"fallback"`
}

// Overview gathers the stats of every resource concurrently. The order of
// the result follows models.Resources.
func (s *Services) Overview(ctx context.Context) ([]ResourceSummary, error) {
	q := models.Query{Page: 1, Limit: 1}
	fetch := map[string]func(context.Context) (models.Stats, bool, error){
		models.ResourceCategories:   statsOf[models.Category](s.Categories, q),
		models.ResourceFAQs:         statsOf[models.FAQ](s.FAQs, q),
		models.ResourceReports:      statsOf[models.Report](s.Reports, q),
		models.ResourceBankAccounts: statsOf[models.BankAccount](s.BankAccounts, q),
		models.ResourceStores:       statsOf[models.Store](s.Stores, q),
		models.ResourcePayments:     statsOf[models.PaymentOrder](s.Payments, q),
	}

	var mu sync.Mutex
	byName := make(map[string]ResourceSummary, len(fetch))

	g, gctx := errgroup.WithContext(ctx)
	for name, f := range fetch {
		g.Go(func() error {
			st, fb, err := f(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			byName[name] = ResourceSummary{Resource: name, Stats: st, Fallback: fb}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]ResourceSummary, 0, len(byName))
	for _, name := range models.Resources {
		if sum, ok := byName[name]; ok {
			out = append(out, sum)
		}
	}
	return out, nil
}

type lister[T any] interface {
	List(ctx context.Context, q models.Query) (*models.Envelope[[]T], error)
}

func statsOf[T any](l lister[T], q models.Query) func(context.Context) (models.Stats, bool, error) {
	return func(ctx context.Context) (models.Stats, bool, error) {
		env, err := l.List(ctx, q)
		if err != nil {
			return nil, false, err
		}
		return env.Stats, env.Fallback, nil
	}
}
