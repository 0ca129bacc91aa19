package services

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// StoreService moderates seller stores.
type StoreService interface {
	CRUD[models.Store, models.StoreInput, models.StorePatch]
	Approve(ctx context.Context, id int64, notes string) (*models.Envelope[*models.Store], error)
	Reject(ctx context.Context, id int64, notes string) (*models.Envelope[*models.Store], error)
	// UpdateStatus sets any allowed status; transitions are not restricted.
	UpdateStatus(ctx context.Context, id int64, ch models.StatusChange) (*models.Envelope[*models.Store], error)
}

type storeService struct {
	*facade[models.Store, models.StoreInput, models.StorePatch]
	remote *client.Resource[models.Store, models.StoreInput, models.StorePatch]
	local  *fallback.Stores
}

func NewStoreService(c client.Client, local *fallback.Stores, state *failover.State) StoreService {
	remote := client.NewResource[models.Store, models.StoreInput, models.StorePatch](c, models.ResourceStores)
	return &storeService{facade: newFacade[models.Store, models.StoreInput, models.StorePatch](state, remote, local), remote: remote, local: local}
}

func (s *storeService) Approve(ctx context.Context, id int64, notes string) (*models.Envelope[*models.Store], error) {
	return run(ctx, s.state, verbApprove,
		func(ctx context.Context) (*models.Envelope[*models.Store], error) {
			return s.remote.Action(ctx, id, verbApprove, decision{Notes: notes})
		},
		func(ctx context.Context) (*models.Envelope[*models.Store], error) {
			return s.local.Approve(ctx, id, notes)
		})
}

func (s *storeService) Reject(ctx context.Context, id int64, notes string) (*models.Envelope[*models.Store], error) {
	return run(ctx, s.state, verbReject,
		func(ctx context.Context) (*models.Envelope[*models.Store], error) {
			return s.remote.Action(ctx, id, verbReject, decision{Notes: notes})
		},
		func(ctx context.Context) (*models.Envelope[*models.Store], error) {
			return s.local.Reject(ctx, id, notes)
		})
}

func (s *storeService) UpdateStatus(ctx context.Context, id int64, ch models.StatusChange) (*models.Envelope[*models.Store], error) {
	return run(ctx, s.state, "update-status",
		func(ctx context.Context) (*models.Envelope[*models.Store], error) {
			return s.remote.Action(ctx, id, verbStatus, ch)
		},
		func(ctx context.Context) (*models.Envelope[*models.Store], error) {
			return s.local.UpdateStatus(ctx, id, ch)
		})
}
