package services

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

type FAQService interface {
	CRUD[models.FAQ, models.FAQInput, models.FAQPatch]
	// ToggleStatus flips an FAQ between active and inactive.
	ToggleStatus(ctx context.Context, id int64) (*models.Envelope[*models.FAQ], error)
}

type faqService struct {
	*facade[models.FAQ, models.FAQInput, models.FAQPatch]
	remote *client.Resource[models.FAQ, models.FAQInput, models.FAQPatch]
	local  *fallback.FAQs
}

func NewFAQService(c client.Client, local *fallback.FAQs, state *failover.State) FAQService {
	remote := client.NewResource[models.FAQ, models.FAQInput, models.FAQPatch](c, models.ResourceFAQs)
	return &faqService{facade: newFacade[models.FAQ, models.FAQInput, models.FAQPatch](state, remote, local), remote: remote, local: local}
}

func (s *faqService) ToggleStatus(ctx context.Context, id int64) (*models.Envelope[*models.FAQ], error) {
	return run(ctx, s.state, "toggle-status",
		func(ctx context.Context) (*models.Envelope[*models.FAQ], error) {
			return s.remote.Action(ctx, id, verbToggleStatus, nil)
		},
		func(ctx context.Context) (*models.Envelope[*models.FAQ], error) {
			return s.local.ToggleStatus(ctx, id)
		})
}
