package services

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// PaymentService verifies buyer payment orders.
type PaymentService interface {
	CRUD[models.PaymentOrder, models.PaymentInput, models.PaymentPatch]
	// Approve marks the payment verified.
	Approve(ctx context.Context, id int64, notes string) (*models.Envelope[*models.PaymentOrder], error)
	Reject(ctx context.Context, id int64, notes string) (*models.Envelope[*models.PaymentOrder], error)
}

type paymentService struct {
	*facade[models.PaymentOrder, models.PaymentInput, models.PaymentPatch]
	remote *client.Resource[models.PaymentOrder, models.PaymentInput, models.PaymentPatch]
	local  *fallback.Payments
}

func NewPaymentService(c client.Client, local *fallback.Payments, state *failover.State) PaymentService {
	remote := client.NewResource[models.PaymentOrder, models.PaymentInput, models.PaymentPatch](c, models.ResourcePayments)
	return &paymentService{facade: newFacade[models.PaymentOrder, models.PaymentInput, models.PaymentPatch](state, remote, local), remote: remote, local: local}
}

func (s *paymentService) Approve(ctx context.Context, id int64, notes string) (*models.Envelope[*models.PaymentOrder], error) {
	return run(ctx, s.state, verbApprove,
		func(ctx context.Context) (*models.Envelope[*models.PaymentOrder], error) {
			return s.remote.Action(ctx, id, verbApprove, decision{Notes: notes})
		},
		func(ctx context.Context) (*models.Envelope[*models.PaymentOrder], error) {
			return s.local.Approve(ctx, id, notes)
		})
}

func (s *paymentService) Reject(ctx context.Context, id int64, notes string) (*models.Envelope[*models.PaymentOrder], error) {
	return run(ctx, s.state, verbReject,
		func(ctx context.Context) (*models.Envelope[*models.PaymentOrder], error) {
			return s.remote.Action(ctx, id, verbReject, decision{Notes: notes})
		},
		func(ctx context.Context) (*models.Envelope[*models.PaymentOrder], error) {
			return s.local.Reject(ctx, id, notes)
		})
}
