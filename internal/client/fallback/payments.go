package fallback

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Payments is the local payment-verification store.
type Payments struct {
	c *Collection[models.PaymentOrder, *models.PaymentOrder]
}

func NewPayments(opts ...Option) *Payments {
	return NewPaymentsWithSeed(SeedPayments(), opts...)
}

func NewPaymentsWithSeed(seed []models.PaymentOrder, opts ...Option) *Payments {
	return &Payments{c: newCollection[models.PaymentOrder, *models.PaymentOrder](models.ResourcePayments, "payment", seed, newSettings(opts))}
}

func paymentStats(items []models.PaymentOrder) models.Stats {
	by := func(status string) int {
		return count(items, func(p *models.PaymentOrder) bool { return p.Status == status })
	}
	return models.Stats{
		"totalPayments":    len(items),
		"pendingPayments":  by(models.StatusPending),
		"verifiedPayments": by(models.StatusVerified),
		"rejectedPayments": by(models.StatusRejected),
	}
}

func stampVerification(p *models.PaymentOrder, now time.Time) {
	if p.Status == models.StatusVerified {
		if p.VerifiedAt == nil {
			t := now
			p.VerifiedAt = &t
		}
		return
	}
	p.VerifiedAt = nil
}

func (s *Payments) Reset() { s.c.Reset() }

func (s *Payments) All(ctx context.Context) []models.PaymentOrder { return s.c.all(ctx) }

func (s *Payments) List(ctx context.Context, q models.Query) (*models.Envelope[[]models.PaymentOrder], error) {
	return s.c.list(ctx, q, paymentStats), nil
}

func (s *Payments) Get(ctx context.Context, id int64) (*models.Envelope[*models.PaymentOrder], error) {
	return s.c.get(ctx, id), nil
}

func (s *Payments) Create(ctx context.Context, in models.PaymentInput) (*models.Envelope[*models.PaymentOrder], error) {
	rec := models.PaymentOrder{
		OrderNumber:   in.OrderNumber,
		BuyerName:     in.BuyerName,
		StoreName:     in.StoreName,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		PaymentProof:  in.PaymentProof,
		Status:        models.StatusPending,
	}
	return s.c.create(ctx, rec, func(_ []models.PaymentOrder, r *models.PaymentOrder, _ time.Time) error {
		if !r.Amount.IsPositive() {
			return fmt.Errorf("%w: amount must be positive", ErrInvalid)
		}
		return nil
	}), nil
}

func (s *Payments) Update(ctx context.Context, id int64, p models.PaymentPatch) (*models.Envelope[*models.PaymentOrder], error) {
	return s.c.update(ctx, id, "", func(_ []models.PaymentOrder, r *models.PaymentOrder, now time.Time) error {
		if p.Status != nil {
			if err := checkStatus(models.PaymentStatuses, *p.Status); err != nil {
				return err
			}
		}
		if p.Amount != nil && !p.Amount.IsPositive() {
			return fmt.Errorf("%w: amount must be positive", ErrInvalid)
		}
		p.Apply(r)
		stampVerification(r, now)
		return nil
	}), nil
}

func (s *Payments) Delete(ctx context.Context, id int64) (*models.Envelope[*models.PaymentOrder], error) {
	return s.c.remove(ctx, id, nil, nil), nil
}

func (s *Payments) decide(ctx context.Context, id int64, msg, status, notes string) *models.Envelope[*models.PaymentOrder] {
	return s.c.update(ctx, id, msg, func(_ []models.PaymentOrder, r *models.PaymentOrder, now time.Time) error {
		r.Status = status
		if notes != "" {
			r.Notes = notes
		}
		stampVerification(r, now)
		return nil
	})
}

// Approve marks the payment verified.
func (s *Payments) Approve(ctx context.Context, id int64, notes string) (*models.Envelope[*models.PaymentOrder], error) {
	return s.decide(ctx, id, "Payment verified successfully", models.StatusVerified, notes), nil
}

func (s *Payments) Reject(ctx context.Context, id int64, notes string) (*models.Envelope[*models.PaymentOrder], error) {
	return s.decide(ctx, id, "Payment rejected successfully", models.StatusRejected, notes), nil
}
