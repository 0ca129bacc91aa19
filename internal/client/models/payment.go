package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var PaymentStatuses = StatusSet{StatusPending, StatusVerified, StatusRejected}

// PaymentOrder is a buyer's manual transfer waiting for admin verification.
type PaymentOrder struct {
	ID            int64           `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	BuyerName     string          `json:"buyer_name"`
	StoreName     string          `json:"store_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentProof  string          `json:"payment_proof,omitempty"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	VerifiedAt    *time.Time      `json:"verified_at,omitempty"`
	Timestamps
}

type PaymentInput struct {
	OrderNumber   string          `json:"order_number"`
	BuyerName     string          `json:"buyer_name"`
	StoreName     string          `json:"store_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentProof  string          `json:"payment_proof,omitempty"`
}

type PaymentPatch struct {
	PaymentMethod *string          `json:"payment_method,omitempty"`
	PaymentProof  *string          `json:"payment_proof,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (p *PaymentOrder) RecordID() int64      { return p.ID }

// Detach gives p its own copy of VerifiedAt.
func (p *PaymentOrder) Detach() { p.VerifiedAt = copyTime(p.VerifiedAt) }

func (p *PaymentOrder) SetRecordID(id int64) { p.ID = id }

func (p *PaymentOrder) SearchText() []string {
	return []string{p.OrderNumber, p.BuyerName, p.StoreName}
}

func (p *PaymentOrder) Field(name string) (string, bool) {
	switch name {
	case "order_id", "id":
		return itoa(p.ID), true
	case "order_number":
		return p.OrderNumber, true
	case "store_name":
		return p.StoreName, true
	case "payment_method":
		return p.PaymentMethod, true
	case "status":
		return p.Status, true
	case "amount":
		return p.Amount.String(), true
	}
	return p.timeField(name)
}

func (pp PaymentPatch) Apply(p *PaymentOrder) {
	if pp.PaymentMethod != nil {
		p.PaymentMethod = *pp.PaymentMethod
	}
	if pp.PaymentProof != nil {
		p.PaymentProof = *pp.PaymentProof
	}
	if pp.Amount != nil {
		p.Amount = *pp.Amount
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.Notes != nil {
		p.Notes = *pp.Notes
	}
}
