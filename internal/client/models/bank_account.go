package models

// Account types.
const (
	AccountTypeBank    = "bank"
	AccountTypeEwallet = "ewallet"
)

var AccountTypes = StatusSet{AccountTypeBank, AccountTypeEwallet}

// BankAccount is a payout destination shown to buyers at checkout. Exactly one
// account is active while any exist.
type BankAccount struct {
	ID            int64  `json:"account_id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	AccountType   string `json:"account_type"`
	IsActive      bool   `json:"is_active"`
	Timestamps
}

type BankAccountInput struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	AccountType   string `json:"account_type"`
	IsActive      bool   `json:"is_active,omitempty"`
}

type BankAccountPatch struct {
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	AccountName   *string `json:"account_name,omitempty"`
	AccountType   *string `json:"account_type,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (b *BankAccount) RecordID() int64      { return b.ID }
func (b *BankAccount) SetRecordID(id int64) { b.ID = id }

func (b *BankAccount) SearchText() []string {
	return []string{b.BankName, b.AccountNumber, b.AccountName}
}

func (b *BankAccount) Field(name string) (string, bool) {
	switch name {
	case "account_id", "id":
		return itoa(b.ID), true
	case "bank_name":
		return b.BankName, true
	case "account_type":
		return b.AccountType, true
	case "is_active":
		if b.IsActive {
			return "true", true
		}
		return "false", true
	case "status":
		if b.IsActive {
			return StatusActive, true
		}
		return StatusInactive, true
	}
	return b.timeField(name)
}

func (p BankAccountPatch) Apply(b *BankAccount) {
	if p.BankName != nil {
		b.BankName = *p.BankName
	}
	if p.AccountNumber != nil {
		b.AccountNumber = *p.AccountNumber
	}
	if p.AccountName != nil {
		b.AccountName = *p.AccountName
	}
	if p.AccountType != nil {
		b.AccountType = *p.AccountType
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}
