package fallback

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// BankAccounts is the local bank-account store. While the collection is
// non-empty exactly one account is active, and the last account cannot be
// deleted.
type BankAccounts struct {
	c *Collection[models.BankAccount, *models.BankAccount]
}

func NewBankAccounts(opts ...Option) *BankAccounts {
	return NewBankAccountsWithSeed(SeedBankAccounts(), opts...)
}

func NewBankAccountsWithSeed(seed []models.BankAccount, opts ...Option) *BankAccounts {
	return &BankAccounts{c: newCollection[models.BankAccount, *models.BankAccount](models.ResourceBankAccounts, "bank account", seed, newSettings(opts))}
}

func bankAccountStats(items []models.BankAccount) models.Stats {
	return models.Stats{
		"totalAccounts":   len(items),
		"activeAccounts":  count(items, func(b *models.BankAccount) bool { return b.IsActive }),
		"bankAccounts":    count(items, func(b *models.BankAccount) bool { return b.AccountType == models.AccountTypeBank }),
		"ewalletAccounts": count(items, func(b *models.BankAccount) bool { return b.AccountType == models.AccountTypeEwallet }),
	}
}

func checkAccountType(t string) error {
	if !models.AccountTypes.Contains(t) {
		return fmt.Errorf("%w: account type %q must be bank or ewallet", ErrInvalid, t)
	}
	return nil
}

// deactivateOthers clears is_active on every account except keep.
func deactivateOthers(items []models.BankAccount, keep int64, now time.Time) {
	for i := range items {
		if items[i].ID != keep && items[i].IsActive {
			items[i].IsActive = false
			items[i].Touch(now, false)
		}
	}
}

func (s *BankAccounts) Reset() { s.c.Reset() }

func (s *BankAccounts) All(ctx context.Context) []models.BankAccount { return s.c.all(ctx) }

func (s *BankAccounts) List(ctx context.Context, q models.Query) (*models.Envelope[[]models.BankAccount], error) {
	return s.c.list(ctx, q, bankAccountStats), nil
}

func (s *BankAccounts) Get(ctx context.Context, id int64) (*models.Envelope[*models.BankAccount], error) {
	return s.c.get(ctx, id), nil
}

// Create activates the new account when asked to or when it is the first
// one; activating it deactivates every other account.
func (s *BankAccounts) Create(ctx context.Context, in models.BankAccountInput) (*models.Envelope[*models.BankAccount], error) {
	rec := models.BankAccount{
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		AccountName:   in.AccountName,
		AccountType:   in.AccountType,
		IsActive:      in.IsActive,
	}
	return s.c.create(ctx, rec, func(items []models.BankAccount, r *models.BankAccount, now time.Time) error {
		if err := checkAccountType(r.AccountType); err != nil {
			return err
		}
		if len(items) == 0 {
			r.IsActive = true
		}
		if r.IsActive {
			// the new record has no ID yet, so every existing one is cleared
			deactivateOthers(items, 0, now)
		}
		return nil
	}), nil
}

func (s *BankAccounts) Update(ctx context.Context, id int64, p models.BankAccountPatch) (*models.Envelope[*models.BankAccount], error) {
	return s.c.update(ctx, id, "", func(items []models.BankAccount, r *models.BankAccount, now time.Time) error {
		if p.AccountType != nil {
			if err := checkAccountType(*p.AccountType); err != nil {
				return err
			}
		}
		if p.IsActive != nil && !*p.IsActive && r.IsActive {
			return fmt.Errorf("%w: one bank account must stay active, activate another account instead", ErrConflict)
		}
		if p.IsActive != nil && *p.IsActive {
			deactivateOthers(items, r.ID, now)
		}
		p.Apply(r)
		return nil
	}), nil
}

// SetActive makes id the only active account.
func (s *BankAccounts) SetActive(ctx context.Context, id int64) (*models.Envelope[*models.BankAccount], error) {
	return s.c.update(ctx, id, "Bank account activated successfully", func(items []models.BankAccount, r *models.BankAccount, now time.Time) error {
		deactivateOthers(items, r.ID, now)
		r.IsActive = true
		return nil
	}), nil
}

// Delete refuses to remove the last account. Removing the active account
// promotes the most recently created remaining one.
func (s *BankAccounts) Delete(ctx context.Context, id int64) (*models.Envelope[*models.BankAccount], error) {
	return s.c.remove(ctx, id,
		func(items []models.BankAccount, _ *models.BankAccount) (deleteMode, error) {
			if len(items) <= 1 {
				return removeRecord, fmt.Errorf("%w: at least one bank account is required", ErrLastRecord)
			}
			return removeRecord, nil
		},
		func(items []models.BankAccount, removed models.BankAccount, now time.Time) {
			if !removed.IsActive || len(items) == 0 {
				return
			}
			newest := 0
			for i := range items {
				if items[i].CreatedAt.After(items[newest].CreatedAt) {
					newest = i
				}
			}
			items[newest].IsActive = true
			items[newest].Touch(now, false)
		},
	), nil
}
