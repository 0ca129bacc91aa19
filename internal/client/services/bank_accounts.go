package services

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// BankAccountService manages the payout accounts. Exactly one account is
// active whenever any exist, and the last account cannot be deleted. The
// local store enforces both rules the way the backend does.
type BankAccountService interface {
	CRUD[models.BankAccount, models.BankAccountInput, models.BankAccountPatch]
	// SetActive makes id the only active account.
	SetActive(ctx context.Context, id int64) (*models.Envelope[*models.BankAccount], error)
}

type bankAccountService struct {
	*facade[models.BankAccount, models.BankAccountInput, models.BankAccountPatch]
	remote *client.Resource[models.BankAccount, models.BankAccountInput, models.BankAccountPatch]
	local  *fallback.BankAccounts
}

func NewBankAccountService(c client.Client, local *fallback.BankAccounts, state *failover.State) BankAccountService {
	remote := client.NewResource[models.BankAccount, models.BankAccountInput, models.BankAccountPatch](c, models.ResourceBankAccounts)
	return &bankAccountService{facade: newFacade[models.BankAccount, models.BankAccountInput, models.BankAccountPatch](state, remote, local), remote: remote, local: local}
}

func (s *bankAccountService) SetActive(ctx context.Context, id int64) (*models.Envelope[*models.BankAccount], error) {
	return run(ctx, s.state, "set-active",
		func(ctx context.Context) (*models.Envelope[*models.BankAccount], error) {
			return s.remote.Action(ctx, id, verbSetActive, nil)
		},
		func(ctx context.Context) (*models.Envelope[*models.BankAccount], error) {
			return s.local.SetActive(ctx, id)
		})
}
