package services

import (
	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

// Deps are the collaborators shared by every facade.
type Deps struct {
	Client client.Client
	Local  *fallback.Set
	// Policies overrides the failover policy per resource name.
	Policies map[string]failover.Policy
	Logger   logging.Logger
}

// Services bundles the facades of all admin resources.
type Services struct {
	Categories   CategoryService
	FAQs         FAQService
	Reports      ReportService
	BankAccounts BankAccountService
	Stores       StoreService
	Payments     PaymentService

	local  *fallback.Set
	states []*failover.State
}

// New wires one facade per resource. A nil Deps.Local gets default seeded
// stores.
func New(d Deps) *Services {
	if d.Logger == nil {
		d.Logger = logging.NewNop()
	}
	if d.Local == nil {
		d.Local = fallback.NewSet(fallback.WithLogger(d.Logger))
	}

	s := &Services{local: d.Local}
	state := func(resource string) *failover.State {
		st := failover.NewState(resource, d.Policies[resource], d.Logger)
		s.states = append(s.states, st)
		return st
	}

	s.Categories = NewCategoryService(d.Client, d.Local.Categories, state(models.ResourceCategories))
	s.FAQs = NewFAQService(d.Client, d.Local.FAQs, state(models.ResourceFAQs))
	s.Reports = NewReportService(d.Client, d.Local.Reports, state(models.ResourceReports))
	s.BankAccounts = NewBankAccountService(d.Client, d.Local.BankAccounts, state(models.ResourceBankAccounts))
	s.Stores = NewStoreService(d.Client, d.Local.Stores, state(models.ResourceStores))
	s.Payments = NewPaymentService(d.Client, d.Local.Payments, state(models.ResourcePayments))
	return s
}

// States returns the failover state of every resource, e.g. for
// failover.Watch.
func (s *Services) States() []*failover.State {
	return append([]*failover.State(nil), s.states...)
}

// State returns the failover state of one resource.
func (s *Services) State(resource string) (*failover.State, bool) {
	for _, st := range s.states {
		if st.Resource() == resource {
			return st, true
		}
	}
	return nil, false
}

func (s *Services) Statuses() []failover.Status {
	out := make([]failover.Status, 0, len(s.states))
	for _, st := range s.states {
		out = append(out, st.Status())
	}
	return out
}

// Reset drops local data and failover history.
func (s *Services) Reset() {
	s.local.Reset()
	for _, st := range s.states {
		st.Reset()
	}
}
