package fallback

// Set groups the local stores of every admin resource. It is created once
// per process and injected into the facades.
type Set struct {
	Categories   *Categories
	FAQs         *FAQs
	Reports      *Reports
	BankAccounts *BankAccounts
	Stores       *Stores
	Payments     *Payments
}

// NewSet builds every store with the default seed snapshots.
func NewSet(opts ...Option) *Set {
	return &Set{
		Categories:   NewCategories(opts...),
		FAQs:         NewFAQs(opts...),
		Reports:      NewReports(opts...),
		BankAccounts: NewBankAccounts(opts...),
		Stores:       NewStores(opts...),
		Payments:     NewPayments(opts...),
	}
}

// Reset returns every store to its unseeded state.
func (s *Set) Reset() {
	s.Categories.Reset()
	s.FAQs.Reset()
	s.Reports.Reset()
	s.BankAccounts.Reset()
	s.Stores.Reset()
	s.Payments.Reset()
}
