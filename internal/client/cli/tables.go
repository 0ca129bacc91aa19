package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/services"
)

// result is an envelope with its data type erased for printing.
type result struct {
	Success    bool
	Message    string
	Error      string
	Errors     map[string]string
	Fallback   bool
	Data       any
	Pagination *models.Pagination
	Stats      models.Stats
}

func resultOf[X any](env *models.Envelope[X], err error) (result, error) {
	if err != nil {
		return result{}, err
	}
	return result{
		Success:    env.Success,
		Message:    env.Message,
		Error:      env.Error,
		Errors:     env.Errors,
		Fallback:   env.Fallback,
		Data:       env.Data,
		Pagination: env.Pagination,
		Stats:      env.Stats,
	}, nil
}

// table runs the generic operations of one resource from command-line
// arguments.
type table interface {
	list(ctx context.Context, q models.Query) (result, error)
	get(ctx context.Context, id int64) (result, error)
	create(ctx context.Context, items []models.Assignment) (result, error)
	update(ctx context.Context, id int64, items []models.Assignment) (result, error)
	remove(ctx context.Context, id int64) (result, error)
}

type crudTable[T, In, P any] struct {
	svc        services.CRUD[T, In, P]
	checkInput func(In) error
	checkPatch func(P) error
}

func (t crudTable[T, In, P]) list(ctx context.Context, q models.Query) (result, error) {
	env, err := t.svc.List(ctx, q)
	return resultOf(env, err)
}

func (t crudTable[T, In, P]) get(ctx context.Context, id int64) (result, error) {
	env, err := t.svc.Get(ctx, id)
	return resultOf(env, err)
}

func (t crudTable[T, In, P]) create(ctx context.Context, items []models.Assignment) (result, error) {
	var in In
	if err := models.Assign(&in, items); err != nil {
		return result{}, err
	}
	if t.checkInput != nil {
		if err := t.checkInput(in); err != nil {
			return result{}, err
		}
	}
	env, err := t.svc.Create(ctx, in)
	return resultOf(env, err)
}

func (t crudTable[T, In, P]) update(ctx context.Context, id int64, items []models.Assignment) (result, error) {
	var p P
	if err := models.Assign(&p, items); err != nil {
		return result{}, err
	}
	if t.checkPatch != nil {
		if err := t.checkPatch(p); err != nil {
			return result{}, err
		}
	}
	env, err := t.svc.Update(ctx, id, p)
	return resultOf(env, err)
}

func (t crudTable[T, In, P]) remove(ctx context.Context, id int64) (result, error) {
	env, err := t.svc.Delete(ctx, id)
	return resultOf(env, err)
}

func newTables(s *services.Services) map[string]table {
	return map[string]table{
		models.ResourceCategories: crudTable[models.Category, models.CategoryInput, models.CategoryPatch]{
			svc:        s.Categories,
			checkInput: models.ValidateCategoryInput,
			checkPatch: models.ValidateCategoryPatch,
		},
		models.ResourceFAQs:         crudTable[models.FAQ, models.FAQInput, models.FAQPatch]{svc: s.FAQs},
		models.ResourceReports:      crudTable[models.Report, models.ReportInput, models.ReportPatch]{svc: s.Reports},
		models.ResourceBankAccounts: crudTable[models.BankAccount, models.BankAccountInput, models.BankAccountPatch]{svc: s.BankAccounts},
		models.ResourceStores:       crudTable[models.Store, models.StoreInput, models.StorePatch]{svc: s.Stores},
		models.ResourcePayments:     crudTable[models.PaymentOrder, models.PaymentInput, models.PaymentPatch]{svc: s.Payments},
	}
}

// parseQuery turns name=value arguments into list parameters.
func parseQuery(args []string) (models.Query, error) {
	items, err := models.AssignmentsFromStrings(args)
	if err != nil {
		return models.Query{}, err
	}
	v := url.Values{}
	for _, it := range items {
		v.Set(it.Name, it.Value)
	}
	return models.QueryFromValues(v), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
