package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// Resource is the remote data source of one admin resource. T is the record
// type, In the create payload and P the update patch.
type Resource[T, In, P any] struct {
	c    Client
	path string
}

func NewResource[T, In, P any](c Client, resource string) *Resource[T, In, P] {
	return &Resource[T, In, P]{c: c, path: ResourcePath(resource)}
}

func (r *Resource[T, In, P]) item(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

// single finalizes a decoded envelope. A 2xx without an explicit failure is
// a success even when the body omitted the flag.
func single[T any](env *models.Envelope[*T]) *models.Envelope[*T] {
	env.Success = true
	return env
}

func (r *Resource[T, In, P]) List(ctx context.Context, q models.Query) (*models.Envelope[[]T], error) {
	var env models.Envelope[[]T]
	if err := r.c.Do(ctx, http.MethodGet, r.path, q.Values(), nil, &env); err != nil {
		return nil, err
	}
	env.Success = true
	if env.Data == nil {
		env.Data = []T{}
	}
	return &env, nil
}

func (r *Resource[T, In, P]) Get(ctx context.Context, id int64) (*models.Envelope[*T], error) {
	var env models.Envelope[*T]
	if err := r.c.Do(ctx, http.MethodGet, r.item(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return single(&env), nil
}

func (r *Resource[T, In, P]) Create(ctx context.Context, in In) (*models.Envelope[*T], error) {
	var env models.Envelope[*T]
	if err := r.c.Do(ctx, http.MethodPost, r.path, nil, in, &env); err != nil {
		return nil, err
	}
	return single(&env), nil
}

func (r *Resource[T, In, P]) Update(ctx context.Context, id int64, p P) (*models.Envelope[*T], error) {
	var env models.Envelope[*T]
	if err := r.c.Do(ctx, http.MethodPut, r.item(id), nil, p, &env); err != nil {
		return nil, err
	}
	return single(&env), nil
}

func (r *Resource[T, In, P]) Delete(ctx context.Context, id int64) (*models.Envelope[*T], error) {
	var env models.Envelope[*T]
	if err := r.c.Do(ctx, http.MethodDelete, r.item(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return single(&env), nil
}

// Action invokes PATCH /:id/<verb>, e.g. "set-active" or "approve". body may
// be nil.
func (r *Resource[T, In, P]) Action(ctx context.Context, id int64, verb string, body any) (*models.Envelope[*T], error) {
	var env models.Envelope[*T]
	if err := r.c.Do(ctx, http.MethodPatch, r.item(id)+"/"+verb, nil, body, &env); err != nil {
		return nil, err
	}
	return single(&env), nil
}
