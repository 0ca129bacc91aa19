package services

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// OfflineSuffix is appended to the message of results served locally.
const OfflineSuffix = " (offline data)"

// DataSource is the shape shared by the remote resource and the local store
// of one admin resource.
type DataSource[T, In, P any] interface {
	List(ctx context.Context, q models.Query) (*models.Envelope[[]T], error)
	Get(ctx context.Context, id int64) (*models.Envelope[*T], error)
	Create(ctx context.Context, in In) (*models.Envelope[*T], error)
	Update(ctx context.Context, id int64, p P) (*models.Envelope[*T], error)
	Delete(ctx context.Context, id int64) (*models.Envelope[*T], error)
}

// CRUD is the generic part of every facade.
//
// Contract:
//   - transport failures are recovered locally and never returned;
//   - remote validation errors come back as *client.APIError;
//   - local rule violations and unknown IDs come back as an envelope with
//     Success=false and a nil error.
type CRUD[T, In, P any] interface {
	DataSource[T, In, P]
	// State returns the failover state of the resource.
	State() *failover.State
}

type facade[T, In, P any] struct {
	state  *failover.State
	remote DataSource[T, In, P]
	local  DataSource[T, In, P]
}

func newFacade[T, In, P any](state *failover.State, remote, local DataSource[T, In, P]) *facade[T, In, P] {
	return &facade[T, In, P]{state: state, remote: remote, local: local}
}

func (f *facade[T, In, P]) State() *failover.State { return f.state }

func (f *facade[T, In, P]) List(ctx context.Context, q models.Query) (*models.Envelope[[]T], error) {
	return run(ctx, f.state, "list",
		func(ctx context.Context) (*models.Envelope[[]T], error) { return f.remote.List(ctx, q) },
		func(ctx context.Context) (*models.Envelope[[]T], error) { return f.local.List(ctx, q) })
}

func (f *facade[T, In, P]) Get(ctx context.Context, id int64) (*models.Envelope[*T], error) {
	return run(ctx, f.state, "get",
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.remote.Get(ctx, id) },
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.local.Get(ctx, id) })
}

func (f *facade[T, In, P]) Create(ctx context.Context, in In) (*models.Envelope[*T], error) {
	return run(ctx, f.state, "create",
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.remote.Create(ctx, in) },
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.local.Create(ctx, in) })
}

func (f *facade[T, In, P]) Update(ctx context.Context, id int64, p P) (*models.Envelope[*T], error) {
	return run(ctx, f.state, "update",
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.remote.Update(ctx, id, p) },
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.local.Update(ctx, id, p) })
}

func (f *facade[T, In, P]) Delete(ctx context.Context, id int64) (*models.Envelope[*T], error) {
	return run(ctx, f.state, "delete",
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.remote.Delete(ctx, id) },
		func(ctx context.Context) (*models.Envelope[*T], error) { return f.local.Delete(ctx, id) })
}

// run dispatches one call and tags a locally served result.
func run[X any](ctx context.Context, st *failover.State, op string, remote, local func(context.Context) (*models.Envelope[X], error)) (*models.Envelope[X], error) {
	env, src, err := failover.Do(ctx, st, op, remote, local)
	if err != nil {
		return nil, err
	}
	if src == failover.SourceFallback && env != nil {
		env.Fallback = true
		env.Message += OfflineSuffix
	}
	return env, nil
}
