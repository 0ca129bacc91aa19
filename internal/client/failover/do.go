package failover

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
)

// Do runs one operation against remote and, on a transport failure, against
// local. It returns the result together with the source that produced it.
func Do[R any](ctx context.Context, s *State, op string, remote, local func(context.Context) (R, error)) (R, Source, error) {
	if s.skipRemote() {
		s.markLocal()
		r, err := local(ctx)
		return r, SourceFallback, err
	}

	r, err := remote(ctx)
	if err == nil {
		s.markRemote(ctx)
		return r, SourceRemote, nil
	}

	var zero R
	if ctx.Err() != nil {
		return zero, SourceRemote, err
	}
	if !client.IsUnavailable(err) {
		// the backend answered, so it is reachable
		s.markRemote(ctx)
		return zero, SourceRemote, err
	}

	s.markFallback(ctx, op, err)
	r, err = local(ctx)
	return r, SourceFallback, err
}
