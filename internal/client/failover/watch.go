package failover

import (
	"context"
	"time"
)

// ProbeTimeout bounds a single health probe.
var ProbeTimeout = 3 * time.Second

// Watch probes the backend every interval until ctx is done. A successful
// probe clears the offline flag on every state; onChange, when set, is
// called whenever reachability flips.
func Watch(ctx context.Context, interval time.Duration, ping func(context.Context) error, onChange func(online bool), states ...*State) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	known, reachable := false, false
	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
			err := ping(pctx)
			cancel()

			up := err == nil
			if up {
				for _, s := range states {
					s.online(ctx)
				}
			}
			if onChange != nil && (!known || up != reachable) {
				onChange(up)
			}
			known, reachable = true, up

		case <-ctx.Done():
			return
		}
	}
}
