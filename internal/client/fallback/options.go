package fallback

import (
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

type settings struct {
	now      func() time.Time
	log      logging.Logger
	mirror   Mirror
	mirrored map[string]bool
}

// Option configures a store or a Set.
type Option func(*settings)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithLogger sets the logger used for mirror diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithMirror mirrors the named resources into m. With no names every
// resource is mirrored.
func WithMirror(m Mirror, resources ...string) Option {
	return func(s *settings) {
		s.mirror = m
		s.mirrored = nil
		if len(resources) > 0 {
			s.mirrored = make(map[string]bool, len(resources))
			for _, r := range resources {
				s.mirrored[r] = true
			}
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		now: func() time.Time { return time.Now().UTC() },
		log: logging.NewNop(),
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func (s settings) mirrorFor(resource string) Mirror {
	if s.mirror == nil {
		return nil
	}
	if s.mirrored != nil && !s.mirrored[resource] {
		return nil
	}
	return s.mirror
}
