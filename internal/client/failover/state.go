package failover

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

// Source names where a call was served from.
type Source string

const (
	SourceNone     Source = ""
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Policy selects how eagerly a resource returns to the remote source.
type Policy string

const (
	PolicyRetry  Policy = "retry"
	PolicySticky Policy = "sticky"
	PolicyLocal  Policy = "local"
)

// ParsePolicy validates a configured policy name. Empty means PolicyRetry.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case "":
		return PolicyRetry, nil
	case PolicyRetry, PolicySticky, PolicyLocal:
		return p, nil
	default:
		return "", fmt.Errorf("unknown failover policy %q", s)
	}
}

// State is the advisory per-resource record of the last source used.
type State struct {
	mu        sync.RWMutex
	resource  string
	policy    Policy
	last      Source
	offline   bool
	lastErr   string
	changedAt time.Time
	log       logging.Logger
}

// Status is a point-in-time copy of a State.
type Status struct {
	Resource   string    `json:"resource"`
	Policy     Policy    `json:"policy"`
	LastSource Source    `json:"last_source"`
	Offline    bool      `json:"offline"`
	LastError  string    `json:"last_error,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}

func NewState(resource string, policy Policy, log logging.Logger) *State {
	if policy == "" {
		policy = PolicyRetry
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &State{resource: resource, policy: policy, log: log.With("component", "failover", "resource", resource)}
}

func (s *State) Resource() string { return s.resource }

func (s *State) Policy() Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// SetPolicy changes the policy, e.g. to force a resource local-only.
func (s *State) SetPolicy(p Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = p
}

func (s *State) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Resource:   s.resource,
		Policy:     s.policy,
		LastSource: s.last,
		Offline:    s.offline,
		LastError:  s.lastErr,
		ChangedAt:  s.changedAt,
	}
}

// Reset clears the recorded source and the offline flag.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = SourceNone
	s.offline = false
	s.lastErr = ""
	s.changedAt = time.Time{}
}

func (s *State) skipRemote() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy == PolicyLocal || (s.policy == PolicySticky && s.offline)
}

func (s *State) markRemote(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offline {
		s.log.Info(ctx, "remote source reachable again")
	}
	if s.last != SourceRemote || s.offline {
		s.changedAt = time.Now()
	}
	s.last = SourceRemote
	s.offline = false
	s.lastErr = ""
}

func (s *State) markFallback(ctx context.Context, op string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.offline {
		s.log.Warn(ctx, "remote source failed, serving local data", "op", op, "error", cause)
		s.changedAt = time.Now()
	}
	s.last = SourceFallback
	s.offline = true
	if cause != nil {
		s.lastErr = cause.Error()
	}
}

// markLocal records a call served locally without attempting remote.
func (s *State) markLocal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != SourceFallback {
		s.changedAt = time.Now()
	}
	s.last = SourceFallback
}

// online clears the offline flag after a successful probe.
func (s *State) online(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offline {
		s.log.Info(ctx, "backend probe succeeded, remote source re-enabled")
		s.offline = false
		s.changedAt = time.Now()
	}
}
