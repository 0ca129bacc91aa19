// Package tokens supplies the bearer token attached to backend requests.
// Acquiring a token (login) is outside this client; tokens are read from a
// file, an environment variable or entered at the prompt.
package tokens

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Static always returns the same token.
type Static string

func (s Static) Token() (string, bool) { return string(s), s != "" }

// Env reads the token from an environment variable on every call.
type Env string

func (e Env) Token() (string, bool) {
	v := strings.TrimSpace(os.Getenv(string(e)))
	return v, v != ""
}

// File reads the token from a file on every call, so a token refreshed by
// another tool is picked up without a restart. A missing file means no token.
type File struct {
	Path string
}

func (f File) Token() (string, bool) {
	if f.Path == "" {
		return "", false
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(data))
	return v, v != ""
}

// Save writes token to the file, readable by the owner only.
func (f File) Save(token string) error {
	if err := os.WriteFile(f.Path, []byte(strings.TrimSpace(token)+"\n"), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Memory holds a token set at runtime, e.g. from the REPL. Empty falls
// through to the next source of a Chain.
type Memory struct {
	mu    sync.RWMutex
	token string
}

func (m *Memory) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

func (m *Memory) Set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
}

// Source is implemented by every provider of this package.
type Source interface {
	Token() (string, bool)
}

// Chain returns the first token found.
type Chain []Source

func (c Chain) Token() (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if t, ok := s.Token(); ok {
			return t, true
		}
	}
	return "", false
}

var ErrNoExpiry = errors.New("token has no expiry")

// ExpiresAt reads the exp claim of a JWT without verifying its signature.
// It only serves to warn about a token that is about to expire; the backend
// does the real validation.
func ExpiresAt(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}
