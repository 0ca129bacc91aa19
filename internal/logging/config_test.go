package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json"}, &buf)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown", "resource", "faqs")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "faqs", rec["resource"])
}

func TestNew_TextFormatDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{}, &buf)

	log.Debug(context.Background(), "dbg")
	log.Info(context.Background(), "inf")

	out := buf.String()
	assert.NotContains(t, out, "msg=dbg")
	assert.Contains(t, out, "msg=inf")
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.With("a", 1).Error(context.Background(), "dropped")
}
