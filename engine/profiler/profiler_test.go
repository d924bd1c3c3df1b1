package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	p.now = func() time.Time { return clock }
	p.lastTime = start

	clock = start.Add(500 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Empty(t, buf.String())

	clock = start.Add(2 * time.Second)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "frames=2")
	assert.Contains(t, buf.String(), "redraws_per_sec=1")

	assert.Equal(t, uint64(2), p.TotalFrames())
	assert.False(t, p.Tick())
}
