package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, 500, c.Width)
	assert.Equal(t, 500, c.Height)
	assert.Equal(t, 100, c.X)
	assert.Equal(t, 100, c.Y)
	assert.True(t, c.DoubleBuffered)
}

func TestNewConfigOptions(t *testing.T) {
	c := NewConfig(WithTitle("helix.cpp"), WithWidth(640), WithHeight(480), WithPosition(5, 6), WithDoubleBuffer(false))
	assert.Equal(t, Config{Title: "helix.cpp", Width: 640, Height: 480, X: 5, Y: 6}, c)

	replaced := NewConfig(WithConfig(c), WithTitle("other"))
	assert.Equal(t, "other", replaced.Title)
	assert.Equal(t, 640, replaced.Width)
}

func TestHeadlessReplaysEvents(t *testing.T) {
	w := NewHeadless([]event.Event{event.Resize(300, 200), event.KeyPress('a', 0, 0), event.Redraw()})
	var got []event.Event
	w.SetEventCallback(func(e event.Event) { got = append(got, e) })

	w.WaitEvents()
	assert.Equal(t, 300, w.Width())
	assert.Equal(t, 200, w.Height())
	w.WaitEvents()
	w.WaitEvents()
	assert.True(t, w.IsRunning())
	w.WaitEvents()
	assert.False(t, w.IsRunning())

	require.Len(t, got, 3)
	assert.Equal(t, event.KindRedraw, got[2].Kind)
}

func TestHeadlessClose(t *testing.T) {
	w := NewHeadless(nil, WithDoubleBuffer(false))
	assert.False(t, w.DoubleBuffered())

	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), ErrClosed)
}
