package event

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, KindRedraw, Redraw().Kind)

	r := Resize(640, 0)
	assert.Equal(t, KindResize, r.Kind)
	assert.Equal(t, 640, r.Width)
	assert.Equal(t, 0, r.Height)

	k := KeyPress('a', 3, 4)
	assert.Equal(t, KindKeyPress, k.Kind)
	assert.Equal(t, 'a', k.Char)
	assert.Equal(t, 3, k.X)

	s := SpecialKeyPress(common.KeyUp, 0, 0)
	assert.Equal(t, KindSpecialKeyPress, s.Kind)
	assert.Equal(t, common.KeyUp, s.Key)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Redraw", Redraw().String())
	assert.Equal(t, "Resize(10, 20)", Resize(10, 20).String())
	assert.Equal(t, `KeyPress('a')`, KeyPress('a', 0, 0).String())
	assert.Equal(t, "SpecialKeyPress(PageDown)", SpecialKeyPress(common.KeyPageDown, 0, 0).String())
}

func TestFromKeys(t *testing.T) {
	events, err := FromKeys("aA<PageUp>r<Esc>")
	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Equal(t, KeyPress('a', 0, 0), events[0])
	assert.Equal(t, KeyPress('A', 0, 0), events[1])
	assert.Equal(t, SpecialKeyPress(common.KeyPageUp, 0, 0), events[2])
	assert.Equal(t, KeyPress('r', 0, 0), events[3])
	assert.Equal(t, KeyPress(common.CharEscape, 0, 0), events[4])
}

func TestFromKeysErrors(t *testing.T) {
	_, err := FromKeys("a<Up")
	assert.Error(t, err)
	_, err = FromKeys("<Home>")
	assert.Error(t, err)

	events, err := FromKeys("")
	assert.NoError(t, err)
	assert.Empty(t, events)
}
