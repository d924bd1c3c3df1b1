package main

import (
	"bytes"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/demos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDispatchesWithoutWindow(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"list"}, &out, &errOut))
	for _, d := range demos.All() {
		assert.Contains(t, out.String(), d.Name)
	}

	out.Reset()
	require.NoError(t, run([]string{"frame", "helix"}, &out, &errOut))
	assert.Contains(t, out.String(), "line_strip")
}

func TestRunReportsUnknownDemo(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"frame", "teapot"}, &out, &errOut)
	assert.ErrorIs(t, err, demos.ErrUnknownDemo)
}
