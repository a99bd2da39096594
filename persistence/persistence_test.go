package persistence_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/arcsolve/cspgraph"
	"github.com/katalvlaran/arcsolve/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCSPGraph_NotImplemented(t *testing.T) {
	g := cspgraph.New()
	require.NoError(t, g.AddVariable("V", 1))

	var buf bytes.Buffer
	err := persistence.SaveCSPGraph(&buf, g)

	assert.ErrorIs(t, err, persistence.ErrNotImplemented)
	assert.Zero(t, buf.Len(), "stub must write nothing")
}

func TestLoadCSPGraph_NotImplemented(t *testing.T) {
	g, err := persistence.LoadCSPGraph(strings.NewReader("anything"))

	assert.ErrorIs(t, err, persistence.ErrNotImplemented)
	assert.Nil(t, g)
}
