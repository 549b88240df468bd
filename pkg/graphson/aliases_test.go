package graphson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphson/pkg/process"
)

func TestAliases(t *testing.T) {
	assert.Equal(t, "global", DefaultAliases.Wire("global_"))
	assert.Equal(t, "global_", DefaultAliases.Host("global"))
	assert.Equal(t, "local", DefaultAliases.Wire("local"))
	assert.Equal(t, "local", DefaultAliases.Host("local"))

	var none *Aliases
	assert.Equal(t, "as_", none.Wire("as_"))

	ext := DefaultAliases.With(map[string]string{"keys_": "keys"})
	assert.Equal(t, "keys", ext.Wire("keys_"))
	assert.Equal(t, "in", ext.Wire("in_"))
	assert.Equal(t, "keys_", DefaultAliases.Wire("keys_"), "With must not modify the receiver")
}

func TestCustomAliasesRoundTrip(t *testing.T) {
	aliases := DefaultAliases.With(map[string]string{"OUT": "out"})
	w := newTestWriter(t, WithAliases(aliases))
	r := newTestReader(t, WithAliases(aliases))

	text := write(t, w, process.DirectionOut)
	assert.Equal(t, `{"@type":"g:Direction","@value":"out"}`, text)

	got, err := r.ReadObject(text)
	require.NoError(t, err)
	assert.Equal(t, process.DirectionOut, got)
}
