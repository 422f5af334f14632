package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyInternal(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.UsesSystem())
	assert.Empty(t, m.Contents())

	require.NoError(t, m.Copy("const a = 1 < 2;"))
	assert.Equal(t, "const a = 1 < 2;", m.Contents())
}

func TestCopySystem(t *testing.T) {
	var written []string
	m := &Manager{system: true, write: func(s string) error {
		written = append(written, s)
		return nil
	}}

	require.NoError(t, m.Copy("x"))
	assert.Equal(t, []string{"x"}, written)
	assert.Equal(t, "x", m.Contents())
}

func TestCopySystemFailureKeepsInternal(t *testing.T) {
	boom := errors.New("no display")
	m := &Manager{system: true, write: func(string) error { return boom }}

	err := m.Copy("kept")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "kept", m.Contents())
}
