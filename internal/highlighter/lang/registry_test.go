package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		path string
		want *Language
	}{
		{"agent-server.ts", JavaScript},
		{"src/App.TSX", JavaScript},
		{"index.mjs", JavaScript},
		{"main.go", nil},
		{"README", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ForFile(tt.path))
		})
	}
}

func TestForFence(t *testing.T) {
	assert.Equal(t, JavaScript, ForFence("ts"))
	assert.Equal(t, JavaScript, ForFence("TypeScript title=register.ts"))
	assert.Equal(t, JavaScript, ForFence("{.js}"))
	assert.Nil(t, ForFence("python"))
	assert.Nil(t, ForFence(""))
}
