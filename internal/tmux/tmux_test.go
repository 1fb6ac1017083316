package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"classes", "classes"},
		{"", DefaultWindow},
		{"   ", DefaultWindow},
		{"v1.2", "v1_2"},
		{"a:b", "a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowName(tt.in))
		})
	}
}

func TestIsInsideTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	assert.False(t, IsInsideTmux())

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	assert.True(t, IsInsideTmux())
}
