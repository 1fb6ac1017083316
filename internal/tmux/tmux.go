package tmux

import (
	"fmt"
	"os"
	"strings"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// DefaultWindow is the window name used when none is configured.
const DefaultWindow = "schedule"

// Manager handles tmux operations
type Manager struct {
	tmux *gotmux.Tmux
}

// New creates a tmux manager
func New() (*Manager, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, err
	}
	return &Manager{tmux: t}, nil
}

// IsInsideTmux checks if we're running inside tmux
func IsInsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// SetBuffer loads text into the tmux paste buffer and forwards it to the
// outer terminal's clipboard when tmux is configured to.
func (m *Manager) SetBuffer(text string) error {
	if _, err := m.tmux.Command("set-buffer", "-w", "--", text); err != nil {
		return fmt.Errorf("tmux set-buffer: %w", err)
	}
	return nil
}

// WriteText lets the manager stand in as a clipboard backend.
func (m *Manager) WriteText(text string) error {
	return m.SetBuffer(text)
}

// OpenWindow focuses the window called name in the current session, or
// creates it running command in dir.
func (m *Manager) OpenWindow(name, dir, command string) error {
	name = WindowName(name)
	if _, err := m.tmux.Command("select-window", "-t", ":"+name); err == nil {
		return nil
	}

	args := []string{"new-window", "-n", name}
	if dir != "" {
		args = append(args, "-c", dir)
	}
	if command != "" {
		args = append(args, command)
	}
	if _, err := m.tmux.Command(args...); err != nil {
		return fmt.Errorf("tmux new-window %s: %w", name, err)
	}
	return nil
}

// WindowName makes name safe to use as a tmux target.
func WindowName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer(".", "_", ":", "_").Replace(name)
	if name == "" {
		return DefaultWindow
	}
	return name
}
