// Package clipboard writes text to whichever clipboard the terminal session
// can reach: the desktop clipboard, the tmux paste buffer, or the terminal
// itself via OSC 52.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	system "github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/jh3/class-schedule/internal/tmux"
)

// Backend names accepted in configuration.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendTmux   = "tmux"
	BackendOSC52  = "osc52"
)

// Backends lists every accepted backend name.
var Backends = []string{BackendAuto, BackendSystem, BackendTmux, BackendOSC52}

var ErrUnsupported = errors.New("clipboard: no usable backend")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System uses the desktop clipboard (xclip/xsel/wl-copy, pbcopy, or the
// Windows API).
type System struct{}

func (System) WriteText(text string) error {
	if system.Unsupported {
		return ErrUnsupported
	}
	return system.WriteAll(text)
}

// OSC52 asks the terminal emulator to set the clipboard.
type OSC52 struct {
	out *termenv.Output
}

// NewOSC52 writes the escape sequence to w.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{out: termenv.NewOutput(w)}
}

func (o *OSC52) WriteText(text string) error {
	o.out.Copy(text)
	return nil
}

// Chain tries each writer in turn until one succeeds.
type Chain []Writer

func (c Chain) WriteText(text string) error {
	if len(c) == 0 {
		return ErrUnsupported
	}
	var errs []error
	for _, w := range c {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// New builds the writer for a backend name.
func New(backend string) (Writer, error) {
	switch strings.ToLower(backend) {
	case "", BackendAuto:
		return auto(), nil
	case BackendSystem:
		return System{}, nil
	case BackendTmux:
		if !tmux.IsInsideTmux() {
			return nil, fmt.Errorf("clipboard backend %q: not running inside tmux", backend)
		}
		mgr, err := tmux.New()
		if err != nil {
			return nil, fmt.Errorf("clipboard backend %q: %w", backend, err)
		}
		return mgr, nil
	case BackendOSC52:
		return NewOSC52(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}

// auto prefers the desktop clipboard, then tmux, then OSC 52.
func auto() Writer {
	var chain Chain
	if !system.Unsupported {
		chain = append(chain, System{})
	}
	if tmux.IsInsideTmux() {
		if mgr, err := tmux.New(); err == nil {
			chain = append(chain, mgr)
		}
	}
	return append(chain, NewOSC52(os.Stdout))
}
