package clipboard

import (
	"fmt"
	"io"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"devcap/internal/logging"
	"devcap/internal/ports"
)

// System implements ports.Clipboard using the platform clipboard tools
// (pbcopy, xclip/xsel/wl-copy, clip.exe). Without any of them it falls back
// to an OSC 52 escape sequence written to the terminal, which also works over SSH.
type System struct {
	terminal io.Writer
	write    func(string) error
	native   bool
}

// Verify interface compliance at compile time
var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a clipboard that falls back to OSC 52 on terminal.
// A nil terminal disables the fallback.
func NewSystem(terminal io.Writer) *System {
	return &System{
		terminal: terminal,
		write:    atotto.WriteAll,
		native:   !atotto.Unsupported,
	}
}

// WriteText copies text to the clipboard
func (s *System) WriteText(text string) error {
	if s.native {
		err := s.write(text)
		if err == nil {
			logging.Logger.Debug("Copied to system clipboard", "bytes", len(text))
			return nil
		}
		if s.terminal == nil {
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
		logging.Logger.Debug("System clipboard failed, using OSC 52", "error", err)
	}

	if s.terminal == nil {
		return fmt.Errorf("no clipboard utility available")
	}

	if _, err := osc52.New(text).WriteTo(s.terminal); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	logging.Logger.Debug("Copied via OSC 52", "bytes", len(text))
	return nil
}
