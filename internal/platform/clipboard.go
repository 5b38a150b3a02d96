// Package platform adapts host capabilities (clipboard, environment) to the
// ports used by the controller.
package platform

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct {
	write func(string) error
}

// NewSystemClipboard returns a clipboard backed by the host's clipboard
// utilities (pbcopy, xclip, xsel, wl-copy or the Windows API).
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{write: clipboard.WriteAll}
}

// WriteText copies text to the clipboard. The call runs on its own goroutine
// so ctx cancellation returns immediately.
func (c *SystemClipboard) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	done := make(chan error, 1)
	go func() { done <- c.write(text) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
