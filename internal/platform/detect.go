package platform

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Detector reports whether the program runs embedded in another host
// (a terminal multiplexer or an editor terminal).
type Detector interface {
	IsEmbedded(ctx context.Context) (bool, error)
}

// EnvDetector inspects environment variables. Mode "true" or "false" forces
// the answer; any other mode auto-detects.
type EnvDetector struct {
	Mode   string
	Lookup func(string) string
}

// NewEnvDetector returns a detector reading the process environment.
func NewEnvDetector(mode string) *EnvDetector {
	return &EnvDetector{Mode: mode, Lookup: os.Getenv}
}

func (d *EnvDetector) IsEmbedded(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	switch d.Mode {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	switch {
	case d.Lookup("TMUX") != "":
		return true, nil
	case d.Lookup("INSIDE_EMACS") != "":
		return true, nil
	case strings.EqualFold(d.Lookup("TERM_PROGRAM"), "vscode"):
		return true, nil
	}
	return false, nil
}

// Embedded asks d and treats any failure as a standalone host.
func Embedded(ctx context.Context, d Detector) bool {
	embedded, err := d.IsEmbedded(ctx)
	if err != nil {
		slog.WarnContext(ctx, "environment detection failed, assuming standalone terminal", "error", err)
		return false
	}
	return embedded
}
