// Package tui is the terminal front end: a bubbletea program driving a
// handler.Controller.
package tui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/passgenie/passgenie-go/internal/crypto"
	"github.com/passgenie/passgenie-go/internal/handler"
	"github.com/passgenie/passgenie-go/internal/middleware"
)

const (
	autoGenerateDelay = 180 * time.Millisecond
	toastDuration     = 1700 * time.Millisecond
	pulseDuration     = 180 * time.Millisecond
)

// Notifier collects toast messages raised by the controller until the model
// picks them up. Toast may be called from command goroutines.
type Notifier struct {
	mu      sync.Mutex
	pending []string
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Toast(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, message)
}

// drain returns the newest pending message and clears the queue.
func (n *Notifier) drain() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.pending) == 0 {
		return "", false
	}
	msg := n.pending[len(n.pending)-1]
	n.pending = n.pending[:0]
	return msg, true
}

type autoGenerateMsg struct{}

type hideToastMsg struct{ id int }

type endPulseMsg struct{ id int }

type copyDoneMsg struct{ err error }

// Options configures the model.
type Options struct {
	Labels handler.Labels
	// GenerateRPS caps how often Generate runs when the key auto-repeats.
	GenerateRPS float64
}

type model struct {
	ctx      context.Context
	ctrl     *handler.Controller
	notifier *Notifier
	labels   handler.Labels
	generate middleware.Action
	copy     middleware.Action

	keys keyMap
	help help.Model

	toast   string
	toastID int

	pulsing bool
	pulse   crypto.CharacterClass
	pulseID int

	width int
}

func newModel(ctx context.Context, ctrl *handler.Controller, notifier *Notifier, opts Options) *model {
	burst := int(opts.GenerateRPS)
	return &model{
		ctx:      ctx,
		ctrl:     ctrl,
		notifier: notifier,
		labels:   opts.Labels,
		generate: middleware.Chain(ctrl.Generate, middleware.Logger("generate"), middleware.RateLimit(opts.GenerateRPS, burst)),
		copy:     middleware.Chain(ctrl.Copy, middleware.Logger("copy")),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init schedules the first password shortly after start.
func (m *model) Init() tea.Cmd {
	return tea.Tick(autoGenerateDelay, func(time.Time) tea.Msg { return autoGenerateMsg{} })
}

// Run starts the terminal UI and blocks until the user quits or ctx ends.
func Run(ctx context.Context, ctrl *handler.Controller, notifier *Notifier, opts Options) error {
	p := tea.NewProgram(newModel(ctx, ctrl, notifier, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
