package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/passgenie/passgenie-go/internal/crypto"
	"github.com/passgenie/passgenie-go/internal/model"
	"github.com/passgenie/passgenie-go/internal/service"
)

// Length slider bounds.
const (
	MinLength = 4
	MaxLength = 64
)

// Toast messages shown to the user.
const (
	MsgSelectClass    = "Select at least one character set"
	MsgGenerateFirst  = "Generate a password first"
	MsgCopied         = "Copied to clipboard"
	MsgCopyFailed     = "Could not copy"
	MsgGenerateFailed = "Could not generate a password"
)

var ErrLastActiveClass = errors.New("at least one character set must stay selected")

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows short-lived messages to the user.
type Notifier interface {
	Toast(message string)
}

// Toggle is a character class switch in the UI.
type Toggle struct {
	Class  crypto.CharacterClass
	Active bool
}

// State is everything the UI shows. It is owned by a single Controller.
type State struct {
	Length   int
	Toggles  []Toggle
	Output   string
	Strength *model.GenerateResponse
	History  *service.History
}

// NewState builds the initial state with the given length and active
// classes. Toggles are listed in display order.
func NewState(length int, active []crypto.CharacterClass) *State {
	on := make(map[crypto.CharacterClass]bool, len(active))
	for _, c := range active {
		on[c] = true
	}

	toggles := make([]Toggle, 0, len(crypto.AllClasses()))
	for _, c := range crypto.AllClasses() {
		toggles = append(toggles, Toggle{Class: c, Active: on[c]})
	}

	return &State{
		Length:  clampLength(length),
		Toggles: toggles,
		History: service.NewHistory(),
	}
}

// ActiveClasses returns the active classes in display order.
func (s *State) ActiveClasses() []crypto.CharacterClass {
	var classes []crypto.CharacterClass
	for _, t := range s.Toggles {
		if t.Active {
			classes = append(classes, t.Class)
		}
	}
	return classes
}

// LengthLabel is the text shown next to the length slider.
func (s *State) LengthLabel() string {
	return strconv.Itoa(s.Length)
}

// Controller handles user actions against a State. Copy may run on another
// goroutine than the other actions; mu guards the output it reads.
type Controller struct {
	mu        sync.Mutex
	service   *service.GeneratorService
	state     *State
	clipboard Clipboard
	notifier  Notifier
}

// NewController creates a new Controller.
func NewController(svc *service.GeneratorService, state *State, clipboard Clipboard, notifier Notifier) *Controller {
	return &Controller{
		service:   svc,
		state:     state,
		clipboard: clipboard,
		notifier:  notifier,
	}
}

// State returns the controller's state for rendering.
func (c *Controller) State() *State {
	return c.state
}

// SetLength sets the password length, clamped to the slider bounds.
func (c *Controller) SetLength(n int) int {
	c.state.Length = clampLength(n)
	return c.state.Length
}

// AdjustLength moves the slider by delta.
func (c *Controller) AdjustLength(delta int) int {
	return c.SetLength(c.state.Length + delta)
}

// Toggle flips the given class. Turning off the last active class is
// refused with ErrLastActiveClass.
func (c *Controller) Toggle(class crypto.CharacterClass) error {
	for i := range c.state.Toggles {
		t := &c.state.Toggles[i]
		if t.Class != class {
			continue
		}
		if t.Active && len(c.state.ActiveClasses()) == 1 {
			return ErrLastActiveClass
		}
		t.Active = !t.Active
		return nil
	}
	return crypto.ErrUnknownClass
}

// Generate creates a new password from the current state, rates it and
// records it in the history.
func (c *Controller) Generate(ctx context.Context) error {
	classes := c.state.ActiveClasses()
	if len(classes) == 0 {
		c.notifier.Toast(MsgSelectClass)
		return crypto.ErrNoCharacterTypes
	}

	resp, err := c.service.GenerateClasses(c.state.Length, classes)
	if err != nil {
		slog.ErrorContext(ctx, "password generation failed", "length", c.state.Length, "error", err)
		c.notifier.Toast(MsgGenerateFailed)
		return err
	}

	c.mu.Lock()
	c.state.Output = resp.Password
	c.state.Strength = &resp
	c.state.History.Push(resp.Password)
	c.mu.Unlock()

	slog.DebugContext(ctx, "password generated",
		"length", resp.Length,
		"variety", resp.Variety,
		"strength", resp.Strength,
		"secure_source", c.service.Source().Secure(),
	)
	return nil
}

// Copy writes the current password to the clipboard.
func (c *Controller) Copy(ctx context.Context) error {
	c.mu.Lock()
	text := c.state.Output
	c.mu.Unlock()

	if text == "" {
		c.notifier.Toast(MsgGenerateFirst)
		return nil
	}

	if err := c.clipboard.WriteText(ctx, text); err != nil {
		slog.WarnContext(ctx, "copy failed", "error", err)
		c.notifier.Toast(MsgCopyFailed)
		return err
	}

	c.notifier.Toast(MsgCopied)
	return nil
}

func clampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}
