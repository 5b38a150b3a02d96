package handler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgenie/passgenie-go/internal/crypto"
	"github.com/passgenie/passgenie-go/internal/service"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeNotifier struct {
	toasts []string
}

func (f *fakeNotifier) Toast(message string) {
	f.toasts = append(f.toasts, message)
}

func (f *fakeNotifier) last() string {
	if len(f.toasts) == 0 {
		return ""
	}
	return f.toasts[len(f.toasts)-1]
}

func newTestController(t *testing.T, length int, classes ...crypto.CharacterClass) (*Controller, *fakeClipboard, *fakeNotifier) {
	t.Helper()
	clip := &fakeClipboard{}
	notes := &fakeNotifier{}
	svc := service.NewGeneratorService(crypto.CryptoSource{})
	return NewController(svc, NewState(length, classes), clip, notes), clip, notes
}

func TestController_GenerateUpdatesState(t *testing.T) {
	c, _, notes := newTestController(t, 20, crypto.AllClasses()...)

	require.NoError(t, c.Generate(context.Background()))

	st := c.State()
	assert.Len(t, st.Output, 20)
	require.NotNil(t, st.Strength)
	assert.Equal(t, "Strong", st.Strength.Strength)
	assert.Equal(t, []string{st.Output}, st.History.Entries())
	assert.Empty(t, notes.toasts)
}

func TestController_GenerateWithoutClasses(t *testing.T) {
	c, _, notes := newTestController(t, 16)

	err := c.Generate(context.Background())

	assert.ErrorIs(t, err, crypto.ErrNoCharacterTypes)
	assert.Equal(t, MsgSelectClass, notes.last())
	assert.Empty(t, c.State().Output)
	assert.Equal(t, 0, c.State().History.Len())
}

func TestController_HistoryKeepsFour(t *testing.T) {
	c, _, _ := newTestController(t, 8, crypto.Digits)

	var generated []string
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Generate(context.Background()))
		generated = append(generated, c.State().Output)
	}

	items := c.HistoryItems()
	require.Len(t, items, 4)
	assert.Equal(t, "Latest", items[0].Label)
	assert.Equal(t, generated[4], items[0].Password)
	assert.Equal(t, "#4", items[3].Label)
	assert.Equal(t, generated[1], items[3].Password)
}

func TestController_ToggleRefusesLastClass(t *testing.T) {
	c, _, _ := newTestController(t, 12, crypto.Lower, crypto.Digits)

	require.NoError(t, c.Toggle(crypto.Lower))
	assert.ErrorIs(t, c.Toggle(crypto.Digits), ErrLastActiveClass)
	assert.Equal(t, []crypto.CharacterClass{crypto.Digits}, c.State().ActiveClasses())

	require.NoError(t, c.Toggle(crypto.Symbols))
	assert.Equal(t, []crypto.CharacterClass{crypto.Digits, crypto.Symbols}, c.State().ActiveClasses())

	assert.ErrorIs(t, c.Toggle(crypto.CharacterClass(99)), crypto.ErrUnknownClass)
}

func TestController_ActiveClassesFollowDisplayOrder(t *testing.T) {
	st := NewState(12, []crypto.CharacterClass{crypto.Symbols, crypto.Lower})
	assert.Equal(t, []crypto.CharacterClass{crypto.Lower, crypto.Symbols}, st.ActiveClasses())
}

func TestController_SetLengthClamps(t *testing.T) {
	c, _, _ := newTestController(t, 16, crypto.Lower)

	assert.Equal(t, MinLength, c.SetLength(1))
	assert.Equal(t, MaxLength, c.SetLength(1000))
	assert.Equal(t, 24, c.SetLength(24))
	assert.Equal(t, 25, c.AdjustLength(1))
	assert.Equal(t, "25", c.State().LengthLabel())
}

func TestController_Copy(t *testing.T) {
	c, clip, notes := newTestController(t, 16, crypto.AllClasses()...)

	require.NoError(t, c.Copy(context.Background()))
	assert.Equal(t, MsgGenerateFirst, notes.last())
	assert.Empty(t, clip.text)

	require.NoError(t, c.Generate(context.Background()))
	require.NoError(t, c.Copy(context.Background()))
	assert.Equal(t, MsgCopied, notes.last())
	assert.Equal(t, c.State().Output, clip.text)
}

func TestController_CopyFailure(t *testing.T) {
	c, clip, notes := newTestController(t, 16, crypto.AllClasses()...)
	clip.err = errors.New("no display")

	require.NoError(t, c.Generate(context.Background()))
	err := c.Copy(context.Background())

	assert.Error(t, err)
	assert.Equal(t, MsgCopyFailed, notes.last())
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;&#039;", EscapeHTML(`<a href="x">&'`))
	assert.Equal(t, "&amp;lt;", EscapeHTML("&lt;"))
	assert.Equal(t, "plain", EscapeHTML("plain"))
}

func TestRenderHistoryHTML(t *testing.T) {
	c, _, _ := newTestController(t, 8, crypto.Digits)
	c.State().History.Push("<b>&")
	c.State().History.Push("x'y")

	html := c.RenderHistoryHTML()
	lines := strings.Split(strings.TrimSpace(html), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `<li class="history-item"><span>x&#039;y</span><span class="pill-label">Latest</span></li>`, lines[0])
	assert.Equal(t, `<li class="history-item"><span>&lt;b&gt;&amp;</span><span class="pill-label">#2</span></li>`, lines[1])
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "Embedded", LabelsFor(true).Badge)
	assert.Equal(t, "Terminal", LabelsFor(false).Badge)
	assert.NotEqual(t, LabelsFor(true).Subtitle, LabelsFor(false).Subtitle)
}
