package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgenie/passgenie-go/internal/config"
	"github.com/passgenie/passgenie-go/internal/crypto"
)

func baseConfig() config.Config {
	return config.Config{
		Env:      "development",
		LogLevel: "info",
		Length:   16,
		Classes:  crypto.AllClasses(),
		Random:   crypto.SourceCrypto,
		Embedded: config.EmbeddedAuto,
	}
}

func TestParseFlagsAndApply(t *testing.T) {
	fs := flag.NewFlagSet("passgenie", flag.ContinueOnError)
	f, err := parseFlags(fs, []string{"-length", "8", "-classes", "digits", "-count", "3", "-print"})
	require.NoError(t, err)

	cfg := baseConfig()
	require.NoError(t, f.apply(&cfg))

	assert.Equal(t, 8, cfg.Length)
	assert.Equal(t, []crypto.CharacterClass{crypto.Digits}, cfg.Classes)
	assert.True(t, f.print)
	assert.Equal(t, 3, f.count)
}

func TestApplyRejectsUnknownClass(t *testing.T) {
	cfg := baseConfig()
	err := flags{classes: "lower,emoji"}.apply(&cfg)
	assert.ErrorIs(t, err, crypto.ErrUnknownClass)
}

func TestRunPrintDigits(t *testing.T) {
	cfg := baseConfig()
	cfg.Length = 8
	cfg.Classes = []crypto.CharacterClass{crypto.Digits}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, flags{print: true, count: 2}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 2)
		assert.Len(t, fields[0], 8)
		assert.Empty(t, strings.Trim(fields[0], "0123456789"))
		assert.Equal(t, "Weak", fields[1])
	}
}

func TestRunPrintSeededIsReproducible(t *testing.T) {
	seed := hex.EncodeToString(bytes.Repeat([]byte{0x42}, crypto.SeedSize))

	render := func() string {
		cfg := baseConfig()
		f := flags{print: true, count: 5, html: true, seed: seed}
		require.NoError(t, f.apply(&cfg))

		var out bytes.Buffer
		require.NoError(t, run(context.Background(), cfg, f, &out))
		return out.String()
	}

	first := render()
	assert.Equal(t, first, render())
	assert.Equal(t, 4, strings.Count(first, `<li class="history-item">`))
	assert.Contains(t, first, `<span class="pill-label">Latest</span>`)
}
