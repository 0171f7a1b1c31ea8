package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuipass/internal/config"
	"github.com/verte-zerg/tuipass/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMergeConfigFlagsOverrideFile(t *testing.T) {
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--length", "20", "--numbers=false"}))

	cfg := mergeConfig(root, config.FileConfig{
		Generator: config.GeneratorConfig{
			Length:  ptr(8),
			Numbers: ptr(true),
			Symbols: ptr(false),
		},
		History: config.HistoryConfig{Enabled: ptr(false)},
	})
	assert.Equal(t, 20, cfg.Length)
	assert.False(t, cfg.Numbers)
	assert.False(t, cfg.Symbols)
	assert.True(t, cfg.Uppercase)
	assert.False(t, cfg.History)
	assert.Equal(t, defaultMinLength, cfg.MinLength)
	assert.Equal(t, defaultMaxLength, cfg.MaxLength)
}

func TestValidateConfig(t *testing.T) {
	ok := model.Config{Length: 12, MinLength: 4, MaxLength: 32}
	assert.NoError(t, validateConfig(ok))

	bad := ok
	bad.Length = 40
	assert.Error(t, validateConfig(bad))

	bad = ok
	bad.MaxLength = 2
	assert.Error(t, validateConfig(bad))

	bad = ok
	bad.MinLength = -1
	assert.Error(t, validateConfig(bad))
}

func TestGenerateCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--length", "10", "--uppercase=false", "--lowercase=false", "--symbols=false", "-n", "3"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 10)
		assert.Equal(t, "", strings.Trim(line, "0123456789"))
	}
}

func TestGenerateCommandStrength(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--length", "4", "--uppercase=false", "--lowercase=false", "--symbols=false", "--strength"})
	require.NoError(t, root.Execute())
	// Digits also match the symbol pattern: 8 + 15 + 15.
	assert.Contains(t, out.String(), "\tWeak (38)")
}

func TestGenerateCommandIgnoresSliderBounds(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--length", "64"})
	require.NoError(t, root.Execute())
	assert.Len(t, strings.TrimSpace(out.String()), 64)
}

func TestGenerateCommandRejectsNegativeLength(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--length", "-1"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--length must be >= 0")
}

func TestClassNames(t *testing.T) {
	req := model.Request{Uppercase: true, Symbols: true}
	assert.Equal(t, []string{"uppercase", "symbols"}, classNames(req))
	assert.Empty(t, classNames(model.Request{}))
}

func TestGenerateCommandNoClass(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--uppercase=false", "--lowercase=false", "--numbers=false", "--symbols=false"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please select at least one character type")
}

func TestReadFirstLine(t *testing.T) {
	got, err := readFirstLine(strings.NewReader("s3cret!\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret!", got)

	got, err = readFirstLine(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestWriteScore(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeScore(&out, "aB3!aB3!aB3!"))
	s := out.String()
	assert.Contains(t, s, "Score:       84")
	assert.Contains(t, s, "Bar:         84%")
	assert.Contains(t, s, "Label:       Strong")
	assert.Contains(t, s, "Estimate:")
}
