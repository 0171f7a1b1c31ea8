// Package tui provides the Bubble Tea password generator interface.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuipass/internal/clipboard"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/strength"
)

const (
	copyBumpDuration = 200 * time.Millisecond
	copyRevertDelay  = 3000 * time.Millisecond
	toastDuration    = 3000 * time.Millisecond
	toastFadeOut     = 500 * time.Millisecond
)

const (
	msgNoClass    = "Please select at least one character type."
	msgNoPassword = "No password to copy!"
	msgCopyFailed = "Failed to copy password. Please try again."
	msgGenFailed  = "Failed to generate password."
)

// Generator produces a password for a request.
type Generator interface {
	Generate(req model.Request) (string, error)
}

// Recorder stores copy history. It never receives the password.
type Recorder interface {
	RecordCopy(ctx context.Context, ev model.CopyEvent) error
}

type copyState int

const (
	copyIdle copyState = iota
	copySuccess
)

type (
	readyMsg      struct{}
	copyResultMsg struct {
		req      model.Request
		password string
		err      error
	}
	copyBumpEndMsg struct{}
	copyRevertMsg  struct{}
)

// Model implements the Bubble Tea password generator UI.
type Model struct {
	config model.Config
	gen    Generator
	clip   clipboard.Writer
	rec    Recorder
	log    zerolog.Logger
	now    func() time.Time

	keys keyMap
	help help.Model

	width  int
	height int

	password  string
	rating    model.Rating
	hasRating bool
	// request that produced password; toggles after it do not change it
	passwordReq model.Request

	copyState  copyState
	copyBumped bool

	toasts      []toast
	nextToastID int
}

// NewModel constructs the generator UI. rec may be nil to disable history.
func NewModel(cfg model.Config, gen Generator, clip clipboard.Writer, rec Recorder, log zerolog.Logger) *Model {
	return &Model{
		config: cfg,
		gen:    gen,
		clip:   clip,
		rec:    rec,
		log:    log,
		now:    time.Now,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case readyMsg:
		return m, m.regenerate()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case copyResultMsg:
		return m, m.handleCopyResult(msg)
	case copyBumpEndMsg:
		m.copyBumped = false
		return m, nil
	case copyRevertMsg:
		m.copyState = copyIdle
		return m, nil
	case toastFadeMsg:
		return m, m.fadeToast(msg.id)
	case toastExpireMsg:
		m.removeToast(msg.id)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Shorter):
		return m.setLength(m.config.Length - 1)
	case key.Matches(msg, m.keys.Longer):
		return m.setLength(m.config.Length + 1)
	case key.Matches(msg, m.keys.Uppercase):
		m.config.Uppercase = !m.config.Uppercase
		return m.regenerate()
	case key.Matches(msg, m.keys.Lowercase):
		m.config.Lowercase = !m.config.Lowercase
		return m.regenerate()
	case key.Matches(msg, m.keys.Numbers):
		m.config.Numbers = !m.config.Numbers
		return m.regenerate()
	case key.Matches(msg, m.keys.Symbols):
		m.config.Symbols = !m.config.Symbols
		return m.regenerate()
	case key.Matches(msg, m.keys.Generate):
		return m.regenerate()
	case key.Matches(msg, m.keys.Copy):
		return m.copyPassword()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	default:
		return nil
	}
}

// setLength moves the slider. Like a range input, nothing fires when the
// value does not change.
func (m *Model) setLength(length int) tea.Cmd {
	length = max(m.config.MinLength, min(m.config.MaxLength, length))
	if length == m.config.Length {
		return nil
	}
	m.config.Length = length
	return m.regenerate()
}

// regenerate runs a full generate-and-score cycle. On failure the previous
// password and rating stay on screen.
func (m *Model) regenerate() tea.Cmd {
	req := m.config.Request()
	if !req.HasClass() {
		return m.showError(msgNoClass)
	}
	password, err := m.gen.Generate(req)
	if err != nil {
		m.log.Error().Err(err).Int("length", req.Length).Msg("password generation failed")
		if errors.Is(err, generator.ErrNoCharacterClass) {
			return m.showError(msgNoClass)
		}
		return m.showError(msgGenFailed)
	}
	m.password = password
	m.passwordReq = req
	m.rating = strength.Score(password)
	m.hasRating = true
	return nil
}

func (m *Model) copyPassword() tea.Cmd {
	if m.password == "" {
		return m.showError(msgNoPassword)
	}
	password := m.password
	req := m.passwordReq
	clip := m.clip
	return func() tea.Msg {
		return copyResultMsg{req: req, password: password, err: clip.WriteAll(password)}
	}
}

func (m *Model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("could not copy")
		return m.showError(msgCopyFailed)
	}
	m.copyState = copySuccess
	m.copyBumped = true
	m.recordCopy(msg)
	return tea.Batch(
		tea.Tick(copyBumpDuration, func(time.Time) tea.Msg { return copyBumpEndMsg{} }),
		tea.Tick(copyRevertDelay, func(time.Time) tea.Msg { return copyRevertMsg{} }),
	)
}

func (m *Model) recordCopy(msg copyResultMsg) {
	if m.rec == nil {
		return
	}
	rating := strength.Score(msg.password)
	ev := model.CopyEvent{
		CopiedAt:  m.now(),
		Length:    len([]rune(msg.password)),
		Uppercase: msg.req.Uppercase,
		Lowercase: msg.req.Lowercase,
		Numbers:   msg.req.Numbers,
		Symbols:   msg.req.Symbols,
		Score:     rating.Score,
		Label:     rating.Label,
	}
	if err := m.rec.RecordCopy(context.Background(), ev); err != nil {
		m.log.Warn().Err(err).Msg("failed to record copy history")
	}
}
