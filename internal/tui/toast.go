package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toast struct {
	id     int
	text   string
	fading bool
}

type (
	toastFadeMsg   struct{ id int }
	toastExpireMsg struct{ id int }
)

// showError queues an error banner. Each banner runs its own timers;
// nothing is deduplicated.
func (m *Model) showError(text string) tea.Cmd {
	m.nextToastID++
	id := m.nextToastID
	m.toasts = append(m.toasts, toast{id: id, text: text})
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastFadeMsg{id: id} })
}

func (m *Model) fadeToast(id int) tea.Cmd {
	for i := range m.toasts {
		if m.toasts[i].id == id {
			m.toasts[i].fading = true
			return tea.Tick(toastFadeOut, func(time.Time) tea.Msg { return toastExpireMsg{id: id} })
		}
	}
	return nil
}

func (m *Model) removeToast(id int) {
	for i := range m.toasts {
		if m.toasts[i].id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}
