package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/wordle/internal/ui/model"
)

// handleKeyPress handles keyboard input and returns whether it was handled.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return true, tea.Quit

	case tea.KeyCtrlN:
		// a new game only once this one is decided, or when loading failed
		if m.phase == model.PhaseGameOver || (m.phase == model.PhaseLoading && m.loadFailed) {
			return true, m.newGame()
		}
		return true, nil

	case tea.KeyEnter:
		if m.phase != model.PhasePlaying {
			return true, nil
		}
		guess := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if guess == "" {
			return true, nil
		}
		m.phase = model.PhaseChecking
		m.input.Blur()
		return true, m.submitGuess(guess)
	}

	// everything else is typing, which only matters while playing
	return m.phase != model.PhasePlaying, nil
}
