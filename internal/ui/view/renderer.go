// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/wordle/internal/game"
	"github.com/palemoky/wordle/internal/ui/common"
	"github.com/palemoky/wordle/internal/ui/model"
)

// Data is everything a frame needs. The root model fills it from the
// session on every View call.
type Data struct {
	Width, Height int

	Phase       model.GamePhase
	History     []game.Evaluation
	MaxAttempts int
	Status      game.Status
	Secret      string // only rendered once the game is over
	Board       game.Board

	Input   string // rendered text input
	Spinner string // rendered spinner frame
	Notice  string
}

// Render draws the whole screen for the current phase.
func Render(d Data) string {
	var sb strings.Builder

	sb.WriteString(common.TitleStyle("W O R D L E"))
	sb.WriteString("\n\n")

	switch d.Phase {
	case model.PhaseLoading:
		sb.WriteString(LoadingView(d))
	default:
		sb.WriteString(GameView(d))
	}

	if d.Notice != "" {
		sb.WriteString("\n")
		sb.WriteString(common.ErrorStyle.Render(d.Notice))
	}

	sb.WriteString("\n")
	sb.WriteString(common.PromptStyle.Render(common.HintStyle.Render(helpLine(d.Phase))))

	content := common.DocStyle.Render(sb.String())
	if d.Width == 0 || d.Height == 0 {
		return content
	}
	return lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, content)
}

// LoadingView renders the wait for the secret word.
func LoadingView(d Data) string {
	return fmt.Sprintf("%s Choosing a secret word...", d.Spinner)
}

// GameView renders the grid, the prompt and the letter boards.
func GameView(d Data) string {
	var sb strings.Builder

	sb.WriteString(RenderGrid(d.History, d.MaxAttempts))
	sb.WriteString("\n\n")

	switch d.Phase {
	case model.PhaseChecking:
		sb.WriteString(fmt.Sprintf("%s Checking word...", d.Spinner))
	case model.PhaseGameOver:
		sb.WriteString(ResultLine(d.Status, d.Secret))
	default:
		sb.WriteString(d.Input)
		sb.WriteString("\n")
		sb.WriteString(AttemptsLine(d.MaxAttempts - len(d.History)))
	}
	sb.WriteString("\n\n")

	sb.WriteString(RenderBoard(d.Board))
	return sb.String()
}

// AttemptsLine is the in-game status line.
func AttemptsLine(left int) string {
	return fmt.Sprintf("Attempts left: %d", left)
}

// ResultLine is the status line once the game is over.
func ResultLine(status game.Status, secret string) string {
	switch status {
	case game.StatusWon:
		return common.WinStyle.Render("Congratulations! You've guessed the word!")
	case game.StatusLost:
		return common.LoseStyle.Render(fmt.Sprintf("Game Over! The word was: %s", strings.ToUpper(secret)))
	default:
		return ""
	}
}

func helpLine(phase model.GamePhase) string {
	switch phase {
	case model.PhaseGameOver:
		return "ctrl+n: new game • esc: quit"
	case model.PhaseLoading:
		return "ctrl+n: retry • esc: quit"
	default:
		return "enter: submit • esc: quit"
	}
}
