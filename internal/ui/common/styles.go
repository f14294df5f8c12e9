// Package common provides shared styles for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/wordle/internal/game"
)

// Colors
var (
	ColorCorrect = lipgloss.Color("#538D4E")
	ColorPresent = lipgloss.Color("#B59F3B")
	ColorAbsent  = lipgloss.Color("#3A3A3C")
	ColorEmpty   = lipgloss.Color("240")
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	WinStyle    = lipgloss.NewStyle().Foreground(ColorCorrect).Bold(true)
	LoseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	tileBase = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))

	TileCorrect = tileBase.Background(ColorCorrect)
	TilePresent = tileBase.Background(ColorPresent)
	TileAbsent  = tileBase.Background(ColorAbsent)
	TileEmpty   = tileBase.Foreground(ColorEmpty)

	LetterCorrect  = lipgloss.NewStyle().Foreground(ColorCorrect).Bold(true)
	LetterPresent  = lipgloss.NewStyle().Foreground(ColorPresent).Bold(true)
	LetterUsedOnly = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	LetterUnused   = lipgloss.NewStyle()
)

// TileStyle returns the tile style for a mark.
func TileStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkCorrect:
		return TileCorrect
	case game.MarkPresent:
		return TilePresent
	default:
		return TileAbsent
	}
}

// LetterStyle returns the board style for a used letter.
func LetterStyle(c game.LetterClass) lipgloss.Style {
	switch c {
	case game.ClassCorrect:
		return LetterCorrect
	case game.ClassMisplaced:
		return LetterPresent
	default:
		return LetterUsedOnly
	}
}
