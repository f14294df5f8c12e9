package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/wordle/internal/game"
	"github.com/palemoky/wordle/internal/ui/common"
)

// RenderRow renders one evaluated guess as colored tiles.
func RenderRow(ev game.Evaluation) string {
	tiles := make([]string, 0, game.WordLength)
	for i, m := range ev.Marks {
		letter := strings.ToUpper(ev.Guess[i : i+1])
		tiles = append(tiles, common.TileStyle(m).Render(letter))
	}
	return strings.Join(tiles, " ")
}

// RenderEmptyRow renders a row for an attempt not yet made.
func RenderEmptyRow() string {
	tiles := make([]string, game.WordLength)
	for i := range tiles {
		tiles[i] = common.TileEmpty.Render("_")
	}
	return strings.Join(tiles, " ")
}

// RenderGrid renders every guess so far plus one empty row per remaining
// attempt.
func RenderGrid(history []game.Evaluation, maxAttempts int) string {
	rows := make([]string, 0, max(maxAttempts, len(history)))
	for _, ev := range history {
		rows = append(rows, RenderRow(ev))
	}
	for range maxAttempts - len(history) {
		rows = append(rows, RenderEmptyRow())
	}
	return strings.Join(rows, "\n")
}

// RenderBoard renders the used and unused letter boxes.
func RenderBoard(b game.Board) string {
	used := make([]string, 0, len(b.Used))
	for _, ls := range b.Used {
		used = append(used, common.LetterStyle(ls.Class).Render(strings.ToUpper(string(ls.Letter))))
	}
	unused := make([]string, 0, len(b.Unused))
	for _, r := range b.Unused {
		unused = append(unused, common.LetterUnused.Render(strings.ToUpper(string(r))))
	}

	usedBox := common.BoxStyle.Render("Used Letters:\n" + strings.Join(used, " "))
	unusedBox := common.BoxStyle.Render("Unused Letters:\n" + strings.Join(unused, " "))
	return lipgloss.JoinVertical(lipgloss.Left, usedBox, unusedBox)
}
