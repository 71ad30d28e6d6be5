package console

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/scorepad/internal/scorer"
	"github.com/pterm/pterm"
)

// tableData lays out the sheet with players as columns and rounds as rows,
// followed by a separator, the totals and each player's progress.
func tableData(model *scorer.Model) [][]string {
	names := model.PlayerNames()
	header := append([]string{"Round"}, names...)
	data := [][]string{header}

	round := 0
	for r := 0; r < model.MaxLedgerLength(); r++ {
		row := make([]string, len(names)+1)
		filled := false
		for i, p := range model.Players() {
			if r < len(p.Ledger) && p.Ledger[r] != nil {
				row[i+1] = strconv.Itoa(*p.Ledger[r])
				filled = true
			}
		}
		if !filled {
			continue
		}
		round++
		row[0] = strconv.Itoa(round)
		data = append(data, row)
	}

	separator := make([]string, len(names)+1)
	for i := range separator {
		separator[i] = "---"
	}
	data = append(data, separator)

	totals := []string{"Total"}
	for _, total := range model.CurrentScores() {
		totals = append(totals, strconv.Itoa(total))
	}
	data = append(data, totals)

	progress := []string{"Progress"}
	for _, fraction := range model.Progress() {
		progress = append(progress, fmt.Sprintf("%d%%", int(math.Round(fraction*100))))
	}
	data = append(data, progress)

	return data
}

// renderBoard prints the score table
func renderBoard(model *scorer.Model) error {
	title := fmt.Sprintf("%s to %d", model.Name(), model.GameOverScore())
	if model.LowWins() {
		title += " (low score wins)"
	}
	pterm.DefaultSection.Println(title)

	if len(model.PlayerNames()) == 0 {
		pterm.Info.Println("No players yet")
		return nil
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(tableData(model)).
		Render()
}

// renderWinner prints the final result
func renderWinner(model *scorer.Model) {
	winner, ok := model.WinnerNameAndScore()
	if !ok {
		return
	}

	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	text := pterm.Sprintfln("%s wins with %d", pterm.LightCyan(winner.Name), winner.Score)
	for _, standing := range model.Standings() {
		text += pterm.Sprintfln("%s: %d", standing.Name, standing.Score)
	}
	pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Println(text)
}
