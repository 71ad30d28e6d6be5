package discord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/KirkDiggler/scorepad/internal/services/scorepad"
	"github.com/bwmarrin/discordgo"
)

const (
	colorWaiting   = 0x3498db
	colorActive    = 0x00ff00
	colorCompleted = 0xf1c40f

	progressSegments = 10
)

// renderScoreboardEmbed renders the scoreboard as an embed
func renderScoreboardEmbed(board *scorepad.Scoreboard) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  string(board.Status),
			Inline: true,
		},
		{
			Name:   "Players",
			Value:  strconv.Itoa(len(board.PlayerNames)),
			Inline: true,
		},
		{
			Name:   "Target",
			Value:  strconv.Itoa(board.GameOverScore),
			Inline: true,
		},
	}

	if len(board.PlayerNames) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Scores",
			Value:  "```\n" + renderLedgerTable(board) + "```",
			Inline: false,
		})

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Progress",
			Value:  renderProgress(board),
			Inline: false,
		})
	}

	title := fmt.Sprintf("%s to %d", board.GameName, board.GameOverScore)
	if board.LowWins {
		title += " (low score wins)"
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: scoreboardDescription(board),
		Color:       scoreboardColor(board.Status),
		Fields:      fields,
	}
}

func scoreboardDescription(board *scorepad.Scoreboard) string {
	switch {
	case board.Winner != nil:
		return fmt.Sprintf("🏆 **%s** wins with %d!", board.Winner.Name, board.Winner.Score)
	case board.Status == models.SheetStatusActive:
		return "Game in progress. Record each hand with `/score add`."
	case len(board.PlayerNames) == 0:
		return "Waiting for players. Click Join or use `/score join`."
	default:
		return "Waiting to start. Click Start or record the first score with `/score add`."
	}
}

func scoreboardColor(status models.SheetStatus) int {
	switch status {
	case models.SheetStatusActive:
		return colorActive
	case models.SheetStatusCompleted:
		return colorCompleted
	default:
		return colorWaiting
	}
}

// renderLedgerTable lays out the ledgers as a monospace table: one column per
// player, one row per round, then a separator and the totals.
func renderLedgerTable(board *scorepad.Scoreboard) string {
	widths := make([]int, len(board.PlayerNames))
	for i, name := range board.PlayerNames {
		widths[i] = max(utf8.RuneCountInString(name), len(strconv.Itoa(board.Totals[i])))
	}

	rows := board.Rows()
	for _, row := range rows {
		for i, cell := range row {
			if cell != nil {
				widths[i] = max(widths[i], len(strconv.Itoa(*cell)))
			}
		}
	}

	var sb strings.Builder
	writeLine := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}

	writeLine(board.PlayerNames)

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell != nil {
				cells[i] = strconv.Itoa(*cell)
			}
		}
		writeLine(cells)
	}

	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeLine(separators)

	totals := make([]string, len(board.Totals))
	for i, total := range board.Totals {
		totals[i] = strconv.Itoa(total)
	}
	writeLine(totals)

	return sb.String()
}

// renderProgress shows each player's progress toward the target
func renderProgress(board *scorepad.Scoreboard) string {
	var sb strings.Builder
	for i, name := range board.PlayerNames {
		sb.WriteString(fmt.Sprintf("**%s** %s %d%%\n", name, progressBar(board.Progress[i]), int(math.Round(board.Progress[i]*100))))
	}
	return sb.String()
}

func progressBar(fraction float64) string {
	filled := int(fraction * progressSegments)
	return strings.Repeat("🟩", filled) + strings.Repeat("⬜", progressSegments-filled)
}

// renderScoreboardComponents returns the buttons that fit the game's state
func renderScoreboardComponents(board *scorepad.Scoreboard) []discordgo.MessageComponent {
	undoButton := discordgo.Button{
		Label:    "Undo",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonUndo,
		Disabled: !board.CanUndo,
		Emoji: &discordgo.ComponentEmoji{
			Name: "↩️",
		},
	}

	var buttons []discordgo.MessageComponent
	switch board.Status {
	case models.SheetStatusWaiting:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Join",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonJoinGame,
				Emoji: &discordgo.ComponentEmoji{
					Name: "🃏",
				},
			},
			discordgo.Button{
				Label:    "Start",
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonStartGame,
				Disabled: len(board.PlayerNames) == 0,
				Emoji: &discordgo.ComponentEmoji{
					Name: "▶️",
				},
			},
		}
	case models.SheetStatusActive:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Join",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonJoinGame,
				Emoji: &discordgo.ComponentEmoji{
					Name: "🃏",
				},
			},
			undoButton,
		}
	case models.SheetStatusCompleted:
		buttons = []discordgo.MessageComponent{
			undoButton,
			discordgo.Button{
				Label:    "Rematch",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonRematch,
				Emoji: &discordgo.ComponentEmoji{
					Name: "🔁",
				},
			},
		}
	}

	if len(buttons) == 0 {
		return []discordgo.MessageComponent{}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: buttons,
		},
	}
}

// renderGameMessage renders the edit for the channel's scoreboard message
func renderGameMessage(sheet *models.ScoreSheet, board *scorepad.Scoreboard) *discordgo.MessageEdit {
	embeds := []*discordgo.MessageEmbed{renderScoreboardEmbed(board)}
	components := renderScoreboardComponents(board)

	return &discordgo.MessageEdit{
		Channel:    sheet.ChannelID,
		ID:         sheet.MessageID,
		Embeds:     &embeds,
		Components: &components,
	}
}

// renderLeaderboard renders the channel's win counts
func renderLeaderboard(output *scorepad.GetChannelLeaderboardOutput) string {
	if len(output.Entries) == 0 {
		return "No finished games in this channel yet."
	}

	rankEmojis := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d game(s) played\n\n", output.GamesPlayed))
	for i, entry := range output.Entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(rankEmojis) {
			rank = rankEmojis[i]
		}
		wins := "wins"
		if entry.Wins == 1 {
			wins = "win"
		}
		sb.WriteString(fmt.Sprintf("%s **%s**: %d %s\n", rank, entry.PlayerName, entry.Wins, wins))
	}
	return sb.String()
}
