package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/scoundrel/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228"))

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(18)

	styleCardSelected = styleCard.
				BorderForeground(lipgloss.Color("228")).
				Bold(true)

	styleMonster = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePotion = lipgloss.NewStyle().
			Foreground(lipgloss.Color("84"))

	styleWeapon = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleLog = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleLethal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("84")).
			Bold(true)

	styleDefeat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// kindStyle picks the color for a card kind.
func kindStyle(kind types.CardKind) lipgloss.Style {
	switch kind {
	case types.KindMonster:
		return styleMonster
	case types.KindPotion:
		return stylePotion
	case types.KindWeapon:
		return styleWeapon
	}
	return styleLog
}

// kindLabel is the short tag shown on a card face.
func kindLabel(kind types.CardKind) string {
	switch kind {
	case types.KindMonster:
		return "Monster"
	case types.KindPotion:
		return "Potion"
	case types.KindWeapon:
		return "Weapon"
	}
	return string(kind)
}

// renderCard draws one room card as a bordered box.
func renderCard(card types.Card, selected bool) string {
	face := card.Name
	if card.Emoji != "" {
		face = card.Emoji + " " + card.Name
	}

	body := fmt.Sprintf("%s\n%s %d",
		face,
		kindStyle(card.Kind).Render(kindLabel(card.Kind)),
		card.Rank,
	)

	if selected {
		return styleCardSelected.Render(body)
	}
	return styleCard.Render(body)
}
