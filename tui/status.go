package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing life,
// equipped weapon, deck size, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := fmt.Sprintf(" LP %d/%d | %s", s.Player.CurrentLife, s.Player.MaxLife, m.weaponSummary())
	right := fmt.Sprintf("Deck: %d | Slain: %d | T:%d ",
		s.Deck.Remaining(), s.TotalSlainCount(), s.TurnCount)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// weaponSummary describes the equipped weapon and what it can still slay.
func (m Model) weaponSummary() string {
	p := m.engine.State.Player
	if !p.HasWeapon() {
		return "bare hands"
	}
	w := p.Equipped
	if last, ok := w.LastSlainMonster(); ok {
		return fmt.Sprintf("%s (%d, slays < %d)", w.Weapon.Name, w.Weapon.Protection(), last.Rank)
	}
	return fmt.Sprintf("%s (%d, unused)", w.Weapon.Name, w.Weapon.Protection())
}
