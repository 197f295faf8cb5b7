// Package tui provides a Bubble Tea terminal UI for playing Scoundrel.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/scoundrel/engine"
	"github.com/nathoo/scoundrel/engine/save"
	"github.com/nathoo/scoundrel/types"
)

const maxLogLines = 8

// keyMap defines the key bindings for playing a room.
type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Bare    key.Binding
	Weapon  key.Binding
	Drink   key.Binding
	Equip   key.Binding
	Flee    key.Binding
	Save    key.Binding
	Load    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev card")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next card")),
		Bare:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "fight bare-handed")),
		Weapon: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "fight with weapon")),
		Drink:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drink")),
		Equip:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "equip")),
		Flee:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flee room")),
		Save:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save")),
		Load:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "load")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Bare, k.Weapon, k.Drink, k.Equip, k.Flee, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Flee},
		{k.Bare, k.Weapon, k.Drink, k.Equip},
		{k.Save, k.Load, k.Quit},
	}
}

// Model is the Bubble Tea model for the Scoundrel TUI.
type Model struct {
	engine *engine.Engine
	keys   keyMap
	help   help.Model

	cursor int // selected room card
	log    []string

	width    int
	height   int
	finished bool
	won      bool
	score    int
	saveDir  string
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	home, _ := os.UserHomeDir()
	m := Model{
		engine:  eng,
		keys:    defaultKeyMap(),
		help:    help.New(),
		saveDir: filepath.Join(home, ".scoundrel", "saves"),
	}
	m.log = append(m.log, "You descend into the dungeon.")
	m.refill()
	m.checkFinished()
	return m
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.cmdSave()
			return m, nil
		case key.Matches(msg, m.keys.Load):
			m.cmdLoad()
			return m, nil
		}

		if m.finished {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.engine.State.Room.Cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Bare):
			m.attack(false)
		case key.Matches(msg, m.keys.Weapon):
			m.attack(true)
		case key.Matches(msg, m.keys.Drink):
			m.drink()
		case key.Matches(msg, m.keys.Equip):
			m.equip()
		case key.Matches(msg, m.keys.Flee):
			m.flee()
		}
	}
	return m, nil
}

// selectedCard returns the card under the cursor, if any.
func (m *Model) selectedCard() (types.Card, bool) {
	cards := m.engine.State.Room.Cards
	if m.cursor < 0 || m.cursor >= len(cards) {
		return types.Card{}, false
	}
	return cards[m.cursor], true
}

func (m *Model) attack(useWeapon bool) {
	card, ok := m.selectedCard()
	if !ok || !m.engine.Rules.CanAttackMonster(m.engine.State, card, useWeapon) {
		return
	}
	p := m.engine.Rules.PreviewAttack(m.engine.State, card, useWeapon)
	if err := m.engine.Attack(card, useWeapon); err != nil {
		m.logSystem(err.Error())
		return
	}
	how := "bare-handed"
	if useWeapon {
		how = "with your weapon"
	}
	m.logLine(fmt.Sprintf("You defeat %s %s (-%d LP).", card.Name, how, p.DamageTaken))
	m.afterAction()
}

func (m *Model) drink() {
	card, ok := m.selectedCard()
	if !ok || !m.engine.Rules.CanDrinkPotion(m.engine.State, card) {
		return
	}
	p := m.engine.Rules.PreviewPotion(m.engine.State, card)
	if err := m.engine.Drink(card); err != nil {
		m.logSystem(err.Error())
		return
	}
	if p.HealingReceived > 0 {
		m.logLine(fmt.Sprintf("You drink %s (+%d LP).", card.Name, p.HealingReceived))
	} else {
		m.logLine(fmt.Sprintf("You drink %s, but nothing happens.", card.Name))
	}
	m.afterAction()
}

func (m *Model) equip() {
	card, ok := m.selectedCard()
	if !ok || !m.engine.Rules.CanEquipWeapon(m.engine.State, card) {
		return
	}
	if err := m.engine.Equip(card); err != nil {
		m.logSystem(err.Error())
		return
	}
	m.logLine(fmt.Sprintf("You equip %s (protection %d).", card.Name, card.Protection()))
	m.afterAction()
}

func (m *Model) flee() {
	if !m.engine.Rules.CanFleeRoom(m.engine.State) {
		return
	}
	if err := m.engine.Flee(); err != nil {
		m.logSystem(err.Error())
		return
	}
	m.logLine("You flee. The room sinks to the bottom of the deck.")
	m.afterAction()
}

// afterAction clamps the cursor, refills the room, and checks for the end.
func (m *Model) afterAction() {
	m.refill()
	if n := len(m.engine.State.Room.Cards); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.checkFinished()
}

func (m *Model) refill() {
	s := m.engine.State
	if m.engine.Rules.NextRoomAvailable(s) && !s.Deck.IsEmpty() {
		if err := m.engine.NextRoom(); err == nil {
			m.logLine("A new room is dealt.")
			m.cursor = 0
		}
	}
}

func (m *Model) checkFinished() {
	score, won, done := m.engine.Finished()
	if !done {
		return
	}
	m.finished = true
	m.won = won
	m.score = score
}

func (m *Model) cmdSave() {
	data, err := save.Save(m.engine.State)
	if err == nil {
		err = os.MkdirAll(m.saveDir, 0o755)
	}
	if err == nil {
		err = os.WriteFile(filepath.Join(m.saveDir, "quicksave.json"), data, 0o644)
	}
	if err != nil {
		m.logSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.logSystem("Game saved.")
}

func (m *Model) cmdLoad() {
	data, err := os.ReadFile(filepath.Join(m.saveDir, "quicksave.json"))
	if err != nil {
		m.logSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	sd, err := save.Load(data)
	if err != nil {
		m.logSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	save.ApplySave(m.engine.State, sd)
	m.cursor = 0
	m.finished = false
	m.logSystem(fmt.Sprintf("Game loaded (turn %d).", sd.Turn))
	m.checkFinished()
}

func (m *Model) logLine(text string) {
	m.log = append(m.log, text)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *Model) logSystem(text string) {
	m.logLine(styleSystem.Render("[" + text + "]"))
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render("Scoundrel"))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n\n")

	cards := m.engine.State.Room.Cards
	if len(cards) > 0 {
		boxes := make([]string, len(cards))
		for i, card := range cards {
			boxes[i] = renderCard(card, i == m.cursor && !m.finished)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString("\n")
		if m.won {
			b.WriteString(styleVictory.Render(fmt.Sprintf("The dungeon is cleared! Final score: %d", m.score)))
		} else {
			b.WriteString(styleDefeat.Render(fmt.Sprintf("You have died. Final score: %d", m.score)))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderHints())
	}

	b.WriteString("\n")
	for _, line := range m.log {
		b.WriteString(styleLog.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderHints shows the legal moves and previews for the selected card.
func (m Model) renderHints() string {
	card, ok := m.selectedCard()
	if !ok {
		if m.engine.Rules.NextRoomAvailable(m.engine.State) {
			return styleHint.Render("The room is spent.")
		}
		return ""
	}

	s := m.engine.State
	var hints []string
	switch card.Kind {
	case types.KindMonster:
		if m.engine.Rules.CanAttackMonster(s, card, false) {
			p := m.engine.Rules.PreviewAttack(s, card, false)
			hints = append(hints, attackHint("a: bare-handed", p))
		}
		if m.engine.Rules.CanAttackMonster(s, card, true) {
			p := m.engine.Rules.PreviewAttack(s, card, true)
			hints = append(hints, attackHint("w: with weapon", p))
		} else if s.Player.HasWeapon() {
			hints = append(hints, "weapon ineffective")
		}
	case types.KindPotion:
		p := m.engine.Rules.PreviewPotion(s, card)
		hints = append(hints, fmt.Sprintf("d: drink (+%d LP)", p.HealingReceived))
	case types.KindWeapon:
		hints = append(hints, fmt.Sprintf("e: equip (protection %d)", card.Protection()))
	}
	if m.engine.Rules.CanFleeRoom(s) {
		hints = append(hints, "f: flee")
	}

	return styleHint.Render(strings.Join(hints, "   "))
}

func attackHint(label string, p types.ActionPreview) string {
	hint := fmt.Sprintf("%s (-%d LP)", label, p.DamageTaken)
	if p.IsLethal {
		hint += " " + styleLethal.Render("lethal")
	}
	return hint
}
