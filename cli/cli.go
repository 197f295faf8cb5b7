// Package cli provides a plain terminal front end for Scoundrel: numbered
// action menus, previews, and meta-command dispatch.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathoo/scoundrel/engine"
	"github.com/nathoo/scoundrel/engine/save"
	"github.com/nathoo/scoundrel/types"
)

// action is one selectable menu entry.
type action struct {
	label string
	run   func() error
}

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine  *engine.Engine
	In      io.Reader
	Out     io.Writer
	SaveDir string
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".scoundrel", "saves"),
	}
}

// Run starts the game loop: print status and room, list the legal actions,
// read a choice, commit it, refill the room, and re-check the terminal
// conditions. Returns when the session ends or input runs out.
func (c *CLI) Run() {
	scanner := bufio.NewScanner(c.In)

	for {
		c.autoRefill()

		if score, won, done := c.Engine.Finished(); done {
			c.printStatus()
			if won {
				c.printLine(fmt.Sprintf("The dungeon is cleared! Final score: %d", score))
			} else {
				c.printLine(fmt.Sprintf("You have died. Final score: %d", score))
			}
			return
		}

		c.printStatus()
		c.printRoom()

		actions := c.availableActions()
		for i, a := range actions {
			c.printLine(fmt.Sprintf("  %d. %s", i+1, a.label))
		}

		c.print("> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(actions) {
			c.printLine(fmt.Sprintf("Pick a number between 1 and %d, or /help.", len(actions)))
			continue
		}
		if err := actions[idx-1].run(); err != nil {
			c.printSystem(fmt.Sprintf("Action failed: %v", err))
		}
	}
}

// autoRefill deals the next room whenever the current one is spent and the
// deck still has cards.
func (c *CLI) autoRefill() {
	s := c.Engine.State
	if c.Engine.Rules.NextRoomAvailable(s) && !s.Deck.IsEmpty() {
		if err := c.Engine.NextRoom(); err != nil {
			c.printSystem(fmt.Sprintf("Deal failed: %v", err))
		}
	}
}

// availableActions builds the menu for the current room: the legal moves on
// every card, plus flee when the room is untouched.
func (c *CLI) availableActions() []action {
	eng := c.Engine
	s := eng.State

	var actions []action
	for _, card := range s.Room.Cards {
		card := card // capture per iteration for the run closures (pre-Go 1.22 loop semantics)
		switch card.Kind {
		case types.KindMonster:
			if eng.Rules.CanAttackMonster(s, card, false) {
				p := eng.Rules.PreviewAttack(s, card, false)
				actions = append(actions, action{
					label: fmt.Sprintf("Fight %s bare-handed (-%d LP)%s", cardLabel(card), p.DamageTaken, lethalTag(p)),
					run:   func() error { return eng.Attack(card, false) },
				})
			}
			if eng.Rules.CanAttackMonster(s, card, true) {
				p := eng.Rules.PreviewAttack(s, card, true)
				actions = append(actions, action{
					label: fmt.Sprintf("Fight %s with your weapon (-%d LP)%s", cardLabel(card), p.DamageTaken, lethalTag(p)),
					run:   func() error { return eng.Attack(card, true) },
				})
			}
		case types.KindPotion:
			if eng.Rules.CanDrinkPotion(s, card) {
				p := eng.Rules.PreviewPotion(s, card)
				actions = append(actions, action{
					label: fmt.Sprintf("Drink %s (+%d LP)", cardLabel(card), p.HealingReceived),
					run:   func() error { return eng.Drink(card) },
				})
			}
		case types.KindWeapon:
			if eng.Rules.CanEquipWeapon(s, card) {
				actions = append(actions, action{
					label: fmt.Sprintf("Equip %s (protection %d)", cardLabel(card), card.Protection()),
					run:   func() error { return eng.Equip(card) },
				})
			}
		}
	}

	if eng.Rules.CanFleeRoom(s) {
		actions = append(actions, action{
			label: "Flee the room",
			run:   eng.Flee,
		})
	}

	return actions
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(c.Engine.State)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	sd, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	save.ApplySave(c.Engine.State, sd)
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", name, sd.Turn))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Play by typing the number of an action. The room refills itself",
		"whenever one card or fewer remains.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	comp := s.Deck.Composition()
	c.printSystem(fmt.Sprintf("Turn: %d", s.TurnCount))
	c.printSystem(fmt.Sprintf("Deck: %d cards (%d monsters, %d potions, %d weapons), %d bottomed",
		comp.Total(), comp.Monsters, comp.Potions, comp.Weapons, s.Deck.BottomedCards))
	c.printSystem(fmt.Sprintf("Monsters slain: %d", s.TotalSlainCount()))
	c.printSystem(fmt.Sprintf("Last room fled: %v", s.LastRoomFled))
}

// printStatus prints the player line: life, weapon, deck size.
func (c *CLI) printStatus() {
	s := c.Engine.State
	c.printLine("")
	c.printLine(fmt.Sprintf("LP: %d/%d | Deck: %d", s.Player.CurrentLife, s.Player.MaxLife, s.Deck.Remaining()))
	if s.Player.HasWeapon() {
		w := s.Player.Equipped
		note := "unused"
		if last, ok := w.LastSlainMonster(); ok {
			note = fmt.Sprintf("last kill rank %d", last.Rank)
		}
		c.printLine(fmt.Sprintf("Weapon: %s (protection %d, %s)", w.Weapon.Name, w.Weapon.Protection(), note))
	}
}

// printRoom prints the cards currently on the table.
func (c *CLI) printRoom() {
	for _, card := range c.Engine.State.Room.Cards {
		c.printLine(fmt.Sprintf("  %s — rank %d", cardLabel(card), card.Rank))
	}
}

func cardLabel(card types.Card) string {
	if card.Emoji != "" {
		return card.Emoji + " " + card.Name
	}
	return card.Name
}

func lethalTag(p types.ActionPreview) string {
	if p.IsLethal {
		return " [lethal]"
	}
	return ""
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
