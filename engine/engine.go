// Package engine implements the Scoundrel rules: the stateless rules
// interface, its standard implementation, and a thin session orchestrator
// that ties a rules value, a game state, and a seeded RNG together.
package engine

import (
	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// Engine is one game session. Rules carries no state of its own; State owns
// the whole session and is what gets saved and restored.
type Engine struct {
	Rules Rules
	State *state.GameState
	RNG   *RNG
}

// New starts a session from a freshly built deck: shuffles it with the
// seed, creates the state, and deals the first room.
func New(deck state.Deck, flavor string, seed int64) *Engine {
	rng := NewRNG(seed)
	deck.Shuffle(rng)

	s := state.New(deck)
	s.Flavor = flavor
	s.Seed = seed

	e := &Engine{Rules: StandardRules{}, State: s, RNG: rng}

	// Initial deal. The room is empty and the deck freshly built, so this
	// cannot fail.
	_ = e.Rules.HandleNextRoom(s)
	return e
}

// Restore wraps an already-populated state (typically from a save) in a
// session. The deck is not reshuffled.
func Restore(s *state.GameState) *Engine {
	return &Engine{Rules: StandardRules{}, State: s, RNG: NewRNG(s.Seed)}
}

// Attack commits an attack on the monster and counts the turn.
func (e *Engine) Attack(monster types.Card, useWeapon bool) error {
	return e.commit(e.Rules.HandleMonsterAttack(e.State, monster, useWeapon))
}

// Drink commits drinking the potion and counts the turn.
func (e *Engine) Drink(potion types.Card) error {
	return e.commit(e.Rules.HandleDrinkPotion(e.State, potion))
}

// Equip commits equipping the weapon and counts the turn.
func (e *Engine) Equip(weapon types.Card) error {
	return e.commit(e.Rules.HandleEquipWeapon(e.State, weapon))
}

// Flee commits fleeing the current room and counts the turn.
func (e *Engine) Flee() error {
	return e.commit(e.Rules.HandleFleeRoom(e.State))
}

// NextRoom refills the room from the deck. Room transitions do not count
// as turns.
func (e *Engine) NextRoom() error {
	return e.Rules.HandleNextRoom(e.State)
}

// GameOver returns the final score and true if the player is dead.
func (e *Engine) GameOver() (int, bool) {
	return e.Rules.IsGameOver(e.State)
}

// Victory returns the final score and true if the dungeon is cleared.
func (e *Engine) Victory() (int, bool) {
	return e.Rules.IsVictory(e.State)
}

// Finished reports whether the session has reached a terminal state, and
// with which score.
func (e *Engine) Finished() (score int, won bool, done bool) {
	if s, over := e.GameOver(); over {
		return s, false, true
	}
	if s, win := e.Victory(); win {
		return s, true, true
	}
	return 0, false, false
}

func (e *Engine) commit(err error) error {
	if err != nil {
		return err
	}
	e.State.TurnCount++
	return nil
}
