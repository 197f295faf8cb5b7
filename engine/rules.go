package engine

import (
	"errors"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// ErrInvalidAction is returned by a Handle* method whose paired Can* check
// fails. Handlers validate uniformly and never mutate state on rejection;
// callers that consult Can* first will never see this error.
var ErrInvalidAction = errors.New("action is not legal in the current state")

// Rules validates and applies player actions against a GameState. Every
// action family comes as a pure query (Can*/Preview*) and a mutating commit
// (Handle*). Implementations are stateless: one Rules value may serve any
// number of independent sessions.
type Rules interface {
	// IsGameOver returns the final score and true once the player is dead.
	// The score is current life minus the strength of every monster still
	// in the draw pile.
	IsGameOver(s *state.GameState) (int, bool)

	// IsVictory returns the final score and true once the deck is empty and
	// at most one card remains in the room. The score is current life plus
	// the potency of every potion still in the room.
	IsVictory(s *state.GameState) (int, bool)

	// PreviewAttack computes the damage the player would take attacking the
	// monster, bare-handed or with the equipped weapon.
	PreviewAttack(s *state.GameState, monster types.Card, useWeapon bool) types.ActionPreview

	// CanAttackMonster reports whether the attack is legal. Bare-handed
	// attacks are always legal while the monster is in the room, even
	// lethal ones.
	CanAttackMonster(s *state.GameState, monster types.Card, useWeapon bool) bool

	// HandleMonsterAttack applies the previewed damage, records the kill,
	// and removes the monster from the room.
	HandleMonsterAttack(s *state.GameState, monster types.Card, useWeapon bool) error

	// PreviewPotion computes the healing the potion would grant. Only the
	// first potion drunk in a room heals; later ones are wasted.
	PreviewPotion(s *state.GameState, potion types.Card) types.ActionPreview

	// CanDrinkPotion reports whether the potion may be drunk. Drinking a
	// wasted extra potion is still legal — it just heals nothing.
	CanDrinkPotion(s *state.GameState, potion types.Card) bool

	// HandleDrinkPotion applies the previewed healing and removes the
	// potion from the room.
	HandleDrinkPotion(s *state.GameState, potion types.Card) error

	// CanEquipWeapon reports whether the weapon may be equipped.
	CanEquipWeapon(s *state.GameState, weapon types.Card) bool

	// HandleEquipWeapon replaces the player's weapon with a fresh one,
	// dropping any previous weapon and its kill history.
	HandleEquipWeapon(s *state.GameState, weapon types.Card) error

	// CanFleeRoom reports whether fleeing is allowed: the room must hold
	// all 4 untouched cards and the previous room must not have been fled.
	CanFleeRoom(s *state.GameState) bool

	// HandleFleeRoom moves the whole room to the bottom of the deck.
	HandleFleeRoom(s *state.GameState) error

	// NextRoomAvailable reports whether the room may be refilled
	// (0 or 1 cards left).
	NextRoomAvailable(s *state.GameState) bool

	// HandleNextRoom refills the room to 4 cards (or fewer near the end of
	// the deck) and resets per-room state.
	HandleNextRoom(s *state.GameState) error
}

// StandardRules implements the classic Scoundrel rules: descending-rank
// weapon effectiveness and the single-potion-per-room healing limit.
// The zero value is ready to use.
type StandardRules struct{}

var _ Rules = StandardRules{}

func (StandardRules) IsGameOver(s *state.GameState) (int, bool) {
	if s.Player.CurrentLife > 0 {
		return 0, false
	}
	penalty := 0
	for _, c := range s.Deck.Cards {
		penalty += c.Strength()
	}
	return s.Player.CurrentLife - penalty, true
}

func (StandardRules) IsVictory(s *state.GameState) (int, bool) {
	if s.Deck.Remaining() > 0 {
		return 0, false
	}
	// A single leftover card is an unwinnable non-threat; it still counts
	// as victory.
	if s.Room.Remaining() > 1 {
		return 0, false
	}
	bonus := 0
	for _, c := range s.Room.Cards {
		bonus += c.Potency()
	}
	return s.Player.CurrentLife + bonus, true
}

func (r StandardRules) PreviewAttack(s *state.GameState, monster types.Card, useWeapon bool) types.ActionPreview {
	damage := monsterDamage(monster, s.Player.Equipped, useWeapon)
	return types.ActionPreview{
		DamageTaken: damage,
		IsLethal:    damage >= s.Player.CurrentLife,
	}
}

func (r StandardRules) CanAttackMonster(s *state.GameState, monster types.Card, useWeapon bool) bool {
	if monster.Kind != types.KindMonster || !s.Room.Exists(monster) {
		return false
	}
	// A weapon attack needs a weapon, and one still effective against this
	// monster. Bare-handed attacks are always allowed, lethal or not.
	if useWeapon && !s.Player.HasWeapon() {
		return false
	}
	if useWeapon && !weaponEffective(monster, s.Player.Equipped) {
		return false
	}
	return true
}

func (r StandardRules) HandleMonsterAttack(s *state.GameState, monster types.Card, useWeapon bool) error {
	if !r.CanAttackMonster(s, monster, useWeapon) {
		return ErrInvalidAction
	}

	preview := r.PreviewAttack(s, monster, useWeapon)

	// Subtract directly rather than via Player.TakeDamage: life may go
	// negative here, and the game-over score needs that true value.
	s.Player.CurrentLife -= preview.DamageTaken

	if useWeapon {
		s.Player.Equipped.SlainMonsters = append(s.Player.Equipped.SlainMonsters, monster)
	}
	s.SlainMonsters = append(s.SlainMonsters, monster)

	return s.Room.Interact(monster)
}

func (r StandardRules) PreviewPotion(s *state.GameState, potion types.Card) types.ActionPreview {
	// Only the first potion in a room heals; the rest are wasted.
	if s.Room.PotionsUsed > 0 {
		return types.ActionPreview{}
	}
	healed := min(s.Player.MaxLife, s.Player.CurrentLife+potion.Potency())
	return types.ActionPreview{
		HealingReceived: healed - s.Player.CurrentLife,
	}
}

func (r StandardRules) CanDrinkPotion(s *state.GameState, potion types.Card) bool {
	return potion.Kind == types.KindPotion && s.Room.Exists(potion)
}

func (r StandardRules) HandleDrinkPotion(s *state.GameState, potion types.Card) error {
	if !r.CanDrinkPotion(s, potion) {
		return ErrInvalidAction
	}

	preview := r.PreviewPotion(s, potion)
	s.Player.CurrentLife += preview.HealingReceived
	s.Room.PotionsUsed++

	return s.Room.Interact(potion)
}

func (r StandardRules) CanEquipWeapon(s *state.GameState, weapon types.Card) bool {
	return weapon.Kind == types.KindWeapon && s.Room.Exists(weapon)
}

func (r StandardRules) HandleEquipWeapon(s *state.GameState, weapon types.Card) error {
	if !r.CanEquipWeapon(s, weapon) {
		return ErrInvalidAction
	}

	// A fresh EquippedWeapon starts with an empty kill history, even if the
	// identical weapon was equipped before. The old weapon is simply dropped.
	s.Player.Equipped = &state.EquippedWeapon{Weapon: weapon}

	return s.Room.Interact(weapon)
}

func (StandardRules) CanFleeRoom(s *state.GameState) bool {
	// Only an untouched room can be fled, and never twice in a row.
	return s.Room.Remaining() == 4 && !s.LastRoomFled
}

func (r StandardRules) HandleFleeRoom(s *state.GameState) error {
	if !r.CanFleeRoom(s) {
		return ErrInvalidAction
	}

	s.Deck.ToBottom(s.Room.Cards)
	s.Room.Cards = nil
	s.LastRoomFled = true
	return nil
}

func (StandardRules) NextRoomAvailable(s *state.GameState) bool {
	return s.Room.Remaining() <= 1
}

func (r StandardRules) HandleNextRoom(s *state.GameState) error {
	if !r.NextRoomAvailable(s) {
		return ErrInvalidAction
	}

	// Entering a room normally (with a leftover card, not after a flee)
	// re-arms the ability to flee in the upcoming room.
	if s.Room.Remaining() != 0 {
		s.LastRoomFled = false
	}
	s.Room.PotionsUsed = 0

	for s.Room.Remaining() < 4 && !s.Deck.IsEmpty() {
		card, err := s.Deck.Draw()
		if err != nil {
			return err
		}
		s.Room.Cards = append(s.Room.Cards, card)
	}
	return nil
}

// weaponEffective reports whether the equipped weapon still mitigates
// damage from this monster: a weapon that has slain nothing is always
// effective, otherwise the monster's rank must be strictly below the rank
// of the weapon's most recent kill.
func weaponEffective(monster types.Card, w *state.EquippedWeapon) bool {
	last, ok := w.LastSlainMonster()
	if !ok {
		return true
	}
	return monster.Rank < last.Rank
}

// monsterDamage computes the damage an attack costs the player. An
// ineffective weapon mitigates nothing.
func monsterDamage(monster types.Card, w *state.EquippedWeapon, useWeapon bool) int {
	if !useWeapon || w == nil {
		return monster.Strength()
	}
	if !weaponEffective(monster, w) {
		return monster.Strength()
	}
	return max(0, monster.Strength()-w.Weapon.Protection())
}
