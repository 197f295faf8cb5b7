// Package state holds the mutable session state for a Scoundrel game:
// the draw pile, the active room, the player, and the GameState aggregate
// that owns all of them for the lifetime of a session.
package state

import (
	"errors"

	"github.com/nathoo/scoundrel/types"
)

var (
	// ErrDeckEmpty is returned when drawing from an empty deck. Callers are
	// expected to check Remaining first; hitting this is a contract violation.
	ErrDeckEmpty = errors.New("deck is empty")

	// ErrCardNotFound is returned by Room.Interact when no card in the room
	// matches the given card's ID. The engine only interacts after Exists,
	// so this too marks a contract violation, not a user-facing failure.
	ErrCardNotFound = errors.New("card not found in room")

	// ErrNegativeAmount rejects negative heal/damage amounts.
	ErrNegativeAmount = errors.New("amount must be non-negative")
)

// Shuffler randomizes a sequence in place. engine.RNG implements it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is the ordered draw pile. The last element is the top.
type Deck struct {
	Cards         []types.Card `json:"cards"`
	BottomedCards int          `json:"bottomed_cards"`
}

// Remaining is the number of cards left to draw.
func (d *Deck) Remaining() int { return len(d.Cards) }

// IsEmpty reports whether no cards are left to draw.
func (d *Deck) IsEmpty() bool { return len(d.Cards) == 0 }

// Draw removes and returns the top card.
func (d *Deck) Draw() (types.Card, error) {
	if len(d.Cards) == 0 {
		return types.Card{}, ErrDeckEmpty
	}
	top := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return top, nil
}

// Shuffle randomizes the order of the remaining cards in place.
func (d *Deck) Shuffle(r Shuffler) {
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// ToBottom inserts each given card at the bottom of the deck, in input
// order. The last card of the input ends up nearest the top among the
// bottomed cards, i.e. it will be redrawn soonest. BottomedCards grows by
// one per card.
func (d *Deck) ToBottom(cards []types.Card) {
	for _, card := range cards {
		d.Cards = append([]types.Card{card}, d.Cards...)
		d.BottomedCards++
	}
}

// Composition recounts the card kinds currently in the deck. It is computed
// on every call so it always reflects the live contents.
func (d *Deck) Composition() types.Composition {
	var comp types.Composition
	for _, c := range d.Cards {
		switch c.Kind {
		case types.KindMonster:
			comp.Monsters++
		case types.KindPotion:
			comp.Potions++
		case types.KindWeapon:
			comp.Weapons++
		}
	}
	return comp
}

// Room is the active set of up to 4 cards presented to the player.
type Room struct {
	Cards       []types.Card `json:"cards"`
	PotionsUsed int          `json:"potions_used"`
}

// Remaining is the number of cards currently left in the room.
func (r *Room) Remaining() int { return len(r.Cards) }

// Exists reports whether a card with the same ID is present in the room.
func (r *Room) Exists(card types.Card) bool {
	for _, c := range r.Cards {
		if c.ID() == card.ID() {
			return true
		}
	}
	return false
}

// Interact removes the first card whose ID matches. Comparison is by ID
// because card instances may vary due to theming.
func (r *Room) Interact(card types.Card) error {
	for i, c := range r.Cards {
		if c.ID() == card.ID() {
			r.Cards = append(r.Cards[:i], r.Cards[i+1:]...)
			return nil
		}
	}
	return ErrCardNotFound
}

// EquippedWeapon is the player's active weapon together with the ordered
// history of monsters slain with it. The last slain monster gates which
// monsters the weapon is still effective against.
type EquippedWeapon struct {
	Weapon        types.Card   `json:"weapon"`
	SlainMonsters []types.Card `json:"slain_monsters"`
}

// LastSlainMonster returns the most recently defeated monster and true,
// or a zero card and false if the weapon is unused.
func (w *EquippedWeapon) LastSlainMonster() (types.Card, bool) {
	if len(w.SlainMonsters) == 0 {
		return types.Card{}, false
	}
	return w.SlainMonsters[len(w.SlainMonsters)-1], true
}

// Player is the user's health pool and equipment.
type Player struct {
	MaxLife     int             `json:"max_life"`
	CurrentLife int             `json:"current_life"`
	Equipped    *EquippedWeapon `json:"equipped,omitempty"`
}

// NewPlayer creates a player at the default 20/20 life.
func NewPlayer() Player {
	return Player{MaxLife: 20, CurrentLife: 20}
}

// IsDead reports whether current life has reached zero or below.
func (p *Player) IsDead() bool { return p.CurrentLife <= 0 }

// HasWeapon reports whether a weapon is currently equipped.
func (p *Player) HasWeapon() bool { return p.Equipped != nil }

// Heal restores health, clamped at MaxLife.
func (p *Player) Heal(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	p.CurrentLife = min(p.MaxLife, p.CurrentLife+amount)
	return nil
}

// TakeDamage reduces health, clamped at zero.
func (p *Player) TakeDamage(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	p.CurrentLife = max(0, p.CurrentLife-amount)
	return nil
}

// GameState is the root aggregate for a single Scoundrel session. It is the
// unit of serialization; the rules engine holds no state of its own and
// operates on a GameState passed to every call.
type GameState struct {
	Player Player `json:"player"`
	Deck   Deck   `json:"deck"`
	Room   Room   `json:"room"`

	// DiscardPile holds cards permanently removed from play. No rule reads
	// it; it exists for front-end bookkeeping and is carried through saves.
	DiscardPile []types.Card `json:"discard_pile"`

	// SlainMonsters is the session-wide kill history, distinct from the
	// per-weapon history on EquippedWeapon.
	SlainMonsters []types.Card `json:"slain_monsters"`

	LastRoomFled bool `json:"last_room_fled"`

	Flavor    string `json:"flavor"`
	Seed      int64  `json:"seed"`
	TurnCount int    `json:"turn_count"`
}

// New creates a fresh game state around an already-built deck, with a
// default player and an empty room. The first room is dealt by the engine.
func New(deck Deck) *GameState {
	return &GameState{
		Player:        NewPlayer(),
		Deck:          deck,
		Room:          Room{},
		DiscardPile:   []types.Card{},
		SlainMonsters: []types.Card{},
	}
}

// TotalSlainCount is the number of monsters defeated across the session.
func (g *GameState) TotalSlainCount() int { return len(g.SlainMonsters) }
