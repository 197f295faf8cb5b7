// Package types defines the shared data structures for the Scoundrel engine.
// This package contains only value types and their derived fields — no game logic.
package types

import "fmt"

// Suit is one of the four fixed card suits. Spades and clubs carry monsters,
// diamonds carry weapons, hearts carry potions.
type Suit string

const (
	Spades   Suit = "SPADES"
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
	Hearts   Suit = "HEARTS"
)

// CardKind discriminates the closed set of card variants.
type CardKind string

const (
	KindMonster CardKind = "monster"
	KindPotion  CardKind = "potion"
	KindWeapon  CardKind = "weapon"
)

// Card is a single playing card. Cards are plain values: they are stored and
// passed by value, so nothing can mutate a card another container holds.
// Identity is the (suit, rank) pair, never the name or emoji — those are
// cosmetic and may differ between themed copies of the same card.
type Card struct {
	Kind  CardKind `json:"kind"`
	Suit  Suit     `json:"suit"`
	Rank  int      `json:"rank"` // 2-10, 11 (J), 12 (Q), 13 (K), 14 (A)
	Name  string   `json:"name"`
	Emoji string   `json:"emoji,omitempty"`
}

// ID returns the deterministic identity key, e.g. "SPADES_14".
// Two cards with the same ID are the same card for all rule purposes.
func (c Card) ID() string {
	return fmt.Sprintf("%s_%d", c.Suit, c.Rank)
}

// Strength is the damage a monster deals. Zero for non-monsters.
func (c Card) Strength() int {
	if c.Kind == KindMonster {
		return c.Rank
	}
	return 0
}

// Potency is the healing a potion grants. Zero for non-potions.
func (c Card) Potency() int {
	if c.Kind == KindPotion {
		return c.Rank
	}
	return 0
}

// Protection is the damage a weapon absorbs. Zero for non-weapons.
func (c Card) Protection() int {
	if c.Kind == KindWeapon {
		return c.Rank
	}
	return 0
}

// Retheme returns a copy of the card with cosmetic fields replaced.
// Kind, suit, and rank — the identity fields — never change.
func (c Card) Retheme(name, emoji string) Card {
	c.Name = name
	c.Emoji = emoji
	return c
}

func (c Card) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID())
}

// ActionPreview projects the consequences of a potential player action,
// so a front end can show damage and lethality before committing.
type ActionPreview struct {
	DamageTaken     int  `json:"damage_taken"`
	HealingReceived int  `json:"healing_received"`
	IsLethal        bool `json:"is_lethal"` // would this action kill the player?
}

// Composition is the count of each card kind currently in a container.
type Composition struct {
	Monsters int `json:"monsters"`
	Potions  int `json:"potions"`
	Weapons  int `json:"weapons"`
}

// Total is the sum over all kinds.
func (c Composition) Total() int {
	return c.Monsters + c.Potions + c.Weapons
}
