// Package builder constructs ready-to-play Scoundrel decks from flavor
// presets and applies cosmetic themes to them.
package builder

import (
	"fmt"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// Flavor is a deck preset. Every kind starts at rank 2 and runs up to its
// max rank; monsters appear in both spades and clubs.
type Flavor struct {
	ID             string
	MaxPotionRank  int
	MaxWeaponRank  int
	MaxMonsterRank int
}

// Built-in flavors, matching the classic game and its two practice decks.
var (
	// Standard is the classic 44-card distribution.
	Standard = Flavor{ID: "standard", MaxPotionRank: 10, MaxWeaponRank: 10, MaxMonsterRank: 14}
	// Beginner has the full potion and weapon ranges for learning the game.
	Beginner = Flavor{ID: "beginner", MaxPotionRank: 14, MaxWeaponRank: 14, MaxMonsterRank: 14}
	// Quick is a small deck for fast sessions.
	Quick = Flavor{ID: "quick", MaxPotionRank: 5, MaxWeaponRank: 5, MaxMonsterRank: 8}
)

// Flavors lists the built-in presets, default first.
func Flavors() []Flavor {
	return []Flavor{Standard, Beginner, Quick}
}

// Lookup finds a built-in flavor by ID.
func Lookup(id string) (Flavor, bool) {
	for _, f := range Flavors() {
		if f.ID == id {
			return f, true
		}
	}
	return Flavor{}, false
}

// Validate checks the rank ranges. Max ranks must lie in [2, 14]; rank 14
// is the ace.
func (f Flavor) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("flavor has no ID")
	}
	for _, r := range []struct {
		name string
		max  int
	}{
		{"potion", f.MaxPotionRank},
		{"weapon", f.MaxWeaponRank},
		{"monster", f.MaxMonsterRank},
	} {
		if r.max < 2 || r.max > 14 {
			return fmt.Errorf("flavor %q: max %s rank %d out of range [2, 14]", f.ID, r.name, r.max)
		}
	}
	return nil
}

// DeckSize is the number of cards this flavor produces: one potion and one
// weapon per rank, and two monsters per rank (spades and clubs).
func (f Flavor) DeckSize() int {
	return (f.MaxPotionRank - 1) + (f.MaxWeaponRank - 1) + 2*(f.MaxMonsterRank-1)
}

// Build assembles an unshuffled deck for the flavor, themed with th.
// The returned deck has no duplicate card IDs and exactly DeckSize cards.
func Build(f Flavor, th Theme) (state.Deck, error) {
	if err := f.Validate(); err != nil {
		return state.Deck{}, err
	}

	var cards []types.Card

	for r := 2; r <= f.MaxPotionRank; r++ {
		cards = append(cards, th.card(types.KindPotion, types.Hearts, r))
	}
	for r := 2; r <= f.MaxWeaponRank; r++ {
		cards = append(cards, th.card(types.KindWeapon, types.Diamonds, r))
	}
	for _, s := range []types.Suit{types.Spades, types.Clubs} {
		for r := 2; r <= f.MaxMonsterRank; r++ {
			cards = append(cards, th.card(types.KindMonster, s, r))
		}
	}

	deck := state.Deck{Cards: cards}
	if got := deck.Composition().Total(); got != f.DeckSize() {
		return state.Deck{}, fmt.Errorf("flavor %q: built %d cards, want %d", f.ID, got, f.DeckSize())
	}
	return deck, nil
}
