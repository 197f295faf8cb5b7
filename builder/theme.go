package builder

import (
	"fmt"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// Identity is the cosmetic face of a card: its display name and an
// optional emoji. Identities never affect rules.
type Identity struct {
	Name  string
	Emoji string
}

// Theme maps cards to cosmetic identities. Defaults name each kind; Atlas
// entries, keyed by card ID, override the default for individual cards.
type Theme struct {
	ID       string
	Defaults map[types.CardKind]Identity
	Atlas    map[string]Identity
}

// Plain names every card after its kind, with no emoji.
var Plain = Theme{
	ID: "plain",
	Defaults: map[types.CardKind]Identity{
		types.KindMonster: {Name: "Monster"},
		types.KindPotion:  {Name: "Potion"},
		types.KindWeapon:  {Name: "Weapon"},
	},
}

// card produces a themed card value for the given identity fields.
func (t Theme) card(kind types.CardKind, suit types.Suit, rank int) types.Card {
	c := types.Card{Kind: kind, Suit: suit, Rank: rank}
	id := t.Defaults[kind]
	if override, ok := t.Atlas[c.ID()]; ok {
		id = override
	}
	return c.Retheme(id.Name, id.Emoji)
}

// Apply rethemes every card of a deck in place of the previous cosmetics.
// Composition and card identities are untouched; the guard returns an error
// if a theme somehow changed the deck's balance.
func (t Theme) Apply(d state.Deck) (state.Deck, error) {
	before := d.Composition()
	themed := state.Deck{BottomedCards: d.BottomedCards}
	for _, c := range d.Cards {
		themed.Cards = append(themed.Cards, t.card(c.Kind, c.Suit, c.Rank))
	}
	if themed.Composition() != before {
		return state.Deck{}, fmt.Errorf("theme %q altered deck composition", t.ID)
	}
	return themed, nil
}

// Fantasy is the built-in high-fantasy atlas: every card gets its own
// creature, brew, or blade.
var Fantasy = Theme{
	ID: "fantasy",
	Defaults: map[types.CardKind]Identity{
		types.KindMonster: {Name: "Monster", Emoji: "👾"},
		types.KindPotion:  {Name: "Potion", Emoji: "🧪"},
		types.KindWeapon:  {Name: "Weapon", Emoji: "🗡️"},
	},
	Atlas: map[string]Identity{
		// Monsters (clubs).
		"CLUBS_2":  {Name: "Beetle", Emoji: "🪲"},
		"CLUBS_3":  {Name: "Scorpion", Emoji: "🦂"},
		"CLUBS_4":  {Name: "Spider", Emoji: "🕷️"},
		"CLUBS_5":  {Name: "Wolf", Emoji: "🐺"},
		"CLUBS_6":  {Name: "Bear", Emoji: "🐻"},
		"CLUBS_7":  {Name: "Zombie", Emoji: "🧟"},
		"CLUBS_8":  {Name: "Ghost", Emoji: "👻"},
		"CLUBS_9":  {Name: "Skeleton", Emoji: "💀"},
		"CLUBS_10": {Name: "All-Seeing Eye", Emoji: "👁️"},
		"CLUBS_11": {Name: "Golem", Emoji: "🪨"},
		"CLUBS_12": {Name: "Vampire Lord", Emoji: "🧛"},
		"CLUBS_13": {Name: "Djinn", Emoji: "🧞"},
		"CLUBS_14": {Name: "Dragon", Emoji: "🐉"},

		// Monsters (spades).
		"SPADES_2":  {Name: "Bat", Emoji: "🦇"},
		"SPADES_3":  {Name: "Slime", Emoji: "🟢"},
		"SPADES_4":  {Name: "Snake", Emoji: "🐍"},
		"SPADES_5":  {Name: "Raptor", Emoji: "🦅"},
		"SPADES_6":  {Name: "Alligator", Emoji: "🐊"},
		"SPADES_7":  {Name: "Mushroom Fiend", Emoji: "🍄"},
		"SPADES_8":  {Name: "Goblin", Emoji: "👹"},
		"SPADES_9":  {Name: "Giant Octopus", Emoji: "🐙"},
		"SPADES_10": {Name: "Mind Flayer", Emoji: "🧠"},
		"SPADES_11": {Name: "Fire Elemental", Emoji: "🔥"},
		"SPADES_12": {Name: "Frost Elemental", Emoji: "❄️"},
		"SPADES_13": {Name: "Chaos Spirit", Emoji: "🌀"},
		"SPADES_14": {Name: "Blood Demon", Emoji: "🩸"},

		// Potions (hearts).
		"HEARTS_2":  {Name: "Healing Herb", Emoji: "🌿"},
		"HEARTS_3":  {Name: "Clear Water", Emoji: "💧"},
		"HEARTS_4":  {Name: "Apple", Emoji: "🍎"},
		"HEARTS_5":  {Name: "Herbal Brew", Emoji: "🧃"},
		"HEARTS_6":  {Name: "Salve", Emoji: "🩹"},
		"HEARTS_7":  {Name: "Golden Honey", Emoji: "🍯"},
		"HEARTS_8":  {Name: "Healing Potion", Emoji: "🧪"},
		"HEARTS_9":  {Name: "Life Essence", Emoji: "💖"},
		"HEARTS_10": {Name: "Renewal Elixir", Emoji: "✨"},
		"HEARTS_11": {Name: "Vital Draught", Emoji: "🌱"},
		"HEARTS_12": {Name: "Essence of Vigor", Emoji: "🔮"},
		"HEARTS_13": {Name: "Elixir of Rebirth", Emoji: "🌟"},
		"HEARTS_14": {Name: "Heart of Life", Emoji: "💎"},

		// Weapons (diamonds).
		"DIAMONDS_2":  {Name: "Club", Emoji: "🪵"},
		"DIAMONDS_3":  {Name: "Dagger", Emoji: "🗡️"},
		"DIAMONDS_4":  {Name: "Hand Axe", Emoji: "🪓"},
		"DIAMONDS_5":  {Name: "Short Sword", Emoji: "⚔️"},
		"DIAMONDS_6":  {Name: "War Hammer", Emoji: "🔨"},
		"DIAMONDS_7":  {Name: "Longsword", Emoji: "🗡️"},
		"DIAMONDS_8":  {Name: "Battle Axe", Emoji: "🪓"},
		"DIAMONDS_9":  {Name: "Greatsword", Emoji: "⚔️"},
		"DIAMONDS_10": {Name: "War Bow", Emoji: "🏹"},
		"DIAMONDS_11": {Name: "Firefang", Emoji: "🔥"},
		"DIAMONDS_12": {Name: "Frostbite", Emoji: "❄️"},
		"DIAMONDS_13": {Name: "Skywrath", Emoji: "⚡"},
		"DIAMONDS_14": {Name: "Worldbreaker", Emoji: "💎"},
	},
}

// Themes lists the built-in themes, default first.
func Themes() []Theme {
	return []Theme{Fantasy, Plain}
}

// LookupTheme finds a built-in theme by ID.
func LookupTheme(id string) (Theme, bool) {
	for _, t := range Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
