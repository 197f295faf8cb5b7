package engine

import (
	"errors"
	"testing"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// standardDeck builds the classic 44-card distribution without the builder
// package (engine must not depend on it).
func standardDeck() state.Deck {
	var cards []types.Card
	for r := 2; r <= 10; r++ {
		cards = append(cards, types.Card{Kind: types.KindPotion, Suit: types.Hearts, Rank: r, Name: "Potion"})
		cards = append(cards, types.Card{Kind: types.KindWeapon, Suit: types.Diamonds, Rank: r, Name: "Weapon"})
	}
	for _, s := range []types.Suit{types.Spades, types.Clubs} {
		for r := 2; r <= 14; r++ {
			cards = append(cards, types.Card{Kind: types.KindMonster, Suit: s, Rank: r, Name: "Monster"})
		}
	}
	return state.Deck{Cards: cards}
}

func TestNew_DealsInitialRoom(t *testing.T) {
	e := New(standardDeck(), "standard", 42)

	if e.State.Room.Remaining() != 4 {
		t.Errorf("expected an initial 4-card room, got %d", e.State.Room.Remaining())
	}
	if e.State.Deck.Remaining() != 40 {
		t.Errorf("expected 40 cards left in deck, got %d", e.State.Deck.Remaining())
	}
	if e.State.Seed != 42 || e.State.Flavor != "standard" {
		t.Errorf("session metadata not recorded: seed=%d flavor=%q", e.State.Seed, e.State.Flavor)
	}
}

func TestNew_SameSeedSameSession(t *testing.T) {
	e1 := New(standardDeck(), "standard", 7)
	e2 := New(standardDeck(), "standard", 7)

	for i := range e1.State.Room.Cards {
		if e1.State.Room.Cards[i].ID() != e2.State.Room.Cards[i].ID() {
			t.Fatalf("room card %d differs between identical seeds", i)
		}
	}
}

func TestEngine_TurnCounting(t *testing.T) {
	e := New(standardDeck(), "standard", 42)

	// Find a monster in the room and punch it.
	var m types.Card
	for _, c := range e.State.Room.Cards {
		if c.Kind == types.KindMonster {
			m = c
			break
		}
	}
	if m.Kind != types.KindMonster {
		t.Skip("no monster in the first room for this seed")
	}

	if err := e.Attack(m, false); err != nil {
		t.Fatalf("attack failed: %v", err)
	}
	if e.State.TurnCount != 1 {
		t.Errorf("expected turn count 1, got %d", e.State.TurnCount)
	}

	// A rejected action does not count a turn.
	if err := e.Attack(m, false); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if e.State.TurnCount != 1 {
		t.Errorf("rejected action must not count a turn, got %d", e.State.TurnCount)
	}
}

func TestRestore_KeepsDeckOrder(t *testing.T) {
	e := New(standardDeck(), "standard", 42)
	top := e.State.Deck.Cards[len(e.State.Deck.Cards)-1]

	restored := Restore(e.State)
	if restored.State.Deck.Cards[len(restored.State.Deck.Cards)-1].ID() != top.ID() {
		t.Error("restore must not reshuffle the deck")
	}
	if restored.RNG.Seed() != 42 {
		t.Errorf("expected seed 42, got %d", restored.RNG.Seed())
	}
}

// TestFullPlaythrough drives a simple bot through a whole session: it
// always interacts with the first room card (bare-handed against
// monsters) and refills rooms until a terminal state. The game must end.
func TestFullPlaythrough(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99, 1234} {
		e := New(standardDeck(), "standard", seed)

		for turn := 0; turn < 1000; turn++ {
			if _, _, done := e.Finished(); done {
				break
			}

			if e.Rules.NextRoomAvailable(e.State) && !e.State.Deck.IsEmpty() {
				if err := e.NextRoom(); err != nil {
					t.Fatalf("seed %d: deal failed: %v", seed, err)
				}
				continue
			}

			card := e.State.Room.Cards[0]
			var err error
			switch card.Kind {
			case types.KindMonster:
				err = e.Attack(card, false)
			case types.KindPotion:
				err = e.Drink(card)
			case types.KindWeapon:
				err = e.Equip(card)
			}
			if err != nil {
				t.Fatalf("seed %d: action on %s failed: %v", seed, card.ID(), err)
			}
		}

		score, won, done := e.Finished()
		if !done {
			t.Fatalf("seed %d: session did not terminate", seed)
		}
		if won {
			// Punching every monster with 20 life cannot clear 208 ranks
			// worth of monsters.
			t.Errorf("seed %d: bare-handed bot should not win (score %d)", seed, score)
		}
	}
}
