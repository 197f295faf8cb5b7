package state

import (
	"errors"
	"testing"

	"github.com/nathoo/scoundrel/types"
)

func monster(rank int) types.Card {
	return types.Card{Kind: types.KindMonster, Suit: types.Spades, Rank: rank, Name: "Monster"}
}

func potion(rank int) types.Card {
	return types.Card{Kind: types.KindPotion, Suit: types.Hearts, Rank: rank, Name: "Potion"}
}

func weapon(rank int) types.Card {
	return types.Card{Kind: types.KindWeapon, Suit: types.Diamonds, Rank: rank, Name: "Weapon"}
}

// --- Deck ---

func TestDeckDraw_TakesTop(t *testing.T) {
	d := Deck{Cards: []types.Card{monster(2), monster(3), monster(4)}}

	card, err := d.Draw()
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if card.Rank != 4 {
		t.Errorf("expected top card rank 4, got %d", card.Rank)
	}
	if d.Remaining() != 2 {
		t.Errorf("expected 2 cards left, got %d", d.Remaining())
	}
}

func TestDeckDraw_EmptyFails(t *testing.T) {
	d := Deck{}
	if !d.IsEmpty() {
		t.Fatal("fresh zero deck should be empty")
	}
	if _, err := d.Draw(); !errors.Is(err, ErrDeckEmpty) {
		t.Errorf("expected ErrDeckEmpty, got %v", err)
	}
}

func TestDeckToBottom_OrderAndCounter(t *testing.T) {
	d := Deck{Cards: []types.Card{monster(10)}}
	d.ToBottom([]types.Card{monster(2), monster(3), monster(4)})

	// Each card is inserted at the front in turn, so the last input card
	// ends up closest to the remaining cards.
	wantRanks := []int{4, 3, 2, 10}
	for i, want := range wantRanks {
		if d.Cards[i].Rank != want {
			t.Errorf("position %d: got rank %d, want %d", i, d.Cards[i].Rank, want)
		}
	}
	if d.BottomedCards != 3 {
		t.Errorf("expected 3 bottomed cards, got %d", d.BottomedCards)
	}
}

func TestDeckDrawBottomRoundTrip(t *testing.T) {
	d := Deck{Cards: []types.Card{monster(2), monster(3), potion(4), weapon(5)}}

	var drawn []types.Card
	for !d.IsEmpty() {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("draw failed: %v", err)
		}
		drawn = append(drawn, c)
	}
	d.ToBottom(drawn)

	if d.Remaining() != 4 {
		t.Errorf("round trip lost cards: %d remaining", d.Remaining())
	}
	if d.BottomedCards != 4 {
		t.Errorf("expected bottomed counter 4, got %d", d.BottomedCards)
	}
}

func TestDeckComposition_Live(t *testing.T) {
	d := Deck{Cards: []types.Card{monster(2), monster(3), potion(4), weapon(5)}}

	comp := d.Composition()
	if comp.Monsters != 2 || comp.Potions != 1 || comp.Weapons != 1 {
		t.Errorf("unexpected composition: %+v", comp)
	}

	// Composition is recomputed, not cached.
	if _, err := d.Draw(); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	comp = d.Composition()
	if comp.Total() != 3 {
		t.Errorf("composition should reflect current contents, got total %d", comp.Total())
	}
}

// --- Room ---

func TestRoomExists_ByID(t *testing.T) {
	r := Room{Cards: []types.Card{monster(5)}}

	// A rethemed copy of the same card is still "the same card".
	themed := monster(5).Retheme("Wolf", "🐺")
	if !r.Exists(themed) {
		t.Error("expected themed copy to be found by ID")
	}
	if r.Exists(monster(6)) {
		t.Error("rank 6 monster should not be in the room")
	}
}

func TestRoomInteract_RemovesFirstMatch(t *testing.T) {
	m := monster(5)
	r := Room{Cards: []types.Card{potion(3), m, weapon(4)}}

	if err := r.Interact(m); err != nil {
		t.Fatalf("interact failed: %v", err)
	}
	if r.Remaining() != 2 {
		t.Errorf("expected 2 cards left, got %d", r.Remaining())
	}
	if r.Exists(m) {
		t.Error("monster should be gone after interaction")
	}
}

func TestRoomInteract_MissingFails(t *testing.T) {
	r := Room{Cards: []types.Card{potion(3)}}
	if err := r.Interact(monster(5)); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

// --- EquippedWeapon ---

func TestEquippedWeapon_LastSlain(t *testing.T) {
	w := EquippedWeapon{Weapon: weapon(6)}

	if _, ok := w.LastSlainMonster(); ok {
		t.Error("fresh weapon should have no last slain monster")
	}

	w.SlainMonsters = append(w.SlainMonsters, monster(10), monster(7))
	last, ok := w.LastSlainMonster()
	if !ok || last.Rank != 7 {
		t.Errorf("expected last slain rank 7, got %v (ok=%v)", last.Rank, ok)
	}
}

// --- Player ---

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer()
	if p.MaxLife != 20 || p.CurrentLife != 20 {
		t.Errorf("expected 20/20 life, got %d/%d", p.CurrentLife, p.MaxLife)
	}
	if p.HasWeapon() {
		t.Error("new player should have no weapon")
	}
	if p.IsDead() {
		t.Error("new player should be alive")
	}
}

func TestPlayerHeal_ClampsAtMax(t *testing.T) {
	p := NewPlayer()
	p.CurrentLife = 18

	if err := p.Heal(5); err != nil {
		t.Fatalf("heal failed: %v", err)
	}
	if p.CurrentLife != 20 {
		t.Errorf("expected life clamped at 20, got %d", p.CurrentLife)
	}
}

func TestPlayerTakeDamage_ClampsAtZero(t *testing.T) {
	p := NewPlayer()
	p.CurrentLife = 3

	if err := p.TakeDamage(10); err != nil {
		t.Fatalf("take damage failed: %v", err)
	}
	if p.CurrentLife != 0 {
		t.Errorf("expected life clamped at 0, got %d", p.CurrentLife)
	}
	if !p.IsDead() {
		t.Error("player at 0 life should be dead")
	}
}

func TestPlayerNegativeAmountsRejected(t *testing.T) {
	p := NewPlayer()
	if err := p.Heal(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("heal(-1): expected ErrNegativeAmount, got %v", err)
	}
	if err := p.TakeDamage(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("takeDamage(-1): expected ErrNegativeAmount, got %v", err)
	}
	if p.CurrentLife != 20 {
		t.Errorf("rejected amounts must not change life, got %d", p.CurrentLife)
	}
}

// --- GameState ---

func TestNewGameState(t *testing.T) {
	deck := Deck{Cards: []types.Card{monster(2)}}
	s := New(deck)

	if s.Player.CurrentLife != 20 {
		t.Errorf("expected fresh player, got life %d", s.Player.CurrentLife)
	}
	if s.Room.Remaining() != 0 {
		t.Error("room should start empty")
	}
	if s.LastRoomFled {
		t.Error("flee flag should start false")
	}
	if s.TotalSlainCount() != 0 {
		t.Errorf("expected 0 slain, got %d", s.TotalSlainCount())
	}
}
