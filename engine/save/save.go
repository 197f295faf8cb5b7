// Package save implements JSON serialization and deserialization of a
// complete Scoundrel session.
package save

import (
	"encoding/json"

	"github.com/nathoo/scoundrel/engine/state"
	"github.com/nathoo/scoundrel/types"
)

// FormatVersion identifies the save layout, for forward compatibility.
const FormatVersion = "1"

// SaveData is the JSON-serializable save format: the full GameState tree
// plus the shuffle seed, so a loaded session is indistinguishable from the
// original one.
type SaveData struct {
	Format        string       `json:"format"`
	Flavor        string       `json:"flavor"`
	Seed          int64        `json:"seed"`
	Turn          int          `json:"turn"`
	Player        state.Player `json:"player"`
	Deck          state.Deck   `json:"deck"`
	Room          state.Room   `json:"room"`
	DiscardPile   []types.Card `json:"discard_pile"`
	SlainMonsters []types.Card `json:"slain_monsters"`
	LastRoomFled  bool         `json:"last_room_fled"`
}

// Save serializes a game state to JSON bytes.
func Save(s *state.GameState) ([]byte, error) {
	data := SaveData{
		Format:        FormatVersion,
		Flavor:        s.Flavor,
		Seed:          s.Seed,
		Turn:          s.TurnCount,
		Player:        s.Player,
		Deck:          s.Deck,
		Room:          s.Room,
		DiscardPile:   s.DiscardPile,
		SlainMonsters: s.SlainMonsters,
		LastRoomFled:  s.LastRoomFled,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	// Ensure slices are never nil after load.
	if sd.Deck.Cards == nil {
		sd.Deck.Cards = []types.Card{}
	}
	if sd.Room.Cards == nil {
		sd.Room.Cards = []types.Card{}
	}
	if sd.DiscardPile == nil {
		sd.DiscardPile = []types.Card{}
	}
	if sd.SlainMonsters == nil {
		sd.SlainMonsters = []types.Card{}
	}
	if sd.Player.Equipped != nil && sd.Player.Equipped.SlainMonsters == nil {
		sd.Player.Equipped.SlainMonsters = []types.Card{}
	}
	return &sd, nil
}

// ApplySave applies loaded save data onto a state.
func ApplySave(s *state.GameState, sd *SaveData) {
	s.Player = sd.Player
	s.Deck = sd.Deck
	s.Room = sd.Room
	s.DiscardPile = sd.DiscardPile
	s.SlainMonsters = sd.SlainMonsters
	s.LastRoomFled = sd.LastRoomFled
	s.Flavor = sd.Flavor
	s.Seed = sd.Seed
	s.TurnCount = sd.Turn
}
