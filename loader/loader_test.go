package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/scoundrel/builder"
	"github.com/nathoo/scoundrel/types"
)

// writePack writes Lua files into a temp directory and returns its path.
func writePack(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_FlavorAndTheme(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `
Flavor "gauntlet" {
	potions = 6,
	weapons = 8,
	monsters = 12,
}

Theme "gothic" {
	monster = { name = "Horror", emoji = "🕸️" },
	potion = { name = "Vial" },
	weapon = { name = "Relic" },
	atlas = {
		SPADES_12 = { name = "The Count", emoji = "🧛" },
	},
}
`,
	})

	pack, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	f, ok := pack.Flavor("gauntlet")
	if !ok {
		t.Fatal("flavor gauntlet not found")
	}
	if f.MaxPotionRank != 6 || f.MaxWeaponRank != 8 || f.MaxMonsterRank != 12 {
		t.Errorf("unexpected flavor: %+v", f)
	}
	if f.DeckSize() != 5+7+2*11 {
		t.Errorf("unexpected deck size %d", f.DeckSize())
	}

	th, ok := pack.Theme("gothic")
	if !ok {
		t.Fatal("theme gothic not found")
	}
	if th.Defaults[types.KindMonster].Name != "Horror" {
		t.Errorf("monster default: %+v", th.Defaults[types.KindMonster])
	}
	if th.Atlas["SPADES_12"].Name != "The Count" {
		t.Errorf("atlas entry: %+v", th.Atlas["SPADES_12"])
	}

	// Packs build real decks.
	deck, err := builder.Build(f, th)
	if err != nil {
		t.Fatalf("building pack deck: %v", err)
	}
	if deck.Composition().Total() != f.DeckSize() {
		t.Errorf("pack deck has %d cards, want %d", deck.Composition().Total(), f.DeckSize())
	}
}

func TestLoad_FallsBackToBuiltins(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `Flavor "tiny" { potions = 3, weapons = 3, monsters = 4 }`,
	})

	pack, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, ok := pack.Flavor("standard"); !ok {
		t.Error("built-in flavors should remain reachable through a pack")
	}
	if _, ok := pack.Theme("fantasy"); !ok {
		t.Error("built-in themes should remain reachable through a pack")
	}
}

func TestLoad_RejectsBadFlavorRanks(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `Flavor "bad" { potions = 1, weapons = 10, monsters = 14 }`,
	})
	if _, err := Load(dir); err == nil {
		t.Error("expected an error for an out-of-range rank")
	}
}

func TestLoad_RejectsBadAtlasKey(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `Theme "bad" { atlas = { NOT_A_CARD = { name = "X" } } }`,
	})
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for an invalid atlas key")
	}
	if !strings.Contains(err.Error(), "NOT_A_CARD") {
		t.Errorf("error should name the bad key: %v", err)
	}
}

func TestLoad_RejectsDuplicateFlavors(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `
Flavor "dup" { potions = 5, weapons = 5, monsters = 5 }
Flavor "dup" { potions = 6, weapons = 6, monsters = 6 }
`,
	})
	if _, err := Load(dir); err == nil {
		t.Error("expected an error for a duplicate flavor ID")
	}
}

func TestLoad_RejectsMissingThemeName(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `Theme "bad" { monster = { emoji = "👾" } }`,
	})
	if _, err := Load(dir); err == nil {
		t.Error("expected an error for a nameless identity")
	}
}

func TestLoad_EmptyDirFails(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected an error when no .lua files exist")
	}
}

func TestLoad_SandboxBlocksIO(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `
if os ~= nil or io ~= nil or dofile ~= nil then
	error("sandbox leak")
end
Flavor "ok" { potions = 5, weapons = 5, monsters = 5 }
`,
	})
	if _, err := Load(dir); err != nil {
		t.Errorf("sandbox check failed: %v", err)
	}
}

func TestLoad_LuaErrorSurfaces(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.lua": `this is not lua`,
	})
	if _, err := Load(dir); err == nil {
		t.Error("expected a Lua syntax error to surface")
	}
}
