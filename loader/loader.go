// Package loader reads Lua content packs defining custom deck flavors and
// cosmetic themes. The Lua VM is sandboxed and discarded after loading;
// packs can only declare data, never touch the host.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/scoundrel/builder"
	"github.com/nathoo/scoundrel/types"
)

// Pack holds the flavors and themes declared by a content directory.
type Pack struct {
	Flavors []builder.Flavor
	Themes  []builder.Theme
}

// Flavor finds a pack flavor by ID, falling back to the built-ins.
func (p *Pack) Flavor(id string) (builder.Flavor, bool) {
	for _, f := range p.Flavors {
		if f.ID == id {
			return f, true
		}
	}
	return builder.Lookup(id)
}

// Theme finds a pack theme by ID, falling back to the built-ins.
func (p *Pack) Theme(id string) (builder.Theme, bool) {
	for _, t := range p.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return builder.LookupTheme(id)
}

// collector accumulates Lua declarations during file execution.
type collector struct {
	flavors []rawDecl
	themes  []rawDecl
}

type rawDecl struct {
	id    string
	table *lua.LTable
}

// Load reads all .lua files from dir in alphabetical order, executes them
// in a sandboxed VM, and compiles the declarations into a validated Pack.
func Load(dir string) (*Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	return compile(coll)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// registerAPI registers the pack constructors as globals. Both are curried:
// Flavor("id") returns a function that takes the definition table, so packs
// read as Flavor "id" { ... }.
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("Flavor", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.flavors = append(coll.flavors, rawDecl{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Theme", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.themes = append(coll.themes, rawDecl{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

// compile turns raw Lua tables into validated builder values.
func compile(coll *collector) (*Pack, error) {
	pack := &Pack{}

	seen := map[string]bool{}
	for _, raw := range coll.flavors {
		if seen["flavor:"+raw.id] {
			return nil, fmt.Errorf("flavor %q declared twice", raw.id)
		}
		seen["flavor:"+raw.id] = true

		f, err := compileFlavor(raw)
		if err != nil {
			return nil, err
		}
		pack.Flavors = append(pack.Flavors, f)
	}

	for _, raw := range coll.themes {
		if seen["theme:"+raw.id] {
			return nil, fmt.Errorf("theme %q declared twice", raw.id)
		}
		seen["theme:"+raw.id] = true

		t, err := compileTheme(raw)
		if err != nil {
			return nil, err
		}
		pack.Themes = append(pack.Themes, t)
	}

	return pack, nil
}

func compileFlavor(raw rawDecl) (builder.Flavor, error) {
	f := builder.Flavor{ID: raw.id}

	for key, dst := range map[string]*int{
		"potions":  &f.MaxPotionRank,
		"weapons":  &f.MaxWeaponRank,
		"monsters": &f.MaxMonsterRank,
	} {
		v := raw.table.RawGetString(key)
		n, ok := v.(lua.LNumber)
		if !ok {
			return builder.Flavor{}, fmt.Errorf("flavor %q: %s must be a number, got %s", raw.id, key, v.Type())
		}
		*dst = int(n)
	}

	if err := f.Validate(); err != nil {
		return builder.Flavor{}, err
	}
	return f, nil
}

func compileTheme(raw rawDecl) (builder.Theme, error) {
	t := builder.Theme{
		ID:       raw.id,
		Defaults: map[types.CardKind]Identity{},
	}

	for key, kind := range map[string]types.CardKind{
		"monster": types.KindMonster,
		"potion":  types.KindPotion,
		"weapon":  types.KindWeapon,
	} {
		v := raw.table.RawGetString(key)
		if v == lua.LNil {
			continue
		}
		tbl, ok := v.(*lua.LTable)
		if !ok {
			return builder.Theme{}, fmt.Errorf("theme %q: %s must be a table, got %s", raw.id, key, v.Type())
		}
		id, err := compileIdentity(raw.id, key, tbl)
		if err != nil {
			return builder.Theme{}, err
		}
		t.Defaults[kind] = id
	}

	if atlas := raw.table.RawGetString("atlas"); atlas != lua.LNil {
		tbl, ok := atlas.(*lua.LTable)
		if !ok {
			return builder.Theme{}, fmt.Errorf("theme %q: atlas must be a table, got %s", raw.id, atlas.Type())
		}
		t.Atlas = map[string]Identity{}
		var compileErr error
		tbl.ForEach(func(k, v lua.LValue) {
			if compileErr != nil {
				return
			}
			cardID, ok := k.(lua.LString)
			if !ok {
				compileErr = fmt.Errorf("theme %q: atlas keys must be card IDs, got %s", raw.id, k.Type())
				return
			}
			if !validCardID(string(cardID)) {
				compileErr = fmt.Errorf("theme %q: invalid atlas card ID %q", raw.id, string(cardID))
				return
			}
			entry, ok := v.(*lua.LTable)
			if !ok {
				compileErr = fmt.Errorf("theme %q: atlas entry %q must be a table", raw.id, string(cardID))
				return
			}
			id, err := compileIdentity(raw.id, string(cardID), entry)
			if err != nil {
				compileErr = err
				return
			}
			t.Atlas[string(cardID)] = id
		})
		if compileErr != nil {
			return builder.Theme{}, compileErr
		}
	}

	return t, nil
}

func compileIdentity(themeID, where string, tbl *lua.LTable) (Identity, error) {
	name := tbl.RawGetString("name")
	ns, ok := name.(lua.LString)
	if !ok || ns == "" {
		return Identity{}, fmt.Errorf("theme %q: %s needs a non-empty name", themeID, where)
	}
	id := Identity{Name: string(ns)}
	if emoji, ok := tbl.RawGetString("emoji").(lua.LString); ok {
		id.Emoji = string(emoji)
	}
	return id, nil
}

// validCardID checks the SUIT_rank shape with a known suit and rank 2-14.
func validCardID(id string) bool {
	for _, suit := range []types.Suit{types.Spades, types.Clubs, types.Diamonds, types.Hearts} {
		for rank := 2; rank <= 14; rank++ {
			if (types.Card{Suit: suit, Rank: rank}).ID() == id {
				return true
			}
		}
	}
	return false
}

// Identity aliases builder.Identity so pack compilation reads naturally.
type Identity = builder.Identity
