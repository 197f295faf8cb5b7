// Scoundrel is a single-player dungeon-crawl card game.
// Usage: scoundrel [--version] [--plain] [--seed <n>] [--flavor <id>] [--theme <id>] [--content <dir>]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/scoundrel/builder"
	"github.com/nathoo/scoundrel/cli"
	"github.com/nathoo/scoundrel/engine"
	"github.com/nathoo/scoundrel/loader"
	"github.com/nathoo/scoundrel/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	seed := time.Now().UnixNano()
	flavorID := builder.Standard.ID
	themeID := builder.Fantasy.ID
	var contentDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("scoundrel %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--seed":
			if i+1 >= len(args) {
				fatal("--seed requires a number")
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fatal(fmt.Sprintf("invalid seed %q", args[i]))
			}
			seed = n
		case "--flavor":
			if i+1 >= len(args) {
				fatal("--flavor requires an ID")
			}
			i++
			flavorID = args[i]
		case "--theme":
			if i+1 >= len(args) {
				fatal("--theme requires an ID")
			}
			i++
			themeID = args[i]
		case "--content":
			if i+1 >= len(args) {
				fatal("--content requires a directory")
			}
			i++
			contentDir = args[i]
		default:
			fatal(fmt.Sprintf("unknown argument %q", args[i]))
		}
	}

	// Resolve flavor and theme, through a Lua content pack if one is given.
	pack := &loader.Pack{}
	if contentDir != "" {
		p, err := loader.Load(contentDir)
		if err != nil {
			fatal(fmt.Sprintf("loading content pack: %v", err))
		}
		pack = p
	}

	flavor, ok := pack.Flavor(flavorID)
	if !ok {
		fatal(fmt.Sprintf("unknown flavor %q", flavorID))
	}
	theme, ok := pack.Theme(themeID)
	if !ok {
		fatal(fmt.Sprintf("unknown theme %q", themeID))
	}

	deck, err := builder.Build(flavor, theme)
	if err != nil {
		fatal(fmt.Sprintf("building deck: %v", err))
	}

	eng := engine.New(deck, flavor.ID, seed)

	// Use the plain CLI if --plain is set or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("Scoundrel — flavor %s, seed %d\n", flavor.ID, seed)
		cli.New(eng).Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fatal(err.Error())
	}
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "scoundrel: %s\n", msg)
	os.Exit(1)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
