// Command schemfetch downloads a schematic pack (a directory of .mts
// files) from a git repository into the local schematic-pack directory,
// so mapgenctl and embedding servers have DecoSchematic templates to
// load without needing schematic authoring tools installed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		repo    = flag.String("repo", "https://github.com/minetest/minetest_game.git", "schematic pack source repository")
		subdir  = flag.String("subdir", "mods/default/schematics", "subdirectory within the repository containing .mts files")
		version = flag.String("ref", "master", "git ref (branch, tag, or commit) to fetch")
		out     = flag.String("o", "./mapgen-data/schematics", "destination directory")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *out == "" {
		log.Error("destination directory is required")
		os.Exit(1)
	}
	if *repo == "" {
		log.Error("source repository is required")
		os.Exit(1)
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Error("clear destination directory", "path", *out, "error", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("git::%s?ref=%s//%s", *repo, *version, *subdir)
	log.Info("fetching schematic pack", "url", url, "destination", *out)

	if err := get.Get(*out, url); err != nil {
		log.Error("fetch schematic pack", "error", err)
		os.Exit(1)
	}

	log.Info("schematic pack fetched", "destination", *out)
}
