// Command mapgenctl generates a single chunk of example terrain, places
// its configured ores and decorations, computes its heightmap and
// lighting, and reports what it did. It exists to exercise the
// generation core end to end and as a template for embedding it into a
// real server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/voxelmapgen/internal/store"
	"github.com/OCharnyshevich/voxelmapgen/pkg/deco"
	"github.com/OCharnyshevich/voxelmapgen/pkg/emerge"
	"github.com/OCharnyshevich/voxelmapgen/pkg/exampleterrain"
	"github.com/OCharnyshevich/voxelmapgen/pkg/mapgen"
	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/ore"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

func main() {
	cfg := store.DefaultConfig()

	var (
		dataDir = flag.String("data-dir", "./mapgen-data", "directory for world-generation config and schematic manifests")
		chunkX  = flag.Int("chunk-x", 0, "chunk X coordinate to generate")
		chunkZ  = flag.Int("chunk-z", 0, "chunk Z coordinate to generate")
	)
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.IntVar(&cfg.WaterLevel, "water-level", cfg.WaterLevel, "water level Y")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	st, err := store.New(*dataDir, log)
	if err != nil {
		log.Error("open data directory", "error", err)
		os.Exit(1)
	}
	if err := st.LoadConfig(cfg); err != nil {
		log.Error("load mapgen config", "error", err)
		os.Exit(1)
	}
	if err := st.SaveConfig(cfg); err != nil {
		log.Error("save mapgen config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool := emerge.New(4, log)
	pool.Start(ctx)

	blockSize := mapgen.MapBlockSize
	nmin := voxel.Pos{X: *chunkX * blockSize, Y: -blockSize, Z: *chunkZ * blockSize}
	nmax := voxel.Pos{X: nmin.X + blockSize - 1, Y: blockSize*2 - 1, Z: nmin.Z + blockSize - 1}

	pool.Submit(ctx, emerge.Job{
		Nmin: nmin, Nmax: nmax,
		Run: func(ctx context.Context) {
			generateChunk(log, cfg, nmin, nmax)
		},
	})
	pool.Close()
}

func generateChunk(log *slog.Logger, cfg *store.Config, nmin, nmax voxel.Pos) {
	reg := nodedef.NewRegistry()
	layers := exampleterrain.ResolveLayers(reg)
	gold := reg.Register(nodedef.Def{Name: "default:stone_with_gold", Walkable: true})
	sapling := reg.Register(nodedef.Def{Name: "default:sapling", Walkable: false})

	area := voxel.NewArea(nmin, nmax)
	manip := voxel.NewManip(area)
	exampleterrain.Fill(manip, layers, cfg.WaterLevel+8)

	mg := &mapgen.State{Seed: cfg.Seed, WaterLevel: cfg.WaterLevel, Manip: manip, NDef: reg}

	blockseed := uint32(cfg.Seed) ^ uint32(nmin.X)<<8 ^ uint32(nmin.Z)<<16

	oreCfg := &ore.Common{
		Name: "gold in stone", Ore: gold, Wherein: layers.Stone,
		ClustScarcity: 6, ClustNumOres: 3, ClustSize: 3,
		HeightMin: nmin.Y, HeightMax: nmax.Y,
	}
	scatter := &ore.Scatter{Common: *oreCfg}
	ore.PlaceOre(scatter, oreCfg, manip, cfg.Seed, blockseed, nmin, nmax)

	mg.UpdateHeightmap(nmin, nmax)

	decoCfg := &deco.Common{Name: "sapling", CPlaceOn: layers.Grass, FillRatio: 0.05, Sidelen: mapgen.MapBlockSize}
	simple := &deco.Simple{Common: *decoCfg, CDeco: sapling, DecoHeight: 1, Nspawnby: -1}
	deco.PlaceDeco(simple, decoCfg, mg, log, cfg.Seed, blockseed, nmin, nmax)

	var liquidQueue []mapgen.LiquidTransition
	mg.UpdateLiquid(&liquidQueue, nmin, nmax)
	mg.CalcLighting(nmin, nmax)

	log.Info("generated chunk",
		"nmin", nmin, "nmax", nmax,
		"liquid_transitions", len(liquidQueue))
}
