package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/OCharnyshevich/voxelcore/internal/config"
)

func main() {
	cfg := config.DefaultConfig()

	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		configURL  = flag.String("config-url", "", "go-getter source to fetch the config from")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "terrain generator: curve, simple or flat")
	flag.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "chunk width and depth in voxels")
	flag.IntVar(&cfg.ChunkHeight, "chunk-height", cfg.ChunkHeight, "chunk height in voxels")
	flag.Float64Var(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "world height multiplier")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "chunks built concurrently")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "region radius in chunks")
	flag.IntVar(&cfg.OriginY, "origin-y", cfg.OriginY, "world Y of the region's chunk layer")
	falloff := flag.Float64("light-falloff", float64(cfg.LightFalloff), "light lost per flood-fill hop")
	flag.Parse()
	cfg.LightFalloff = float32(*falloff)

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if err := run(cfg, *configPath, *configURL, explicit, log); err != nil {
		log.Error("voxelgen failed", "error", err)
		os.Exit(1)
	}
}

// run loads the configuration and builds the region. It returns instead of
// exiting so deferred cleanup always happens.
func run(cfg *config.Config, configPath, configURL string, explicit map[string]bool, log *slog.Logger) error {
	if configURL != "" {
		dir, err := os.MkdirTemp("", "voxelgen-")
		if err != nil {
			return fmt.Errorf("create temp dir: %w", err)
		}
		defer os.RemoveAll(dir)

		path, err := config.Fetch(dir, configURL)
		if err != nil {
			return err
		}
		log.Info("fetched config", "src", configURL)
		configPath = path
	}
	if configPath != "" {
		fromFile, err := config.Load(configPath)
		if err != nil {
			return err
		}
		config.Merge(cfg, fromFile, explicit)
		log.Info("loaded config from file", "path", configPath)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	b, err := newBuilder(cfg, runtime.NumCPU(), log)
	if err != nil {
		return fmt.Errorf("create builder: %w", err)
	}
	defer b.Close()

	sum, err := b.BuildRegion(ctx)
	if err != nil {
		return fmt.Errorf("build region: %w", err)
	}
	log.Info("region built",
		"chunks", sum.Chunks,
		"empty", sum.Empty,
		"faces", sum.Faces,
		"vertices", sum.Vertices,
		"took", sum.Took,
	)
	return nil
}
