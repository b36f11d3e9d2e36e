package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/OCharnyshevich/voxelcore/internal/chunk"
	"github.com/OCharnyshevich/voxelcore/internal/config"
	"github.com/OCharnyshevich/voxelcore/pkg/world/gen"
)

// builder streams a square region of chunks through a fixed set of
// recycled controllers.
type builder struct {
	cfg       *config.Config
	log       *slog.Logger
	generator gen.Generator

	stages pond.Pool // synthesis and meshing work
	region pond.Pool // one task per chunk, blocks on stages
	free   chan *chunk.Controller
}

// Summary totals a region build.
type Summary struct {
	Chunks   int
	Empty    int
	Faces    int
	Vertices int
	Took     time.Duration
}

func newBuilder(cfg *config.Config, cpus int, log *slog.Logger) (*builder, error) {
	generator, err := gen.New(cfg.Generator, cfg.Seed, cfg.Params())
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &builder{
		cfg:       cfg,
		log:       log,
		generator: generator,
		stages:    pond.NewPool(cpus),
		region:    pond.NewPool(cfg.Workers),
		free:      make(chan *chunk.Controller, cfg.Workers),
	}
	for range cfg.Workers {
		b.free <- chunk.New(b.stages, log)
	}
	return b, nil
}

// BuildRegion initialises every chunk within cfg.Radius of the origin.
func (b *builder) BuildRegion(ctx context.Context) (Summary, error) {
	var (
		mu  sync.Mutex
		sum Summary
	)
	start := time.Now()
	world := b.cfg.World()
	group := b.region.NewGroup()

	for cx := -b.cfg.Radius; cx <= b.cfg.Radius; cx++ {
		for cz := -b.cfg.Radius; cz <= b.cfg.Radius; cz++ {
			origin := gen.Origin{
				X: cx * b.cfg.ChunkSize,
				Y: b.cfg.OriginY,
				Z: cz * b.cfg.ChunkSize,
			}
			group.SubmitErr(func() error {
				c := <-b.free
				defer func() { b.free <- c }()

				res, err := c.Initialize(ctx, chunk.Settings{
					Size:         b.cfg.ChunkSize,
					Height:       b.cfg.ChunkHeight,
					Origin:       origin,
					Generator:    b.generator,
					LightFalloff: world.LightFalloff,
				})
				if err != nil {
					return fmt.Errorf("chunk %+v: %w", origin, err)
				}
				b.log.Debug("chunk built",
					"origin", origin,
					"active", res.Active,
					"faces", res.Faces,
					"seeds", res.Light.Seeds,
					"took", res.Took,
				)

				mu.Lock()
				sum.Chunks++
				if res.Faces == 0 {
					sum.Empty++
				}
				sum.Faces += res.Faces
				sum.Vertices += res.Vertices
				mu.Unlock()

				// Hand the mesh off here; the controller is recycled.
				return c.Reset()
			})
		}
	}

	if err := group.Wait(); err != nil {
		return sum, err
	}
	sum.Took = time.Since(start)
	return sum, nil
}

// Close stops both pools, waiting for queued work.
func (b *builder) Close() {
	b.region.StopAndWait()
	b.stages.StopAndWait()
}
