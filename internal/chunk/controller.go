// Package chunk drives the generate → light → mesh pipeline for one chunk.
package chunk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
	"github.com/OCharnyshevich/voxelcore/pkg/world/gen"
	"github.com/OCharnyshevich/voxelcore/pkg/world/light"
	"github.com/OCharnyshevich/voxelcore/pkg/world/mesh"
)

var (
	// ErrNotGenerated is returned when lighting or meshing is requested
	// before the grid has been synthesised.
	ErrNotGenerated = errors.New("chunk: voxel grid not generated")
	// ErrInFlight is returned when the chunk is touched while its pipeline runs.
	ErrInFlight = errors.New("chunk: pipeline in flight")
)

// Settings describe what Initialize builds.
type Settings struct {
	Size         int
	Height       int
	Origin       gen.Origin
	Generator    gen.Generator
	LightFalloff float32
}

func (s Settings) validate() error {
	if s.Size <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid chunk dimensions %dx%d", s.Size, s.Height)
	}
	if s.Generator == nil {
		return errors.New("no generator")
	}
	if s.LightFalloff <= 0 || s.LightFalloff >= 1 {
		return fmt.Errorf("light falloff %v outside (0,1)", s.LightFalloff)
	}
	return nil
}

// Result summarises one Initialize run.
type Result struct {
	ID       uuid.UUID
	Origin   gen.Origin
	Active   int
	Light    light.Stats
	Faces    int
	Vertices int
	Took     time.Duration
}

// Controller owns one chunk's voxel grid and mesh. Stages run strictly in
// order; synthesis and meshing are handed to the worker pool as single
// tasks and become visible only once complete.
type Controller struct {
	id   uuid.UUID
	log  *slog.Logger
	pool pond.Pool

	busy atomic.Bool

	state    State
	settings Settings
	grid     *voxel.Grid
	mesh     *mesh.Buffers
	light    light.Stats
}

// New creates an uninitialised controller. pool may be nil, in which case
// every stage runs on the calling goroutine.
func New(pool pond.Pool, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New()
	return &Controller{
		id:   id,
		log:  log.With("chunk", id),
		pool: pool,
		mesh: &mesh.Buffers{},
	}
}

// ID identifies the controller across resets.
func (c *Controller) ID() uuid.UUID { return c.id }

// State returns the last completed stage.
func (c *Controller) State() State { return c.state }

// Initialize runs the full pipeline. The context is checked once before
// anything starts; after that the pipeline runs to completion.
func (c *Controller) Initialize(ctx context.Context, s Settings) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !c.busy.CompareAndSwap(false, true) {
		return Result{}, ErrInFlight
	}
	defer c.busy.Store(false)

	start := time.Now()
	if err := c.generate(s); err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}
	if err := c.propagate(); err != nil {
		return Result{}, fmt.Errorf("light: %w", err)
	}
	if err := c.buildMesh(); err != nil {
		return Result{}, fmt.Errorf("mesh: %w", err)
	}

	res := Result{
		ID:       c.id,
		Origin:   s.Origin,
		Active:   c.grid.CountActive(),
		Light:    c.light,
		Faces:    c.mesh.FaceCount(),
		Vertices: len(c.mesh.Vertices),
		Took:     time.Since(start),
	}
	c.log.Debug("chunk initialized", "origin", s.Origin, "faces", res.Faces, "took", res.Took)
	return res, nil
}

// Generate synthesises a fresh grid, discarding any previous one.
func (c *Controller) Generate(s Settings) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer c.busy.Store(false)
	return c.generate(s)
}

// Light computes the light field of the generated grid.
func (c *Controller) Light() (light.Stats, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return light.Stats{}, ErrInFlight
	}
	defer c.busy.Store(false)
	err := c.propagate()
	return c.light, err
}

// BuildMesh extracts the mesh of the generated grid. Meshing an unlit grid
// is allowed and yields zero light on every face.
func (c *Controller) BuildMesh() error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer c.busy.Store(false)
	return c.buildMesh()
}

// Reset returns the chunk to a blank grid of the same dimensions with an
// empty mesh, ready to be initialised again.
func (c *Controller) Reset() error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer c.busy.Store(false)

	if c.grid != nil {
		c.grid = voxel.NewGrid(c.settings.Size, c.settings.Height)
	}
	c.mesh = &mesh.Buffers{}
	c.light = light.Stats{}
	c.state = Uninitialized
	c.log.Debug("chunk reset")
	return nil
}

// IsVoxelActiveAt rounds a chunk-local position to the nearest voxel and
// reports whether it is occupied. Positions outside the chunk, or any
// position before generation, are inactive.
func (c *Controller) IsVoxelActiveAt(p mgl32.Vec3) bool {
	if c.grid == nil || c.state == Uninitialized {
		return false
	}
	// Halves round to even, as Mathf.RoundToInt does on the engine side.
	// math.Round would disagree at x.5.
	x := int(math.RoundToEven(float64(p.X())))
	y := int(math.RoundToEven(float64(p.Y())))
	z := int(math.RoundToEven(float64(p.Z())))
	return c.grid.IsActive(x, y, z)
}

// VoxelAt returns the voxel at local (x,y,z), or the zero voxel outside.
func (c *Controller) VoxelAt(x, y, z int) voxel.Voxel {
	if c.grid == nil {
		return voxel.Voxel{}
	}
	return c.grid.Get(x, y, z)
}

// Grid exposes the voxel grid for read access. It is nil before the first
// generation.
func (c *Controller) Grid() *voxel.Grid { return c.grid }

// Mesh returns the finished mesh. ok is false until meshing has completed
// or when no face is visible.
func (c *Controller) Mesh() (b *mesh.Buffers, ok bool) {
	if c.state != Meshed || c.mesh.Empty() {
		return nil, false
	}
	return c.mesh, true
}

func (c *Controller) generate(s Settings) error {
	if err := s.validate(); err != nil {
		return err
	}

	var grid *voxel.Grid
	if err := c.run(func() {
		grid = s.Generator.Generate(s.Origin, s.Size, s.Height)
	}); err != nil {
		return err
	}

	c.settings = s
	c.grid = grid
	c.mesh = &mesh.Buffers{}
	c.light = light.Stats{}
	c.state = Generated
	c.log.Debug("chunk generated", "origin", s.Origin, "active", grid.CountActive())
	return nil
}

func (c *Controller) propagate() error {
	if c.state < Generated {
		return ErrNotGenerated
	}
	c.light = light.Propagate(c.grid, c.settings.LightFalloff)
	c.state = Lit
	c.log.Debug("chunk lit", "seeds", c.light.Seeds, "relaxed", c.light.Relaxed)
	return nil
}

func (c *Controller) buildMesh() error {
	if c.state < Generated {
		return ErrNotGenerated
	}

	// Build into fresh buffers so a reader never sees a half-built mesh.
	next := &mesh.Buffers{}
	if err := c.run(func() {
		mesh.ExtractInto(c.grid, next)
	}); err != nil {
		return err
	}

	c.mesh = next
	c.state = Meshed
	c.log.Debug("chunk meshed", "faces", next.FaceCount())
	return nil
}

// run executes task on the pool, or inline without one, and waits for it.
func (c *Controller) run(task func()) error {
	if c.pool == nil {
		task()
		return nil
	}
	return c.pool.Submit(task).Wait()
}
