// internal/gen/terrain.go
// Purpose: height field and voxel classification.
//
// Generation is pure: seed + world position -> same voxel, every time.

package gen

import (
  "github.com/go-gl/mathgl/mgl32"

  "github.com/Conwinds/voxelterrain/internal/chunk"
  "github.com/Conwinds/voxelterrain/internal/mathx"
)

// --- Constants ---

const (
  // Everything at or below this height is solid, without a noise lookup.
  BedrockY = 10.0

  // Horizontal noise scale and the offset that keeps samples off grid seams.
  heightScale = 1.5 / 64.0
  seamOffset  = 0.001

  baseHeight      = chunk.CH / 4.0
  heightAmplitude = chunk.CH / 2.0
)

var (
  unitRange = mathx.Range{From: 0, To: 1}
  byteRange = mathx.Range{From: 0, To: 255}
)

// --- Types ---

// Terrain classifies world positions. It holds only the read-only noise
// source, so one Terrain may be shared by any number of goroutines.
type Terrain struct {
  noise *NoiseSource
}

// --- Constructors ---

// New returns the terrain for seed with the default noise configuration.
func New(seed uint64) *Terrain {
  t, err := NewWithConfig(seed, DefaultNoiseConfig())
  if err != nil {
    // DefaultNoiseConfig always validates.
    panic(err)
  }
  return t
}

func NewWithConfig(seed uint64, cfg NoiseConfig) (*Terrain, error) {
  ns, err := NewNoiseSource(seed, cfg)
  if err != nil {
    return nil, err
  }
  return &Terrain{noise: ns}, nil
}

// --- Public methods ---

func (t *Terrain) Noise() *NoiseSource { return t.noise }

// HeightAt returns the terrain surface height of column (x, z).
func (t *Terrain) HeightAt(x, z float32) float32 {
  raw := t.noise.Sample2D(
    float64(x)*heightScale+seamOffset,
    float64(z)*heightScale+seamOffset,
  )
  return baseHeight + heightAmplitude*float32(raw)
}

// Classify returns the voxel at world position p.
func (t *Terrain) Classify(p mgl32.Vec3) chunk.Voxel {
  if p.Y() <= BedrockY {
    return chunk.SolidStone
  }
  return classifyColumn(t.HeightAt(p.X(), p.Z()), p.Y())
}

// --- Private helpers ---

// classifyColumn classifies height y of a column whose surface is at height.
// The surface itself (height == y) is air.
func classifyColumn(height, y float32) chunk.Voxel {
  if height <= y {
    return chunk.AirVoxel
  }

  diff := height - y
  if diff > 1 {
    return chunk.SolidStone
  }

  // Boundary cell. The byte round trip matches what chunk storage keeps.
  fill := float32(uint8(mathx.MustMapRange(unitRange, byteRange, diff)))
  return chunk.Voxel{Material: chunk.Stone, Fill: fill}
}
