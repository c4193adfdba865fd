// internal/gen/noise.go
// Purpose: deterministic fractal noise (FBM) over seeded coherent noise.
// Keep seam-safe by sampling using world coords (not RNG walking).

package gen

import (
  "errors"
  "fmt"

  "github.com/aquilax/go-perlin"
  "github.com/ojrac/opensimplex-go"

  "github.com/Conwinds/voxelterrain/internal/mathx"
)

// --- Constants ---

// Algorithm selects the base noise summed by each octave.
type Algorithm uint8

const (
  Simplex Algorithm = iota
  Perlin
)

func (a Algorithm) String() string {
  switch a {
  case Simplex:
    return "simplex"
  case Perlin:
    return "perlin"
  }
  return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
  switch s {
  case "simplex":
    return Simplex, nil
  case "perlin":
    return Perlin, nil
  }
  return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidNoiseConfig, s)
}

var ErrInvalidNoiseConfig = errors.New("gen: invalid noise config")

// --- Types ---

// NoiseConfig is the fractal configuration of a NoiseSource.
type NoiseConfig struct {
  Algorithm  Algorithm
  Octaves    int
  Gain       float64
  Lacunarity float64
  Frequency  float64
}

// DefaultNoiseConfig is the terrain noise: 5 octave simplex FBM.
func DefaultNoiseConfig() NoiseConfig {
  return NoiseConfig{
    Algorithm:  Simplex,
    Octaves:    5,
    Gain:       0.5,
    Lacunarity: 2.0,
    Frequency:  0.2,
  }
}

func (c NoiseConfig) validate() error {
  switch {
  case c.Octaves < 1:
    return fmt.Errorf("%w: %d octaves", ErrInvalidNoiseConfig, c.Octaves)
  case c.Frequency <= 0:
    return fmt.Errorf("%w: frequency %v", ErrInvalidNoiseConfig, c.Frequency)
  case c.Gain < 0:
    return fmt.Errorf("%w: gain %v", ErrInvalidNoiseConfig, c.Gain)
  case c.Lacunarity <= 0:
    return fmt.Errorf("%w: lacunarity %v", ErrInvalidNoiseConfig, c.Lacunarity)
  case c.Algorithm != Simplex && c.Algorithm != Perlin:
    return fmt.Errorf("%w: %s", ErrInvalidNoiseConfig, c.Algorithm)
  }
  return nil
}

// octave is a single seeded layer of base noise in roughly [-1,1].
type octave interface {
  Eval2(x, y float64) float64
}

type perlinOctave struct{ p *perlin.Perlin }

func (o perlinOctave) Eval2(x, y float64) float64 { return o.p.Noise2D(x, y) }

// NoiseSource is immutable after construction and safe for concurrent use.
type NoiseSource struct {
  cfg     NoiseConfig
  octaves []octave
  // 1 / sum of octave amplitudes
  bounding float64
}

// --- Constructors ---

func NewNoiseSource(seed uint64, cfg NoiseConfig) (*NoiseSource, error) {
  if err := cfg.validate(); err != nil {
    return nil, err
  }

  ns := &NoiseSource{cfg: cfg, octaves: make([]octave, cfg.Octaves)}
  amp, total := 1.0, 0.0
  for i := range ns.octaves {
    s := mathx.OctaveSeed(seed, i)
    switch cfg.Algorithm {
    case Simplex:
      ns.octaves[i] = opensimplex.New(s)
    case Perlin:
      // n=1: one layer per seed, the fractal sum happens here.
      ns.octaves[i] = perlinOctave{perlin.NewPerlin(2, 2, 1, s)}
    }
    total += amp
    amp *= cfg.Gain
  }
  ns.bounding = 1 / total

  return ns, nil
}

// --- Public methods ---

func (ns *NoiseSource) Config() NoiseConfig { return ns.cfg }

// Sample2D returns fractal Brownian motion noise at (x, z), roughly in [-1,1].
func (ns *NoiseSource) Sample2D(x, z float64) float64 {
  x *= ns.cfg.Frequency
  z *= ns.cfg.Frequency

  sum := 0.0
  amp := 1.0
  for _, o := range ns.octaves {
    sum += o.Eval2(x, z) * amp
    x *= ns.cfg.Lacunarity
    z *= ns.cfg.Lacunarity
    amp *= ns.cfg.Gain
  }
  return sum * ns.bounding
}
