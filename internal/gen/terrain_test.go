package gen

import (
  "math"
  "testing"

  "github.com/go-gl/mathgl/mgl32"

  "github.com/Conwinds/voxelterrain/internal/chunk"
)

func TestClassifyDeterminism(t *testing.T) {
  a, b := New(987654321), New(987654321)

  for x := float32(-70); x < 70; x += 9 {
    for z := float32(-70); z < 70; z += 11 {
      for y := float32(0); y < chunk.CH; y += 1.5 {
        p := mgl32.Vec3{x, y, z}
        if va, vb := a.Classify(p), b.Classify(p); va != vb {
          t.Fatalf("Classify(%v) = %v and %v for the same seed", p, va, vb)
        }
      }
    }
  }
}

func TestBedrockLayer(t *testing.T) {
  for _, seed := range []uint64{0, 1, 42, math.MaxUint64} {
    terrain := New(seed)
    for x := float32(-100); x < 100; x += 17 {
      for z := float32(-100); z < 100; z += 17 {
        for _, y := range []float32{-5, 0, 3.5, 9.99, BedrockY} {
          p := mgl32.Vec3{x, y, z}
          if got := terrain.Classify(p); got != chunk.SolidStone {
            t.Errorf("seed %d: Classify(%v) = %v, want stone(255)", seed, p, got)
          }
        }
      }
    }
  }
}

func TestClassifyColumn(t *testing.T) {
  stone := func(fill float32) chunk.Voxel {
    return chunk.Voxel{Material: chunk.Stone, Fill: fill}
  }

  tests := []struct {
    height, y float32
    want      chunk.Voxel
  }{
    // surface itself is air
    {30, 30, chunk.AirVoxel},
    {30, 31.5, chunk.AirVoxel},
    {30, 29.5, stone(127)},
    {30, 29, stone(255)},
    {30, 29.75, stone(63)},
    // less than one byte step rounds down to an empty boundary cell
    {30, 29.999, stone(0)},
    {30, 28.5, chunk.SolidStone},
    {30, 12, chunk.SolidStone},
  }

  for _, tt := range tests {
    if got := classifyColumn(tt.height, tt.y); got != tt.want {
      t.Errorf("classifyColumn(%v, %v) = %v, want %v", tt.height, tt.y, got, tt.want)
    }
  }
}

func TestClassifyMatchesHeight(t *testing.T) {
  terrain := New(77)

  for x := float32(-40); x < 40; x += 7 {
    for z := float32(-40); z < 40; z += 5 {
      h := terrain.HeightAt(x, z)
      for y := float32(BedrockY + 1); y < chunk.CH; y++ {
        p := mgl32.Vec3{x, y, z}
        if got, want := terrain.Classify(p), classifyColumn(h, y); got != want {
          t.Fatalf("Classify(%v) = %v, want %v (height %v)", p, got, want, h)
        }
      }
    }
  }
}

func TestHeightAt(t *testing.T) {
  terrain := New(5)

  for _, c := range [][2]float32{{0, 0}, {-64, 63}, {128, -17}, {1000, 1000}} {
    x, z := c[0], c[1]
    raw := terrain.Noise().Sample2D(float64(x)/64*1.5+0.001, float64(z)/64*1.5+0.001)
    want := float32(chunk.CH/4.0 + chunk.CH/2.0*raw)
    if got := terrain.HeightAt(x, z); math.Abs(float64(got-want)) > 1e-4 {
      t.Errorf("HeightAt(%v, %v) = %v, want %v", x, z, got, want)
    }
  }
}

func TestSurfaceTransitionsOnce(t *testing.T) {
  terrain := New(2024)

  for x := float32(-32); x < 32; x += 3 {
    for z := float32(-32); z < 32; z += 3 {
      transitions := 0
      prev := terrain.Classify(mgl32.Vec3{x, BedrockY + 0.25, z}).Material
      for y := float32(BedrockY + 0.5); y < chunk.CH+40; y += 0.25 {
        cur := terrain.Classify(mgl32.Vec3{x, y, z}).Material
        if cur == chunk.Stone && prev == chunk.Air {
          t.Fatalf("column (%v, %v) turns solid again at y=%v", x, z, y)
        }
        if cur != prev {
          transitions++
        }
        prev = cur
      }
      if transitions > 1 {
        t.Errorf("column (%v, %v) changed material %d times", x, z, transitions)
      }
      if prev != chunk.Air {
        t.Errorf("column (%v, %v) still solid far above the height field", x, z)
      }
    }
  }
}
