// internal/gen/fill.go
// Purpose: chunk filling. Every cell is independent, so columns run in parallel.

package gen

import (
  "github.com/dgravesa/go-parallel/parallel"
  "github.com/go-gl/mathgl/mgl32"

  "github.com/Conwinds/voxelterrain/internal/chunk"
)

// --- Types ---

// Classifier maps a world position to a voxel. It must be safe for
// concurrent use.
type Classifier interface {
  Classify(p mgl32.Vec3) chunk.Voxel
}

// BlockSetter receives filled cells. SetBlock is called concurrently, but
// never twice for the same cell.
type BlockSetter interface {
  SetBlock(x, y, z int, v chunk.Voxel)
}

// --- Public methods ---

// Fill writes Classify(origin + (x,y,z)) into every local cell of dst
// exactly once. Prior contents of dst are never read.
func Fill(dst BlockSetter, c Classifier, origin mgl32.Vec3) {
  parallel.For(chunk.CW*chunk.CD, func(col, _ int) {
    x, z := col%chunk.CW, col/chunk.CW
    for y := 0; y < chunk.CH; y++ {
      p := origin.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
      dst.SetBlock(x, y, z, c.Classify(p))
    }
  })
}

func (t *Terrain) Fill(dst BlockSetter, origin mgl32.Vec3) {
  Fill(dst, t, origin)
}

// GenerateChunk allocates and fills the chunk at coord.
func (t *Terrain) GenerateChunk(coord chunk.ChunkCoord) *chunk.Chunk {
  ch := chunk.New(coord)
  t.Fill(ch, coord.Origin())
  ch.RebuildTopCache()
  return ch
}
