// internal/chunk/chunk.go
// Purpose: chunk data layout (SoA), constants, and core indexing helpers.
//
// Important: pick ONE pack/index scheme and never change after persistence.
// Chunks are 32x64x32, so we exploit power-of-two shifts for branchless indexing:
//   idx = x | (z<<5) | (y<<10)

package chunk

import "github.com/go-gl/mathgl/mgl32"

// --- Constants ---

const (
  CW = 32
  CH = 64
  CD = 32

  // 32 = 2^5
  shiftZ = 5
  // 32*32 = 1024 = 2^10
  shiftY = 10
  mask5  = 31
  mask6  = 63

  N = CW * CH * CD // 65536
)

// --- Types ---

type ChunkCoord struct{ X, Y, Z int32 }

// Origin returns the world-space position of local cell (0,0,0).
func (c ChunkCoord) Origin() mgl32.Vec3 {
  return mgl32.Vec3{float32(c.X * CW), float32(c.Y * CH), float32(c.Z * CD)}
}

// Chunk is the storage for a 32x64x32 region.
//
// Type holds the Material of each cell, Meta its quantized fill.
type Chunk struct {
  C ChunkCoord

  // Dense voxel data (SoA)
  Type [N]uint8
  Meta [N]uint8

  // Derived cache: top-most solid block per (x,z) column.
  // Only a convenience for previews/pathing; clear TopValid after edits.
  TopY     [CW * CD]uint8
  TopValid bool
}

// --- Constructors ---

func New(c ChunkCoord) *Chunk {
  // Type/Meta are zero-initialized (air).
  return &Chunk{C: c}
}

// --- Public methods ---

// Pack converts local (x,y,z) to a packed position.
// Because our pack matches the linear index, packedPos == idx.
func Pack(x, y, z uint8) uint16 {
  return uint16(x) | (uint16(z) << shiftZ) | (uint16(y) << shiftY)
}

func Unpack(p uint16) (x, y, z uint8) {
  x = uint8(p & mask5)
  z = uint8((p >> shiftZ) & mask5)
  y = uint8((p >> shiftY) & mask6)
  return
}

// Idx returns the linear index into Type/Meta.
func Idx(x, y, z uint8) int { return int(Pack(x, y, z)) }

// InBounds reports whether local (x,y,z) addresses a cell of the chunk.
func InBounds(x, y, z int) bool {
  return x >= 0 && x < CW && y >= 0 && y < CH && z >= 0 && z < CD
}

// RebuildTopCache recomputes TopY for the chunk.
// Columns with no solid cell report 0.
func (c *Chunk) RebuildTopCache() {
  for z := 0; z < CD; z++ {
    for x := 0; x < CW; x++ {
      topY := uint8(0)
      // scan from top down
      for y := CH - 1; y >= 0; y-- {
        if Material(c.Type[Idx(uint8(x), uint8(y), uint8(z))]) != Air {
          topY = uint8(y)
          break
        }
      }
      c.TopY[x+z*CW] = topY
    }
  }
  c.TopValid = true
}
