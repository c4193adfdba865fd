// internal/chunk/access.go
// Purpose: voxel values and fast Get/Set accessors on local coordinates.
// Keep these tiny and inline-friendly.

package chunk

import "fmt"

// --- Types ---

// Material is the kind of matter in a cell.
type Material uint8

const (
  Air Material = iota
  Stone
)

func (m Material) String() string {
  switch m {
  case Air:
    return "air"
  case Stone:
    return "stone"
  }
  return fmt.Sprintf("material(%d)", uint8(m))
}

// Voxel is one classified cell. Fill is how solid a boundary cell is,
// on a 0..255 scale; it is always 0 for Air.
type Voxel struct {
  Material Material
  Fill     float32
}

// AirVoxel and SolidStone are the two values most cells hold.
var (
  AirVoxel   = Voxel{Material: Air}
  SolidStone = Voxel{Material: Stone, Fill: 255}
)

// Density is the scalar surface reading of a voxel: 0 for air, Fill otherwise.
func (v Voxel) Density() float32 {
  if v.Material == Air {
    return 0
  }
  return v.Fill
}

func (v Voxel) String() string {
  if v.Material == Air {
    return "air"
  }
  return fmt.Sprintf("%s(%g)", v.Material, v.Fill)
}

// --- Public methods ---

// SetBlock stores v at local (x,y,z). Fill is stored quantized to a byte.
// Distinct cells may be set concurrently. TopValid is left to the caller.
func (c *Chunk) SetBlock(x, y, z int, v Voxel) {
  idx := Idx(uint8(x), uint8(y), uint8(z))
  c.Type[idx] = uint8(v.Material)
  c.Meta[idx] = uint8(v.Fill)
}

// Block returns the voxel at local (x,y,z).
func (c *Chunk) Block(x, y, z int) Voxel {
  idx := Idx(uint8(x), uint8(y), uint8(z))
  return Voxel{Material: Material(c.Type[idx]), Fill: float32(c.Meta[idx])}
}
