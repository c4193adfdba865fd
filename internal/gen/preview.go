// internal/gen/preview.go
// Purpose: overhead heightmap preview (minimap/debug texture).

package gen

import (
  "image"

  "github.com/dgravesa/go-parallel/parallel"
  "github.com/go-gl/mathgl/mgl32"

  "github.com/Conwinds/voxelterrain/internal/chunk"
  "github.com/Conwinds/voxelterrain/internal/mathx"
)

// --- Constants ---

// PreviewSize is the width and height of the preview, one pixel per column.
const PreviewSize = 128

const previewMin = -PreviewSize / 2

var columnRange = mathx.Range{From: 0, To: chunk.CH}

// --- Public methods ---

// Preview renders the surface height of columns cx, cz in [-64, 64) as a
// grayscale RGBA image. Row cx+64 holds column cz+64, so Pix runs cx-major.
//
// Each column is scanned upward from y=0 and stops at the first cell whose
// density is <= 0. A column that never reaches one renders as height 0.
func Preview(c Classifier) *image.RGBA {
  img := image.NewRGBA(image.Rect(0, 0, PreviewSize, PreviewSize))

  parallel.For(PreviewSize, func(row, _ int) {
    cx := float32(previewMin + row)
    for col := 0; col < PreviewSize; col++ {
      cz := float32(previewMin + col)

      height := float32(0)
      for cy := 0; cy < chunk.CH; cy++ {
        v := c.Classify(mgl32.Vec3{cx, float32(cy), cz}).Density()
        if v <= 0 {
          height = float32(cy) + v
          break
        }
      }

      gray := toByte(mathx.MustMapRange(columnRange, byteRange, height))
      off := img.PixOffset(col, row)
      img.Pix[off+0] = gray
      img.Pix[off+1] = gray
      img.Pix[off+2] = gray
      img.Pix[off+3] = 255
    }
  })

  return img
}

func (t *Terrain) Preview() *image.RGBA {
  return Preview(t)
}

// --- Private helpers ---

// toByte truncates v to a byte, saturating outside [0, 255].
func toByte(v float32) uint8 {
  switch {
  case v <= 0:
    return 0
  case v >= 255:
    return 255
  }
  return uint8(v)
}
