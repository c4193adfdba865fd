// internal/mathx/rangemap.go
// Purpose: linear range remapping used for fill values and preview pixels.

package mathx

import (
  "errors"
  "fmt"
)

// ErrDegenerateRange is returned when a source range has zero width.
var ErrDegenerateRange = errors.New("mathx: degenerate range")

// --- Types ---

// Range is a closed interval [From, To]. From may be greater than To.
type Range struct {
  From, To float32
}

// --- Public methods ---

// MapRange linearly maps v from one range onto another.
// Values outside from extrapolate; nothing is clamped.
func MapRange(from, to Range, v float32) (float32, error) {
  if from.From == from.To {
    return 0, fmt.Errorf("%w: [%v, %v]", ErrDegenerateRange, from.From, from.To)
  }
  return to.From + (v-from.From)*(to.To-to.From)/(from.To-from.From), nil
}

// MustMapRange is MapRange for ranges known at compile time.
// It panics if from is degenerate.
func MustMapRange(from, to Range, v float32) float32 {
  out, err := MapRange(from, to, v)
  if err != nil {
    panic(err)
  }
  return out
}
