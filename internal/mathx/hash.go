// internal/mathx/hash.go
// Purpose: fast deterministic hashing for seeds/noise.
// Keep portable and stable across versions (no use of rand).

package mathx

// --- Public methods ---

// Hash64 mixes 64-bit input into a well-distributed 64-bit output.
// SplitMix64 finalizer; stable across platforms.
func Hash64(x uint64) uint64 {
  x ^= x >> 30
  x *= 0xbf58476d1ce4e5b9
  x ^= x >> 27
  x *= 0x94d049bb133111eb
  x ^= x >> 31
  return x
}

// OctaveSeed derives the seed for one noise octave from the world seed.
// Octave 0 and the raw seed never collide with other octaves of the same seed.
func OctaveSeed(seed uint64, octave int) int64 {
  // Golden-ratio stride keeps neighbouring octaves decorrelated.
  h := Hash64(seed + uint64(octave)*0x9e3779b97f4a7c15)
  return int64(h)
}
