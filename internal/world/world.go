// internal/world/world.go
// Purpose: world state. Owns the terrain generator and the generated chunk cache.

package world

import (
  "log"
  "sync"

  "github.com/Conwinds/voxelterrain/internal/chunk"
  "github.com/Conwinds/voxelterrain/internal/gen"
)

// --- Types ---

type World struct {
  seed    uint64
  terrain *gen.Terrain

  mu     sync.RWMutex
  chunks map[chunk.ChunkCoord]*chunk.Chunk

  // Logger receives chunk generation events; nil silences them.
  Logger *log.Logger
}

// --- Constructors ---

func NewWorld(seed uint64) *World {
  return NewWorldWithTerrain(seed, gen.New(seed))
}

// NewWorldWithTerrain uses a terrain built with a non-default noise config.
func NewWorldWithTerrain(seed uint64, t *gen.Terrain) *World {
  return &World{
    seed:    seed,
    terrain: t,
    chunks:  make(map[chunk.ChunkCoord]*chunk.Chunk, 256),
  }
}

// --- Public API ---

func (w *World) Seed() uint64           { return w.seed }
func (w *World) Terrain() *gen.Terrain { return w.terrain }

// Len returns the number of generated chunks.
func (w *World) Len() int {
  w.mu.RLock()
  defer w.mu.RUnlock()
  return len(w.chunks)
}

// GetOrCreateChunk returns the chunk at c, generating it on first use.
// Each coordinate is generated at most once.
func (w *World) GetOrCreateChunk(c chunk.ChunkCoord) *chunk.Chunk {
  w.mu.RLock()
  ch := w.chunks[c]
  w.mu.RUnlock()
  if ch != nil {
    return ch
  }

  // Create under write lock.
  w.mu.Lock()
  defer w.mu.Unlock()
  // Re-check in case of race.
  if ch = w.chunks[c]; ch == nil {
    ch = w.terrain.GenerateChunk(c)
    w.chunks[c] = ch
    w.logf("generated chunk %d,%d,%d", c.X, c.Y, c.Z)
  }
  return ch
}

// --- Private helpers ---

func (w *World) logf(format string, args ...any) {
  if w.Logger != nil {
    w.Logger.Printf(format, args...)
  }
}
