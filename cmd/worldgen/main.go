// cmd/worldgen/main.go
// Purpose: process entrypoint. Parse flags, build the world, write the
// heightmap preview and/or a generated chunk snapshot.

package main

// --- Imports ---

import (
  "flag"
  "fmt"
  "image/png"
  "log"
  "os"
  "strconv"
  "strings"

  "github.com/Conwinds/voxelterrain/internal/chunk"
  "github.com/Conwinds/voxelterrain/internal/gen"
  "github.com/Conwinds/voxelterrain/internal/world"
)

// --- Constants ---

const defaultSeed = 1

// --- main ---

func main() {
  seed := flag.Uint64("seed", defaultSeed, "world seed")
  noise := flag.String("noise", gen.Simplex.String(), "base noise: simplex or perlin")
  previewPath := flag.String("preview", "", "write the 128x128 heightmap preview PNG here")
  chunkAt := flag.String("chunk", "0,0,0", "chunk coordinate x,y,z for -snapshot")
  snapshotPath := flag.String("snapshot", "", "write the generated chunk snapshot here")
  verbose := flag.Bool("v", false, "log chunk generation")
  flag.Parse()

  logger := log.New(os.Stderr, "worldgen: ", log.LstdFlags)

  if *previewPath == "" && *snapshotPath == "" {
    logger.Fatal("nothing to do: pass -preview and/or -snapshot")
  }

  alg, err := gen.ParseAlgorithm(*noise)
  if err != nil {
    logger.Fatal(err)
  }
  cfg := gen.DefaultNoiseConfig()
  cfg.Algorithm = alg

  terrain, err := gen.NewWithConfig(*seed, cfg)
  if err != nil {
    logger.Fatal(err)
  }
  w := world.NewWorldWithTerrain(*seed, terrain)
  if *verbose {
    w.Logger = logger
  }

  if *previewPath != "" {
    if err := writePreview(*previewPath, w); err != nil {
      logger.Fatalf("preview: %s", err)
    }
    logger.Printf("wrote preview for seed %d to %s", *seed, *previewPath)
  }

  if *snapshotPath != "" {
    coord, err := parseCoord(*chunkAt)
    if err != nil {
      logger.Fatalf("chunk: %s", err)
    }
    data, err := chunk.EncodeSnapshot(w.GetOrCreateChunk(coord))
    if err != nil {
      logger.Fatalf("snapshot: %s", err)
    }
    if err := os.WriteFile(*snapshotPath, data, 0o644); err != nil {
      logger.Fatalf("snapshot: %s", err)
    }
    logger.Printf("wrote chunk %s (%d bytes) to %s", *chunkAt, len(data), *snapshotPath)
  }
}

// --- Private helpers ---

func writePreview(path string, w *world.World) error {
  f, err := os.Create(path)
  if err != nil {
    return err
  }
  if err := png.Encode(f, w.Terrain().Preview()); err != nil {
    f.Close()
    return err
  }
  return f.Close()
}

func parseCoord(s string) (chunk.ChunkCoord, error) {
  parts := strings.Split(s, ",")
  if len(parts) != 3 {
    return chunk.ChunkCoord{}, fmt.Errorf("want x,y,z, got %q", s)
  }

  var v [3]int32
  for i, p := range parts {
    n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
    if err != nil {
      return chunk.ChunkCoord{}, fmt.Errorf("coordinate %q: %w", p, err)
    }
    v[i] = int32(n)
  }
  return chunk.ChunkCoord{X: v[0], Y: v[1], Z: v[2]}, nil
}
