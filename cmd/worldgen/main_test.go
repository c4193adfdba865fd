package main

import (
  "image/png"
  "os"
  "path/filepath"
  "testing"

  "github.com/Conwinds/voxelterrain/internal/chunk"
  "github.com/Conwinds/voxelterrain/internal/gen"
  "github.com/Conwinds/voxelterrain/internal/world"
)

func TestParseCoord(t *testing.T) {
  tests := []struct {
    in      string
    want    chunk.ChunkCoord
    wantErr bool
  }{
    {"0,0,0", chunk.ChunkCoord{}, false},
    {"-3, 0, 12", chunk.ChunkCoord{X: -3, Z: 12}, false},
    {"1,2", chunk.ChunkCoord{}, true},
    {"a,0,0", chunk.ChunkCoord{}, true},
  }

  for _, tt := range tests {
    got, err := parseCoord(tt.in)
    if (err != nil) != tt.wantErr {
      t.Errorf("parseCoord(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
      continue
    }
    if got != tt.want {
      t.Errorf("parseCoord(%q) = %+v, want %+v", tt.in, got, tt.want)
    }
  }
}

func TestWritePreview(t *testing.T) {
  path := filepath.Join(t.TempDir(), "preview.png")
  if err := writePreview(path, world.NewWorld(3)); err != nil {
    t.Fatalf("writePreview returned error: %s", err)
  }

  f, err := os.Open(path)
  if err != nil {
    t.Fatal(err)
  }
  defer f.Close()

  img, err := png.Decode(f)
  if err != nil {
    t.Fatalf("decoding preview: %s", err)
  }
  if b := img.Bounds(); b.Dx() != gen.PreviewSize || b.Dy() != gen.PreviewSize {
    t.Errorf("preview bounds = %v, want %dx%d", b, gen.PreviewSize, gen.PreviewSize)
  }
}
