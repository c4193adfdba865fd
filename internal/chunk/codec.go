// internal/chunk/codec.go
// Purpose: serialization/deserialization for chunks + compression.
// Keep format versioned from day 1.
//
// v1 layout: version byte | X,Y,Z int32 little-endian | zlib(Type[N] | Meta[N])

package chunk

import (
  "bytes"
  "compress/zlib"
  "encoding/binary"
  "errors"
  "fmt"
  "io"
)

// --- Constants ---

const (
  SnapshotV1 byte = 1

  headerLen = 1 + 3*4
)

var (
  ErrUnknownVersion  = errors.New("chunk: unknown snapshot version")
  ErrCorruptSnapshot = errors.New("chunk: corrupt snapshot")
)

// --- Public methods ---

// EncodeSnapshot serializes the voxel data of c. Derived caches are not stored.
func EncodeSnapshot(c *Chunk) ([]byte, error) {
  var out bytes.Buffer
  out.Grow(headerLen + N/8)

  out.WriteByte(SnapshotV1)
  for _, v := range [3]int32{c.C.X, c.C.Y, c.C.Z} {
    binary.Write(&out, binary.LittleEndian, v)
  }

  w := zlib.NewWriter(&out)
  if _, err := w.Write(c.Type[:]); err != nil {
    return nil, err
  }
  if _, err := w.Write(c.Meta[:]); err != nil {
    return nil, err
  }
  if err := w.Close(); err != nil {
    return nil, err
  }

  return out.Bytes(), nil
}

// DecodeSnapshot rebuilds a chunk from EncodeSnapshot output.
func DecodeSnapshot(data []byte) (*Chunk, error) {
  if len(data) < headerLen {
    return nil, fmt.Errorf("%w: %d byte header", ErrCorruptSnapshot, len(data))
  }
  if data[0] != SnapshotV1 {
    return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, data[0])
  }

  coord := ChunkCoord{
    X: int32(binary.LittleEndian.Uint32(data[1:5])),
    Y: int32(binary.LittleEndian.Uint32(data[5:9])),
    Z: int32(binary.LittleEndian.Uint32(data[9:13])),
  }

  r, err := zlib.NewReader(bytes.NewReader(data[headerLen:]))
  if err != nil {
    return nil, fmt.Errorf("%w: %s", ErrCorruptSnapshot, err)
  }
  defer r.Close()

  c := New(coord)
  if _, err := io.ReadFull(r, c.Type[:]); err != nil {
    return nil, fmt.Errorf("%w: types: %s", ErrCorruptSnapshot, err)
  }
  if _, err := io.ReadFull(r, c.Meta[:]); err != nil {
    return nil, fmt.Errorf("%w: meta: %s", ErrCorruptSnapshot, err)
  }
  return c, nil
}
