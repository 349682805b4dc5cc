package navmesh

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// meshSnapshot is the gob-encodable projection of a Mesh: the two inputs
// Build needs (vertices, triangles) plus the one piece of post-Build state
// a caller can mutate (per-triangle Area.Cost). Everything else Build
// recomputes deterministically from these three fields.
type meshSnapshot struct {
	Vertices  []Vec3
	Triangles []Triangle
	Costs     []Scalar
}

// Encode writes a gob-encoded snapshot of the mesh to w: its vertices,
// triangles, and any Area.Cost overrides made via SetAreaCost. Decode
// rebuilds an equivalent Mesh (with a fresh ID) from that snapshot.
func (m *Mesh) Encode(w io.Writer) error {
	costs := make([]Scalar, len(m.areas))
	for i, a := range m.areas {
		costs[i] = a.Cost
	}
	snap := meshSnapshot{Vertices: m.vertices, Triangles: m.triangles, Costs: costs}
	return errors.WithStack(gob.NewEncoder(w).Encode(&snap))
}

// Decode rebuilds a Mesh from a snapshot written by Encode.
func Decode(r io.Reader) (*Mesh, error) {
	var snap meshSnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.WithStack(err)
	}
	mesh, err := Build(snap.Vertices, snap.Triangles)
	if err != nil {
		return nil, err
	}
	for i, cost := range snap.Costs {
		if i >= len(mesh.areas) {
			break
		}
		mesh.SetAreaCost(i, cost)
	}
	return mesh, nil
}

// EncodeBytes is a convenience wrapper around Encode for callers that want
// a []byte rather than an io.Writer.
func (m *Mesh) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes is a convenience wrapper around Decode for callers holding a
// []byte rather than an io.Reader.
func DecodeBytes(data []byte) (*Mesh, error) {
	return Decode(bytes.NewReader(data))
}
