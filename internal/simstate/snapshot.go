package simstate

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Snapshot is the serialisable form of a State.
type Snapshot struct {
	ID       string            `yaml:"id" json:"id"`
	Elements []SnapshotElement `yaml:"elements" json:"elements"`
}

// SnapshotElement is one element of a Snapshot.
type SnapshotElement struct {
	Index    int     `yaml:"index" json:"index"`
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"`
	Value    float64 `yaml:"value" json:"value"`
}

// Snapshot captures the current values under a fresh id.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		Elements: make([]SnapshotElement, len(s.elements)),
	}
	for i, e := range s.elements {
		snap.Elements[i] = SnapshotElement{
			Index:    i,
			Name:     e.Name(),
			Category: e.Category().String(),
			Value:    e.Value,
		}
	}
	return snap
}

// Encode writes the snapshot as YAML.
func (sn *Snapshot) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sn); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

// DecodeSnapshot reads a YAML snapshot.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var sn Snapshot
	if err := yaml.NewDecoder(r).Decode(&sn); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &sn, nil
}

// Apply restores the values of the given zones, or of every zone when none
// is given, into dst. The snapshot must have been taken from a state with
// the same layout; any difference is reported and nothing is written.
func (sn *Snapshot) Apply(dst *State, zones ...Category) error {
	if len(sn.Elements) != dst.Len() {
		return fmt.Errorf("snapshot has %d elements, state has %d", len(sn.Elements), dst.Len())
	}
	if len(zones) == 0 {
		zones = []Category{Personal, Operational, Physical}
	}

	for _, z := range zones {
		lo, hi := dst.Range(z)
		for i := lo; i < hi; i++ {
			if want := dst.At(i).Name(); sn.Elements[i].Name != want {
				return fmt.Errorf("snapshot element %d is %s, state has %s", i, sn.Elements[i].Name, want)
			}
		}
	}
	for _, z := range zones {
		lo, hi := dst.Range(z)
		for i := lo; i < hi; i++ {
			dst.SetValue(i, sn.Elements[i].Value)
		}
	}
	return nil
}
