package simstate

import "fmt"

// State is the ordered, category-partitioned vector of elements.
type State struct {
	elements     []Element
	nPersonal    int
	nOperational int

	passedPersonal    bool
	passedOperational bool
}

// NewState returns an empty State with room for n elements.
func NewState(n int) *State {
	return &State{elements: make([]Element, 0, n)}
}

// Push appends e and returns its index. Pushing a personal element after
// any other category, or an operational element after a physical one,
// breaks the zone layout and panics.
func (s *State) Push(e Element) int {
	switch e.Category() {
	case Personal:
		if s.passedPersonal {
			panic(fmt.Sprintf("simstate: personal element %s pushed after operational or physical elements", e.Name()))
		}
		s.nPersonal++
	case Operational:
		if s.passedOperational {
			panic(fmt.Sprintf("simstate: operational element %s pushed after physical elements", e.Name()))
		}
		s.passedPersonal = true
		s.nOperational++
	case Physical:
		s.passedPersonal = true
		s.passedOperational = true
	}
	s.elements = append(s.elements, e)
	return len(s.elements) - 1
}

// Len is the total number of elements.
func (s *State) Len() int { return len(s.elements) }

// NPersonal is the size of the personal zone.
func (s *State) NPersonal() int { return s.nPersonal }

// NOperational is the size of the operational zone.
func (s *State) NOperational() int { return s.nOperational }

// NPhysical is the size of the physical zone.
func (s *State) NPhysical() int { return len(s.elements) - s.nPersonal - s.nOperational }

// Range returns the half-open index range of a zone.
func (s *State) Range(c Category) (int, int) {
	switch c {
	case Personal:
		return 0, s.nPersonal
	case Operational:
		return s.nPersonal, s.nPersonal + s.nOperational
	default:
		return s.nPersonal + s.nOperational, len(s.elements)
	}
}

// At returns the element at i.
func (s *State) At(i int) Element { return s.elements[i] }

// Value returns the value at i.
func (s *State) Value(i int) float64 { return s.elements[i].Value }

// SetValue overwrites the value at i. The element's variant never changes.
func (s *State) SetValue(i int, v float64) { s.elements[i].Value = v }

// Elements exposes the backing slice. Callers must not append to it.
func (s *State) Elements() []Element { return s.elements }

// Find returns the index of the element with the same shape as e.
func (s *State) Find(e Element) (int, bool) {
	for i, x := range s.elements {
		if x.SameShape(e) {
			return i, true
		}
	}
	return 0, false
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	c.elements = make([]Element, len(s.elements))
	copy(c.elements, s.elements)
	return &c
}

// CopyFrom overwrites every element with the one at the same position in
// other.
func (s *State) CopyFrom(other *State) {
	s.mustMatchLen(other)
	copy(s.elements, other.elements)
}

// CopyPersonalStateFrom overwrites the personal zone with other's.
func (s *State) CopyPersonalStateFrom(other *State) { s.copyZone(other, Personal) }

// CopyOperationalStateFrom overwrites the operational zone with other's.
func (s *State) CopyOperationalStateFrom(other *State) { s.copyZone(other, Operational) }

// CopyPhysicalStateFrom overwrites the physical zone with other's.
func (s *State) CopyPhysicalStateFrom(other *State) { s.copyZone(other, Physical) }

func (s *State) copyZone(other *State, c Category) {
	s.mustMatchLen(other)
	lo, hi := s.Range(c)
	if checkShapes {
		for i := lo; i < hi; i++ {
			if s.elements[i].Kind != other.elements[i].Kind {
				panic(fmt.Sprintf("simstate: %s zone mismatch at %d: %s vs %s",
					c, i, s.elements[i].Kind, other.elements[i].Kind))
			}
		}
	}
	copy(s.elements[lo:hi], other.elements[lo:hi])
}

func (s *State) mustMatchLen(other *State) {
	if len(s.elements) != len(other.elements) {
		panic(fmt.Sprintf("simstate: copying %d elements into a state of %d", len(other.elements), len(s.elements)))
	}
}
