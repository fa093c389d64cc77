package simstate

// Slot is a single-assignment back-reference from a domain object to its
// element. The zero value is unset.
type Slot struct {
	index int
	set   bool
}

// Set records the index. A second Set panics.
func (s *Slot) Set(i int) {
	if s.set {
		panic("simstate: slot assigned twice")
	}
	s.index, s.set = i, true
}

// Index returns the recorded index. Reading an unset slot panics.
func (s *Slot) Index() int {
	if !s.set {
		panic("simstate: slot read before assignment")
	}
	return s.index
}

// IsSet reports whether Set has been called.
func (s *Slot) IsSet() bool { return s.set }

// Read returns the value this slot points at in st.
func (s *Slot) Read(st *State) float64 {
	return st.Value(s.Index())
}

// Write stores v in the element this slot points at in st.
func (s *Slot) Write(st *State, v float64) {
	st.SetValue(s.Index(), v)
}
