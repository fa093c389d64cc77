package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/simplemodel/internal/simstate"
)

// Formats accepted by WriteState.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// WriteState prints the state vector zone by zone, or as a YAML snapshot.
func WriteState(w io.Writer, st *simstate.State, format string) error {
	switch format {
	case FormatYAML:
		return st.Snapshot().Encode(w)
	case FormatText, "":
	default:
		return fmt.Errorf("unknown state format %q", format)
	}

	var sb strings.Builder
	for _, c := range []simstate.Category{simstate.Personal, simstate.Operational, simstate.Physical} {
		lo, hi := st.Range(c)
		fmt.Fprintf(&sb, "%s (%d)\n", c, hi-lo)
		for i := lo; i < hi; i++ {
			fmt.Fprintf(&sb, "  [%d] %s\n", i, st.At(i))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
