package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/vk/simplemodel/internal/model"
	"github.com/vk/simplemodel/internal/simstate"
)

// Summary writes one section per non-empty collection, listing each object
// with a short description, followed by the state zone sizes.
func Summary(w io.Writer, m *model.Model, st *simstate.State) error {
	var sb strings.Builder
	for _, kind := range model.Keywords {
		rows := describe(m, kind)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s (%d)\n", kind, len(rows))
		writeRows(&sb, rows)
	}
	if st != nil {
		fmt.Fprintf(&sb, "State: %d elements (%d personal, %d operational, %d physical)\n",
			st.Len(), st.NPersonal(), st.NOperational(), st.NPhysical())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

type row struct {
	name string
	info string
}

// writeRows aligns the info column on the widest name, counting grapheme
// clusters so names with combining marks line up.
func writeRows(sb *strings.Builder, rows []row) {
	width := 0
	for _, r := range rows {
		if n := uniseg.GraphemeClusterCount(r.name); n > width {
			width = n
		}
	}
	for _, r := range rows {
		pad := width - uniseg.GraphemeClusterCount(r.name)
		if r.info == "" {
			fmt.Fprintf(sb, "  %s\n", r.name)
			continue
		}
		fmt.Fprintf(sb, "  %s%s  %s\n", r.name, strings.Repeat(" ", pad), r.info)
	}
}

func describe(m *model.Model, kind string) []row {
	var rows []row
	add := func(name, format string, args ...any) {
		rows = append(rows, row{name: name, info: fmt.Sprintf(format, args...)})
	}

	switch kind {
	case model.KindSubstance:
		for _, s := range m.Substances {
			switch s := s.(type) {
			case *model.GasSubstance:
				add(s.Name, "gas %s", s.Gas)
			case *model.NormalSubstance:
				add(s.Name, "normal")
			}
		}
	case model.KindMaterial:
		for _, x := range m.Materials {
			add(x.Name, "%s, %gm", x.Substance.ObjectName(), x.Thickness)
		}
	case model.KindConstruction:
		for _, x := range m.Constructions {
			add(x.Name, "%d layers, R=%.3g", len(x.Layers), x.RValue())
		}
	case model.KindSurface:
		for _, x := range m.Surfaces {
			add(x.Name, "%s, %.3gm2, front %s, back %s", x.Construction.Name, x.Area(), side(x.FrontBoundary), side(x.BackBoundary))
		}
	case model.KindSpace:
		for _, x := range m.Spaces {
			info := "volume unknown"
			if x.Volume != nil {
				info = fmt.Sprintf("%gm3", *x.Volume)
			}
			if x.Infiltration != nil {
				info += ", infiltration " + x.Infiltration.Kind.String()
			}
			add(x.Name, "%s", info)
		}
	case model.KindFenestration:
		for _, x := range m.Fenestrations {
			add(x.Name, "%s, %s, %.3gm2", x.FenestrationType, x.OperationType, x.Area())
		}
	case model.KindHVAC:
		for _, x := range m.HVACs {
			add(x.ObjectName(), "%s", x.Variant())
		}
	case model.KindLuminaire:
		for _, x := range m.Luminaires {
			target := "exterior"
			if x.TargetSpace != nil {
				target = x.TargetSpace.Name
			}
			add(x.Name, "%s", target)
		}
	case model.KindBuilding:
		for _, x := range m.Buildings {
			rows = append(rows, row{name: x.Name})
		}
	}
	return rows
}

func side(b *model.Boundary) string {
	if b == nil {
		return "outdoors"
	}
	return b.String()
}
