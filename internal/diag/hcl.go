package diag

import (
	"bytes"
	"io"

	"github.com/hashicorp/hcl/v2"
)

// HCL converts the list into hcl.Diagnostics whose subjects cover the whole
// offending line of src.
func (l *List) HCL(filename string, src []byte) hcl.Diagnostics {
	starts := lineStarts(src)
	diags := make(hcl.Diagnostics, 0, len(l.entries))
	for _, e := range l.entries {
		severity := hcl.DiagError
		if e.Level == LevelWarning {
			severity = hcl.DiagWarning
		}
		d := &hcl.Diagnostic{
			Severity: severity,
			Summary:  e.Err.Code.String(),
			Detail:   e.Err.Detail(),
		}
		if rng, ok := lineRange(filename, src, starts, e.Err.Line); ok {
			d.Subject = &rng
		}
		diags = append(diags, d)
	}
	return diags
}

// Write renders the list to w with a snippet of src under each message.
func Write(w io.Writer, filename string, src []byte, l *List, width uint, color bool) error {
	files := map[string]*hcl.File{
		filename: {Bytes: src},
	}
	dw := hcl.NewDiagnosticTextWriter(w, files, width, color)
	return dw.WriteDiagnostics(l.HCL(filename, src))
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lineRange(filename string, src []byte, starts []int, line int) (hcl.Range, bool) {
	if line < 1 || line > len(starts) {
		return hcl.Range{}, false
	}
	start := starts[line-1]
	end := len(src)
	if i := bytes.IndexByte(src[start:], '\n'); i >= 0 {
		end = start + i
	}
	return hcl.Range{
		Filename: filename,
		Start:    hcl.Pos{Line: line, Column: 1, Byte: start},
		End:      hcl.Pos{Line: line, Column: end - start + 1, Byte: end},
	}, true
}
