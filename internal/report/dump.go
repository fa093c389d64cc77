package report

import (
	"io"

	"github.com/alecthomas/repr"

	"github.com/vk/simplemodel/internal/model"
)

// Dump writes m in Go syntax, leaving out empty fields.
func Dump(w io.Writer, m *model.Model) error {
	_, err := io.WriteString(w, repr.String(m, repr.Indent("  "), repr.OmitEmpty(true))+"\n")
	return err
}
