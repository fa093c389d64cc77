package loader

import (
	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/model"
	"github.com/vk/simplemodel/internal/scanner"
)

// Buckets holds, per keyword, the spans of its objects in source order.
type Buckets map[string][]scanner.Span

// Count is the total number of spans.
func (b Buckets) Count() int {
	n := 0
	for _, spans := range b {
		n += len(spans)
	}
	return n
}

// Split makes a single pass over src and captures the body of every
// top-level object. Unknown keywords and stray tokens are reported to diags
// and scanning resumes after them.
func Split(src []byte, diags *diag.List) Buckets {
	b := Buckets{}
	sc := scanner.New(src, 1)
	for {
		tok := sc.Next()
		switch tok.Kind {
		case scanner.EOF:
			return b

		case scanner.Error:
			diags.Add(scanner.ErrorOf(tok))

		case scanner.Identifier, scanner.EnumName:
			keyword := tok.String()
			sp := sc.GetObjectSlice()
			if !model.IsKeyword(keyword) {
				diags.Add(diag.Errorf(diag.CodeUnknownKind, tok.Line, "Unknown Object type %s", keyword).
					WithSuggestion(diag.Suggest(keyword, model.Keywords)))
				continue
			}
			b[keyword] = append(b[keyword], sp)

		default:
			diags.Add(diag.Errorf(diag.CodeSyntax, tok.Line,
				"expecting an object type, found %s '%s'", tok.Kind, tok.Text))
		}
	}
}
