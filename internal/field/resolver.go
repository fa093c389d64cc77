package field

import (
	"strconv"
	"strings"

	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/scanner"
)

// Context connects the Resolver to the domain model.
type Context interface {
	// Type returns the field table registered under name.
	Type(name string) (*Type, bool)
	// Find searches the collection of kind for an object called name.
	Find(kind, name string) (any, bool)
	// Names lists the names in the collection of kind.
	Names(kind string) []string
	// Construct builds the domain value for a parsed inline object.
	Construct(p *Parsed) (any, error)
}

// Resolver turns object bodies into Parsed values.
type Resolver struct {
	ctx Context
}

// NewResolver returns a Resolver resolving references through ctx.
func NewResolver(ctx Context) *Resolver {
	return &Resolver{ctx: ctx}
}

// ParseSpan parses the body captured by sp in src.
func (r *Resolver) ParseSpan(typ *Type, src []byte, sp scanner.Span) (*Parsed, error) {
	return r.Parse(typ, scanner.New(sp.Bytes(src), sp.Line))
}

// Parse reads one body of typ from the scanner's cursor and verifies it.
func (r *Resolver) Parse(typ *Type, sc *scanner.Scanner) (*Parsed, error) {
	if typ.IsEnum() {
		return r.parseEnum(typ, sc)
	}
	line := sc.Peek().Line
	vals, err := r.parseBody(typ.Name, typ.Fields, sc)
	if err != nil {
		return nil, err
	}
	return &Parsed{Type: typ, Line: line, Fields: vals}, nil
}

// Resolve turns the value token tok, plus whatever follows it for arrays
// and inline objects, into the Go value d asks for. owner names the object
// type for error messages.
func (r *Resolver) Resolve(sc *scanner.Scanner, tok scanner.Token, d Descriptor, owner string) (any, error) {
	if tok.Kind == scanner.Error {
		return nil, scanner.ErrorOf(tok)
	}
	if tok.Kind == scanner.EOF {
		return nil, diag.Errorf(diag.CodeSyntax, tok.Line, "unexpected end of file")
	}

	switch d.Kind {
	case Float:
		if tok.Kind != scanner.Number {
			return nil, mismatch(tok, d, owner)
		}
		f, err := strconv.ParseFloat(tok.String(), 64)
		if err != nil {
			return nil, diag.Errorf(diag.CodeInvalidValue, tok.Line, "value '%s' is not a valid number", tok.Text)
		}
		return f, nil

	case Integer:
		if tok.Kind != scanner.Number {
			return nil, mismatch(tok, d, owner)
		}
		i, err := strconv.Atoi(tok.String())
		if err != nil || i < 0 {
			return nil, diag.Errorf(diag.CodeInvalidValue, tok.Line,
				"value '%s' does not seem to be a positive integer. Hint: remove dots or decimals", tok.Text)
		}
		return i, nil

	case Boolean:
		if tok.Kind == scanner.Identifier {
			switch tok.String() {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, mismatch(tok, d, owner)

	case String:
		if tok.Kind != scanner.String {
			return nil, mismatch(tok, d, owner)
		}
		return tok.Unquoted(), nil

	case Polygon:
		return r.polygon(sc, tok, d, owner)

	case List:
		return r.list(sc, tok, d, owner)

	case Ref:
		if tok.Kind == scanner.String {
			return r.find(tok, d)
		}
		if tok.Kind == scanner.Identifier || tok.Kind == scanner.EnumName {
			return r.inline(sc, tok, d)
		}
		return nil, mismatch(tok, d, owner)

	case Object:
		if tok.Kind == scanner.Identifier || tok.Kind == scanner.EnumName {
			return r.inline(sc, tok, d)
		}
		return nil, mismatch(tok, d, owner)
	}
	panic("field: unhandled kind " + d.Kind.String())
}

func (r *Resolver) find(tok scanner.Token, d Descriptor) (any, error) {
	name := tok.Unquoted()
	if obj, ok := r.ctx.Find(d.Target, name); ok {
		return obj, nil
	}
	return nil, diag.Errorf(diag.CodeUnknownReference, tok.Line, "%s called '%s' not found", d.Target, name).
		WithSuggestion(diag.Suggest(name, r.ctx.Names(d.Target)))
}

func (r *Resolver) inline(sc *scanner.Scanner, tok scanner.Token, d Descriptor) (any, error) {
	if tok.String() != d.Target {
		return nil, diag.Errorf(diag.CodeTypeMismatch, tok.Line, "expecting '%s', found '%s'", d.Target, tok.Text)
	}
	typ, ok := r.ctx.Type(d.Target)
	if !ok {
		return nil, diag.Errorf(diag.CodeUnknownKind, tok.Line, "Unknown Object type %s", d.Target)
	}
	sp := sc.GetObjectSlice()
	p, err := r.Parse(typ, sc.Sub(sp))
	if err != nil {
		return nil, err
	}
	return r.ctx.Construct(p)
}

// list reads "[ v, v, ... ]". The opening bracket is tok.
func (r *Resolver) list(sc *scanner.Scanner, tok scanner.Token, d Descriptor, owner string) ([]any, error) {
	if tok.Kind != scanner.LeftBracket {
		return nil, mismatch(tok, d, owner)
	}
	elem := Descriptor{Name: d.Name, Kind: d.Elem, Target: d.Target}
	out := []any{}
	for {
		next := sc.Next()
		if next.Kind == scanner.RightBracket {
			return out, nil
		}
		v, err := r.Resolve(sc, next, elem, owner)
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		sep := sc.Next()
		switch sep.Kind {
		case scanner.Comma:
			if sc.Peek().Kind == scanner.RightBracket {
				sc.Next()
				return out, nil
			}
		case scanner.RightBracket:
			return out, nil
		case scanner.EOF:
			return nil, diag.Errorf(diag.CodeSyntax, sep.Line, "unexpected end of file")
		case scanner.Error:
			return nil, scanner.ErrorOf(sep)
		default:
			return nil, diag.Errorf(diag.CodeSyntax, sep.Line,
				"elements of '%s' must be separated by commas, found '%s'", d.Name, sep.Text)
		}
	}
}

func (r *Resolver) polygon(sc *scanner.Scanner, tok scanner.Token, d Descriptor, owner string) ([]float64, error) {
	if tok.Kind != scanner.LeftBracket {
		return nil, mismatch(tok, d, owner)
	}
	items, err := r.list(sc, tok, Descriptor{Name: d.Name, Kind: List, Elem: Float}, owner)
	if err != nil {
		return nil, err
	}
	if len(items) < 9 {
		return nil, diag.Errorf(diag.CodeInvalidValue, tok.Line,
			"polygon needs at least 3 vertices (9 numbers), found %d", len(items))
	}
	if len(items)%3 != 0 {
		return nil, diag.Errorf(diag.CodeInvalidValue, tok.Line,
			"polygon coordinates must come in groups of 3, found %d numbers", len(items))
	}
	out := make([]float64, len(items))
	for i, v := range items {
		out[i] = v.(float64)
	}
	return out, nil
}

func mismatch(tok scanner.Token, d Descriptor, owner string) *diag.Error {
	want := d.Kind.String()
	switch d.Kind {
	case Ref:
		want = "the name or definition of a " + d.Target
	case Object:
		want = "a " + d.Target
	case List:
		want = "a list"
	case Polygon:
		want = "a list of coordinates"
	}
	return diag.Errorf(diag.CodeTypeMismatch, tok.Line, "expecting %s for field '%s' of %s, found %s '%s'",
		want, d.Name, owner, tok.Kind, strings.TrimSpace(tok.String()))
}
