package field

import (
	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/scanner"
)

// parseBody reads "{ name: value, ... }" against fields and verifies the
// result.
func (r *Resolver) parseBody(owner string, fields []Descriptor, sc *scanner.Scanner) (Values, error) {
	open := sc.Next()
	if open.Kind == scanner.Error {
		return nil, scanner.ErrorOf(open)
	}
	if open.Kind != scanner.LeftBrace {
		return nil, diag.Errorf(diag.CodeSyntax, open.Line, "expecting '{' to open %s, found '%s'", owner, open.Text)
	}

	vals := Values{}
	if sc.Peek().Kind == scanner.RightBrace {
		sc.Next()
		return vals, Verify(owner, fields, vals, open.Line)
	}

	for {
		if next := sc.Peek(); next.Kind == scanner.EOF {
			return nil, diag.Errorf(diag.CodeSyntax, next.Line, "unexpected end of file")
		}

		name, value, err := sc.ScanField()
		if err != nil {
			return nil, err
		}
		d, ok := lookup(fields, name.String())
		if !ok {
			return nil, diag.Errorf(diag.CodeUnknownField, name.Line, "unexpected field '%s' in object '%s'", name.Text, owner).
				WithSuggestion(diag.Suggest(name.String(), names(fields)))
		}
		if vals.Has(d.Name) {
			return nil, diag.Errorf(diag.CodeDuplicate, name.Line, "field '%s' defined twice in object '%s'", d.Name, owner)
		}

		v, err := r.Resolve(sc, value, d, owner)
		if err != nil {
			return nil, err
		}
		vals[d.Name] = v

		sep := sc.Next()
		switch sep.Kind {
		case scanner.Comma:
			if sc.Peek().Kind == scanner.RightBrace {
				sc.Next()
				return vals, Verify(owner, fields, vals, open.Line)
			}
		case scanner.RightBrace:
			return vals, Verify(owner, fields, vals, open.Line)
		case scanner.EOF:
			return nil, diag.Errorf(diag.CodeSyntax, sep.Line, "unexpected end of file")
		case scanner.Error:
			return nil, scanner.ErrorOf(sep)
		default:
			return nil, diag.Errorf(diag.CodeSyntax, sep.Line, "fields must be separated by commas, found '%s'", sep.Text)
		}
	}
}

// parseEnum reads "::Variant", followed by "( values )" or "{ fields }"
// when the variant carries data.
func (r *Resolver) parseEnum(typ *Type, sc *scanner.Scanner) (*Parsed, error) {
	cc := sc.Next()
	if cc.Kind == scanner.Error {
		return nil, scanner.ErrorOf(cc)
	}
	if cc.Kind != scanner.ColonColon {
		return nil, diag.Errorf(diag.CodeSyntax, cc.Line, "expecting '::' before a variant of '%s', found '%s'", typ.Name, cc.Text)
	}

	name := sc.Next()
	if name.Kind != scanner.Identifier {
		return nil, diag.Errorf(diag.CodeSyntax, name.Line, "expecting a variant of '%s', found %s '%s'", typ.Name, name.Kind, name.Text)
	}
	v, ok := typ.Variant(name.String())
	if !ok {
		return nil, diag.Errorf(diag.CodeUnknownVariant, name.Line, "Object '%s' is not in enum '%s'", name.Text, typ.Name).
			WithSuggestion(diag.Suggest(name.String(), typ.VariantNames()))
	}

	p := &Parsed{Type: typ, Line: name.Line, Variant: v.Name}
	owner := typ.Name + "::" + v.Name
	switch {
	case len(v.Fields) > 0:
		vals, err := r.parseBody(owner, v.Fields, sc)
		if err != nil {
			return nil, err
		}
		p.Fields = vals
	case len(v.Args) > 0:
		args, err := r.parseArgs(owner, v.Args, sc)
		if err != nil {
			return nil, err
		}
		p.Args = args
	}
	return p, nil
}

// parseArgs reads "( v, v, ... )" with exactly one value per descriptor.
// A trailing comma is allowed.
func (r *Resolver) parseArgs(owner string, args []Descriptor, sc *scanner.Scanner) ([]any, error) {
	open := sc.Next()
	if open.Kind != scanner.LeftParen {
		return nil, diag.Errorf(diag.CodeSyntax, open.Line, "expecting '(' after %s, found '%s'", owner, open.Text)
	}

	out := make([]any, 0, len(args))
	for i, d := range args {
		tok := sc.Next()
		if tok.Kind == scanner.RightParen {
			return nil, diag.Errorf(diag.CodeMissingField, tok.Line,
				"%s expects %d values, found %d (missing '%s')", owner, len(args), i, d.Name)
		}
		v, err := r.Resolve(sc, tok, d, owner)
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		sep := sc.Next()
		last := i == len(args)-1
		switch {
		case sep.Kind == scanner.RightParen && last:
			return out, nil
		case sep.Kind == scanner.RightParen:
			return nil, diag.Errorf(diag.CodeMissingField, sep.Line,
				"%s expects %d values, found %d (missing '%s')", owner, len(args), i+1, args[i+1].Name)
		case sep.Kind == scanner.Comma:
		case sep.Kind == scanner.EOF:
			return nil, diag.Errorf(diag.CodeSyntax, sep.Line, "unexpected end of file")
		default:
			return nil, diag.Errorf(diag.CodeSyntax, sep.Line, "values must be separated by commas, found '%s'", sep.Text)
		}
	}

	closing := sc.Next()
	if closing.Kind != scanner.RightParen {
		return nil, diag.Errorf(diag.CodeSyntax, closing.Line, "%s expects %d values, found more", owner, len(args))
	}
	return out, nil
}

// Verify checks that every required field of fields is present in vals and
// that lists marked NonEmpty have elements. Absent lists are set to empty.
func Verify(owner string, fields []Descriptor, vals Values, line int) error {
	for _, d := range fields {
		v, ok := vals[d.Name]
		if d.Kind == List {
			if !ok {
				v = []any{}
				vals[d.Name] = v
			}
			if d.NonEmpty && len(v.([]any)) == 0 {
				return diag.Errorf(diag.CodeEmptyField, line, "empty field '%s' on %s", d.Name, owner)
			}
			continue
		}
		if !ok && !d.Optional {
			return diag.Errorf(diag.CodeMissingField, line, "missing required field '%s' on %s", d.Name, owner)
		}
	}
	return nil
}
