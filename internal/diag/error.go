package diag

import (
	"errors"
	"fmt"
)

// Code classifies a load error.
type Code int

const (
	CodeUnknown Code = iota
	// CodeLexical covers unterminated strings and unexpected characters.
	CodeLexical
	// CodeSyntax is a wrong token where a delimiter or a field name was expected.
	CodeSyntax
	CodeUnknownKind
	CodeUnknownField
	CodeUnknownReference
	CodeUnknownVariant
	CodeMissingField
	CodeEmptyField
	CodeTypeMismatch
	CodeInvalidValue
	CodeDuplicate
)

var codeNames = map[Code]string{
	CodeUnknown:          "unknown",
	CodeLexical:          "lexical",
	CodeSyntax:           "syntax",
	CodeUnknownKind:      "unknown-kind",
	CodeUnknownField:     "unknown-field",
	CodeUnknownReference: "unknown-reference",
	CodeUnknownVariant:   "unknown-variant",
	CodeMissingField:     "missing-field",
	CodeEmptyField:       "empty-field",
	CodeTypeMismatch:     "type-mismatch",
	CodeInvalidValue:     "invalid-value",
	CodeDuplicate:        "duplicate",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is a single line-tagged problem found in a model source.
type Error struct {
	Code Code
	Line int
	Msg  string
	// Suggestion is a close match for a misspelled name, if one was found.
	Suggestion string
}

// Errorf builds an Error with a formatted message.
func Errorf(code Code, line int, format string, args ...any) *Error {
	return &Error{Code: code, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// WithSuggestion attaches a did-you-mean hint. An empty hint is ignored.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Detail is the message without the line prefix.
func (e *Error) Detail() string {
	if e.Suggestion == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s (did you mean '%s'?)", e.Msg, e.Suggestion)
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error [in line %d]: %s", e.Line, e.Detail())
}

// CodeOf returns the Code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnknown
}
