package scanner

import "fmt"

// Kind identifies the class of a Token.
type Kind int

const (
	Colon Kind = iota
	Comma
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	LeftParen
	RightParen
	ColonColon
	// Identifier is a bare name: a field name, a keyword or a boolean.
	Identifier
	// EnumName is an identifier immediately followed by "::". The "::" is
	// not part of the token.
	EnumName
	String
	Number
	EOF
	Error
)

var kindNames = [...]string{
	Colon:        "Colon",
	Comma:        "Comma",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	ColonColon:   "ColonColon",
	Identifier:   "Identifier",
	EnumName:     "EnumName",
	String:       "String",
	Number:       "Number",
	EOF:          "EOF",
	Error:        "Error",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexeme. Text aliases the scanned buffer and is only valid as
// long as that buffer is.
type Token struct {
	Kind   Kind
	Text   []byte
	Line   int
	Start  int
	Length int
	// Msg is set on Error tokens.
	Msg string
}

// String returns the token text as written in the source.
func (t Token) String() string {
	return string(t.Text)
}

// Unquoted returns the text of a String token without its delimiters.
func (t Token) Unquoted() string {
	if t.Kind != String || len(t.Text) < 2 {
		return string(t.Text)
	}
	return string(t.Text[1 : len(t.Text)-1])
}
