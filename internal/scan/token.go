// Package scan tokenizes lenient JSON-like text with a resettable
// state-machine lexer.
package scan

// Kind tags a token.
type Kind int

const (
	KindUndefined Kind = iota
	KindNumeric
	KindBoolean
	KindString
	KindNull
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindComma
	KindColon
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "Undefined"
	case KindNumeric:
		return "Numeric"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindNull:
		return "Null"
	case KindLeftBrace:
		return "LeftBrace"
	case KindRightBrace:
		return "RightBrace"
	case KindLeftBracket:
		return "LeftBracket"
	case KindRightBracket:
		return "RightBracket"
	case KindComma:
		return "Comma"
	case KindColon:
		return "Colon"
	default:
		return "Undefined"
	}
}

// Token is a lexeme with a kind tag. Brackets carry their one structural
// character as text, commas and colons carry empty text, and literal kinds
// carry the literal without surrounding quotes. A token is only valid until
// the next call to Lexer.Next.
type Token struct {
	Kind Kind
	Text []byte
}

// Reset clears the token for reuse.
func (t *Token) Reset() {
	t.Kind = KindUndefined
	t.Text = t.Text[:0]
}

// Value returns the captured lexeme as a string.
func (t *Token) Value() string {
	return string(t.Text)
}
