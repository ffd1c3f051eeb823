package scan

import (
	"bytes"

	"github.com/jacoelho/laxjson/diag"
)

type state int

const (
	stateNew state = iota
	stateNumeric
	stateString
	stateBoolean
	stateNull
	stateComplete
)

var (
	literalTrue  = []byte("true")
	literalFalse = []byte("false")
	literalNull  = []byte("null")
)

// Lexer scans lenient JSON-like text one token at a time. It tracks running
// bracket and quote balances so truncated input can be reported at end of
// input. A Lexer is not safe for concurrent use.
type Lexer struct {
	reporter *diag.Reporter

	input     []byte
	cursor    int
	line      int
	lineStart int

	state    state
	brackets int
	quotes   int

	endReported bool
}

// NewLexer returns a lexer that reports lexical diagnostics to reporter.
func NewLexer(reporter *diag.Reporter) *Lexer {
	return &Lexer{reporter: reporter}
}

// Reset rebinds the input and clears all cursors, counters, and balances.
func (l *Lexer) Reset(input []byte) {
	l.input = input
	l.cursor = 0
	l.line = 0
	l.lineStart = 0
	l.state = stateNew
	l.brackets = 0
	l.quotes = 0
	l.endReported = false
}

// Next scans the next token into token and reports whether one was produced.
// False means the input is exhausted or a lexical error was reported.
func (l *Lexer) Next(token *Token) bool {
	if len(l.input) == 0 {
		return false
	}

	token.Reset()

	if l.checkEnd() {
		return false
	}

	for {
		switch l.state {
		case stateNew:
			if !l.skipBlanks() {
				return false
			}
			if !l.startToken(token) {
				return false
			}

		case stateNumeric:
			if l.atEnd() {
				l.state = stateComplete
				continue
			}
			c := l.input[l.cursor]
			switch {
			case isDigit(c):
				token.Text = append(token.Text, c)
				l.advance()
			case isAlpha(c):
				token.Text = append(token.Text, c)
				l.reporter.Report(diag.CodeInvalidNumeric, l.span(), "invalid numeric literal or symbol: %s", token.Text)
				return false
			default:
				l.state = stateComplete
			}

		case stateString:
			if l.atEnd() {
				// Unterminated string; the quote balance reports it.
				l.checkEnd()
				return false
			}
			c := l.input[l.cursor]
			if isQuote(c) {
				l.quotes--
				l.advance()
				l.state = stateComplete
			} else {
				token.Text = append(token.Text, c)
				l.advance()
			}

		case stateBoolean:
			if !l.atEnd() && isBooleanChar(l.input[l.cursor]) {
				token.Text = append(token.Text, l.input[l.cursor])
				l.advance()
				continue
			}
			if !bytes.Equal(token.Text, literalTrue) && !bytes.Equal(token.Text, literalFalse) {
				l.reporter.Report(diag.CodeBadKeyword, l.span(), "unexpected symbol: %s", token.Text)
				return false
			}
			l.state = stateComplete

		case stateNull:
			if !l.atEnd() && isNullChar(l.input[l.cursor]) {
				token.Text = append(token.Text, l.input[l.cursor])
				l.advance()
				continue
			}
			if !bytes.Equal(token.Text, literalNull) {
				l.reporter.Report(diag.CodeBadKeyword, l.span(), "unexpected symbol: %s", token.Text)
				return false
			}
			l.state = stateComplete

		case stateComplete:
			l.state = stateNew
			return true
		}
	}
}

// startToken dispatches on the byte under the cursor from the New state.
func (l *Lexer) startToken(token *Token) bool {
	c := l.input[l.cursor]

	switch {
	case isDigit(c):
		token.Kind = KindNumeric
		token.Text = append(token.Text, c)
		l.state = stateNumeric

	case isQuote(c):
		token.Kind = KindString
		l.quotes++
		l.state = stateString

	case c == 't' || c == 'f':
		token.Kind = KindBoolean
		token.Text = append(token.Text, c)
		l.state = stateBoolean

	case c == 'n':
		token.Kind = KindNull
		token.Text = append(token.Text, c)
		l.state = stateNull

	case isOpenBracket(c):
		if c == '[' {
			token.Kind = KindLeftBracket
		} else {
			token.Kind = KindLeftBrace
		}
		token.Text = append(token.Text, c)
		l.brackets++
		l.state = stateComplete

	case isCloseBracket(c):
		if c == ']' {
			token.Kind = KindRightBracket
		} else {
			token.Kind = KindRightBrace
		}
		token.Text = append(token.Text, c)
		l.brackets--
		l.state = stateComplete

	case c == ',':
		token.Kind = KindComma
		l.state = stateComplete

	case c == ':':
		token.Kind = KindColon
		l.state = stateComplete

	default:
		l.reporter.Report(diag.CodeUnexpectedCharacter, l.span(), "unexpected character %c", c)
		return false
	}

	l.advance()
	return true
}

// skipBlanks advances over spaces, tabs, and newlines. False means the input
// ended before the next token.
func (l *Lexer) skipBlanks() bool {
	for !l.atEnd() {
		c := l.input[l.cursor]
		if !isBlank(c) && !isNewline(c) {
			return true
		}
		l.advance()
	}

	l.checkEnd()
	return false
}

// checkEnd reports balance diagnostics once when the cursor reaches the end
// of input.
func (l *Lexer) checkEnd() bool {
	if !l.atEnd() {
		return false
	}

	if !l.endReported {
		l.endReported = true
		if l.brackets != 0 {
			l.reporter.Report(diag.CodeUnbalancedBrackets, l.span(), "brackets were not balanced")
		}
		if l.quotes != 0 {
			l.reporter.Report(diag.CodeUnbalancedQuotes, l.span(), "quotes were not balanced")
		}
	}

	return true
}

func (l *Lexer) atEnd() bool {
	return l.cursor >= len(l.input)
}

func (l *Lexer) advance() {
	if l.input[l.cursor] == '\n' {
		l.line++
		l.lineStart = l.cursor + 1
	}
	l.cursor++
}

func (l *Lexer) span() *diag.Span {
	return &diag.Span{
		Line:   l.line + 1,
		Column: l.cursor - l.lineStart + 1,
	}
}
