package laxjson

import (
	"strconv"

	"github.com/jacoelho/laxjson/diag"
	"github.com/jacoelho/laxjson/internal/orderedmap"
	"github.com/jacoelho/laxjson/internal/scan"
)

// Parser builds a value tree from lexer tokens. Mismatched tokens are
// reported and parsing continues, so a malformed document yields a partial
// tree plus diagnostics rather than an abort.
type Parser struct {
	lexer    *scan.Lexer
	reporter *diag.Reporter
	current  scan.Token
}

// NewParser returns a parser reporting diagnostics to reporter.
func NewParser(reporter *diag.Reporter) *Parser {
	return &Parser{
		lexer:    scan.NewLexer(reporter),
		reporter: reporter,
	}
}

// Reset rebinds the input and clears the current-token register.
func (p *Parser) Reset(input []byte) {
	p.lexer.Reset(input)
	p.current.Reset()
}

// Parse primes the token stream and parses the document into root. The
// document must be a top-level object.
func (p *Parser) Parse(root *Node) {
	p.next()
	p.parseObject(root)
}

func (p *Parser) next() bool {
	return p.lexer.Next(&p.current)
}

// expect advances past the current token when it matches kind, otherwise
// reports a mismatch and leaves the token in place.
func (p *Parser) expect(kind scan.Kind) bool {
	if p.current.Kind != kind {
		p.reporter.Report(diag.CodeUnexpectedToken, nil, "expected %s but got %s", kind, p.current.Kind)
		return false
	}

	p.next()
	return true
}

func (p *Parser) parseObject(node *Node) {
	p.expect(scan.KindLeftBrace)

	node.kind = KindObject
	node.object = orderedmap.New[*Node]()

	if p.current.Kind != scan.KindRightBrace {
		p.parseAssignment(node)
		for p.current.Kind == scan.KindComma {
			p.next()
			p.parseAssignment(node)
		}
	}

	p.expect(scan.KindRightBrace)
}

func (p *Parser) parseAssignment(node *Node) {
	if p.current.Kind != scan.KindString {
		p.reporter.Report(diag.CodeUnexpectedToken, nil, "expected %s but got %s", scan.KindString, p.current.Kind)
	}

	key := p.current.Value()
	p.next()
	p.expect(scan.KindColon)

	child := &Node{}
	node.object.Set(key, child)

	p.parseValue(child)
}

func (p *Parser) parseValue(node *Node) {
	switch p.current.Kind {
	case scan.KindLeftBrace:
		p.parseObject(node)
	case scan.KindLeftBracket:
		p.parseArray(node)
	default:
		p.parseAtom(node)
	}
}

func (p *Parser) parseArray(node *Node) {
	node.kind = KindArray
	node.array = nil

	p.next()

	if p.current.Kind != scan.KindRightBracket {
		for {
			child := &Node{}
			node.array = append(node.array, child)
			p.parseValue(child)

			if p.current.Kind != scan.KindComma {
				break
			}
			p.next()
		}
	}

	p.expect(scan.KindRightBracket)
}

func (p *Parser) parseAtom(node *Node) {
	switch p.current.Kind {
	case scan.KindBoolean:
		node.kind = KindBoolean
		node.boolean = p.current.Value() == "true"

	case scan.KindString:
		node.kind = KindString
		node.str = p.current.Value()

	case scan.KindNumeric:
		node.kind = KindNumber
		literal := p.current.Value()
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			p.reporter.Report(diag.CodeInvalidNumber, nil, "invalid number literal: %s", literal)
		}
		node.number = value

	case scan.KindNull:
		node.kind = KindNull

	default:
		p.reporter.Report(diag.CodeUnexpectedAtom, nil, "unexpected token type: %s", p.current.Kind)
		return
	}

	p.next()
}
