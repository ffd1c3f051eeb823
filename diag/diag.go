// Package diag defines the diagnostic codes and the reporter used by the
// laxjson scanner, parser, and façades.
package diag

// Code classifies a diagnostic.
type Code string

const (
	CodeUnexpectedCharacter Code = "unexpected_character"
	CodeInvalidNumeric      Code = "invalid_numeric_literal"
	CodeBadKeyword          Code = "bad_keyword"
	CodeUnbalancedBrackets  Code = "unbalanced_brackets"
	CodeUnbalancedQuotes    Code = "unbalanced_quotes"
	CodeUnexpectedToken     Code = "unexpected_token"
	CodeUnexpectedAtom      Code = "unexpected_atom_kind"
	CodeInvalidNumber       Code = "invalid_number_conversion"
	CodeFileUnreadable      Code = "file_unreadable"
)

// Stage identifies where a diagnostic was raised.
type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
	StageIO    Stage = "io"
)

// Severity indicates diagnostic impact. Every code currently maps to an
// error; the level exists so report consumers can filter uniformly.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Definition is canonical metadata for one diagnostic code.
type Definition struct {
	Code            Code
	DefaultStage    Stage
	DefaultSeverity Severity
}

var definitions = map[Code]Definition{
	CodeUnexpectedCharacter: {
		Code:            CodeUnexpectedCharacter,
		DefaultStage:    StageLex,
		DefaultSeverity: SeverityError,
	},
	CodeInvalidNumeric: {
		Code:            CodeInvalidNumeric,
		DefaultStage:    StageLex,
		DefaultSeverity: SeverityError,
	},
	CodeBadKeyword: {
		Code:            CodeBadKeyword,
		DefaultStage:    StageLex,
		DefaultSeverity: SeverityError,
	},
	CodeUnbalancedBrackets: {
		Code:            CodeUnbalancedBrackets,
		DefaultStage:    StageLex,
		DefaultSeverity: SeverityError,
	},
	CodeUnbalancedQuotes: {
		Code:            CodeUnbalancedQuotes,
		DefaultStage:    StageLex,
		DefaultSeverity: SeverityError,
	},
	CodeUnexpectedToken: {
		Code:            CodeUnexpectedToken,
		DefaultStage:    StageParse,
		DefaultSeverity: SeverityError,
	},
	CodeUnexpectedAtom: {
		Code:            CodeUnexpectedAtom,
		DefaultStage:    StageParse,
		DefaultSeverity: SeverityError,
	},
	CodeInvalidNumber: {
		Code:            CodeInvalidNumber,
		DefaultStage:    StageParse,
		DefaultSeverity: SeverityError,
	},
	CodeFileUnreadable: {
		Code:            CodeFileUnreadable,
		DefaultStage:    StageIO,
		DefaultSeverity: SeverityWarning,
	},
}

// DefinitionFor resolves canonical metadata for a diagnostic code.
func DefinitionFor(code Code) Definition {
	if definition, ok := definitions[code]; ok {
		return definition
	}

	return Definition{
		Code:            code,
		DefaultStage:    StageParse,
		DefaultSeverity: SeverityError,
	}
}

// Span identifies a source position. Lines and columns are 1-based.
type Span struct {
	Line   int `yaml:"line,omitempty" json:"line,omitempty"`
	Column int `yaml:"column,omitempty" json:"column,omitempty"`
}

// Issue is a single diagnostic.
type Issue struct {
	Code     Code     `yaml:"code" json:"code"`
	Stage    Stage    `yaml:"stage,omitempty" json:"stage,omitempty"`
	Severity Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	Message  string   `yaml:"message" json:"message"`
	Span     *Span    `yaml:"span,omitempty" json:"span,omitempty"`
}
