package laxjson

import "errors"

var (
	// ErrBadType indicates a typed accessor was used on a node of another kind.
	ErrBadType = errors.New("bad type")

	// ErrOutOfRange indicates a keyed or indexed access outside the node shape.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidPath indicates a malformed JSONPath expression.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFound indicates a JSONPath selection produced no result.
	ErrNotFound = errors.New("not found")
)
