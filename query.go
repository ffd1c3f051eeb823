package laxjson

import (
	"fmt"

	"github.com/theory/jsonpath"
)

// Select returns all values matching the RFC 9535 JSONPath expression
// against the tree, as plain Go values.
func Select(node *Node, expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, expr, err)
	}

	selected := path.Select(node.Interface())

	out := make([]any, 0, len(selected))
	for _, value := range selected {
		out = append(out, value)
	}

	return out, nil
}

// SelectOne returns the first value matching the JSONPath expression, or
// ErrNotFound when nothing matches.
func SelectOne(node *Node, expr string) (any, error) {
	results, err := Select(node, expr)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, expr)
	}

	return results[0], nil
}
