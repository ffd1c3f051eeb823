// Package laxjson reads lenient JSON-like text into a tree of typed value
// nodes and renders such a tree back to indented text.
//
// The accepted dialect is deliberately loose: strings may be delimited by
// either quote class with no escape handling, numbers are digit-and-dot runs,
// and the top level must be an object. Diagnostics are reported through a
// diag.Reporter instead of aborting, so a malformed document still yields a
// best-effort partial tree.
package laxjson

import (
	"fmt"

	"github.com/jacoelho/laxjson/internal/orderedmap"
)

// Kind tags a value node.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBoolean
	KindNumber
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Null"
	}
}

// Node is one element of a parsed value tree. The zero value is a Null node.
// A node owns its children exclusively; sharing a mutating tree across
// goroutines is not supported.
type Node struct {
	kind    Kind
	str     string
	boolean bool
	number  float64
	array   []*Node
	object  *orderedmap.Map[*Node]
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsNull() bool   { return n.kind == KindNull }
func (n *Node) IsString() bool { return n.kind == KindString }
func (n *Node) IsBool() bool   { return n.kind == KindBoolean }
func (n *Node) IsNumber() bool { return n.kind == KindNumber }
func (n *Node) IsArray() bool  { return n.kind == KindArray }
func (n *Node) IsObject() bool { return n.kind == KindObject }

// Key returns the child stored under key. The node must be an object; an
// absent key gains a fresh Null child, consistent with the underlying
// ordered map.
func (n *Node) Key(key string) (*Node, error) {
	if n.kind != KindObject {
		return nil, fmt.Errorf("%w: key %q on %s node", ErrOutOfRange, key, n.kind)
	}

	if n.object == nil {
		n.object = orderedmap.New[*Node]()
	}

	if child, ok := n.object.Get(key); ok {
		return child, nil
	}

	child := &Node{}
	n.object.Set(key, child)
	return child, nil
}

// Index returns the array child at position index.
func (n *Node) Index(index int) (*Node, error) {
	if n.kind != KindArray {
		return nil, fmt.Errorf("%w: index %d on %s node", ErrOutOfRange, index, n.kind)
	}
	if index < 0 || index >= len(n.array) {
		return nil, fmt.Errorf("%w: index %d on array of length %d", ErrOutOfRange, index, len(n.array))
	}

	return n.array[index], nil
}

// Len returns the child count for composite nodes and zero otherwise.
func (n *Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.array)
	case KindObject:
		if n.object == nil {
			return 0
		}
		return n.object.Len()
	default:
		return 0
	}
}

// Keys returns the object keys in first-insertion order.
func (n *Node) Keys() []string {
	if n.kind != KindObject || n.object == nil {
		return nil
	}
	return n.object.Keys()
}

// Text returns the string payload cell. Mutations through the returned
// pointer are visible to later dumps.
func (n *Node) Text() (*string, error) {
	if n.kind != KindString {
		return nil, fmt.Errorf("%w: string access on %s node", ErrBadType, n.kind)
	}
	return &n.str, nil
}

// Bool returns the boolean payload cell.
func (n *Node) Bool() (*bool, error) {
	if n.kind != KindBoolean {
		return nil, fmt.Errorf("%w: boolean access on %s node", ErrBadType, n.kind)
	}
	return &n.boolean, nil
}

// Number returns the numeric payload cell.
func (n *Node) Number() (*float64, error) {
	if n.kind != KindNumber {
		return nil, fmt.Errorf("%w: number access on %s node", ErrBadType, n.kind)
	}
	return &n.number, nil
}

// Interface converts the tree into plain Go values: nil, string, bool,
// float64, []any, and map[string]any. Object key order is not preserved;
// use Keys for ordered traversal.
func (n *Node) Interface() any {
	switch n.kind {
	case KindString:
		return n.str
	case KindBoolean:
		return n.boolean
	case KindNumber:
		return n.number
	case KindArray:
		out := make([]any, 0, len(n.array))
		for _, child := range n.array {
			out = append(out, child.Interface())
		}
		return out
	case KindObject:
		if n.object == nil {
			return map[string]any{}
		}
		out := make(map[string]any, n.object.Len())
		n.object.Range(func(key string, child *Node) bool {
			out[key] = child.Interface()
			return true
		})
		return out
	default:
		return nil
	}
}
