package laxjson

import (
	"strconv"
	"strings"
)

// DefaultTabSize is the indentation width used when none is given.
const DefaultTabSize = 4

// Dump renders the tree in its canonical human-facing form: indented, with a
// trailing comma after every atom and after the closing bracket or brace of
// every composite, and null rendered without a comma. The output is
// JSON-like but not conformant; use DumpStrict for machine consumption.
// A tabSize of zero or less selects DefaultTabSize.
func Dump(node *Node, tabSize int) string {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}

	var b strings.Builder
	dumpLenient(&b, node, 0, tabSize)
	return b.String()
}

// DumpStrict renders the tree as conformant JSON with the same indentation
// scheme as Dump.
func DumpStrict(node *Node, tabSize int) string {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}

	var b strings.Builder
	dumpStrict(&b, node, 0, tabSize)
	return b.String()
}

func dumpLenient(b *strings.Builder, node *Node, offset, tab int) {
	writeIndent(b, offset)

	switch node.kind {
	case KindObject:
		b.WriteString("{\n")
		if node.object != nil {
			node.object.Range(func(key string, child *Node) bool {
				writeIndent(b, offset+tab)
				b.WriteByte('"')
				b.WriteString(key)
				b.WriteString("\": ")

				if child.kind == KindObject || child.kind == KindArray {
					b.WriteByte('\n')
					dumpLenient(b, child, offset+tab, tab)
				} else {
					dumpLenient(b, child, 0, tab)
				}

				b.WriteByte('\n')
				return true
			})
		}
		writeIndent(b, offset)
		b.WriteString("},")

	case KindArray:
		b.WriteString("[\n")
		for _, child := range node.array {
			dumpLenient(b, child, offset+tab, tab)
			b.WriteByte('\n')
		}
		writeIndent(b, offset)
		b.WriteString("],")

	case KindString:
		b.WriteByte('"')
		b.WriteString(node.str)
		b.WriteString("\",")

	case KindBoolean:
		b.WriteString(strconv.FormatBool(node.boolean))
		b.WriteByte(',')

	case KindNumber:
		b.WriteString(formatNumber(node.number))
		b.WriteByte(',')

	case KindNull:
		b.WriteString("null")
	}
}

func dumpStrict(b *strings.Builder, node *Node, offset, tab int) {
	writeIndent(b, offset)

	switch node.kind {
	case KindObject:
		keys := node.Keys()
		if len(keys) == 0 {
			b.WriteString("{}")
			return
		}

		b.WriteString("{\n")
		for i, key := range keys {
			child, _ := node.Key(key)

			writeIndent(b, offset+tab)
			b.WriteByte('"')
			b.WriteString(key)
			b.WriteString("\": ")

			if child.kind == KindObject || child.kind == KindArray {
				b.WriteByte('\n')
				dumpStrict(b, child, offset+tab, tab)
			} else {
				dumpStrict(b, child, 0, tab)
			}

			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, offset)
		b.WriteByte('}')

	case KindArray:
		if len(node.array) == 0 {
			b.WriteString("[]")
			return
		}

		b.WriteString("[\n")
		for i, child := range node.array {
			dumpStrict(b, child, offset+tab, tab)
			if i < len(node.array)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, offset)
		b.WriteByte(']')

	case KindString:
		b.WriteByte('"')
		b.WriteString(node.str)
		b.WriteByte('"')

	case KindBoolean:
		b.WriteString(strconv.FormatBool(node.boolean))

	case KindNumber:
		b.WriteString(formatNumber(node.number))

	case KindNull:
		b.WriteString("null")
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func writeIndent(b *strings.Builder, width int) {
	for i := 0; i < width; i++ {
		b.WriteByte(' ')
	}
}
