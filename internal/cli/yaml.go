package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/laxjson"
)

// encodeYAML renders a tree as YAML, keeping object keys in parse order.
func encodeYAML(root *laxjson.Node) ([]byte, error) {
	payload, err := yaml.Marshal(yamlValue(root))
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}

	return payload, nil
}

func yamlValue(node *laxjson.Node) any {
	switch node.Kind() {
	case laxjson.KindObject:
		out := make(yaml.MapSlice, 0, node.Len())
		for _, key := range node.Keys() {
			child, err := node.Key(key)
			if err != nil {
				continue
			}
			out = append(out, yaml.MapItem{Key: key, Value: yamlValue(child)})
		}
		return out

	case laxjson.KindArray:
		out := make([]any, 0, node.Len())
		for i := 0; i < node.Len(); i++ {
			child, err := node.Index(i)
			if err != nil {
				continue
			}
			out = append(out, yamlValue(child))
		}
		return out

	default:
		return node.Interface()
	}
}
