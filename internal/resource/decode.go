package resource

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
)

var (
	errInvalidJSON   = errors.New("invalid JSON syntax")
	errRootNotObject = errors.New("root value is not an object")
	errEmptyDocument = errors.New("empty document")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Decode parses one namespace file in the given format ("json", "yaml" or
// "toml"). It returns the root object and the key paths of any duplicate keys
// that were dropped in favour of their first occurrence.
func Decode(format string, data []byte) (*Object, []string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var decode func([]byte) (*Object, []string, error)
	switch format {
	case "json":
		decode = decodeJSON
	case "yaml":
		decode = decodeYAML
	case "toml":
		decode = decodeTOML
	default:
		return nil, nil, apperrors.ErrUnsupportedFormatf(format)
	}
	root, dups, err := decode(data)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeResourceMalformed, "malformed "+format)
	}
	return root, dups, nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// JSON keeps document order through gjson's ForEach, which encoding/json
// maps cannot.
func decodeJSON(data []byte) (*Object, []string, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, nil, errRootNotObject
	}
	var dups []string
	return jsonObject(root, "", &dups), dups, nil
}

func jsonObject(r gjson.Result, prefix string, dups *[]string) *Object {
	obj := NewObject()
	r.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		path := joinPath(prefix, k)
		if !obj.Set(k, jsonValue(value, path, dups)) {
			*dups = append(*dups, path)
		}
		return true
	})
	return obj
}

func jsonValue(v gjson.Result, path string, dups *[]string) Tree {
	switch {
	case v.IsObject():
		return jsonObject(v, path, dups)
	case v.IsArray():
		items := v.Array()
		arr := make(Array, len(items))
		for i, item := range items {
			arr[i] = item.Value()
		}
		return arr
	case v.Type == gjson.String:
		return Leaf(v.String())
	default:
		return Scalar{Raw: v.Raw}
	}
}

func decodeYAML(data []byte) (*Object, []string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, errEmptyDocument
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, nil, errRootNotObject
	}
	var dups []string
	obj, err := yamlObject(root, "", &dups)
	if err != nil {
		return nil, nil, err
	}
	return obj, dups, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func yamlObject(n *yaml.Node, prefix string, dups *[]string) (*Object, error) {
	obj := NewObject()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i].Value
		path := joinPath(prefix, k)
		child, err := yamlValue(resolveAlias(n.Content[i+1]), path, dups)
		if err != nil {
			return nil, err
		}
		if !obj.Set(k, child) {
			*dups = append(*dups, path)
		}
	}
	return obj, nil
}

func yamlValue(n *yaml.Node, path string, dups *[]string) (Tree, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return yamlObject(n, path, dups)
	case yaml.SequenceNode:
		var items []any
		if err := n.Decode(&items); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return Array(items), nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!str" {
			return Leaf(n.Value), nil
		}
		return Scalar{Raw: n.Value}, nil
	default:
		return nil, fmt.Errorf("%s: unsupported YAML node kind %d", path, n.Kind)
	}
}

// TOML tables carry no meaningful key order, so keys are sorted to keep
// reports deterministic.
func decodeTOML(data []byte) (*Object, []string, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, nil, err
	}
	return tomlObject(m), nil, nil
}

func tomlObject(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := NewObject()
	for _, k := range keys {
		obj.Set(k, tomlValue(m[k]))
	}
	return obj
}

func tomlValue(v any) Tree {
	switch val := v.(type) {
	case map[string]any:
		return tomlObject(val)
	case []any:
		return Array(val)
	case []map[string]any:
		arr := make(Array, len(val))
		for i, item := range val {
			arr[i] = item
		}
		return arr
	case string:
		return Leaf(val)
	default:
		return Scalar{Raw: fmt.Sprint(val)}
	}
}
