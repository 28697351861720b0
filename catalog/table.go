package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Table is an immutable hierarchical localization table. Leaves are label
// strings (or other scalars); branches are map[string]any.
type Table struct {
	root map[string]any
}

// New builds a Table from root. The map is deep-copied and normalized: keys of
// any type become text and lists become index-keyed maps.
func New(root map[string]any) *Table {
	normalized, _ := normalize(root).(map[string]any)
	if normalized == nil {
		normalized = map[string]any{}
	}
	return &Table{root: normalized}
}

// Lookup resolves a dot-separated key. At every level the longest literal key
// wins, so keys that themselves contain dots still resolve. Branches are
// returned as copies.
func (t *Table) Lookup(key string) (any, bool) {
	if t == nil || key == "" {
		return nil, false
	}
	value, ok := lookup(t.root, key)
	if !ok {
		return nil, false
	}
	return clone(value), true
}

// Map returns a deep copy of the table contents.
func (t *Table) Map() map[string]any {
	if t == nil {
		return map[string]any{}
	}
	return clone(t.root).(map[string]any)
}

// Len returns the number of top-level entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.root)
}

// lookup only splits key where the prefix names a branch present at this
// level, longest prefix first. Every branch is visited at most once per
// lookup since each is reached through a single prefix chain.
func lookup(node map[string]any, key string) (any, bool) {
	if value, ok := node[key]; ok {
		return value, true
	}
	var prefixes []string
	for name, value := range node {
		if _, ok := value.(map[string]any); !ok || name == "" {
			continue
		}
		if len(name) < len(key) && key[len(name)] == '.' && strings.HasPrefix(key, name) {
			prefixes = append(prefixes, name)
		}
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	for _, name := range prefixes {
		if value, ok := lookup(node[name].(map[string]any), key[len(name)+1:]); ok {
			return value, true
		}
	}
	return nil, false
}

func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = item
		}
		return out
	case []any:
		out := make(map[string]any, len(typed))
		for i, item := range typed {
			out[strconv.Itoa(i)] = normalize(item)
		}
		return out
	case []map[string]any:
		out := make(map[string]any, len(typed))
		for i, item := range typed {
			out[strconv.Itoa(i)] = normalize(item)
		}
		return out
	default:
		return value
	}
}

func clone(value any) any {
	typed, ok := value.(map[string]any)
	if !ok {
		return value
	}
	out := make(map[string]any, len(typed))
	for key, item := range typed {
		out[key] = clone(item)
	}
	return out
}
