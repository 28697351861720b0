package catalog

import (
	"sort"
	"strings"
)

// Keys returns the dot path of every leaf in the table, sorted.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := leafKeys(t.root, "")
	sort.Strings(keys)
	return keys
}

func leafKeys(node map[string]any, prefix string) []string {
	var keys []string
	for key, value := range node {
		next := joinPath(prefix, key)
		if child, ok := value.(map[string]any); ok {
			if len(child) == 0 {
				keys = append(keys, next)
				continue
			}
			keys = append(keys, leafKeys(child, next)...)
			continue
		}
		keys = append(keys, next)
	}
	return keys
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return strings.Join([]string{prefix, segment}, ".")
}
