package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadFS reads every JSON, YAML and TOML file below root. Each file becomes a
// namespace named after its path relative to root without the extension, so
// "entities/user.yaml" is reachable as "entities/user.state.role".
func LoadFS(fsys fs.FS, root string) (*Table, error) {
	if root == "" {
		root = "."
	}
	entries := map[string]any{}
	err := fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, ok := FormatFromPath(name)
		if !ok {
			return nil
		}
		namespace := namespaceOf(root, name)
		if _, exists := entries[namespace]; exists {
			return fmt.Errorf("catalog: duplicate namespace %q (%s)", namespace, name)
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", name, err)
		}
		table, err := Decode(format, data)
		if err != nil {
			return fmt.Errorf("%w (%s)", err, name)
		}
		entries[namespace] = table.root
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Table{root: entries}, nil
}

func namespaceOf(root, name string) string {
	rel := name
	if root != "." {
		rel = strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
	}
	return strings.TrimSuffix(rel, path.Ext(rel))
}
