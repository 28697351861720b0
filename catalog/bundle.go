package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sync"

	"golang.org/x/text/language"
)

// Bundle groups one Table per language and answers lookups for a preferred
// language with a fallback language behind it.
type Bundle struct {
	mu       sync.RWMutex
	fallback language.Tag
	tags     []language.Tag
	tables   map[language.Tag]*Table
	matcher  language.Matcher
}

// NewBundle constructs an empty bundle with the given fallback language.
func NewBundle(fallback language.Tag) *Bundle {
	return &Bundle{
		fallback: fallback,
		tables:   make(map[language.Tag]*Table),
	}
}

// Add registers table for tag. Adding to an existing language merges table
// over the previous entries.
func (b *Bundle) Add(tag language.Tag, table *Table) {
	if table == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.tables[tag]; ok {
		b.tables[tag] = Merge(table, existing)
	} else {
		b.tables[tag] = table
		b.tags = append(b.tags, tag)
	}
	b.matcher = nil
}

// Fallback returns the fallback language.
func (b *Bundle) Fallback() language.Tag {
	return b.fallback
}

// Languages returns the registered languages in registration order.
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Table returns the table registered for tag.
func (b *Bundle) Table(tag language.Tag) (*Table, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	table, ok := b.tables[tag]
	return table, ok
}

// Match picks the registered language closest to the preferences, or the
// fallback when none is close enough.
func (b *Bundle) Match(preferred ...language.Tag) language.Tag {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(preferred) == 0 {
		return b.fallback
	}
	supported := b.supported()
	if b.matcher == nil {
		b.matcher = language.NewMatcher(supported)
	}
	_, index, confidence := b.matcher.Match(preferred...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return b.fallback
	}
	return supported[index]
}

// supported lists the fallback first, as language.NewMatcher treats the
// first tag as its default.
func (b *Bundle) supported() []language.Tag {
	supported := make([]language.Tag, 0, len(b.tags)+1)
	supported = append(supported, b.fallback)
	for _, tag := range b.tags {
		if tag != b.fallback {
			supported = append(supported, tag)
		}
	}
	return supported
}

// Translator returns a lookup bound to the language best matching preferred.
// The result satisfies states.Translator.
func (b *Bundle) Translator(preferred ...language.Tag) *Localizer {
	return &Localizer{bundle: b, tag: b.Match(preferred...)}
}

// Localizer resolves keys in one language, falling back to the bundle's
// fallback language for missing keys.
type Localizer struct {
	bundle *Bundle
	tag    language.Tag
}

// Language returns the language the localizer resolves in first.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Lookup implements states.Translator.
func (l *Localizer) Lookup(key string) (any, bool) {
	if l == nil || l.bundle == nil {
		return nil, false
	}
	if table, ok := l.bundle.Table(l.tag); ok {
		if value, ok := table.Lookup(key); ok {
			return value, true
		}
	}
	if l.tag == l.bundle.fallback {
		return nil, false
	}
	if table, ok := l.bundle.Table(l.bundle.fallback); ok {
		return table.Lookup(key)
	}
	return nil, false
}

// LoadBundleFS reads one directory per language below root (for example
// root/en/entities/user.yaml) into a bundle. The fallback language must be
// present.
func LoadBundleFS(fsys fs.FS, root string, fallback language.Tag) (*Bundle, error) {
	if root == "" {
		root = "."
	}
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", root, err)
	}
	bundle := NewBundle(fallback)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tag, err := language.Parse(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("catalog: language directory %q: %w", entry.Name(), err)
		}
		table, err := LoadFS(fsys, path.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		bundle.Add(tag, table)
	}
	if _, ok := bundle.Table(fallback); !ok {
		return nil, fmt.Errorf("catalog: fallback language %s not loaded", fallback)
	}
	return bundle, nil
}
