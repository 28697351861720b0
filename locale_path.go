package states

import (
	"fmt"
	"regexp"
)

const localePathPrefix = "entities/"

var stateTypeName = regexp.MustCompile(`^([\p{L}_][\p{L}\p{N}_]*)State$`)

// LocalePath returns the localization namespace for entity: the value of its
// LocalePath method when non-empty, otherwise "entities/<snake_name>" derived
// from a type name of the form <EntityName>State.
func LocalePath(entity any) (string, error) {
	if provider, ok := entity.(LocalePathProvider); ok {
		if path := provider.LocalePath(); path != "" {
			return path, nil
		}
	}
	return deriveLocalePath(typeName(entity))
}

func deriveLocalePath(name string) (string, error) {
	matches := stateTypeName.FindStringSubmatch(name)
	if matches == nil {
		return "", &StateError{
			Entity: name,
			Err:    fmt.Errorf("%w: %q", ErrNamingConvention, name),
		}
	}
	return localePathPrefix + ToSnake(matches[1]), nil
}

func (r *Resolver) localePath(entity any) (string, error) {
	if provider, ok := entity.(LocalePathProvider); ok {
		if path := provider.LocalePath(); path != "" {
			return path, nil
		}
	}
	key := CacheKey{Type: entityType(entity), Kind: CacheLocalePath}
	if cached, ok := r.cacheGet(key); ok {
		if path, ok := cached.(string); ok {
			return path, nil
		}
	}
	path, err := deriveLocalePath(typeName(entity))
	if err != nil {
		return "", err
	}
	r.cacheSet(key, path)
	return path, nil
}

// typeName returns the short name used for naming rules and error messages.
func typeName(entity any) string {
	if namer, ok := entity.(TypeNamer); ok {
		if name := namer.TypeName(); name != "" {
			return name
		}
	}
	t := entityType(entity)
	if t == nil {
		return "<nil>"
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
