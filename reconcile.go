package states

import (
	"fmt"
	"sort"
)

// Reconcile checks that the declared values and the localized labels describe
// the same set of keys and returns the labels keyed by value. Duplicate values
// collapse and declaration order is irrelevant.
func Reconcile(values []any, locales map[string]string) (map[string]string, error) {
	declared := make(map[string]struct{}, len(values))
	for _, value := range values {
		declared[Stringify(value)] = struct{}{}
	}

	if len(declared) != len(locales) {
		return nil, &StateError{
			Err: fmt.Errorf("%w: %d values, %d localizations", ErrCountMismatch, len(declared), len(locales)),
		}
	}

	var missing, extra []string
	for key := range declared {
		if _, ok := locales[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range locales {
		if _, ok := declared[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return nil, &StateError{
			Missing: missing,
			Extra:   extra,
			Err:     ErrKeyMismatch,
		}
	}

	out := make(map[string]string, len(locales))
	for key, label := range locales {
		out[key] = label
	}
	return out, nil
}

// labelMap normalizes a translator result into value to label pairs.
func labelMap(key string, raw any) (map[string]string, error) {
	switch typed := raw.(type) {
	case map[string]string:
		out := make(map[string]string, len(typed))
		for k, v := range typed {
			out[k] = v
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(typed))
		for k, v := range typed {
			label, ok := v.(string)
			if !ok {
				return nil, &StateError{
					Key: key + "." + k,
					Err: fmt.Errorf("%w: expected label string, got %T", ErrTranslationType, v),
				}
			}
			out[k] = label
		}
		return out, nil
	default:
		return nil, &StateError{
			Key: key,
			Err: fmt.Errorf("%w: expected mapping, got %T", ErrTranslationType, raw),
		}
	}
}
