package states

import "fmt"

// ValueSet returns the values declared for state in declaration order.
func (r *Resolver) ValueSet(entity StateValueProvider, state string) ([]any, error) {
	constant := ToConstantName(state)
	key := CacheKey{Type: entityType(entity), Kind: CacheValueSet, Constant: constant}
	if cached, ok := r.cacheGet(key); ok {
		if values, ok := cached.([]any); ok {
			return cloneValues(values), nil
		}
	}

	values, ok := lookupConstant(entity, constant)
	if !ok {
		return nil, undefinedState(entity, state, constant)
	}
	values = cloneValues(values)
	r.cacheSet(key, values)
	return cloneValues(values), nil
}

// HasState reports whether entity declares a value list for state.
func (r *Resolver) HasState(entity StateValueProvider, state string) bool {
	_, ok := lookupConstant(entity, ToConstantName(state))
	return ok
}

func lookupConstant(entity StateValueProvider, constant string) ([]any, bool) {
	if entity == nil {
		return nil, false
	}
	declared := entity.StateValues()
	if declared == nil {
		return nil, false
	}
	values, ok := declared[constant]
	return values, ok
}

func undefinedState(entity any, state, constant string) error {
	return &StateError{
		Entity:   typeName(entity),
		State:    state,
		Constant: constant,
		Err:      fmt.Errorf("%w: the %q constant not found", ErrUndefinedState, constant),
	}
}

func cloneValues(values []any) []any {
	if values == nil {
		return []any{}
	}
	out := make([]any, len(values))
	copy(out, values)
	return out
}
