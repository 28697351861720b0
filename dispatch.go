package states

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

var accessorPattern = regexp.MustCompile(`^get([\p{L}_]+)(Values|ValuesWithLocales|Locale)$`)

// Accessor is a parsed get<State><Operation> name.
type Accessor struct {
	Name      string
	State     string
	Operation Operation
}

// ParseAccessor validates name against the accessor grammar and extracts the
// snake_case state name and the requested operation.
func ParseAccessor(name string) (Accessor, error) {
	matches := accessorPattern.FindStringSubmatch(name)
	if matches == nil {
		return Accessor{}, &StateError{
			Err: fmt.Errorf("%w: the %s() method you are calling was not found", ErrMethodNotFound, name),
		}
	}
	return Accessor{
		Name:      name,
		State:     ToSnake(matches[1]),
		Operation: Operation(matches[2]),
	}, nil
}

// AccessorName composes the accessor name for state and op, e.g.
// AccessorName("user_type", OpValues) == "getUserTypeValues".
func AccessorName(state string, op Operation) string {
	return "get" + ToStudly(state) + string(op)
}

// Call answers an accessor-style request such as "getRoleValues". The state
// must be declared whatever the operation; Locale accessors take the raw
// value as their first argument.
func (r *Resolver) Call(entity StateValueProvider, name string, args ...any) (any, error) {
	accessor, err := ParseAccessor(name)
	if err != nil {
		return nil, r.observe("", entity, "", time.Now(), err)
	}
	if !r.HasState(entity, accessor.State) {
		err := undefinedState(entity, accessor.State, ToConstantName(accessor.State))
		return nil, r.observe(accessor.Operation, entity, accessor.State, time.Now(), err)
	}
	return r.route(entity, accessor, args)
}

func (r *Resolver) route(entity StateValueProvider, accessor Accessor, args []any) (any, error) {
	switch accessor.Operation {
	case OpValues:
		return r.Values(entity, accessor.State)
	case OpValuesWithLocales:
		return r.ValuesWithLocales(entity, accessor.State)
	case OpLocale:
		if len(args) == 0 {
			err := fmt.Errorf("%w: %s() expects 1 argument, 0 given", ErrArgumentCount, accessor.Name)
			return nil, r.observe(OpLocale, entity, accessor.State, time.Now(), err)
		}
		return r.Locale(entity, accessor.State, args[0])
	default:
		err := fmt.Errorf("%w: unsupported operation %q", ErrMethodNotFound, accessor.Operation)
		return nil, r.observe(accessor.Operation, entity, accessor.State, time.Now(), err)
	}
}

type accessorKey struct {
	state string
	op    Operation
}

type handler func(args []any) (any, error)

// Binding is the dispatch table of one entity, built once by Resolver.Bind.
// It maps every (state, operation) pair the entity declares to its handler.
type Binding struct {
	resolver *Resolver
	entity   StateValueProvider
	name     string
	states   []string
	handlers map[accessorKey]handler
}

// Bind builds the dispatch table for entity. The locale path is resolved
// eagerly so a naming error surfaces here rather than on first use; entities
// that only need Values may ignore that error and still use the binding.
func (r *Resolver) Bind(entity StateValueProvider) (*Binding, error) {
	if entity == nil {
		return nil, &StateError{Err: fmt.Errorf("%w: entity is nil", ErrUndefinedState)}
	}
	b := &Binding{
		resolver: r,
		entity:   entity,
		name:     typeName(entity),
		states:   declaredStates(entity),
		handlers: make(map[accessorKey]handler),
	}
	for _, state := range b.states {
		state := state
		b.handlers[accessorKey{state, OpValues}] = func([]any) (any, error) {
			return r.Values(entity, state)
		}
		b.handlers[accessorKey{state, OpValuesWithLocales}] = func([]any) (any, error) {
			return r.ValuesWithLocales(entity, state)
		}
		b.handlers[accessorKey{state, OpLocale}] = func(args []any) (any, error) {
			return r.route(entity, Accessor{Name: AccessorName(state, OpLocale), State: state, Operation: OpLocale}, args)
		}
	}
	if _, err := r.localePath(entity); err != nil {
		return b, wrapStateError("", b.name, "", err)
	}
	return b, nil
}

// Name returns the entity type name the binding was built for.
func (b *Binding) Name() string {
	return b.name
}

// States returns the declared state names, sorted.
func (b *Binding) States() []string {
	out := make([]string, len(b.states))
	copy(out, b.states)
	return out
}

// Accessors lists every accessor name the binding answers to, sorted.
func (b *Binding) Accessors() []string {
	names := make([]string, 0, len(b.handlers))
	for key := range b.handlers {
		names = append(names, AccessorName(key.state, key.op))
	}
	sort.Strings(names)
	return names
}

// Call dispatches an accessor name through the binding's table.
func (b *Binding) Call(name string, args ...any) (any, error) {
	accessor, err := ParseAccessor(name)
	if err != nil {
		return nil, b.resolver.observe("", b.entity, "", time.Now(), err)
	}
	fn, ok := b.handlers[accessorKey{accessor.State, accessor.Operation}]
	if !ok {
		err := undefinedState(b.entity, accessor.State, ToConstantName(accessor.State))
		return nil, b.resolver.observe(accessor.Operation, b.entity, accessor.State, time.Now(), err)
	}
	return fn(args)
}

// Values returns the declared values of state.
func (b *Binding) Values(state string) ([]any, error) {
	return b.resolver.Values(b.entity, state)
}

// ValuesWithLocales returns the reconciled labels of state.
func (b *Binding) ValuesWithLocales(state string) (map[string]string, error) {
	return b.resolver.ValuesWithLocales(b.entity, state)
}

// Locale returns the label of value.
func (b *Binding) Locale(state string, value any) (string, error) {
	return b.resolver.Locale(b.entity, state, value)
}

// Choices returns the reconciled labels of state in declaration order.
func (b *Binding) Choices(state string) ([]Choice, error) {
	return b.resolver.Choices(b.entity, state)
}
