package states

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Resolver answers state queries for entity types against a Translator. It
// holds no mutable state besides its metadata cache and is safe for
// concurrent use.
type Resolver struct {
	translator Translator
	cfg        resolverConfig
}

// New constructs a Resolver backed by translator.
func New(translator Translator, opts ...Option) *Resolver {
	return &Resolver{
		translator: translator,
		cfg:        applyOptions(opts),
	}
}

// Values returns the legal raw values of state in declaration order.
func (r *Resolver) Values(entity StateValueProvider, state string) ([]any, error) {
	start := time.Now()
	values, err := r.ValueSet(entity, state)
	err = r.observe(OpValues, entity, state, start, err)
	if err != nil {
		return nil, err
	}
	return values, nil
}

// ValuesWithLocales returns the labels of state keyed by raw value after
// checking that they match the declared values exactly.
func (r *Resolver) ValuesWithLocales(entity StateValueProvider, state string) (map[string]string, error) {
	start := time.Now()
	labels, err := r.valuesWithLocales(entity, state)
	err = r.observe(OpValuesWithLocales, entity, state, start, err)
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// Locale returns the label of value. The value is not checked against the
// declared list, so labels of retired values still resolve.
func (r *Resolver) Locale(entity StateValueProvider, state string, value any) (string, error) {
	start := time.Now()
	label, err := r.locale(entity, state, value)
	err = r.observe(OpLocale, entity, state, start, err)
	if err != nil {
		return "", err
	}
	return label, nil
}

// Choices returns the reconciled labels of state in declaration order.
func (r *Resolver) Choices(entity StateValueProvider, state string) ([]Choice, error) {
	start := time.Now()
	choices, err := r.choices(entity, state)
	err = r.observe(OpChoices, entity, state, start, err)
	if err != nil {
		return nil, err
	}
	return choices, nil
}

// Verify reconciles every state declared by entity and returns all failures
// joined together.
func (r *Resolver) Verify(entity StateValueProvider) error {
	start := time.Now()
	var errs []error
	for _, state := range declaredStates(entity) {
		if _, err := r.valuesWithLocales(entity, state); err != nil {
			errs = append(errs, wrapStateError(OpValuesWithLocales, typeName(entity), state, err))
		}
	}
	return r.observe(OpVerify, entity, "", start, errors.Join(errs...))
}

func (r *Resolver) valuesWithLocales(entity StateValueProvider, state string) (map[string]string, error) {
	values, err := r.ValueSet(entity, state)
	if err != nil {
		return nil, err
	}
	path, err := r.localePath(entity)
	if err != nil {
		return nil, err
	}
	key := StateKey(path, state)
	raw, err := r.lookup(key)
	if err != nil {
		return nil, err
	}
	locales, err := labelMap(key, raw)
	if err != nil {
		return nil, err
	}
	labels, err := Reconcile(values, locales)
	if err != nil {
		var stateErr *StateError
		if errors.As(err, &stateErr) && stateErr.Key == "" {
			stateErr.Key = key
		}
		return nil, err
	}
	return labels, nil
}

func (r *Resolver) locale(entity StateValueProvider, state string, value any) (string, error) {
	path, err := r.localePath(entity)
	if err != nil {
		return "", err
	}
	key := ValueKey(path, state, value)
	raw, err := r.lookup(key)
	if err != nil {
		return "", err
	}
	label, ok := raw.(string)
	if !ok {
		return "", &StateError{
			Key: key,
			Err: fmt.Errorf("%w: expected label string, got %T", ErrTranslationType, raw),
		}
	}
	return label, nil
}

func (r *Resolver) choices(entity StateValueProvider, state string) ([]Choice, error) {
	labels, err := r.valuesWithLocales(entity, state)
	if err != nil {
		return nil, err
	}
	values, err := r.ValueSet(entity, state)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(values))
	choices := make([]Choice, 0, len(labels))
	for _, value := range values {
		key := Stringify(value)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		choices = append(choices, Choice{Value: value, Label: labels[key]})
	}
	return choices, nil
}

func (r *Resolver) lookup(key string) (any, error) {
	if r.translator == nil {
		return nil, &StateError{Key: key, Err: ErrNoTranslator}
	}
	raw, ok := r.translator.Lookup(key)
	if !ok || raw == nil {
		return nil, &StateError{Key: key, Err: ErrTranslationMissing}
	}
	return raw, nil
}

func (r *Resolver) observe(op Operation, entity any, state string, start time.Time, err error) error {
	name := typeName(entity)
	if op != OpVerify {
		err = wrapStateError(op, name, state, err)
	}
	r.cfg.logger.LogDispatch(DispatchLogEvent{
		Entity:    name,
		State:     state,
		Operation: op,
		Duration:  time.Since(start),
		Err:       err,
	})
	return err
}

func (r *Resolver) cacheGet(key CacheKey) (any, bool) {
	if r.cfg.cache == nil || key.Type == nil {
		return nil, false
	}
	return r.cfg.cache.Get(key)
}

func (r *Resolver) cacheSet(key CacheKey, value any) {
	if r.cfg.cache != nil && key.Type != nil {
		r.cfg.cache.Set(key, value)
	}
}

// declaredStates returns the snake_case state names declared by entity,
// sorted alphabetically.
func declaredStates(entity StateValueProvider) []string {
	if entity == nil {
		return nil
	}
	declared := entity.StateValues()
	names := make([]string, 0, len(declared))
	for constant := range declared {
		names = append(names, stateName(constant))
	}
	sort.Strings(names)
	return names
}
