package states

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMethodNotFound reports an accessor name outside the get<State><Op> grammar.
	ErrMethodNotFound = errors.New("states: method not found")
	// ErrUndefinedState reports a state without a declared value list.
	ErrUndefinedState = errors.New("states: undefined state")
	// ErrNamingConvention reports an entity type whose name does not end in
	// "State" and that supplies no locale path of its own.
	ErrNamingConvention = errors.New("states: type name does not match the state naming rule")
	// ErrCountMismatch reports a different number of declared values and labels.
	ErrCountMismatch = errors.New("states: amount of state values and their localizations differ")
	// ErrKeyMismatch reports declared values and labels that do not match by key.
	ErrKeyMismatch = errors.New("states: state values and their localizations don't match by key")
	// ErrArgumentCount reports a Locale accessor called without a value.
	ErrArgumentCount = errors.New("states: locale accessor requires a value argument")
	// ErrTranslationMissing reports a key with no entry in the translator.
	ErrTranslationMissing = errors.New("states: translation not found")
	// ErrTranslationType reports a translation entry of an unexpected shape.
	ErrTranslationType = errors.New("states: unexpected translation type")
	// ErrNoTranslator reports a resolver constructed without a translator.
	ErrNoTranslator = errors.New("states: translator not configured")
)

// StateError captures the request that failed alongside the originating error.
type StateError struct {
	Op       Operation
	Entity   string
	State    string
	Constant string
	Key      string
	Missing  []string
	Extra    []string
	Err      error
}

func (e *StateError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("states:")
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(string(e.Op))
	}
	if e.Entity != "" {
		fmt.Fprintf(&b, " entity=%s", e.Entity)
	}
	if e.State != "" {
		fmt.Fprintf(&b, " state=%s", e.State)
	}
	if e.Constant != "" {
		fmt.Fprintf(&b, " constant=%s", e.Constant)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " key=%q", e.Key)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " missing=%v", e.Missing)
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, " extra=%v", e.Extra)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(strings.TrimPrefix(e.Err.Error(), "states: "))
	}
	return b.String()
}

func (e *StateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// wrapStateError decorates err with request metadata. An existing StateError
// only has its blank fields filled.
func wrapStateError(op Operation, entity, state string, err error) error {
	if err == nil {
		return nil
	}

	var stateErr *StateError
	if errors.As(err, &stateErr) {
		if stateErr.Op == "" {
			stateErr.Op = op
		}
		if stateErr.Entity == "" {
			stateErr.Entity = entity
		}
		if stateErr.State == "" {
			stateErr.State = state
		}
		return err
	}

	return &StateError{
		Op:     op,
		Entity: entity,
		State:  state,
		Err:    err,
	}
}
