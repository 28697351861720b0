package states

// Operation names one of the accessor suffixes a state answers to.
type Operation string

const (
	// OpValues returns the declared values in declaration order.
	OpValues Operation = "Values"
	// OpValuesWithLocales returns the reconciled value to label mapping.
	OpValuesWithLocales Operation = "ValuesWithLocales"
	// OpLocale returns the label of a single value.
	OpLocale Operation = "Locale"
	// OpChoices returns reconciled labels in declaration order.
	OpChoices Operation = "Choices"
	// OpVerify reconciles every declared state of an entity.
	OpVerify Operation = "Verify"
)

// StateValueProvider is implemented by entity types that declare states. The
// returned table maps SCREAMING_SNAKE constant names (e.g. "ROLE") to the
// ordered list of legal raw values.
type StateValueProvider interface {
	StateValues() map[string][]any
}

// LocalePathProvider lets an entity type override the derived locale path.
// An empty return value falls back to the naming rule.
type LocalePathProvider interface {
	LocalePath() string
}

// TypeNamer lets an entity type report its own short name instead of the
// reflected Go type name.
type TypeNamer interface {
	TypeName() string
}

// Translator resolves dot-path keys against a hierarchical localization table.
// Values are either label strings or nested mappings.
type Translator interface {
	Lookup(key string) (any, bool)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(key string) (any, bool)

// Lookup implements Translator.
func (f TranslatorFunc) Lookup(key string) (any, bool) {
	if f == nil {
		return nil, false
	}
	return f(key)
}

// Choice pairs a declared raw value with its label.
type Choice struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	cache  MetadataCache
	logger DispatchLogger
}

func applyOptions(opts []Option) resolverConfig {
	cfg := resolverConfig{
		cache:  NewMetadataCache(),
		logger: noopDispatchLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
