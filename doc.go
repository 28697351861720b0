// Package states exposes the declared values of an entity's named states and
// their localized labels without per-state boilerplate.
//
// An entity type declares its states as SCREAMING_SNAKE constant names mapped
// to ordered value lists:
//
//	type UserState struct{}
//
//	func (UserState) StateValues() map[string][]any {
//		return map[string][]any{"ROLE": {"member", "admin"}}
//	}
//
// A Resolver answers three questions about a state, either through explicit
// methods or through accessor names parsed with the get<State><Operation>
// grammar:
//
//	resolver.Values(UserState{}, "role")            // [member admin]
//	resolver.ValuesWithLocales(UserState{}, "role") // map[admin:Administrator member:Member]
//	resolver.Call(UserState{}, "getRoleLocale", "admin") // "Administrator"
//
// Labels live under "<locale path>.state.<state>" in the Translator. The
// locale path is "entities/<snake_name>" for a type named <Name>State unless
// the entity implements LocalePathProvider. The catalog subpackage provides
// Translator implementations backed by JSON, YAML or TOML files.
package states
