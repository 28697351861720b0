// Package catalog provides localization tables that satisfy states.Translator.
//
// Tables are hierarchical maps addressed by dot paths. They can be decoded from
// JSON, YAML or TOML, loaded from a directory tree where every file becomes a
// namespace, merged (strongest first) and grouped per language in a Bundle:
//
//	lang/
//	  en/entities/user.yaml   -> "entities/user.state.role.admin"
//	  de/entities/user.toml
//
//	bundle, err := catalog.LoadBundleFS(os.DirFS("."), "lang", language.English)
//	resolver := states.New(bundle.Translator(language.German))
//
// Lookups on a Localizer fall back to the bundle's fallback language.
package catalog
