// Package catalog defines the compiled message catalog contract and the
// error-key translator built on top of it.
//
// A Catalog maps string keys to zero-argument message functions. Each
// function resolves the currently active locale at call time, so a string
// produced by a message function changes when the locale changes and the
// calling context re-evaluates.
//
// The translator turns raw error values into localized strings: recognized
// keys are resolved through the catalog, everything else passes through
// unchanged.
//
//	translate := catalog.Translator(c)
//	msg, _ := translate("errNameMin") // localized if "errNameMin" is a key
//	msg, _ = translate("disk full")   // passes through verbatim
//
// Catalogs are usually generated elsewhere; FromTranslations builds one from
// parsed translation sources for applications that keep messages in JSON or
// YAML files.
package catalog
