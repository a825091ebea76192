// Package catalog loads and serves per-language, per-namespace message
// trees.
//
// A Catalog is constructed once per language from a Source (locale directory,
// embedded filesystem, or the locales network endpoint), is immutable
// afterwards, and resolves (namespace, dotted.key.path) pairs to message
// strings. Construction fails when a required namespace is missing or
// malformed; individual lookup misses are recoverable and degrade to a
// diagnostic placeholder plus a warning log line.
//
//	src := catalog.NewDirSource("./locales", catalog.NewJSONParser())
//	c, err := catalog.Load(ctx, src, locale.English)
//	if err != nil {
//		log.Fatal(err) // deployment error, do not serve this language
//	}
//	msg := c.GetMessage(catalog.NamespaceValidation, "email.too_short")
//
// The MessageLookup interface is the one-method contract consumed by the
// validation rules, letting file-backed and network-backed catalogs share a
// single call site.
package catalog
