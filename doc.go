// Package annotator writes the titles and descriptions of a JSON schema into
// TOML and YAML documents as comments.
//
//	out, err := annotator.Annotate(schema, text, format.TOMLFormat, annotation.DefaultConfig())
//
// Only the comment blocks directly above annotated keys change. Every other
// byte of the document, including existing comments, key order, quoting and
// line endings, is kept as it was.
//
// # Related Packages
//
//   - github.com/signadot/schema-annotator/schema - reference resolution and schema walking
//   - github.com/signadot/schema-annotator/annotation - annotation map and rendering
//   - github.com/signadot/schema-annotator/tomldoc - lossless TOML documents
//   - github.com/signadot/schema-annotator/yamlline - line based YAML injection
package annotator
