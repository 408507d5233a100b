// Package annotation holds the titles and descriptions extracted from a schema,
// keyed by dotted path, and renders them as comment lines.
//
// A Map is the only thing handed from schema analysis to document injection.
// It is built once and only read afterwards.
package annotation
