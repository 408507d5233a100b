// Package yamlline annotates YAML text without building a syntax tree.
//
// Map infers the path of every key line from indentation alone, and Inject
// inserts comment blocks above the lines whose path carries an annotation.
// Lines not being annotated are never rewritten.
//
// Key paths follow schema addressing: a sequence item adds no segment, so
// keys of every item of the sequence at "users" map to "users.<key>". Keys
// inside flow collections ({a: 1}, [..]) and block scalar content are never
// mapped. Each document of a multi-document stream is mapped independently;
// Entry.Doc is the document index.
package yamlline
