// Package eval compiles expressions that select annotations.
//
// Expressions use github.com/expr-lang/expr syntax and see one annotation at
// a time:
//
//	path         dotted path, "server.port"
//	key          last path segment, "port"
//	depth        number of path segments
//	title        title, "" if absent
//	description  description, "" if absent
//	default      JSON text of the default, "" if absent
//
// and the functions under(path, prefix), which reports whether path is prefix
// or lies below it, and getenv(name).
//
//	eval.Compile(`under(path, "server") && title != ""`)
package eval
