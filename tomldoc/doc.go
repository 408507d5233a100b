// Package tomldoc is a lossless, editable view of a TOML document.
//
// A Document is a flat sequence of items (table headers, array-of-tables
// headers and key/values) in source order. Each item owns its leading
// decoration: the blank and comment lines between the previous item and the
// item, followed by the item's indentation. Everything else is kept as raw
// text, so String reproduces the input exactly until a decoration is changed.
//
// Values are not decoded. Inline tables, arrays and multi-line strings are
// part of the item that declares them.
package tomldoc
