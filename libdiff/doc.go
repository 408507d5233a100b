// Package libdiff computes and prints line diffs between a document and its
// annotated form.
package libdiff
