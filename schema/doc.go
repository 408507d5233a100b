// Package schema turns a JSON-Schema-like value tree into an annotation map.
//
// Internal references ("$ref": "#/...") are substituted first by ResolveRefs,
// which fails on external references and on cycles. Walk then visits the
// resolved tree and records the title and description found at each path.
// Composition keywords (oneOf, allOf, anyOf) are not followed.
package schema
