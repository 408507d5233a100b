package schema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/signadot/schema-annotator/value"
)

var tokenUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapeToken escapes one pointer segment.
func EscapeToken(s string) string {
	return tokenEscaper.Replace(s)
}

// UnescapeToken undoes EscapeToken.
func UnescapeToken(s string) string {
	return tokenUnescaper.Replace(s)
}

// Pointer builds "#/a/b" from raw segments.
func Pointer(segs ...string) string {
	buf := &strings.Builder{}
	buf.WriteByte('#')
	for _, s := range segs {
		buf.WriteByte('/')
		buf.WriteString(EscapeToken(s))
	}
	return buf.String()
}

// ParsePointer splits an internal reference into its decoded segments. "#"
// and "#/" both name the root, giving no segments and a single empty segment
// respectively.
func ParsePointer(ref string) ([]string, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, newError(RefResolutionError, "external references are not supported: %q", ref)
	}
	frag := ref[1:]
	if frag == "" {
		return nil, nil
	}
	if frag[0] != '/' {
		return nil, newError(RefResolutionError, "invalid pointer %q", ref)
	}
	parts := strings.Split(frag[1:], "/")
	for i, p := range parts {
		dec, err := url.PathUnescape(p)
		if err != nil {
			return nil, newError(RefResolutionError, "invalid pointer %q: %w", ref, err)
		}
		parts[i] = UnescapeToken(dec)
	}
	return parts, nil
}

func lookup(root *value.Value, ref string, segs []string) (*value.Value, error) {
	cur := root
	for i, seg := range segs {
		switch cur.Type {
		case value.ObjectType:
			next := cur.Get(seg)
			if next == nil {
				return nil, newError(RefResolutionError, "key %q not found", seg).
					WithContext("at %s", Pointer(segs[:i+1]...)).
					WithContext("pointer %s", ref)
			}
			cur = next
		case value.ArrayType:
			n, err := strconv.Atoi(seg)
			if err != nil || n < 0 || n >= cur.Len() || (len(seg) > 1 && seg[0] == '0') {
				return nil, newError(RefResolutionError, "bad array index %q", seg).
					WithContext("at %s", Pointer(segs[:i+1]...)).
					WithContext("pointer %s", ref)
			}
			cur = cur.Index(n)
		default:
			return nil, newError(RefResolutionError, "cannot index %s with %q", cur.Type, seg).
				WithContext("at %s", Pointer(segs[:i+1]...)).
				WithContext("pointer %s", ref)
		}
	}
	return cur, nil
}
