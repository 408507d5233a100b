package yamlline

import (
	"strconv"
	"strings"
)

// splitKey splits "key: value" content. ok is false when content does not
// start with a block mapping key.
func splitKey(content string) (key, val string, ok bool) {
	var rest string
	switch content[0] {
	case '"', '\'':
		end := quoteEnd(content[1:], content[0])
		if end == -1 {
			return "", "", false
		}
		raw := content[:end+2]
		rest = content[end+2:]
		key = unquote(raw)
	case '[', '{', '?', '|', '>', '#', '&', '!', '*', '%', '@', '`':
		return "", "", false
	default:
		for i := 0; i < len(content); i++ {
			switch content[i] {
			case ':':
				if i+1 == len(content) || content[i+1] == ' ' || content[i+1] == '\t' {
					key = strings.TrimRight(content[:i], " \t")
					if key == "" {
						return "", "", false
					}
					return key, strings.TrimSpace(content[i+1:]), true
				}
			case '#':
				if content[i-1] == ' ' || content[i-1] == '\t' {
					return "", "", false
				}
			}
		}
		return "", "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" || rest[0] != ':' {
		return "", "", false
	}
	if len(rest) > 1 && rest[1] != ' ' && rest[1] != '\t' {
		return "", "", false
	}
	return key, strings.TrimSpace(rest[1:]), true
}

// quoteEnd returns the index in s of the quote closing a scalar opened by q
// just before s, or -1.
func quoteEnd(s string, q byte) int {
	for i := 0; i < len(s); i++ {
		switch {
		case q == '"' && s[i] == '\\':
			i++
		case s[i] == q:
			if q == '\'' && i+1 < len(s) && s[i+1] == '\'' {
				i++
				continue
			}
			return i
		}
	}
	return -1
}

func quoteClosed(s string, q byte) bool {
	return quoteEnd(s, q) != -1
}

func unquote(raw string) string {
	if raw[0] == '\'' {
		return strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")
	}
	s, err := strconv.Unquote(raw)
	if err != nil {
		return raw[1 : len(raw)-1]
	}
	return s
}

// stripProperties removes a leading anchor and tag from a value.
func stripProperties(val string) string {
	for val != "" && (val[0] == '&' || val[0] == '!') {
		i := strings.IndexAny(val, " \t")
		if i == -1 {
			return ""
		}
		val = strings.TrimLeft(val[i:], " \t")
	}
	return val
}

// flowDepth returns the bracket depth of a flow collection after s, given
// the depth before it.
func flowDepth(s string, depth int) int {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\'':
			end := quoteEnd(s[i+1:], c)
			if end == -1 {
				return depth
			}
			i += end + 1
		case '#':
			if i == 0 || s[i-1] == ' ' || s[i-1] == '\t' {
				return depth
			}
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		}
	}
	return depth
}
