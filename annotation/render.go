package annotation

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const commentLead = "# "

// Render returns the comment lines for r under cfg, without line endings:
// title first, then the description, then the default.
func Render(r *Record, cfg Config) []string {
	var lines []string
	if cfg.IncludeTitle && r.Title != "" {
		for _, ln := range strings.Split(r.Title, "\n") {
			lines = append(lines, comment(ln))
		}
	}
	if cfg.IncludeDescription && r.Description != "" {
		for _, ln := range wrap(r.Description, cfg.MaxLineWidth) {
			lines = append(lines, comment(ln))
		}
	}
	if cfg.IncludeDefault && r.Default != "" {
		lines = append(lines, comment("Default: "+r.Default))
	}
	return lines
}

// wrap breaks text greedily at spaces. A word longer than width stays whole on
// its own line. Newlines in text always break.
func wrap(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if width > 0 {
		text = wordwrap.WrapString(text, uint(width))
	}
	res := strings.Split(text, "\n")
	for i := range res {
		res[i] = strings.TrimRight(res[i], " \t")
	}
	return res
}

func comment(s string) string {
	if s == "" {
		return strings.TrimRight(commentLead, " ")
	}
	return commentLead + s
}
