package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Refs  bool
	Walk  bool
	Lines bool
	TOML  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Refs = boolEnv("ANNOTATE_DEBUG_REFS")
	d.Walk = boolEnv("ANNOTATE_DEBUG_WALK")
	d.Lines = boolEnv("ANNOTATE_DEBUG_LINES")
	d.TOML = boolEnv("ANNOTATE_DEBUG_TOML")
	d.LSP = boolEnv("ANNOTATE_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Refs() bool {
	return d.Refs
}
func Walk() bool {
	return d.Walk
}
func Lines() bool {
	return d.Lines
}
func TOML() bool {
	return d.TOML
}
func LSP() bool {
	return d.LSP
}
