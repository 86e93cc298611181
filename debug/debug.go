// Package debug holds switches for diagnostic output, read once from the
// environment.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Build  bool
	Decode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("BBDB_DEBUG_TOKENS")
	d.Build = boolEnv("BBDB_DEBUG_BUILD")
	d.Decode = boolEnv("BBDB_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether the tokens of each parsed line are dumped.
func Tokens() bool {
	return d.Tokens
}

// Build reports whether generic values are dumped as they are built.
func Build() bool {
	return d.Build
}

// Decode reports whether decoded entries and decode failures are dumped.
func Decode() bool {
	return d.Decode
}
