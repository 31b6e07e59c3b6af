package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Clone  bool
	Nav    bool
	Upsert bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Clone = boolEnv("O_DEBUG_CLONE")
	d.Nav = boolEnv("O_DEBUG_NAV")
	d.Upsert = boolEnv("O_DEBUG_UPSERT")
	d.Eval = boolEnv("O_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Clone() bool {
	return d.Clone
}
func Nav() bool {
	return d.Nav
}
func Upsert() bool {
	return d.Upsert
}
func Eval() bool {
	return d.Eval
}
