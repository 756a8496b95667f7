package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Eval      bool
	Transform bool
	Group     bool
	Service   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("PLUMB_DEBUG_EVAL")
	d.Transform = boolEnv("PLUMB_DEBUG_TRANSFORM")
	d.Group = boolEnv("PLUMB_DEBUG_GROUP")
	d.Service = boolEnv("PLUMB_DEBUG_SERVICE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Transform() bool {
	return d.Transform
}
func Group() bool {
	return d.Group
}
func Service() bool {
	return d.Service
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
