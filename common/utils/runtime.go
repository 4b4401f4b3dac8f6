package utils

import (
	"runtime"
	"strings"
)

const unknownCaller = "<unknown>"

// GetCallerFunctionName returns the short name of the function skip frames up
// the stack: "Load" for "pkg.(*catalogService).Load".
func GetCallerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip, pc) == 0 {
		return unknownCaller
	}
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return unknownCaller
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		return name[i+1:]
	}
	return name
}
