package ereport

import (
	"path/filepath"
	"runtime"
	"strings"
)

// TopLevelFunction is reported as the function of calls made from package
// initialization rather than from a named function.
const TopLevelFunction = "<module-level>"

// CallSiteResolver locates the code that called a Reporter. skip follows
// runtime.Caller: 0 is the resolver's caller, 1 the one above, and so on.
type CallSiteResolver func(skip int) CallSite

// RuntimeCallSite resolves call sites from the goroutine stack.
func RuntimeCallSite(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{Module: "unknown", Function: TopLevelFunction}
	}
	return CallSite{
		Module:   fileStem(file),
		Function: funcName(pc),
		Line:     line,
	}
}

func fileStem(file string) string {
	base := filepath.Base(filepath.ToSlash(file))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// funcName trims the package path from the runtime name:
// "github.com/a/b.(*T).M" becomes "(*T).M".
func funcName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return TopLevelFunction
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "init" || strings.HasPrefix(name, "init.") {
		return TopLevelFunction
	}
	return name
}
