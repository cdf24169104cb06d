//go:build !debug

package gacore

const debugAssertEnabled = false

func debugAssert(cond bool, msg string) {}
