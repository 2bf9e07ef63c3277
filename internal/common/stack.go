package common

import "runtime"

// GetStackTrace returns the stack trace of the calling goroutine.
func GetStackTrace() string {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
