package logutil

import (
	"fmt"
	"strings"

	"github.com/couchbase/cblog/log"
)

// message defers formatting of the given arguments in the manner of 'fmt.Sprint'.
func message(args ...any) log.MessageFunc {
	return func() string { return fmt.Sprint(args...) }
}

// messageln defers formatting of the given arguments in the manner of 'fmt.Sprintln', without the trailing newline.
func messageln(args ...any) log.MessageFunc {
	return func() string { return strings.TrimSuffix(fmt.Sprintln(args...), "\n") }
}

// messagef defers formatting of the given arguments in the manner of 'fmt.Sprintf'.
func messagef(format string, args ...any) log.MessageFunc {
	return func() string { return fmt.Sprintf(format, args...) }
}
