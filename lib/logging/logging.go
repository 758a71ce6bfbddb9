package logging

import (
	"context"
	"log"
)

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
}

// Logf logs a message in the context of the current request or process. The
// context is accepted so that request-scoped metadata can be injected without
// touching call sites.
func Logf(
	ctx context.Context,
	format string,
	v ...interface{},
) {
	log.Printf(format, v...)
}
