package extent

import (
	"io"
	"log/slog"
)

// logger receives one Debug record per bound computation. It discards
// everything unless replaced via SetLogger.
var logger = discardLogger()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger directs the diagnostic output of the package to l.
// A nil l switches logging off again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger = l
}
