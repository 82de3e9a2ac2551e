package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var _ badger.Logger = (*StoreLogWriter)(nil)

// StoreLogWriter redirects Badger's internal logs to the application
// slog.Logger, tagged with component=badger. Levels disabled on the logger
// are dropped before formatting.
type StoreLogWriter struct {
	logger *slog.Logger
}

func NewStoreLogWriter(logger *slog.Logger) *StoreLogWriter {
	return &StoreLogWriter{logger: logger.With("component", "badger")}
}

func (w *StoreLogWriter) Errorf(format string, args ...interface{}) {
	w.write(slog.LevelError, format, args...)
}

func (w *StoreLogWriter) Warningf(format string, args ...interface{}) {
	w.write(slog.LevelWarn, format, args...)
}

func (w *StoreLogWriter) Infof(format string, args ...interface{}) {
	w.write(slog.LevelInfo, format, args...)
}

func (w *StoreLogWriter) Debugf(format string, args ...interface{}) {
	w.write(slog.LevelDebug, format, args...)
}

func (w *StoreLogWriter) write(level slog.Level, format string, args ...interface{}) {
	ctx := context.Background()
	if !w.logger.Enabled(ctx, level) {
		return
	}
	// Badger terminates most lines with a newline
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	w.logger.Log(ctx, level, msg)
}
