package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger = newDiscardLogger()
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New creates a logger writing to w at the given level.
// An unparseable level falls back to info.
func New(w io.Writer, logLevel string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

// SetupFile opens path for appending and installs it as the shared logger.
// The returned closer must be called on shutdown.
func SetupFile(path, logLevel string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	Set(New(f, logLevel))
	return f, nil
}

// Set replaces the shared logger
func Set(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the shared logger. Until Set is called it discards everything,
// since a TUI must never write logs to the terminal it draws on.
func L() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
