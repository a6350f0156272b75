// Package caissalog wraps a package-level structured logger. Its caller is
// cmd/caissa, which reports config/FEN/PGN failures, stopped replays, and
// perft runs through it; the caissa package itself does not log. Grounded in the teacher's own
// preference for guarded package-level init state (InitAttackTables,
// InitZobristKeys), generalized from "call once" globals to a logger that
// callers may replace or silence, using go.uber.org/zap per the ambient
// stack the wider example pack reaches for (RumenDamyanov/go-chess).
package caissalog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

func init() {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	logger = base.Sugar()
}

// SetLogger replaces the package-level logger, e.g. to inject a caller's own
// *zap.SugaredLogger configured with application-specific fields.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Discard silences all logging, useful in tests.
func Discard() {
	SetLogger(zap.NewNop().Sugar())
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Infof logs an informational message (a move replayed, a perft run finished).
func Infof(template string, args ...interface{}) { current().Infof(template, args...) }

// Warnf logs a recoverable anomaly (an ambiguous SAN token, a variant
// rejecting a drop).
func Warnf(template string, args ...interface{}) { current().Warnf(template, args...) }

// Errorf logs a failure (a PGN parse error, an invalid FEN).
func Errorf(template string, args ...interface{}) { current().Errorf(template, args...) }
