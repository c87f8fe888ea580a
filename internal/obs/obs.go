// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package obs provides the structured, per-component loggers the rest
// of this module uses. Every package asks for its own named logger
// rather than calling slog's package-level default, so log lines are
// always attributable to a component without callers threading a
// *slog.Logger through every constructor by hand.
package obs

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	root   *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// SetRoot replaces the root logger every component logger is derived
// from. Call it once during process startup (e.g. to switch to JSON
// output, or raise the level) before any component logger is fetched.
func SetRoot(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = l
}

// For returns a logger scoped to the named component, e.g.
// obs.For("instance") attaches component=instance to every record.
func For(component string) *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With(slog.String("component", component))
}
