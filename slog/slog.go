// Package slog provides logging decorators for contractors services.
package slog
