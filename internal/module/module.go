// Package module provides the module interface and ordered initialization
// for underline.
package module

import "context"

// Module is the interface every underline module implements.
type Module interface {
	// ID returns a unique identifier for the module (e.g., "config").
	ID() string

	// Name returns a human-readable name.
	Name() string

	// Init prepares the module. The meaning of args is module specific;
	// the config module expects the config file path as args[0].
	Init(ctx context.Context, args ...any) error
}
