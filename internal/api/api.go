// Package api applies the API error-logging settings from the config store
// to the process.
package api

import (
	"context"

	"github.com/soyeahso/underline/internal/config"
)

// ErrorLogSink receives the process-wide error-logging configuration.
// *logging.ErrorLog implements it.
type ErrorLogSink interface {
	ConfigureErrorLog(enabled bool, path string)
}

// Bootstrap is the API module. It borrows the config store; the store must
// be loaded before Init runs.
type Bootstrap struct {
	cfg  *config.Store
	sink ErrorLogSink
}

// New creates the API module.
func New(cfg *config.Store, sink ErrorLogSink) *Bootstrap {
	return &Bootstrap{cfg: cfg, sink: sink}
}

func (b *Bootstrap) ID() string   { return "api" }
func (b *Bootstrap) Name() string { return "API" }

// Init forwards logApiIssues and apiLogFile to the sink. args are ignored.
func (b *Bootstrap) Init(_ context.Context, _ ...any) error {
	b.sink.ConfigureErrorLog(b.cfg.LogAPIIssues(), b.cfg.APILogFile())
	return nil
}
