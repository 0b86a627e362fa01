package logging

import (
	"io"
	"os"
	"sync"
)

// ErrorLog is the process-wide destination for API error logging. It only
// records the setting; the file is opened on first use.
type ErrorLog struct {
	mu      sync.Mutex
	enabled bool
	path    string
	file    *os.File
	logger  *Logger
}

// Errors is the error log shared by the whole process.
var Errors = &ErrorLog{}

// ConfigureErrorLog enables or disables error logging and sets where it
// goes. Changing either value drops the currently open file.
func (e *ErrorLog) ConfigureErrorLog(enabled bool, path string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if enabled != e.enabled || path != e.path {
		e.closeLocked()
	}
	e.enabled = enabled
	e.path = path
}

// Enabled reports whether error logging is on.
func (e *ErrorLog) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Path returns the configured destination.
func (e *ErrorLog) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}

// Logger returns the error logger. When disabled every event is dropped.
// If the file cannot be opened the logger falls back to stderr.
func (e *ErrorLog) Logger() *Logger {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled {
		return Nop()
	}
	if e.logger != nil {
		return e.logger
	}

	var w io.Writer = os.Stderr
	if f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		e.file = f
		w = f
	}
	e.logger = New(w, "error").Sub("api")
	return e.logger
}

// Close releases the log file, if one is open.
func (e *ErrorLog) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closeLocked()
}

func (e *ErrorLog) closeLocked() error {
	e.logger = nil
	if e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	return err
}
