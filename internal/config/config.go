// Package config holds the flat, file-backed settings store used by every
// other module. The store is created with built-in defaults, persisted to a
// JSON file on first run and merged strictly from that file afterwards.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrFileUnreadable means the config file exists but could not be
	// opened or read.
	ErrFileUnreadable = errors.New("cannot open config file for reading")
	// ErrMalformedConfig means the config content is not a JSON object, is
	// missing keys, carries unknown keys or holds values of the wrong type.
	ErrMalformedConfig = errors.New("malformed config")
	// ErrUnparseableTime means a time expression could not be resolved to a
	// timestamp.
	ErrUnparseableTime = errors.New("unparseable time expression")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns the built-in values every new Store starts from.
func Defaults() Values {
	return Values{
		LogAPIIssues:            false,
		APILogFile:              "api.log",
		SessionName:             "underline",
		SessionDefaultNamespace: "underline",
		CookieDefaultExpireTime: 604800,
		CookieDefaultPath:       "/",
		CookieDefaultSubDomain:  "",
		CookieDefaultSSL:        true,
		CookieDefaultHTTP:       true,
		CookieDefaultRemoveTime: 3600,
	}
}
