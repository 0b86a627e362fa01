package config

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/soyeahso/underline/internal/timeexpr"
)

// Store holds the current settings. It is not safe for concurrent use.
type Store struct {
	values Values
	now    func() time.Time
}

// New returns a Store holding Defaults.
func New() *Store {
	return &Store{
		values: Defaults(),
		now:    time.Now,
	}
}

// ID implements module.Module.
func (s *Store) ID() string { return "config" }

// Name implements module.Module.
func (s *Store) Name() string { return "Configuration" }

// Init implements module.Module. args[0] must be the config file path.
func (s *Store) Init(_ context.Context, args ...any) error {
	if len(args) == 0 {
		return &ConfigError{Message: "init requires the config file path"}
	}
	path, ok := args[0].(string)
	if !ok || path == "" {
		return &ConfigError{Message: fmt.Sprintf("config file path must be a non-empty string, got %v", args[0])}
	}
	return s.Load(path)
}

// Values returns a copy of the current settings.
func (s *Store) Values() Values { return s.values }

// Export maps every key to its current value.
func (s *Store) Export() map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.key] = f.get(&s.values)
	}
	return out
}

// Import replaces every setting with the value under the same key in raw.
// All keys must be present and no others may appear; on any problem the
// store is left untouched.
func (s *Store) Import(raw map[string]any) error {
	if issues := CheckKeys(raw); len(issues) > 0 {
		return fmt.Errorf("%w: %s", ErrMalformedConfig, joinIssues(issues))
	}

	var staged Values
	for _, f := range fields {
		if err := f.set(&staged, raw[f.key]); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedConfig, f.key, err)
		}
	}

	s.values = staged
	return nil
}

// Get returns the current value for key.
func (s *Store) Get(key string) (any, bool) {
	f, ok := lookupField(key)
	if !ok {
		return nil, false
	}
	return f.get(&s.values), true
}

// Set parses raw for the type of key and stores it. A non-numeric value for
// cookieDefaultRemoveTime is treated as a time expression.
func (s *Store) Set(key, raw string) error {
	f, ok := lookupField(key)
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("unknown key %q", key)}
	}

	if key == KeyCookieDefaultRemoveTime {
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return s.SetCookieDefaultRemoveTimeExpr(raw)
		}
	}

	staged := s.values
	if err := f.set(&staged, raw); err != nil {
		return &ConfigError{Message: fmt.Sprintf("%s: %v", key, err)}
	}
	s.values = staged
	return nil
}

// LogAPIIssues reports whether API errors should be logged.
func (s *Store) LogAPIIssues() bool { return s.values.LogAPIIssues }

// SetLogAPIIssues enables or disables API error logging.
func (s *Store) SetLogAPIIssues(v bool) { s.values.LogAPIIssues = v }

// APILogFile is the API error log destination.
func (s *Store) APILogFile() string { return s.values.APILogFile }

func (s *Store) SetAPILogFile(v string) { s.values.APILogFile = v }

func (s *Store) SessionName() string { return s.values.SessionName }

func (s *Store) SetSessionName(v string) { s.values.SessionName = v }

func (s *Store) SessionDefaultNamespace() string { return s.values.SessionDefaultNamespace }

func (s *Store) SetSessionDefaultNamespace(v string) { s.values.SessionDefaultNamespace = v }

// CookieDefaultExpireTime is the default cookie lifetime in seconds.
func (s *Store) CookieDefaultExpireTime() int64 { return s.values.CookieDefaultExpireTime }

func (s *Store) SetCookieDefaultExpireTime(v int64) { s.values.CookieDefaultExpireTime = v }

func (s *Store) CookieDefaultPath() string { return s.values.CookieDefaultPath }

func (s *Store) SetCookieDefaultPath(v string) { s.values.CookieDefaultPath = v }

func (s *Store) CookieDefaultSubDomain() string { return s.values.CookieDefaultSubDomain }

func (s *Store) SetCookieDefaultSubDomain(v string) { s.values.CookieDefaultSubDomain = v }

func (s *Store) CookieDefaultSSL() bool { return s.values.CookieDefaultSSL }

func (s *Store) SetCookieDefaultSSL(v bool) { s.values.CookieDefaultSSL = v }

func (s *Store) CookieDefaultHTTP() bool { return s.values.CookieDefaultHTTP }

func (s *Store) SetCookieDefaultHTTP(v bool) { s.values.CookieDefaultHTTP = v }

// CookieDefaultRemoveTime is either a number of seconds or, when set from
// an expression, a unix timestamp.
func (s *Store) CookieDefaultRemoveTime() int64 { return s.values.CookieDefaultRemoveTime }

// SetCookieDefaultRemoveTime stores seconds as is.
func (s *Store) SetCookieDefaultRemoveTime(seconds int64) {
	s.values.CookieDefaultRemoveTime = seconds
}

// SetCookieDefaultRemoveTimeExpr resolves expr ("tomorrow", "+1 hour", ...)
// against the current wall clock and stores the resulting unix timestamp.
// Calling it twice at different times stores different values.
func (s *Store) SetCookieDefaultRemoveTimeExpr(expr string) error {
	ts, err := timeexpr.Unix(expr, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnparseableTime, err)
	}
	s.values.CookieDefaultRemoveTime = ts
	return nil
}
