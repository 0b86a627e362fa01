package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Keys as they appear in the config file.
const (
	KeyLogAPIIssues            = "logApiIssues"
	KeyAPILogFile              = "apiLogFile"
	KeySessionName             = "sessionName"
	KeySessionDefaultNamespace = "sessionDefaultNamespace"
	KeyCookieDefaultExpireTime = "cookieDefaultExpireTime"
	KeyCookieDefaultPath       = "cookieDefaultPath"
	KeyCookieDefaultSubDomain  = "cookieDefaultSubDomain"
	KeyCookieDefaultSSL        = "cookieDefaultSsl"
	KeyCookieDefaultHTTP       = "cookieDefaultHttp"
	KeyCookieDefaultRemoveTime = "cookieDefaultRemoveTime"
)

// Values is the complete set of settings held by a Store.
type Values struct {
	LogAPIIssues            bool   `json:"logApiIssues"`
	APILogFile              string `json:"apiLogFile"`
	SessionName             string `json:"sessionName"`
	SessionDefaultNamespace string `json:"sessionDefaultNamespace"`
	CookieDefaultExpireTime int64  `json:"cookieDefaultExpireTime"` // seconds
	CookieDefaultPath       string `json:"cookieDefaultPath"`
	CookieDefaultSubDomain  string `json:"cookieDefaultSubDomain"`
	CookieDefaultSSL        bool   `json:"cookieDefaultSsl"`
	CookieDefaultHTTP       bool   `json:"cookieDefaultHttp"`
	CookieDefaultRemoveTime int64  `json:"cookieDefaultRemoveTime"` // seconds or unix timestamp
}

// field binds one file key to its slot in Values. The table below is the
// single source of truth for Export, Import, Get and Set.
type field struct {
	key string
	get func(v *Values) any
	set func(v *Values, raw any) error
}

var fields = []field{
	{
		key: KeyLogAPIIssues,
		get: func(v *Values) any { return v.LogAPIIssues },
		set: func(v *Values, raw any) (err error) { v.LogAPIIssues, err = asBool(raw); return },
	},
	{
		key: KeyAPILogFile,
		get: func(v *Values) any { return v.APILogFile },
		set: func(v *Values, raw any) (err error) { v.APILogFile, err = asString(raw); return },
	},
	{
		key: KeySessionName,
		get: func(v *Values) any { return v.SessionName },
		set: func(v *Values, raw any) (err error) { v.SessionName, err = asString(raw); return },
	},
	{
		key: KeySessionDefaultNamespace,
		get: func(v *Values) any { return v.SessionDefaultNamespace },
		set: func(v *Values, raw any) (err error) { v.SessionDefaultNamespace, err = asString(raw); return },
	},
	{
		key: KeyCookieDefaultExpireTime,
		get: func(v *Values) any { return v.CookieDefaultExpireTime },
		set: func(v *Values, raw any) (err error) { v.CookieDefaultExpireTime, err = asInt64(raw); return },
	},
	{
		key: KeyCookieDefaultPath,
		get: func(v *Values) any { return v.CookieDefaultPath },
		set: func(v *Values, raw any) (err error) { v.CookieDefaultPath, err = asString(raw); return },
	},
	{
		key: KeyCookieDefaultSubDomain,
		get: func(v *Values) any { return v.CookieDefaultSubDomain },
		set: func(v *Values, raw any) (err error) { v.CookieDefaultSubDomain, err = asString(raw); return },
	},
	{
		key: KeyCookieDefaultSSL,
		get: func(v *Values) any { return v.CookieDefaultSSL },
		set: func(v *Values, raw any) (err error) { v.CookieDefaultSSL, err = asBool(raw); return },
	},
	{
		key: KeyCookieDefaultHTTP,
		get: func(v *Values) any { return v.CookieDefaultHTTP },
		set: func(v *Values, raw any) (err error) { v.CookieDefaultHTTP, err = asBool(raw); return },
	},
	{
		key: KeyCookieDefaultRemoveTime,
		get: func(v *Values) any { return v.CookieDefaultRemoveTime },
		set: func(v *Values, raw any) (err error) { v.CookieDefaultRemoveTime, err = asInt64(raw); return },
	},
}

// Keys returns every config key in file order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

func lookupField(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

func asBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", raw)
	}
}

func asString(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", raw)
	}
	return s, nil
}

// asInt64 accepts every shape an integer can arrive in: Go integers from
// Export, json.Number from the file decoder, float64 from a plain
// json.Unmarshal and decimal strings written by older tooling.
func asInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %s", v)
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", raw)
	}
}

func uintToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer %d out of range", v)
	}
	return int64(v), nil
}

func floatToInt64(v float64) (int64, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("expected integer, got %v", v)
	}
	return int64(v), nil
}
