package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationIssue describes a problem with a config key.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// CheckKeys reports keys missing from raw and keys raw carries that the
// store does not know. Returns nil if the key set matches exactly.
func CheckKeys(raw map[string]any) []ValidationIssue {
	var issues []ValidationIssue

	for _, f := range fields {
		if _, ok := raw[f.key]; !ok {
			issues = append(issues, ValidationIssue{
				Path:    f.key,
				Message: "required key is missing",
			})
		}
	}

	var unknown []string
	for key := range raw {
		if _, ok := lookupField(key); !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		issues = append(issues, ValidationIssue{
			Path:    key,
			Message: "unknown key",
		})
	}

	return issues
}

func joinIssues(issues []ValidationIssue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}
