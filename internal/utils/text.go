package utils

import "strings"

// Truncate clamps display names in reports. Blank input gets a placeholder.
func Truncate(s string, maxLength int) string {
	defaultString := "Unknown"

	if strings.ReplaceAll(s, " ", "") == "" {
		return defaultString
	}

	if len(s) <= maxLength {
		return s
	}

	trunc := (s)[:maxLength]
	return trunc
}
