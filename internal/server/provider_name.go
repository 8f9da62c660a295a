package server

import "strings"

// normalizeProviderName lower-cases the configured provider so selection and
// metric/log labels agree.
func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// providerLabel is the name attached to provider logs, defaulting to statsapi.
func providerLabel(raw string) string {
	switch name := normalizeProviderName(raw); name {
	case providerFixture:
		return name
	default:
		return providerStatsAPI
	}
}
