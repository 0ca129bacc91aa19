// Package common contains constants, sentinel errors and header helpers
// shared by the admin client and the development backend.
package common

import "strings"

const (
	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader correlates a client request with backend logs.
	RequestIDHeader = "X-Request-ID"

	bearerPrefix = "Bearer "
)

// BearerValue formats a token for the Authorization header.
func BearerValue(token string) string {
	return bearerPrefix + token
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
