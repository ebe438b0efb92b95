// Package header holds the names of the HTTP headers read and written by
// the app, and helpers built on them.
package header

import (
	"net/http"
	"strings"
)

const (
	RequestID      = "X-Request-Id"
	ForwardedProto = "X-Forwarded-Proto"
	ForwardedHost  = "X-Forwarded-Host"
)

// Origin returns the scheme and host the client used to reach the app,
// e.g. "https://calc.example". configured wins when it is not empty.
func Origin(r *http.Request, configured string) string {
	if configured != "" {
		return strings.TrimSuffix(configured, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get(ForwardedProto); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := r.Host
	if fwd := r.Header.Get(ForwardedHost); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	return scheme + "://" + host
}
