// Package identity derives the per-client token used to enforce one vote per person.
package identity

import (
	"encoding/base64"
	"net"
	"net/http"
	"strings"
)

const (
	// Unknown is used when no address can be resolved. Every such client shares one identity.
	Unknown = "unknown"

	tokenLength = 32
)

// Hash returns the identity token for a raw client address.
// It is a truncated base64 encoding: deterministic and not plain text, but reversible.
func Hash(address string) string {
	if address == "" {
		address = Unknown
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(address))
	if len(encoded) > tokenLength {
		return encoded[:tokenLength]
	}
	return encoded
}

// ClientAddress resolves the client address of a request.
// Order: CF-Connecting-IP, the first X-Forwarded-For entry, the TCP peer, then Unknown.
func ClientAddress(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		if host != "" {
			return host
		}
	}

	return Unknown
}

// FromRequest resolves and hashes the client address.
func FromRequest(r *http.Request) string {
	return Hash(ClientAddress(r))
}
