package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "ipv4", address: "203.0.113.7", expected: "MjAzLjAuMTEzLjc="},
		{name: "empty", address: "", expected: "dW5rbm93bg=="},
		{name: "sentinel", address: Unknown, expected: "dW5rbm93bg=="},
		{name: "ipv6truncated", address: "2001:0db8:85a3:0000:0000:8a2e:0370:7334", expected: "MjAwMTowZGI4Ojg1YTM6MDAwMDowMDAw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hash(tt.address))
		})
	}
}

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash("198.51.100.1"), Hash("198.51.100.1"))
	assert.NotEqual(t, Hash("198.51.100.1"), Hash("198.51.100.2"))
	assert.NotContains(t, Hash("198.51.100.1"), "198.51.100.1")
	assert.LessOrEqual(t, len(Hash("2001:0db8:85a3:0000:0000:8a2e:0370:7334")), 32)
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "cloudflare",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:5555",
			expected:   "203.0.113.7",
		},
		{
			name:       "forwardedlist",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2"},
			remoteAddr: "10.0.0.1:5555",
			expected:   "198.51.100.1",
		},
		{
			name:       "peer",
			remoteAddr: "192.0.2.10:43210",
			expected:   "192.0.2.10",
		},
		{
			name:       "peerwithoutport",
			remoteAddr: "192.0.2.10",
			expected:   "192.0.2.10",
		},
		{
			name:     "unknown",
			expected: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/vote", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, ClientAddress(req))
		})
	}
}
