package utils_test

import (
	"csrfdemo/utils"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "Remote address with port",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "IPv6 remote address",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "Remote address without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "Forwarded header wins",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "198.51.100.4",
			want:       "198.51.100.4",
		},
		{
			name:       "First forwarded hop",
			remoteAddr: "10.0.0.1:80",
			forwarded:  " 198.51.100.4 , 10.0.0.2",
			want:       "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := utils.GetIP(req); got != tt.want {
				t.Errorf("GetIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetUserAgent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "walkthrough/1.0")
	if got := utils.GetUserAgent(req); got != "walkthrough/1.0" {
		t.Errorf("GetUserAgent() = %q, want %q", got, "walkthrough/1.0")
	}
}
