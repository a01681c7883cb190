package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/transactions/01HZXW", "/api/v1/transactions/:id"},
		{"/api/v1/transactions/", "/api/v1/transactions/"},
		{"/api/v1/dashboard", "/api/v1/dashboard"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
