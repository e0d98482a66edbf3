package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "fly header wins",
			headers: map[string]string{"Fly-Client-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			remote:  "10.0.0.1:52000",
			want:    "203.0.113.7",
		},
		{
			name:    "forwarded-for first hop",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2"},
			remote:  "10.0.0.1:52000",
			want:    "198.51.100.1",
		},
		{
			name:    "real-ip fallback",
			headers: map[string]string{"X-Real-IP": "192.0.2.9"},
			remote:  "10.0.0.1:52000",
			want:    "192.0.2.9",
		},
		{
			name:   "remote addr fallback",
			remote: "10.0.0.1:52000",
			want:   "10.0.0.1",
		},
		{
			name:    "garbage header skipped",
			headers: map[string]string{"X-Forwarded-For": "not-an-ip"},
			remote:  "10.0.0.1:52000",
			want:    "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/v1/scores", nil)
			req.RemoteAddr = tt.remote
			for header, value := range tt.headers {
				req.Header.Set(header, value)
			}

			if got := resolveClientIP(req); got != tt.want {
				t.Fatalf("resolveClientIP got=%q want=%q", got, tt.want)
			}
		})
	}
}
