package config

import (
	"testing"
	"time"
)

func TestGetBaseURL(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"empty", "", DefaultBaseURL},
		{"custom", "http://localhost:8080/1.0", "http://localhost:8080/1.0"},
		{"trailing_slash", "http://localhost:8080/1.0/", "http://localhost:8080/1.0"},
		{"double_slash", "http://localhost:8080/1.0//", "http://localhost:8080/1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LASTFM_BASE_URL", tt.env)
			if got := getBaseURL(); got != tt.want {
				t.Errorf("getBaseURL() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestGetFilterThreshold(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want float64
	}{
		{"empty", "", 1},
		{"invalid", "abc", 1},
		{"negative", "-5", 1},
		{"zero", "0", 0},
		{"mid", "25.5", 25.5},
		{"max", "100", 100},
		{"over", "150", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LASTFM_FILTER_THRESHOLD", tt.env)
			if got := getFilterThreshold(); got != tt.want {
				t.Errorf("getFilterThreshold() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestGetRequestTimeout(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want time.Duration
	}{
		{"empty", "", 10 * time.Second},
		{"invalid", "foo", 10 * time.Second},
		{"zero", "0", 10 * time.Second},
		{"negative", "-3", 10 * time.Second},
		{"valid", "30", 30 * time.Second},
		{"over", "500", 120 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LASTFM_HTTP_TIMEOUT_SECONDS", tt.env)
			if got := getRequestTimeout(); got != tt.want {
				t.Errorf("getRequestTimeout() = %v; want %v", got, tt.want)
			}
		})
	}
}
