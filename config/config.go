package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the settings shared by every feed request. It is built
// once and handed to the client; nothing in here mutates after New.
type Config struct {
	// BaseURL is the root of the web service, without a trailing slash.
	BaseURL string

	// FilterThreshold is the minimum similarity match (0-100) a list-feed
	// record needs to survive filtering.
	FilterThreshold float64

	// RequestTimeout bounds each feed request end to end.
	RequestTimeout time.Duration

	UserAgent string
}

const (
	// DefaultBaseURL is the documented root of the 1.0 web services.
	DefaultBaseURL = "http://ws.audioscrobbler.com/1.0"

	// DefaultFilterThreshold keeps any record with a positive match and
	// drops exact-zero similarity.
	DefaultFilterThreshold = 1.0

	DefaultUserAgent = "scrobbler-go"
)

func New() *Config {
	return &Config{
		BaseURL:         getBaseURL(),
		FilterThreshold: getFilterThreshold(),
		RequestTimeout:  getRequestTimeout(),
		UserAgent:       getUserAgent(),
	}
}

func getBaseURL() string {
	base := os.Getenv("LASTFM_BASE_URL")
	if base == "" {
		return DefaultBaseURL
	}
	// The URL builder appends "/segment/..." itself.
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base
}

func getFilterThreshold() float64 {
	thresholdStr := os.Getenv("LASTFM_FILTER_THRESHOLD")
	if thresholdStr == "" {
		return DefaultFilterThreshold
	}
	threshold, err := strconv.ParseFloat(thresholdStr, 64)
	if err != nil || threshold < 0 {
		return DefaultFilterThreshold
	}
	if threshold > 100 {
		return 100
	}
	return threshold
}

func getRequestTimeout() time.Duration {
	secondsStr := os.Getenv("LASTFM_HTTP_TIMEOUT_SECONDS")
	if secondsStr == "" {
		return 10 * time.Second
	}
	seconds, err := strconv.Atoi(secondsStr)
	if err != nil || seconds <= 0 {
		return 10 * time.Second
	}
	if seconds > 120 {
		seconds = 120
	}
	return time.Duration(seconds) * time.Second
}

func getUserAgent() string {
	if ua := os.Getenv("LASTFM_USER_AGENT"); ua != "" {
		return ua
	}
	return DefaultUserAgent
}
