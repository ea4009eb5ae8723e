package feed

import "fmt"

// FetchError reports a transport failure for one feed URL: a network
// error, a non-2xx status, or an empty body. It is never retried.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError reports a malformed feed payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding feed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
