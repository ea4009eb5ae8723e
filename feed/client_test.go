package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "scrobbler-test" {
			t.Errorf("User-Agent = %q; want scrobbler-test", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(`<toptags></toptags>`))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "scrobbler-test")
	body, err := c.Get(context.Background(), srv.URL+"/tag/rock/toptags.xml")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if body != `<toptags></toptags>` {
		t.Errorf("Get() = %q", body)
	}
}

func TestClientGetBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such artist", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "scrobbler-test")
	_, err := c.Get(context.Background(), srv.URL+"/artist/nobody/similar.xml")
	if err == nil {
		t.Fatal("Get() error = nil; want *FetchError")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Get() error = %T; want *FetchError", err)
	}
	if fe.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d; want 404", fe.StatusCode)
	}
	if fe.URL == "" {
		t.Error("FetchError.URL is empty")
	}
}

func TestClientGetEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("  \n"))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "scrobbler-test")
	_, err := c.Get(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Get() error = %v; want *FetchError for empty body", err)
	}
}

func TestClientGetConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(2*time.Second, "scrobbler-test")
	_, err := c.Get(context.Background(), url)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Get() error = %v; want *FetchError", err)
	}
}
