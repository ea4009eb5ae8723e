package lastfm

import (
	"context"

	"scrobbler/feed"
)

// Track is a handle on one track. Identity is the (artist, name) pair;
// the artist is always a resolved handle, never a bare string.
type Track struct {
	Artist     *Artist
	Name       string
	MBID       string
	URL        string
	Streamable string

	client *Client
}

var trackTopTags = feedSpec{postfix: "toptags.xml", recordKey: "tag", sortKey: "count"}

func (t *Track) ResourceURL() string {
	return resourceURL(t.client.cfg.BaseURL, "track", t.Artist.Name, t.Name)
}

func (t *Track) TopTags(ctx context.Context) ([]*Tag, error) {
	return fetchFeed(ctx, t.client, t.ResourceURL(), trackTopTags, nil, t.client.tagMapper())
}

// TopTracks fails immediately: the service has no track-of-track feed.
func (t *Track) TopTracks(ctx context.Context) ([]*Track, error) {
	return nil, &UnsupportedError{Entity: "track", Relation: "toptracks"}
}

// trackMapper resolves each record's artist: an embedded artist
// sub-record wins, otherwise the owning artist is reused. A record with
// neither cannot become a track and fails the whole fetch.
func (c *Client) trackMapper(owner *Artist) func(string, feed.Record) (*Track, error) {
	return func(key string, rec feed.Record) (*Track, error) {
		name := key
		if name == "" {
			name = recString(rec, "name", "title", "content")
		}
		if name == "" {
			return nil, &MappingError{Entity: "track", Reason: "record has no name"}
		}

		artist := owner
		switch sub := rec["artist"].(type) {
		case feed.Record:
			if artistName := recString(sub, "name", "content"); artistName != "" {
				artist = &Artist{Name: artistName, client: c}
				artist.applyRecord(sub, "picture", "image")
			}
		case string:
			if sub != "" {
				artist = &Artist{Name: sub, client: c}
			}
		}
		if artist == nil {
			return nil, &MappingError{Entity: "track", Key: name, Reason: "record has no artist and the requesting entity is not an artist"}
		}

		t := &Track{Artist: artist, Name: name, client: c}
		setIfEmpty(&t.MBID, recString(rec, "mbid"))
		setIfEmpty(&t.URL, recString(rec, "url"))
		setIfEmpty(&t.Streamable, recString(rec, "streamable"))
		return t, nil
	}
}
