package lastfm

import (
	"context"

	"scrobbler/feed"
)

// Tag is a handle on one tag.
type Tag struct {
	Name string
	URL  string

	client *Client
}

var (
	tagTopTracks  = feedSpec{postfix: "toptracks.xml", recordKey: "track", sortKey: "count"}
	tagTopArtists = feedSpec{postfix: "topartists.xml", recordKey: "artist", sortKey: "count"}
)

func (g *Tag) ResourceURL() string {
	return resourceURL(g.client.cfg.BaseURL, "tag", g.Name)
}

// TopTracks fetches the tag's most tagged tracks. Track records in this
// feed must carry their own artist sub-record; one without it fails the
// fetch.
func (g *Tag) TopTracks(ctx context.Context) ([]*Track, error) {
	return fetchFeed(ctx, g.client, g.ResourceURL(), tagTopTracks, nil, g.client.trackMapper(nil))
}

func (g *Tag) TopArtists(ctx context.Context) ([]*Artist, error) {
	return fetchFeed(ctx, g.client, g.ResourceURL(), tagTopArtists, nil, g.client.artistMapper())
}

// TopTags fails immediately: the service has no tag-of-tag feed.
func (g *Tag) TopTags(ctx context.Context) ([]*Tag, error) {
	return nil, &UnsupportedError{Entity: "tag", Relation: "toptags"}
}

func (c *Client) tagMapper() func(string, feed.Record) (*Tag, error) {
	return func(key string, rec feed.Record) (*Tag, error) {
		if key == "" {
			key = recString(rec, "name", "content")
		}
		if key == "" {
			return nil, &MappingError{Entity: "tag", Reason: "record has no name"}
		}
		g := &Tag{Name: key, client: c}
		setIfEmpty(&g.URL, recString(rec, "url"))
		return g, nil
	}
}
