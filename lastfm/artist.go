package lastfm

import (
	"context"

	"scrobbler/feed"
)

// Artist is a handle on one artist. A handle built by the facade
// carries only its name; fetches fill in the remaining fields and never
// overwrite one that is already set.
type Artist struct {
	Name       string
	MBID       string
	Streamable string
	Picture    string

	client *Client
}

// SimilarArtist is an artist annotated with its similarity to the
// artist it was compared against. Produced only by the similar feed.
type SimilarArtist struct {
	Artist
	Match     float64
	RelatedTo *Artist
}

var (
	artistTopTracks = feedSpec{postfix: "toptracks.xml", recordKey: "track", sortKey: "reach"}
	artistTopTags   = feedSpec{postfix: "toptags.xml", recordKey: "tag", sortKey: "count"}
	artistSimilar   = feedSpec{postfix: "similar.xml", recordKey: "artist", sortKey: "match", list: true}
)

// ResourceURL is the root every feed URL for this artist is derived
// from.
func (a *Artist) ResourceURL() string {
	return resourceURL(a.client.cfg.BaseURL, "artist", a.Name)
}

// TopTracks fetches the artist's most known tracks, widest reach first.
// Records in this feed carry no artist of their own, so every track
// reuses a.
func (a *Artist) TopTracks(ctx context.Context) ([]*Track, error) {
	return fetchFeed(ctx, a.client, a.ResourceURL(), artistTopTracks, nil, a.client.trackMapper(a))
}

func (a *Artist) TopTags(ctx context.Context) ([]*Tag, error) {
	return fetchFeed(ctx, a.client, a.ResourceURL(), artistTopTags, nil, a.client.tagMapper())
}

// Similar fetches the similar-artists feed. The leading self record
// refreshes a's own fields before being discarded, and records below
// the configured match threshold are dropped.
func (a *Artist) Similar(ctx context.Context) ([]*SimilarArtist, error) {
	return fetchFeed(ctx, a.client, a.ResourceURL(), artistSimilar, a.refreshFromHeader, a.mapSimilar)
}

func (a *Artist) refreshFromHeader(rec feed.Record) {
	a.applyRecord(rec, "image", "picture")
}

// applyRecord merges record fields into the handle, first write wins.
// The picture travels under "image" in list feeds and "picture" in
// keyed feeds, so callers name the source keys for their feed family.
func (a *Artist) applyRecord(rec feed.Record, pictureKeys ...string) {
	setIfEmpty(&a.MBID, recString(rec, "mbid"))
	setIfEmpty(&a.Streamable, recString(rec, "streamable"))
	setIfEmpty(&a.Picture, recString(rec, pictureKeys...))
}

func (a *Artist) mapSimilar(_ string, rec feed.Record) (*SimilarArtist, error) {
	name := recString(rec, "name", "content")
	if name == "" {
		return nil, &MappingError{Entity: "artist", Reason: "record has no name"}
	}
	s := &SimilarArtist{
		Artist:    Artist{Name: name, client: a.client},
		RelatedTo: a,
	}
	if match, ok := recFloat(rec, "match"); ok {
		s.Match = match
	}
	s.applyRecord(rec, "image")
	return s, nil
}

// artistMapper maps keyed topartists records (tag and user feeds).
func (c *Client) artistMapper() func(string, feed.Record) (*Artist, error) {
	return func(key string, rec feed.Record) (*Artist, error) {
		if key == "" {
			key = recString(rec, "name", "content")
		}
		if key == "" {
			return nil, &MappingError{Entity: "artist", Reason: "record has no name"}
		}
		a := &Artist{Name: key, client: c}
		a.applyRecord(rec, "picture")
		return a, nil
	}
}
