package lastfm

import (
	"context"

	"scrobbler/feed"
)

// User is a handle on one user.
type User struct {
	Name    string
	URL     string
	Picture string

	client *Client
}

// SimilarUser is a user annotated with taste similarity to the user it
// was compared against. Produced only by the neighbours feed.
type SimilarUser struct {
	User
	Match     float64
	RelatedTo *User
}

var (
	userTopTracks  = feedSpec{postfix: "toptracks.xml", recordKey: "track", sortKey: "playcount"}
	userTopArtists = feedSpec{postfix: "topartists.xml", recordKey: "artist", sortKey: "playcount"}
	userTopTags    = feedSpec{postfix: "toptags.xml", recordKey: "tag", sortKey: "count"}
	userNeighbours = feedSpec{postfix: "neighbours.xml", recordKey: "user", sortKey: "match", list: true}
	userFriends    = feedSpec{postfix: "friends.xml", recordKey: "user", list: true}
)

func (u *User) ResourceURL() string {
	return resourceURL(u.client.cfg.BaseURL, "user", u.Name)
}

// TopTracks fetches the user's most played tracks. Each record carries
// its own artist sub-record; one without it fails the fetch.
func (u *User) TopTracks(ctx context.Context) ([]*Track, error) {
	return fetchFeed(ctx, u.client, u.ResourceURL(), userTopTracks, nil, u.client.trackMapper(nil))
}

func (u *User) TopArtists(ctx context.Context) ([]*Artist, error) {
	return fetchFeed(ctx, u.client, u.ResourceURL(), userTopArtists, nil, u.client.artistMapper())
}

func (u *User) TopTags(ctx context.Context) ([]*Tag, error) {
	return fetchFeed(ctx, u.client, u.ResourceURL(), userTopTags, nil, u.client.tagMapper())
}

// Neighbours fetches the users with the closest taste. The leading self
// record refreshes u before being discarded; records below the match
// threshold are dropped.
func (u *User) Neighbours(ctx context.Context) ([]*SimilarUser, error) {
	return fetchFeed(ctx, u.client, u.ResourceURL(), userNeighbours, u.refreshFromHeader, u.mapNeighbour)
}

// Friends fetches the user's friends list. Friend records carry no
// match field and arrive in service order.
func (u *User) Friends(ctx context.Context) ([]*User, error) {
	return fetchFeed(ctx, u.client, u.ResourceURL(), userFriends, u.refreshFromHeader, u.client.userMapper())
}

func (u *User) refreshFromHeader(rec feed.Record) {
	u.applyRecord(rec)
}

func (u *User) applyRecord(rec feed.Record) {
	setIfEmpty(&u.URL, recString(rec, "url"))
	setIfEmpty(&u.Picture, recString(rec, "image", "picture"))
}

func (c *Client) userMapper() func(string, feed.Record) (*User, error) {
	return func(key string, rec feed.Record) (*User, error) {
		name := key
		if name == "" {
			name = recString(rec, "username", "name", "content")
		}
		if name == "" {
			return nil, &MappingError{Entity: "user", Reason: "record has no username"}
		}
		u := &User{Name: name, client: c}
		u.applyRecord(rec)
		return u, nil
	}
}

func (u *User) mapNeighbour(key string, rec feed.Record) (*SimilarUser, error) {
	base, err := u.client.userMapper()(key, rec)
	if err != nil {
		return nil, err
	}
	s := &SimilarUser{User: *base, RelatedTo: u}
	if match, ok := recFloat(rec, "match"); ok {
		s.Match = match
	}
	return s, nil
}
