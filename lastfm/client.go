package lastfm

import (
	"scrobbler/config"
	"scrobbler/feed"
)

// Client hands out entity handles and owns the collaborators every
// fetch goes through. Constructors never touch the network; they fail
// only when the required identity is missing.
type Client struct {
	cfg       *config.Config
	transport Transport
	decoder   Decoder
}

func New(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.New()
	}
	return &Client{
		cfg:       cfg,
		transport: feed.NewClient(cfg.RequestTimeout, cfg.UserAgent),
		decoder:   feed.NewDecoder(),
	}
}

// NewWithCollaborators swaps in custom transport or decoder
// implementations. Pass nil to keep the default for either.
func NewWithCollaborators(cfg *config.Config, transport Transport, decoder Decoder) *Client {
	c := New(cfg)
	if transport != nil {
		c.transport = transport
	}
	if decoder != nil {
		c.decoder = decoder
	}
	return c
}

func (c *Client) Artist(name string) (*Artist, error) {
	if name == "" {
		return nil, &ConstructionError{Entity: "artist", Field: "name"}
	}
	return &Artist{Name: name, client: c}, nil
}

// ArtistFromRecord builds an artist handle from a decoded feed record.
// The name may arrive as a "name" field or as bare element text under
// "content".
func (c *Client) ArtistFromRecord(rec feed.Record) (*Artist, error) {
	name := recString(rec, "name", "content")
	if name == "" {
		return nil, &ConstructionError{Entity: "artist", Field: "name"}
	}
	a := &Artist{Name: name, client: c}
	a.applyRecord(rec, "picture", "image")
	return a, nil
}

func (c *Client) Track(artistName, title string) (*Track, error) {
	if artistName == "" {
		return nil, &ConstructionError{Entity: "track", Field: "artist"}
	}
	artist, err := c.Artist(artistName)
	if err != nil {
		return nil, err
	}
	return c.TrackOf(artist, title)
}

// TrackOf builds a track handle owned by an existing artist handle.
func (c *Client) TrackOf(artist *Artist, title string) (*Track, error) {
	if artist == nil || artist.Name == "" {
		return nil, &ConstructionError{Entity: "track", Field: "artist"}
	}
	if title == "" {
		return nil, &ConstructionError{Entity: "track", Field: "name"}
	}
	return &Track{Artist: artist, Name: title, client: c}, nil
}

func (c *Client) Tag(name string) (*Tag, error) {
	if name == "" {
		return nil, &ConstructionError{Entity: "tag", Field: "name"}
	}
	return &Tag{Name: name, client: c}, nil
}

func (c *Client) TagFromRecord(rec feed.Record) (*Tag, error) {
	name := recString(rec, "name", "content")
	if name == "" {
		return nil, &ConstructionError{Entity: "tag", Field: "name"}
	}
	g := &Tag{Name: name, client: c}
	setIfEmpty(&g.URL, recString(rec, "url"))
	return g, nil
}

func (c *Client) User(name string) (*User, error) {
	if name == "" {
		return nil, &ConstructionError{Entity: "user", Field: "name"}
	}
	return &User{Name: name, client: c}, nil
}

// UserFromRecord accepts the "username" key some feeds use in place of
// "name".
func (c *Client) UserFromRecord(rec feed.Record) (*User, error) {
	name := recString(rec, "username", "name", "content")
	if name == "" {
		return nil, &ConstructionError{Entity: "user", Field: "name"}
	}
	u := &User{Name: name, client: c}
	u.applyRecord(rec)
	return u, nil
}
