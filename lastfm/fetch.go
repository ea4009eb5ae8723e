package lastfm

import (
	"context"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"scrobbler/feed"
)

// Transport performs the blocking GET for one feed URL.
type Transport interface {
	Get(ctx context.Context, url string) (string, error)
}

// Decoder converts a raw feed body into a generic Record tree. folded
// selects keyed-collection decoding for the top-* feed family.
type Decoder interface {
	Decode(text string, folded bool) (feed.Record, error)
}

// fetchFeed is the one algorithm behind every relationship accessor:
// derive the feed URL from the entity's resource URL, fetch, decode,
// locate the records under fs.recordKey, map each one, and rank the
// results.
//
// Keyed-collection feeds decode to a Record keyed by natural name; an
// absent or differently-shaped collection is an empty result, not an
// error. List feeds decode to a sequence whose first element describes
// the queried entity itself; that header is handed to selfUpdate and
// discarded, and remaining records with a match below the configured
// threshold are dropped before mapping.
//
// A mapper failure aborts the whole fetch. Results are stable-sorted
// descending by fs.sortKey, falling back to "count"; records carrying
// neither keep their incoming order and sink below ranked ones.
func fetchFeed[T any](ctx context.Context, c *Client, resource string, fs feedSpec, selfUpdate func(feed.Record), mapRec func(key string, rec feed.Record) (T, error)) ([]T, error) {
	feedURL := resource + "/" + fs.postfix

	body, err := c.transport.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	root, err := c.decoder.Decode(body, !fs.list)
	if err != nil {
		return nil, err
	}

	type item struct {
		rec feed.Record
		val T
	}
	items := []item{}

	if fs.list {
		switch raw := root[fs.recordKey].(type) {
		case []any:
			if len(raw) > 0 {
				if hdr, ok := raw[0].(feed.Record); ok && selfUpdate != nil {
					selfUpdate(hdr)
				}
				raw = raw[1:]
			}
			for _, el := range raw {
				rec, ok := el.(feed.Record)
				if !ok {
					log.Tracef("Skipping scalar entry in %s feed", fs.recordKey)
					continue
				}
				if match, ok := recFloat(rec, "match"); ok && match < c.cfg.FilterThreshold {
					continue
				}
				v, err := mapRec("", rec)
				if err != nil {
					return nil, err
				}
				items = append(items, item{rec: rec, val: v})
			}
		case feed.Record:
			// Only the self header came back; the feed has no records.
			if selfUpdate != nil {
				selfUpdate(raw)
			}
		}
	} else {
		coll, ok := root[fs.recordKey].(feed.Record)
		if !ok {
			return []T{}, nil
		}
		if name, ok := coll["name"].(string); ok {
			// A lone record is not folded by the decoder; its name field
			// doubles as the collection key.
			v, err := mapRec(name, coll)
			if err != nil {
				return nil, err
			}
			items = append(items, item{rec: coll, val: v})
		} else {
			keys := make([]string, 0, len(coll))
			for k := range coll {
				keys = append(keys, k)
			}
			// Map order is random; anchor it before ranking so equal
			// sort values always come out the same way.
			sort.Strings(keys)
			for _, k := range keys {
				rec, ok := coll[k].(feed.Record)
				if !ok {
					continue
				}
				v, err := mapRec(k, rec)
				if err != nil {
					return nil, err
				}
				items = append(items, item{rec: rec, val: v})
			}
		}
	}

	if fs.sortKey != "" {
		sort.SliceStable(items, func(i, j int) bool {
			return sortRank(items[i].rec, fs.sortKey) > sortRank(items[j].rec, fs.sortKey)
		})
	}

	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.val
	}
	log.Debugf("Fetched %d %s records from %s", len(out), fs.recordKey, feedURL)
	return out, nil
}

func sortRank(rec feed.Record, primary string) float64 {
	if f, ok := recFloat(rec, primary); ok {
		return f
	}
	if f, ok := recFloat(rec, fallbackSortKey); ok {
		return f
	}
	return math.Inf(-1)
}
