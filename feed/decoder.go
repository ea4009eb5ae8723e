package feed

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Record is one decoded XML element. Attribute and child-element names
// become keys; values are string leaves, nested Records, or []any for
// repeated siblings. A text node alongside attributes or children is
// kept under the "content" pseudo-key.
type Record map[string]any

// Decoder turns raw feed XML into a Record tree.
//
// When folding is requested, a group of two or more repeated sibling
// records that each carry a scalar KeyField is collapsed into a Record
// keyed by that field's value, with the field itself removed. This is
// the "keyed-collection" shape of the top-tracks/tags/artists feeds;
// list feeds (similar, neighbours, friends) are decoded without folding
// so positional order, including the leading self record, survives.
type Decoder struct {
	KeyField string
}

func NewDecoder() *Decoder {
	return &Decoder{KeyField: "name"}
}

// Decode parses text and returns the root element's Record.
func (d *Decoder) Decode(text string, folded bool) (Record, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &DecodeError{Err: errors.New("document has no root element")}
		}
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		val, err := d.decodeElement(dec, start, folded)
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		if rec, ok := val.(Record); ok {
			return rec, nil
		}
		// Text-only root, e.g. an error page that still parsed.
		return Record{"content": val}, nil
	}
}

func (d *Decoder) decodeElement(dec *xml.Decoder, start xml.StartElement, folded bool) (any, error) {
	rec := Record{}
	for _, attr := range start.Attr {
		rec[attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	children := map[string][]any{}
	var order []string

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := d.decodeElement(dec, t, folded)
			if err != nil {
				return nil, err
			}
			name := t.Name.Local
			if _, seen := children[name]; !seen {
				order = append(order, name)
			}
			children[name] = append(children[name], child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			content := strings.TrimSpace(text.String())
			if len(rec) == 0 && len(children) == 0 {
				return content, nil
			}
			if content != "" {
				rec["content"] = content
			}
			for _, name := range order {
				vals := children[name]
				if len(vals) == 1 {
					rec[name] = vals[0]
					continue
				}
				if folded {
					if keyed, ok := d.fold(vals); ok {
						rec[name] = keyed
						continue
					}
				}
				rec[name] = vals
			}
			return rec, nil
		}
	}
}

// fold collapses repeated records into a Record keyed by KeyField. All
// members must be Records with a scalar key, otherwise the group is
// left as a sequence.
func (d *Decoder) fold(vals []any) (Record, bool) {
	out := Record{}
	for _, v := range vals {
		member, ok := v.(Record)
		if !ok {
			return nil, false
		}
		key, ok := member[d.KeyField].(string)
		if !ok || key == "" {
			return nil, false
		}
		stripped := Record{}
		for k, fv := range member {
			if k != d.KeyField {
				stripped[k] = fv
			}
		}
		out[key] = stripped
	}
	return out, true
}
