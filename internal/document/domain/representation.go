package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Link is one hypermedia link target.
type Link struct {
	Href string `json:"href"`
}

// Envelope is the generic field set of a document's REST representation.
type Envelope struct {
	ID       uuid.UUID `json:"id"`
	Date     time.Time `json:"date"`
	Modified time.Time `json:"modified"`
	Slug     string    `json:"slug"`
	Status   Status    `json:"status"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Author   uuid.UUID `json:"author"`
}

// Representation is the outbound REST form of a document.
//
// It serializes as the envelope plus _links, unless a decoded document payload has been
// set, in which case it serializes as exactly that payload.
type Representation struct {
	Envelope Envelope
	Links    map[string][]Link
	Document json.RawMessage
}

// NewRepresentation builds the generic representation of doc.
func NewRepresentation(doc *Document, links map[string][]Link) *Representation {
	return &Representation{
		Envelope: Envelope{
			ID:       doc.ID,
			Date:     doc.CreatedAt,
			Modified: doc.UpdatedAt,
			Slug:     doc.Slug(),
			Status:   doc.Status,
			Type:     doc.Type,
			Title:    doc.Title,
			Content:  doc.Content,
			Author:   doc.AuthorID,
		},
		Links: links,
	}
}

// MarshalJSON implements json.Marshaler.
func (r *Representation) MarshalJSON() ([]byte, error) {
	if r.Document != nil {
		return r.Document, nil
	}

	type envelopeWithLinks struct {
		Envelope
		Links map[string][]Link `json:"_links,omitempty"`
	}
	return json.Marshal(envelopeWithLinks{Envelope: r.Envelope, Links: r.Links})
}

// Shape post-processes a representation of doc:
//
//  1. a non-empty body decoding to a non-empty structure replaces the payload entirely;
//  2. an empty, invalid, null or empty-structure body leaves the envelope untouched;
//  3. links are always removed.
func Shape(rep *Representation, doc *Document) {
	rep.Links = nil

	if payload, ok := DecodeContent(doc.Content); ok {
		rep.Document = payload
	}
}

// DecodeContent returns the compacted document held in content, and whether it counts as
// a non-empty structure. A top-level scalar counts as a one-element list, so `5` yields `[5]`.
// The literal body "0" counts as empty. Repeated object keys keep their first position and
// their last value.
func DecodeContent(content string) (json.RawMessage, bool) {
	if content == "0" {
		return nil, false
	}

	doc, ok := normalize(content)
	if !ok {
		return nil, false
	}

	switch doc[0] {
	case '{':
		if len(doc) == 2 {
			return nil, false
		}
	case '[':
		if len(doc) == 2 {
			return nil, false
		}
	case 'n':
		return nil, false
	default:
		return json.RawMessage(fmt.Sprintf("[%s]", doc)), true
	}

	return doc, true
}

// normalize compacts a valid UTF-8 JSON body and collapses repeated object keys.
func normalize(content string) (json.RawMessage, bool) {
	raw := bytes.TrimSpace([]byte(content))
	if len(raw) == 0 || !utf8.Valid(raw) || !json.Valid(raw) {
		return nil, false
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, false
	}

	doc, err := dedupeKeys(compact.Bytes())
	if err != nil {
		return nil, false
	}
	return doc, true
}

// dedupeKeys rewrites every object in the compact value raw so that a repeated key keeps
// its first position and its last value.
func dedupeKeys(raw json.RawMessage) (json.RawMessage, error) {
	switch raw[0] {
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		var keys []string
		values := make(map[string]json.RawMessage)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := tok.(string)

			var value json.RawMessage
			if err := dec.Decode(&value); err != nil {
				return nil, err
			}
			if value, err = dedupeKeys(value); err != nil {
				return nil, err
			}
			if _, seen := values[key]; !seen {
				keys = append(keys, key)
			}
			values[key] = value
		}

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			buf.Write(values[key])
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range items {
			item, err := dedupeKeys(item)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(item)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return raw, nil
	}
}

func writeKey(buf *bytes.Buffer, key string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// Wrapped is the consistent response shape: the identifier plus the decoded body,
// or null when the body does not hold a JSON value.
type Wrapped struct {
	ID       uuid.UUID       `json:"id"`
	Document json.RawMessage `json:"document"`
}

// Wrap builds the wrapped representation of doc. Any valid JSON body, including
// empty structures and scalars, is carried compacted.
func Wrap(doc *Document) *Wrapped {
	w := &Wrapped{ID: doc.ID, Document: json.RawMessage("null")}
	if payload, ok := normalize(doc.Content); ok {
		w.Document = payload
	}
	return w
}
