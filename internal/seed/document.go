package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Field struct {
	Key   string
	Value any
}

// Document is one fixture object with its keys in file order. Schedule rows
// depend on that order: it is the order people appear in the table.
type Document []Field

func (d Document) Get(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the value under key as text; missing and null read as "".
func (d Document) String(key string) string {
	v, _ := d.Get(key)
	return stringify(v)
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// DecodeDocuments reads a JSON array of objects.
func DecodeDocuments(r io.Reader) ([]Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	docs := make([]Document, 0)
	for dec.More() {
		doc, err := decodeDocument(dec)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}

	return docs, nil
}

func decodeDocument(dec *json.Decoder) (Document, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	doc := make(Document, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		doc = append(doc, Field{Key: strings.TrimSpace(key), Value: value})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return doc, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
