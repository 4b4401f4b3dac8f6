package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a free-form product field. It decodes from any JSON scalar and
// keeps its string form, so "price": 19.99 and "price": "19.99" are equal.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return err
		}
		*t = Text(compact.String())
	default:
		// numbers and booleans keep their literal form
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// ProductID is the timestamp-derived identifier. Numeric strings are read as
// numbers; any other id decodes to zero so the entry still renders.
type ProductID int64

func (id *ProductID) UnmarshalJSON(data []byte) error {
	*id = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(s)
	}
	if n, err := strconv.ParseFloat(string(data), 64); err == nil {
		*id = ProductID(n)
	}
	return nil
}

// Product is one catalog entry. Field order matches the published JSON layout.
type Product struct {
	ID          ProductID `json:"id"`
	Title       Text      `json:"title"`
	Image       Text      `json:"image"`
	Price       Text      `json:"price"`
	Description Text      `json:"description"`
	Category    Text      `json:"category"`
	Link        Text      `json:"link"`
}

// DecodeProducts parses a product collection. A valid document that is not an
// array yields an empty list, array elements that are not objects become
// zero-value products, and malformed JSON is an error.
func DecodeProducts(data []byte) ([]Product, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid product JSON: %w", err)
	}
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 || doc[0] != '[' {
		return []Product{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(doc, &elems); err != nil {
		return nil, fmt.Errorf("invalid product array: %w", err)
	}

	products := make([]Product, 0, len(elems))
	for i, elem := range elems {
		var p Product
		if trimmed := bytes.TrimSpace(elem); len(trimmed) > 0 && trimmed[0] == '{' {
			if err := json.Unmarshal(trimmed, &p); err != nil {
				return nil, fmt.Errorf("product at index %d: %w", i, err)
			}
		}
		products = append(products, p)
	}
	return products, nil
}

// AppendProduct adds p to the end of the product document and returns the
// result as a two-space indented JSON array, without HTML escaping and without
// a trailing newline, along with its element count. Existing entries are kept
// byte for byte apart from indentation, so unknown fields and numeric types
// survive. A document that is not an array is treated as empty.
func AppendProduct(doc []byte, p Product) ([]byte, int, error) {
	var elems []json.RawMessage
	if trimmed := bytes.TrimSpace(doc); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, 0, fmt.Errorf("invalid product array: %w", err)
		}
	}

	var entry bytes.Buffer
	enc := json.NewEncoder(&entry)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, 0, fmt.Errorf("encoding product: %w", err)
	}
	elems = append(elems, bytes.TrimRight(entry.Bytes(), "\n"))

	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, elem := range elems {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.Write(elem)
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, 0, fmt.Errorf("indenting product document: %w", err)
	}
	return out.Bytes(), len(elems), nil
}
