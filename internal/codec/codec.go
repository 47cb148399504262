// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec defines the serialization adapter between an application
// state type and the structured payload exchanged with the shadow store.
//
// [Codec] is the single per-application extension point of the
// synchronization engine. [JSON] is the default implementation and covers any
// state type with encoding/json struct tags.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/models"
)

// ErrMalformedPayload is returned (wrapped) by decoders when the payload
// cannot be converted into the target type.
var ErrMalformedPayload = errors.New("malformed payload")

// Codec converts an application state value to and from a structured
// payload.
//
// Encode must succeed for every value the application produces. Decode must
// fail with an error, never panic, on malformed input.
type Codec[T any] interface {
	Decode(payload []byte) (T, error)
	Encode(value T) ([]byte, error)
}

// JSON is a [Codec] backed by encoding/json.
type JSON[T any] struct{}

// NewJSON returns the JSON codec for T.
func NewJSON[T any]() JSON[T] {
	return JSON[T]{}
}

// Decode implements [Codec].
func (JSON[T]) Decode(payload []byte) (T, error) {
	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		return value, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return value, nil
}

// Encode implements [Codec].
func (JSON[T]) Encode(value T) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("error encoding state: %w", err)
	}
	return payload, nil
}

// ParseDocument decodes raw JSON into a [models.Document]. Numbers are kept as
// [json.Number] so integer values survive a round trip unchanged.
func ParseDocument(payload []byte) (models.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return doc, nil
}

// Section extracts a nested document by key. It reports false when the key
// is missing or does not hold an object.
func Section(doc models.Document, key string) (models.Document, bool) {
	section, ok := doc[key].(map[string]any)
	return section, ok
}

// ToDocument encodes value with c and parses the result into a document.
func ToDocument[T any](c Codec[T], value T) (models.Document, error) {
	payload, err := c.Encode(value)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("encoded state is not a document: %w", err)
	}
	return doc, nil
}

// FromDocument marshals doc and decodes it with c.
func FromDocument[T any](c Codec[T], doc models.Document) (T, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return c.Decode(payload)
}
