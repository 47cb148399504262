// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mergepatch implements JSON merge-patch application over
// [models.Document] values.
//
// For every key of the patch: a nil value deletes the key from the target, a
// nested document is merged recursively, and any other value replaces the
// target value. Keys absent from the patch are left untouched.
package mergepatch

import (
	"reflect"

	"github.com/MKhiriev/go-shadow-sync/models"
)

// Apply merges patch into a copy of target and returns the result. Neither
// argument is modified. A nil target is treated as an empty document.
func Apply(target, patch models.Document) models.Document {
	result := Clone(target)
	if result == nil {
		result = make(models.Document, len(patch))
	}
	merge(result, patch)
	return result
}

func merge(target, patch models.Document) {
	for key, value := range patch {
		if value == nil {
			delete(target, key)
			continue
		}

		patchObj, isObj := value.(map[string]any)
		if !isObj {
			target[key] = cloneValue(value)
			continue
		}

		targetObj, ok := target[key].(map[string]any)
		if !ok {
			// replacing a scalar with an object still strips nulls from the patch
			targetObj = make(map[string]any, len(patchObj))
		}
		merge(targetObj, patchObj)
		target[key] = targetObj
	}
}

// Clone returns a deep copy of doc.
func Clone(doc models.Document) models.Document {
	if doc == nil {
		return nil
	}
	out := make(models.Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Diff returns the merge patch that turns from into to: Apply(from,
// Diff(from, to)) is equal to to.
func Diff(from, to models.Document) models.Document {
	patch := make(models.Document)
	for key := range from {
		if _, ok := to[key]; !ok {
			patch[key] = nil
		}
	}

	for key, toValue := range to {
		fromValue, ok := from[key]
		if !ok {
			patch[key] = cloneValue(toValue)
			continue
		}

		fromObj, fromIsObj := fromValue.(map[string]any)
		toObj, toIsObj := toValue.(map[string]any)
		if fromIsObj && toIsObj {
			if nested := Diff(fromObj, toObj); len(nested) > 0 {
				patch[key] = nested
			}
			continue
		}

		if !reflect.DeepEqual(fromValue, toValue) {
			patch[key] = cloneValue(toValue)
		}
	}

	return patch
}
