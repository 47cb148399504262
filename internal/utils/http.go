package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data and writes it with statusCode and an
// application/json content type. HTML characters inside twin documents are
// written as is. It returns the number of body bytes written.
//
// Nothing is written to w except a 500 when encoding fails.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
