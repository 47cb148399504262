package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"mode":"eco"}`)))
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"mode":"eco"}`, string(plain))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte("payload"))))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "payload", rr.Body.String())
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithGZip_PassThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	rr := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}
