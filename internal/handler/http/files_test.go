package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/internal/store"
	"github.com/MKhiriev/go-shadow-sync/models"
)

func TestPutFile(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		h, m := newMockHandler(t)
		m.files.EXPECT().
			Store(deviceCtx(), testDeviceID, "log.txt", []byte("hello"), "sig").
			Return("/uploads/thermostat-01/log.txt", nil)

		rr := doRequest(t, h.Init(), http.MethodPut, "/api/files/log.txt", "hello",
			map[string]string{models.HeaderContentSignature: "sig"})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"name":"log.txt","size":5}`, rr.Body.String())
	})

	t.Run("bad signature", func(t *testing.T) {
		h, m := newMockHandler(t)
		m.files.EXPECT().Store(gomock.Any(), testDeviceID, "log.txt", gomock.Any(), "").Return("", service.ErrInvalidSignature)

		rr := doRequest(t, h.Init(), http.MethodPut, "/api/files/log.txt", "hello", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad name", func(t *testing.T) {
		h, m := newMockHandler(t)
		m.files.EXPECT().Store(gomock.Any(), testDeviceID, "..", gomock.Any(), gomock.Any()).Return("", store.ErrInvalidFileName)

		rr := doRequest(t, h.Init(), http.MethodPut, "/api/files/..", "hello", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReadBody_Limit(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("0123456789"))
	rr := httptest.NewRecorder()

	_, err := readBody(rr, req, 4)
	assert.ErrorIs(t, err, errBodyTooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFromError(err))

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("0123"))
	body, err := readBody(httptest.NewRecorder(), req, 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(body))
}
