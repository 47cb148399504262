package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoDeviceID:              http.StatusUnauthorized,
	service.ErrInvalidSignature:        http.StatusBadRequest,
	service.ErrEmptyMessageBody:        http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrInvalidFileName:  http.StatusBadRequest,
	store.ErrSnapshotNotFound: http.StatusNotFound,

	ErrNotAnObject:  http.StatusBadRequest,
	errBodyTooLarge: http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
