package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

type fileReceipt struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func (h *Handler) putFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())
	name := chi.URLParam(r, "name")

	contents, err := readBody(w, r, maxFileBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putFile").Msg("failed to read request body")
		writeError(w, err)
		return
	}

	signature := r.Header.Get(models.HeaderContentSignature)
	if _, err = h.services.FileService.Store(r.Context(), deviceID, name, contents, signature); err != nil {
		log.Err(err).Str("func", "*Handler.putFile").Str("name", name).Msg("error storing file")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, fileReceipt{Name: name, Size: len(contents)}, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.putFile").Msg("error writing receipt")
	}
}

var errBodyTooLarge = errors.New("request body too large")

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, errBodyTooLarge
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
