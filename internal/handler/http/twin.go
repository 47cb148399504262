package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

func (h *Handler) getTwin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())

	twin, err := h.services.ShadowService.GetTwin(r.Context(), deviceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTwin").Msg("error getting twin")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, twin, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getTwin").Msg("error writing twin")
	}
}

func (h *Handler) patchDesired(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())

	patch, err := readDocument(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchDesired").Msg("invalid desired patch")
		writeError(w, err)
		return
	}

	desired, err := h.services.ShadowService.PatchDesired(r.Context(), deviceID, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchDesired").Msg("error patching desired state")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, desired, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.patchDesired").Msg("error writing desired state")
	}
}

func (h *Handler) putReported(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())

	reported, err := readDocument(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putReported").Msg("invalid reported state")
		writeError(w, err)
		return
	}

	if err = h.services.ShadowService.ReplaceReported(r.Context(), deviceID, reported); err != nil {
		log.Err(err).Str("func", "*Handler.putReported").Msg("error replacing reported state")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readDocument decodes a JSON object body of at most maxJSONBody bytes.
func readDocument(w http.ResponseWriter, r *http.Request) (models.Document, error) {
	body, err := readBody(w, r, maxJSONBody)
	if err != nil {
		return nil, err
	}

	doc, err := codec.ParseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnObject, err)
	}
	if doc == nil {
		return nil, ErrNotAnObject
	}
	return doc, nil
}
