package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

type messageAck struct {
	MessageID string `json:"message_id"`
	Duplicate bool   `json:"duplicate"`
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())

	var envelope models.MessageEnvelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&envelope); err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if envelope.MessageID == "" {
		envelope.MessageID = envelope.Properties[models.PropertyMessageID]
	}

	duplicate, err := h.services.MessageService.Accept(r.Context(), deviceID, envelope)
	if err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("error accepting message")
		writeError(w, err)
		return
	}

	status := http.StatusAccepted
	if duplicate {
		status = http.StatusOK
	}
	if _, err = utils.WriteJSON(w, messageAck{MessageID: envelope.MessageID, Duplicate: duplicate}, status); err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("error writing ack")
	}
}
