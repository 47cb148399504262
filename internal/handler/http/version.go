package http

import (
	"net/http"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
)

// getServerVersion answers with the build info of the shadow store. It needs
// no device token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing build info")
	}
}
