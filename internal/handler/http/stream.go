// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
)

// stream upgrades to a WebSocket and pushes desired-state frames to the
// device: one full twin first, then a partial frame per desired patch.
// The server pings every pingInterval; the device is expected to answer.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	deviceID, _ := utils.GetDeviceIDFromContext(r.Context())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	frames, err := h.services.ShadowService.Subscribe(ctx, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.stream").Msg("error subscribing to twin")
		writeError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Err(err).Str("func", "*Handler.stream").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Info().Str("func", "*Handler.stream").Msg("twin stream opened")

	readDeadline := 2 * h.pingInterval
	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	// the device never sends data frames; reading drives control frames and
	// detects the peer going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			log.Info().Str("func", "*Handler.stream").Msg("twin stream closed")
			return
		case frame, ok := <-frames:
			if !ok {
				log.Warn().Str("func", "*Handler.stream").Msg("twin subscription ended")
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber too slow"),
					time.Now().Add(time.Second))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(frame); err != nil {
				log.Err(err).Str("func", "*Handler.stream").Msg("error writing frame")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteTimeout)); err != nil {
				log.Err(err).Str("func", "*Handler.stream").Msg("error writing ping")
				return
			}
		}
	}
}
