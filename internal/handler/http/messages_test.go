package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/models"
)

func TestPostMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mockServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "accepted",
			body: `{"message_id":"m-1","content_type":"application/json","content_encoding":"utf-8","body":"{\"t\":1}"}`,
			setup: func(m *mockServices) {
				m.messages.EXPECT().Accept(deviceCtx(), testDeviceID, gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `{"message_id":"m-1","duplicate":false}`,
		},
		{
			name: "duplicate",
			body: `{"message_id":"m-1","body":"x"}`,
			setup: func(m *mockServices) {
				m.messages.EXPECT().Accept(gomock.Any(), testDeviceID, gomock.Any()).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message_id":"m-1","duplicate":true}`,
		},
		{
			name: "id taken from properties",
			body: `{"body":"x","properties":{"message-id":"p-7"}}`,
			setup: func(m *mockServices) {
				m.messages.EXPECT().
					Accept(gomock.Any(), testDeviceID, models.MessageEnvelope{
						MessageID:  "p-7",
						Body:       "x",
						Properties: models.Properties{models.PropertyMessageID: "p-7"},
					}).
					Return(false, nil)
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `{"message_id":"p-7","duplicate":false}`,
		},
		{
			name:       "invalid json",
			body:       `{`,
			setup:      func(m *mockServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty body rejected",
			body: `{"message_id":"m-1"}`,
			setup: func(m *mockServices) {
				m.messages.EXPECT().Accept(gomock.Any(), testDeviceID, gomock.Any()).Return(false, service.ErrEmptyMessageBody)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockHandler(t)
			tt.setup(m)

			rr := doRequest(t, h.Init(), http.MethodPost, "/api/messages", tt.body, map[string]string{"Content-Type": "application/json"})
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
