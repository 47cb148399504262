package transport

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// tokenSource issues device tokens signed with the device key and reuses
// them until they are close to expiry.
type tokenSource struct {
	mu sync.Mutex

	issuer   string
	deviceID string
	key      string
	duration time.Duration

	token models.Token
}

func (s *tokenSource) get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.SignedString != "" && s.token.ExpiresAt != nil &&
		time.Until(s.token.ExpiresAt.Time) > s.duration/10 {
		return s.token.SignedString, nil
	}

	token, err := utils.GenerateJWTToken(s.issuer, s.deviceID, s.duration, s.key)
	if err != nil {
		return "", err
	}
	s.token = token
	return token.SignedString, nil
}
