package models

// ConnectionStatus is the authentication state of the device session as seen
// by the transport.
type ConnectionStatus int

const (
	ConnectionUnauthenticated ConnectionStatus = iota
	ConnectionAuthenticated
)

// String implements fmt.Stringer.
func (s ConnectionStatus) String() string {
	if s == ConnectionAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// StatusReason explains the most recent [ConnectionStatus] transition.
type StatusReason int

const (
	ReasonConnectionOK StatusReason = iota
	ReasonExpiredToken
	ReasonDeviceDisabled
	ReasonBadCredential
	ReasonRetryExpired
	ReasonNoNetwork
	ReasonCommunicationError
	ReasonClosed
)

var statusReasonNames = map[StatusReason]string{
	ReasonConnectionOK:       "connection_ok",
	ReasonExpiredToken:       "expired_token",
	ReasonDeviceDisabled:     "device_disabled",
	ReasonBadCredential:      "bad_credential",
	ReasonRetryExpired:       "retry_expired",
	ReasonNoNetwork:          "no_network",
	ReasonCommunicationError: "communication_error",
	ReasonClosed:             "closed",
}

// String implements fmt.Stringer.
func (r StatusReason) String() string {
	if name, ok := statusReasonNames[r]; ok {
		return name
	}
	return "unknown"
}
