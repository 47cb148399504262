package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shadow-sync/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatusCode(resp.StatusCode(), resp.Body())
}

func mapStatusCode(code int, rawBody []byte) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(rawBody))

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}

// statusReason maps a session failure to the reason reported to the status
// handler.
func statusReason(err error) models.StatusReason {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return models.ReasonBadCredential
	case errors.Is(err, ErrForbidden):
		return models.ReasonDeviceDisabled
	case errors.Is(err, context.Canceled):
		return models.ReasonClosed
	case isNetworkError(err):
		return models.ReasonNoNetwork
	default:
		return models.ReasonCommunicationError
	}
}

// permanent reports whether retrying err cannot succeed without operator
// action.
func permanent(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// deliveryOutcome classifies the result of a message submission. parent is
// the transport lifetime context, op the per-message timeout context.
func deliveryOutcome(parent, op context.Context, code int, err error) models.DeliveryOutcome {
	switch {
	case parent.Err() != nil:
		return models.DeliveryDestroyed
	case errors.Is(op.Err(), context.DeadlineExceeded):
		return models.DeliveryTimeout
	case err != nil:
		return models.DeliveryError
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return models.DeliveryTimeout
	case mapStatusCode(code, nil) != nil:
		return models.DeliveryError
	default:
		return models.DeliveryOK
	}
}

func isNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
