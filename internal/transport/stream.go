package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-shadow-sync/models"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"
)

// streamReadTimeout bounds the silence tolerated on the twin stream. The
// shadow store pings well within it.
const streamReadTimeout = 75 * time.Second

// stream keeps the desired-state websocket open until the transport is
// closed, reconnecting with the configured retry policy.
func (t *httpTransport) stream() error {
	for {
		conn, err := t.connectStream(t.ctx)
		if err != nil {
			if t.ctx.Err() != nil {
				return nil
			}
			if !permanent(err) {
				t.notifyStatus(models.ConnectionUnauthenticated, models.ReasonRetryExpired)
			}
			t.logger.Error().Err(err).Msg("twin stream stopped")
			return nil
		}

		t.notifyStatus(models.ConnectionAuthenticated, models.ReasonConnectionOK)

		err = t.readFrames(conn)
		if t.ctx.Err() != nil {
			return nil
		}
		t.logger.Warn().Err(err).Msg("twin stream interrupted")
		t.notifyStatus(models.ConnectionUnauthenticated, models.ReasonCommunicationError)
	}
}

func (t *httpTransport) connectStream(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn

	err := retry.Do(ctx, t.retryPolicy().backoff(), func(ctx context.Context) error {
		c, err := t.dialStream(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			t.notifyStatus(models.ConnectionUnauthenticated, statusReason(err))
			if permanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (t *httpTransport) dialStream(ctx context.Context) (*websocket.Conn, error) {
	token, err := t.tokens.get()
	if err != nil {
		return nil, fmt.Errorf("device token: %w", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: t.cfg.RequestTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, t.wsURL, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			if mapped := mapStatusCode(resp.StatusCode, nil); mapped != nil {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("twin stream dial: %w", err)
	}
	return conn, nil
}

// readFrames dispatches frames to the patch handler until the connection
// fails or the transport is closed.
func (t *httpTransport) readFrames(conn *websocket.Conn) error {
	stop := context.AfterFunc(t.ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))

		var frame models.PatchFrame
		if err = json.Unmarshal(data, &frame); err != nil {
			t.logger.Warn().Err(err).Msg("malformed twin frame skipped")
			continue
		}
		kind, ok := frame.UpdateKind()
		if !ok {
			t.logger.Warn().Str("kind", frame.Kind).Msg("unknown twin frame skipped")
			continue
		}

		if fn := t.patchHandler(); fn != nil {
			fn(kind, frame.Payload)
		}
	}
}
