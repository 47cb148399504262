// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

var errNilHandler = errors.New("nil completion handler")

type httpTransport struct {
	client *utils.HTTPClient
	cfg    config.DeviceEndpoint
	wsURL  string
	tokens *tokenSource

	ops    chan func(ctx context.Context)
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu        sync.RWMutex
	closed    bool
	streaming bool
	policy    RetryPolicy
	statusFn  ConnectionStatusHandler
	patchFn   PatchHandler

	closeOnce sync.Once

	logger *logger.Logger
}

// NewDialer returns a [Dialer] opening HTTP transports for cfg.
func NewDialer(cfg config.DeviceEndpoint, log *logger.Logger) Dialer {
	return DialerFunc(func(ctx context.Context) (Transport, error) {
		return Dial(ctx, cfg, log)
	})
}

// Dial constructs an HTTP implementation of [Transport].
//
// It normalises the shadow store address, builds a resty client on the
// process-wide connection pool and starts cfg.Workers callback goroutines.
// The desired-state stream is opened lazily, the first time a patch handler
// is installed.
//
// Returns [ErrNotInitialized] when called without a preceding [Init].
func Dial(ctx context.Context, cfg config.DeviceEndpoint, log *logger.Logger) (Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if cfg.DeviceID == "" || cfg.DeviceKey == "" {
		return nil, errors.New("device id and key are required")
	}

	rt, err := sharedRoundTripper()
	if err != nil {
		return nil, err
	}

	cfg = withEndpointDefaults(cfg)

	client := utils.NewHTTPClient(rt)
	client.SetBaseURL(baseURL)

	t := &httpTransport{
		client: client,
		cfg:    cfg,
		wsURL:  streamURL(baseURL),
		tokens: &tokenSource{
			issuer:   cfg.TokenIssuer,
			deviceID: cfg.DeviceID,
			key:      cfg.DeviceKey,
			duration: cfg.TokenDuration,
		},
		ops:    make(chan func(ctx context.Context), cfg.MaxInFlight),
		group:  &errgroup.Group{},
		policy: DefaultRetryPolicy(),
		logger: log.WithStr("device_id", cfg.DeviceID),
	}
	t.ctx, t.cancel = context.WithCancel(context.Background())

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		token, err := t.tokens.get()
		if err != nil {
			return fmt.Errorf("device token: %w", err)
		}
		r.SetAuthToken(token)
		return nil
	})

	for range cfg.Workers {
		t.group.Go(func() error {
			t.work()
			return nil
		})
	}

	return t, nil
}

func withEndpointDefaults(cfg config.DeviceEndpoint) config.DeviceEndpoint {
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = config.DefaultTokenIssuer
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = config.DefaultTokenDuration
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeout
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = config.DefaultMessageTimeout
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = config.DefaultMaxInFlight
	}
	if cfg.Workers <= 0 {
		cfg.Workers = config.DefaultWorkers
	}
	return cfg
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func streamURL(baseURL string) string {
	if rest, ok := strings.CutPrefix(baseURL, "https://"); ok {
		return "wss://" + rest + "/api/twin/stream"
	}
	return "ws://" + strings.TrimPrefix(baseURL, "http://") + "/api/twin/stream"
}

// SetRetryPolicy implements [Transport].
func (t *httpTransport) SetRetryPolicy(policy RetryPolicy) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	t.policy = policy
	return nil
}

// SetConnectionStatusHandler implements [Transport].
func (t *httpTransport) SetConnectionStatusHandler(fn ConnectionStatusHandler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	t.statusFn = fn
	return nil
}

// SetPatchHandler implements [Transport]. Installing the first non-nil
// handler opens the desired-state stream.
func (t *httpTransport) SetPatchHandler(fn PatchHandler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	t.patchFn = fn
	if fn != nil && !t.streaming {
		t.streaming = true
		t.group.Go(t.stream)
	}
	return nil
}

// RequestFullState implements [Transport]. It queues GET /api/twin.
func (t *httpTransport) RequestFullState(fn StateHandler) error {
	if fn == nil {
		return errNilHandler
	}

	return t.submit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
		defer cancel()

		resp, err := t.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			Get("/api/twin")
		if err != nil {
			fn(nil, fmt.Errorf("twin request: %w", err))
			return
		}
		if err = mapHTTPError(resp); err != nil {
			fn(nil, err)
			return
		}
		fn(resp.Body(), nil)
	})
}

// SubmitReportedState implements [Transport]. It queues
// PUT /api/twin/reported.
func (t *httpTransport) SubmitReportedState(payload []byte, fn ReportHandler) error {
	if fn == nil {
		return errNilHandler
	}
	if !json.Valid(payload) {
		return fmt.Errorf("%w: reported state is not valid json", ErrBadRequest)
	}

	return t.submit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
		defer cancel()

		resp, err := t.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Put("/api/twin/reported")
		if err != nil {
			t.logger.Debug().Err(err).Msg("reported state request failed")
			fn(0)
			return
		}
		fn(resp.StatusCode())
	})
}

// SubmitMessage implements [Transport]. It queues POST /api/messages with a
// [models.MessageEnvelope] body. A submission not answered within the
// message timeout completes with [models.DeliveryTimeout].
func (t *httpTransport) SubmitMessage(msg Message, fn DeliveryHandler) error {
	if fn == nil {
		return errNilHandler
	}

	envelope := models.MessageEnvelope{
		MessageID:       msg.Properties[models.PropertyMessageID],
		ContentType:     msg.ContentType,
		ContentEncoding: msg.ContentEncoding,
		Body:            string(msg.Body),
		Properties:      make(models.Properties, len(msg.Properties)),
	}
	for k, v := range msg.Properties {
		envelope.Properties[k] = v
	}

	return t.submit(func(ctx context.Context) {
		opCtx, cancel := context.WithTimeout(ctx, t.cfg.MessageTimeout)
		defer cancel()

		code := 0
		resp, err := t.client.R().
			SetContext(opCtx).
			SetHeader("Content-Type", "application/json").
			SetBody(envelope).
			Post("/api/messages")
		if err == nil {
			code = resp.StatusCode()
		}

		outcome := deliveryOutcome(ctx, opCtx, code, err)
		t.logger.Debug().
			Str("message_id", envelope.MessageID).
			Stringer("outcome", outcome).
			Msg("message delivery completed")
		fn(outcome)
	})
}

// SubmitFileUpload implements [Transport]. It queues PUT /api/files/{name}
// signed with the device key.
func (t *httpTransport) SubmitFileUpload(name string, contents []byte, fn UploadHandler) error {
	if fn == nil {
		return errNilHandler
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: invalid file name %q", ErrBadRequest, name)
	}

	signature := utils.HashString(contents, t.cfg.DeviceKey)

	return t.submit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
		defer cancel()

		resp, err := t.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/octet-stream").
			SetHeader(models.HeaderContentSignature, signature).
			SetPathParam("name", name).
			SetBody(contents).
			Put("/api/files/{name}")
		if err != nil {
			t.logger.Debug().Err(err).Str("file", name).Msg("file upload failed")
			fn(models.UploadError)
			return
		}
		if err = mapHTTPError(resp); err != nil {
			t.logger.Debug().Err(err).Str("file", name).Msg("file upload rejected")
			fn(models.UploadError)
			return
		}
		fn(models.UploadOK)
	})
}

// Close implements [Transport].
func (t *httpTransport) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()

		t.cancel()
		_ = t.group.Wait()

		// Operations still queued run against the canceled context so their
		// handlers observe a destroyed outcome.
		for drained := false; !drained; {
			select {
			case op := <-t.ops:
				op(t.ctx)
			default:
				drained = true
			}
		}

		t.notifyStatus(models.ConnectionUnauthenticated, models.ReasonClosed)
		t.logger.Debug().Msg("transport closed")
	})
	return nil
}

func (t *httpTransport) submit(op func(ctx context.Context)) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return ErrClosed
	}

	select {
	case t.ops <- op:
		return nil
	default:
		return ErrQueueFull
	}
}

func (t *httpTransport) work() {
	for {
		select {
		case <-t.ctx.Done():
			return
		case op := <-t.ops:
			op(t.ctx)
		}
	}
}

func (t *httpTransport) notifyStatus(status models.ConnectionStatus, reason models.StatusReason) {
	t.mu.RLock()
	fn := t.statusFn
	t.mu.RUnlock()

	t.logger.Debug().
		Stringer("status", status).
		Stringer("reason", reason).
		Msg("connection status changed")

	if fn != nil {
		fn(status, reason)
	}
}

func (t *httpTransport) retryPolicy() RetryPolicy {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.policy
}

func (t *httpTransport) patchHandler() PatchHandler {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.patchFn
}
