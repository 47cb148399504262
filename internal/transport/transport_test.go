package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const (
	testDeviceID = "thermostat-01"
	testKey      = "device-secret"
)

func initRuntime(t *testing.T) {
	t.Helper()
	require.NoError(t, Init())
	t.Cleanup(Deinit)
}

func endpoint(addr string) config.DeviceEndpoint {
	return config.DeviceEndpoint{
		Address:        addr,
		DeviceID:       testDeviceID,
		DeviceKey:      testKey,
		RequestTimeout: 2 * time.Second,
		MessageTimeout: 200 * time.Millisecond,
		MaxInFlight:    8,
		Workers:        2,
	}
}

func dialTest(t *testing.T, cfg config.DeviceEndpoint) Transport {
	t.Helper()
	tr, err := Dial(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

func requireAuthorized(t *testing.T, r *http.Request) {
	t.Helper()
	raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	require.NoError(t, err)
	token, err := utils.ValidateAndParseJWTToken(raw, testKey, config.DefaultTokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, testDeviceID, token.DeviceID)
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
	var zero T
	return zero
}

// ── runtime ───────────────────────────────────────────────────────────────────

func TestRuntime_ReferenceCounting(t *testing.T) {
	before := References()

	require.NoError(t, Init())
	require.NoError(t, Init())
	assert.Equal(t, before+2, References())

	Deinit()
	assert.Equal(t, before+1, References())
	Deinit()
	assert.Equal(t, before, References())
}

func TestDial_RequiresInit(t *testing.T) {
	if References() != 0 {
		t.Skip("runtime held by another test")
	}
	_, err := Dial(context.Background(), endpoint("http://localhost:1"), nil)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestDial_InvalidConfig(t *testing.T) {
	initRuntime(t)

	_, err := Dial(context.Background(), endpoint(""), nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Dial(context.Background(), endpoint("ftp://host"), nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	cfg := endpoint("http://localhost:1")
	cfg.DeviceKey = ""
	_, err = Dial(context.Background(), cfg, nil)
	assert.Error(t, err)
}

// ── request/response operations ───────────────────────────────────────────────

func TestRequestFullState(t *testing.T) {
	initRuntime(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/twin", r.URL.Path)
		requireAuthorized(t, r)
		_, _ = io.WriteString(w, `{"desired":{"mode":"on"},"reported":{}}`)
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))

	type result struct {
		payload []byte
		err     error
	}
	done := make(chan result, 1)
	require.NoError(t, tr.RequestFullState(func(payload []byte, err error) {
		done <- result{payload, err}
	}))

	res := waitFor(t, done)
	require.NoError(t, res.err)
	assert.JSONEq(t, `{"desired":{"mode":"on"},"reported":{}}`, string(res.payload))
}

func TestRequestFullState_Unauthorized(t *testing.T) {
	initRuntime(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))

	done := make(chan error, 1)
	require.NoError(t, tr.RequestFullState(func(_ []byte, err error) { done <- err }))
	assert.ErrorIs(t, waitFor(t, done), ErrUnauthorized)
}

func TestSubmitReportedState(t *testing.T) {
	initRuntime(t)

	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/twin/reported", r.URL.Path)
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))

	codes := make(chan int, 1)
	require.NoError(t, tr.SubmitReportedState([]byte(`{"mode":"on"}`), func(code int) { codes <- code }))
	assert.Equal(t, http.StatusNoContent, waitFor(t, codes))
	assert.JSONEq(t, `{"mode":"on"}`, string(got))

	err := tr.SubmitReportedState([]byte(`{`), func(int) {})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSubmitMessage_Outcomes(t *testing.T) {
	initRuntime(t)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    models.DeliveryOutcome
	}{
		{
			name: "accepted",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var env models.MessageEnvelope
				require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
				assert.Equal(t, "id-1", env.MessageID)
				assert.Equal(t, "temp=21", env.Body)
				assert.Equal(t, models.MessageContentType, env.ContentType)
				assert.Equal(t, "lab", env.Properties["room"])
				w.WriteHeader(http.StatusAccepted)
			},
			want: models.DeliveryOK,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: models.DeliveryError,
		},
		{
			name: "gateway timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusGatewayTimeout)
			},
			want: models.DeliveryTimeout,
		},
		{
			name: "slow consumer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
			want: models.DeliveryTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			tr := dialTest(t, endpoint(srv.URL))

			outcomes := make(chan models.DeliveryOutcome, 1)
			err := tr.SubmitMessage(Message{
				Body:            []byte("temp=21"),
				ContentType:     models.MessageContentType,
				ContentEncoding: models.MessageContentEncoding,
				Properties:      models.Properties{models.PropertyMessageID: "id-1", "room": "lab"},
			}, func(o models.DeliveryOutcome) { outcomes <- o })
			require.NoError(t, err)

			assert.Equal(t, tt.want, waitFor(t, outcomes))
		})
	}
}

func TestSubmitFileUpload(t *testing.T) {
	initRuntime(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/log.txt", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		if !utils.VerifyHash(body, testKey, r.Header.Get(models.HeaderContentSignature)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))

	outcomes := make(chan models.UploadOutcome, 1)
	require.NoError(t, tr.SubmitFileUpload("log.txt", []byte("boot ok"), func(o models.UploadOutcome) { outcomes <- o }))
	assert.Equal(t, models.UploadOK, waitFor(t, outcomes))

	err := tr.SubmitFileUpload("../etc/passwd", []byte("x"), func(models.UploadOutcome) {})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSubmit_NilHandler(t *testing.T) {
	initRuntime(t)
	tr := dialTest(t, endpoint("http://localhost:1"))

	assert.Error(t, tr.RequestFullState(nil))
	assert.Error(t, tr.SubmitReportedState([]byte(`{}`), nil))
	assert.Error(t, tr.SubmitMessage(Message{}, nil))
	assert.Error(t, tr.SubmitFileUpload("a", nil, nil))
}

// ── queueing and teardown ─────────────────────────────────────────────────────

func TestSubmit_QueueFull(t *testing.T) {
	initRuntime(t)

	entered := make(chan struct{}, 4)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(release)

	cfg := endpoint(srv.URL)
	cfg.Workers = 1
	cfg.MaxInFlight = 1
	cfg.MessageTimeout = 5 * time.Second
	tr := dialTest(t, cfg)

	noop := func(models.DeliveryOutcome) {}
	require.NoError(t, tr.SubmitMessage(Message{Body: []byte("1")}, noop))
	waitFor(t, entered)

	require.NoError(t, tr.SubmitMessage(Message{Body: []byte("2")}, noop))
	assert.ErrorIs(t, tr.SubmitMessage(Message{Body: []byte("3")}, noop), ErrQueueFull)
}

func TestClose_DestroysQueuedAndRejectsNew(t *testing.T) {
	initRuntime(t)

	entered := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := endpoint(srv.URL)
	cfg.Workers = 1
	cfg.MessageTimeout = 5 * time.Second
	tr, err := Dial(context.Background(), cfg, nil)
	require.NoError(t, err)

	var mu sync.Mutex
	var outcomes []models.DeliveryOutcome
	record := func(o models.DeliveryOutcome) {
		mu.Lock()
		outcomes = append(outcomes, o)
		mu.Unlock()
	}

	require.NoError(t, tr.SubmitMessage(Message{Body: []byte("in flight")}, record))
	waitFor(t, entered)
	require.NoError(t, tr.SubmitMessage(Message{Body: []byte("queued")}, record))

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	mu.Lock()
	assert.Equal(t, []models.DeliveryOutcome{models.DeliveryDestroyed, models.DeliveryDestroyed}, outcomes)
	mu.Unlock()

	assert.ErrorIs(t, tr.SubmitMessage(Message{}, record), ErrClosed)
	assert.ErrorIs(t, tr.SetPatchHandler(nil), ErrClosed)
}

// ── desired-state stream ──────────────────────────────────────────────────────

func TestStream_DeliversFramesAndStatus(t *testing.T) {
	initRuntime(t)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/twin/stream", r.URL.Path)
		requireAuthorized(t, r)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		_ = conn.WriteMessage(websocket.TextMessage, []byte("not json"))
		_ = conn.WriteJSON(models.PatchFrame{Kind: "bogus"})
		_ = conn.WriteJSON(models.PatchFrame{Kind: models.FrameFull, Payload: json.RawMessage(`{"desired":{"mode":"off"}}`)})
		_ = conn.WriteJSON(models.PatchFrame{Kind: models.FramePartial, Payload: json.RawMessage(`{"mode":"on"}`)})
		<-r.Context().Done()
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))

	statuses := make(chan models.StatusReason, 8)
	require.NoError(t, tr.SetConnectionStatusHandler(func(status models.ConnectionStatus, reason models.StatusReason) {
		if status == models.ConnectionAuthenticated {
			statuses <- reason
		}
	}))

	type frame struct {
		kind    models.UpdateKind
		payload string
	}
	frames := make(chan frame, 4)
	require.NoError(t, tr.SetPatchHandler(func(kind models.UpdateKind, payload []byte) {
		frames <- frame{kind, string(payload)}
	}))

	assert.Equal(t, models.ReasonConnectionOK, waitFor(t, statuses))

	first := waitFor(t, frames)
	assert.Equal(t, models.UpdateFull, first.kind)
	assert.JSONEq(t, `{"desired":{"mode":"off"}}`, first.payload)

	second := waitFor(t, frames)
	assert.Equal(t, models.UpdatePartial, second.kind)
	assert.JSONEq(t, `{"mode":"on"}`, second.payload)
}

func TestStream_BadCredentialStops(t *testing.T) {
	initRuntime(t)

	var mu sync.Mutex
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))

	reasons := make(chan models.StatusReason, 8)
	require.NoError(t, tr.SetConnectionStatusHandler(func(_ models.ConnectionStatus, reason models.StatusReason) {
		reasons <- reason
	}))
	require.NoError(t, tr.SetPatchHandler(func(models.UpdateKind, []byte) {}))

	assert.Equal(t, models.ReasonBadCredential, waitFor(t, reasons))

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, attempts)
	mu.Unlock()
}

func TestStream_RetryExpired(t *testing.T) {
	initRuntime(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tr := dialTest(t, endpoint(srv.URL))
	require.NoError(t, tr.SetRetryPolicy(RetryPolicy{Kind: RetryNone}))

	reasons := make(chan models.StatusReason, 8)
	require.NoError(t, tr.SetConnectionStatusHandler(func(_ models.ConnectionStatus, reason models.StatusReason) {
		reasons <- reason
	}))
	require.NoError(t, tr.SetPatchHandler(func(models.UpdateKind, []byte) {}))

	assert.Equal(t, models.ReasonCommunicationError, waitFor(t, reasons))
	assert.Equal(t, models.ReasonRetryExpired, waitFor(t, reasons))
}

func TestRetryPolicy_Backoff(t *testing.T) {
	_, stop := RetryPolicy{Kind: RetryNone}.backoff().Next()
	assert.True(t, stop)

	b := RetryPolicy{Kind: RetryExponentialJitter, Base: 10 * time.Millisecond, Max: 40 * time.Millisecond}.backoff()
	for range 5 {
		d, stop := b.Next()
		require.False(t, stop)
		assert.LessOrEqual(t, d, 40*time.Millisecond)
	}
}

func TestStreamURL(t *testing.T) {
	assert.Equal(t, "ws://host:8080/api/twin/stream", streamURL("http://host:8080"))
	assert.Equal(t, "wss://host/api/twin/stream", streamURL("https://host"))
}
