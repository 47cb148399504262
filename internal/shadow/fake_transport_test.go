package shadow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/internal/transport"
	"github.com/MKhiriev/go-shadow-sync/models"
	"github.com/stretchr/testify/require"
)

// deviceState is the application state used throughout the tests.
type deviceState struct {
	Mode   string `json:"mode"`
	Target int    `json:"target,omitempty"`
}

type reportCall struct {
	payload []byte
	fn      transport.ReportHandler
}

type messageCall struct {
	msg transport.Message
	fn  transport.DeliveryHandler
}

type uploadCall struct {
	name     string
	contents []byte
	fn       transport.UploadHandler
}

// fakeTransport records submissions and lets tests complete them by hand.
type fakeTransport struct {
	mu sync.Mutex

	policy   transport.RetryPolicy
	statusFn transport.ConnectionStatusHandler
	patchFn  transport.PatchHandler

	stateCalls []transport.StateHandler
	reports    []reportCall
	messages   []messageCall
	uploads    []uploadCall

	// submitErr is returned by every Request/Submit call while set.
	submitErr error
	// messageErr, if set, decides the result of the n-th (1-based)
	// SubmitMessage call.
	messageErr func(n int) error

	closed bool
}

func (f *fakeTransport) SetRetryPolicy(policy transport.RetryPolicy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.policy = policy
	return nil
}

func (f *fakeTransport) SetConnectionStatusHandler(fn transport.ConnectionStatusHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusFn = fn
	return nil
}

func (f *fakeTransport) SetPatchHandler(fn transport.PatchHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patchFn = fn
	return nil
}

func (f *fakeTransport) RequestFullState(fn transport.StateHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.stateCalls = append(f.stateCalls, fn)
	return nil
}

func (f *fakeTransport) SubmitReportedState(payload []byte, fn transport.ReportHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.reports = append(f.reports, reportCall{payload: payload, fn: fn})
	return nil
}

func (f *fakeTransport) SubmitMessage(msg transport.Message, fn transport.DeliveryHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.messages = append(f.messages, messageCall{msg: msg, fn: fn})
	if f.messageErr != nil {
		if err := f.messageErr(len(f.messages)); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTransport) SubmitFileUpload(name string, contents []byte, fn transport.UploadHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.uploads = append(f.uploads, uploadCall{name: name, contents: contents, fn: fn})
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTransport) setSubmitErr(err error) {
	f.mu.Lock()
	f.submitErr = err
	f.mu.Unlock()
}

func (f *fakeTransport) patch(kind models.UpdateKind, payload string) {
	f.mu.Lock()
	fn := f.patchFn
	f.mu.Unlock()
	if fn != nil {
		fn(kind, []byte(payload))
	}
}

func (f *fakeTransport) status(status models.ConnectionStatus, reason models.StatusReason) {
	f.mu.Lock()
	fn := f.statusFn
	f.mu.Unlock()
	if fn != nil {
		fn(status, reason)
	}
}

func (f *fakeTransport) waitStateCall(t *testing.T, n int) transport.StateHandler {
	t.Helper()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.stateCalls) >= n
	}, 2*time.Second, time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateCalls[n-1]
}

func (f *fakeTransport) waitMessage(t *testing.T, n int) messageCall {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.messageCount() >= n
	}, 2*time.Second, time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messages[n-1]
}

func (f *fakeTransport) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeTransport) lastReport() reportCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reports[len(f.reports)-1]
}

func (f *fakeTransport) lastUpload() uploadCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploads[len(f.uploads)-1]
}

func (f *fakeTransport) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// connectFake opens a Connection over a fresh fakeTransport.
func connectFake(t *testing.T, opts ...Option[deviceState]) (*Connection[deviceState], *fakeTransport) {
	t.Helper()
	fake := &fakeTransport{}
	dialer := transport.DialerFunc(func(context.Context) (transport.Transport, error) {
		return fake, nil
	})

	conn, err := Connect[deviceState](context.Background(), dialer, codec.NewJSON[deviceState](), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, fake
}

// errorSink collects errors passed to the error callback.
type errorSink struct {
	mu   sync.Mutex
	errs []error
}

func (s *errorSink) add(err error) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *errorSink) all() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}
