package transport

import (
	"net/http"
	"sync"
	"time"
)

// shared is the process-wide state shared by every HTTP transport: one
// connection pool, created on the first Init and torn down on the last
// Deinit.
var shared struct {
	mu   sync.Mutex
	refs int
	rt   *http.Transport
}

// Init acquires a reference on the process-wide transport runtime. Every
// successful Init must be paired with exactly one [Deinit].
func Init() error {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.refs == 0 {
		shared.rt = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        64,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			ForceAttemptHTTP2:   true,
		}
	}
	shared.refs++
	return nil
}

// Deinit releases a reference acquired with [Init]. The shared pool is
// closed when the last reference is released. Extra calls are ignored.
func Deinit() {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.refs == 0 {
		return
	}
	shared.refs--
	if shared.refs == 0 {
		shared.rt.CloseIdleConnections()
		shared.rt = nil
	}
}

// References returns the number of outstanding [Init] references.
func References() int {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return shared.refs
}

func sharedRoundTripper() (http.RoundTripper, error) {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.rt == nil {
		return nil, ErrNotInitialized
	}
	return shared.rt, nil
}
