// Package guest models the client-held anonymous identity. The server
// never mints or verifies guest ids; it trusts the x-guest-id header
// as-is for the duration of a request. Provider is for API clients
// (and the test suite) standing in for the browser, which generates
// one random id per runtime and reuses it on every call.
package guest

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// HeaderName is the request header carrying the client-generated guest
// identifier.
const HeaderName = "x-guest-id"

// Provider owns a single lazily generated guest id. It is a
// session-scoped value with one owner, not process-global state; zero
// value is ready to use and safe for concurrent callers.
type Provider struct {
	once sync.Once
	id   string
}

// ID returns the cached guest id, generating it on first call. The id
// is a random UUID, so it cannot collide with the user id space.
func (p *Provider) ID() string {
	p.once.Do(func() {
		p.id = uuid.NewString()
	})
	return p.id
}

// Apply stamps the guest header onto an outgoing request.
func (p *Provider) Apply(req *http.Request) {
	req.Header.Set(HeaderName, p.ID())
}
