package httpclient

import (
	"net/http"

	"github.com/ternarybob/attachtext/internal/common"
)

// NewRemoteClient creates the client used for the attachment service.
// Credentials are applied per request by the fetcher, not by the client.
func NewRemoteClient(remote common.RemoteConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10

	return &http.Client{
		Transport: transport,
		Timeout:   remote.TimeoutDuration(),
	}
}
