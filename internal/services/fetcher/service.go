// -----------------------------------------------------------------------
// Remote Document Fetcher - Retrieve attachment bytes from the ERP enclosure endpoint
// -----------------------------------------------------------------------

package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/attachtext/internal/common"
	"github.com/ternarybob/attachtext/internal/interfaces"
)

// Service fetches attachments with the delegated remote credentials.
// One attempt per call: no retries, no caching.
type Service struct {
	client  *http.Client
	remote  common.RemoteConfig
	limiter *rate.Limiter
	logger  arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.AttachmentFetcher = (*Service)(nil)

// NewService creates a fetcher for the configured remote service.
func NewService(client *http.Client, remote common.RemoteConfig, logger arbor.ILogger) *Service {
	s := &Service{
		client: client,
		remote: remote,
		logger: logger,
	}
	if interval := remote.RateLimitDuration(); interval > 0 {
		s.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return s
}

// Fetch downloads the attachment content for headerID/attachmentID.
func (s *Service) Fetch(ctx context.Context, headerID, attachmentID string) ([]byte, error) {
	targetURL, err := common.BuildAttachmentURL(s.remote.BaseURL, s.remote.ResourcePath, headerID, attachmentID)
	if err != nil {
		return nil, &RetrievalError{Cause: err}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &RetrievalError{URL: targetURL, Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, &RetrievalError{URL: targetURL, Cause: err}
	}
	req.SetBasicAuth(s.remote.Username, s.remote.Password)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("header_id", headerID).
			Str("attachment_id", attachmentID).
			Msg("Attachment request failed")
		return nil, &RetrievalError{URL: targetURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		s.logger.Warn().
			Int("status", resp.StatusCode).
			Str("header_id", headerID).
			Str("attachment_id", attachmentID).
			Msg("Attachment service returned error status")
		return nil, &RetrievalError{URL: targetURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RetrievalError{URL: targetURL, Cause: fmt.Errorf("failed to read attachment body: %w", err)}
	}

	s.logger.Debug().
		Str("header_id", headerID).
		Str("attachment_id", attachmentID).
		Int("bytes", len(data)).
		Dur("duration", time.Since(start)).
		Msg("Attachment fetched")

	return data, nil
}
