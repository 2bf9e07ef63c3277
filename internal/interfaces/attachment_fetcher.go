// -----------------------------------------------------------------------
// Attachment Fetcher Interface - Retrieve attachment content from the remote service
// -----------------------------------------------------------------------

package interfaces

import "context"

// AttachmentFetcher retrieves the raw bytes of one attachment.
// Implementations make a single attempt and never cache.
type AttachmentFetcher interface {
	Fetch(ctx context.Context, headerID, attachmentID string) ([]byte, error)
}
