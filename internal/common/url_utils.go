package common

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildAttachmentURL expands the resource path template for one attachment and joins it to the base URL.
// Identifiers are path-escaped so they cannot introduce extra segments.
func BuildAttachmentURL(baseURL, resourcePath, headerID, attachmentID string) (string, error) {
	if baseURL == "" {
		return "", fmt.Errorf("remote base URL is not configured")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	path := strings.NewReplacer(
		"{header_id}", url.PathEscape(headerID),
		"{attachment_id}", url.PathEscape(attachmentID),
	).Replace(resourcePath)

	return joinPath(baseURL, path), nil
}

// joinPath safely joins path segments, preventing duplicate slashes
func joinPath(segments ...string) string {
	result := ""
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if result == "" {
			result = seg
		} else if result[len(result)-1] == '/' {
			if seg[0] == '/' {
				result += seg[1:]
			} else {
				result += seg
			}
		} else {
			if seg[0] == '/' {
				result += seg
			} else {
				result += "/" + seg
			}
		}
	}
	return result
}
