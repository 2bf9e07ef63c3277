package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRetrieval matches every RetrievalError via errors.Is.
var ErrRetrieval = errors.New("fetcher: retrieval failed")

// RetrievalError reports a transport failure or a non-2xx response from the remote service.
type RetrievalError struct {
	URL        string
	StatusCode int   // 0 for transport failures
	Cause      error // nil for status failures
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		kind := "Client Error"
		if e.StatusCode >= 500 {
			kind = "Server Error"
		}
		return fmt.Sprintf("%d %s: %s for url: %s", e.StatusCode, kind, http.StatusText(e.StatusCode), e.URL)
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "retrieval failed for url: " + e.URL
}

func (e *RetrievalError) Unwrap() error {
	return e.Cause
}

func (e *RetrievalError) Is(target error) bool {
	return target == ErrRetrieval
}
