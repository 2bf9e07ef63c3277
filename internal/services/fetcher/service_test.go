package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/common"
	"github.com/ternarybob/attachtext/internal/httpclient"
)

func newTestService(t *testing.T, baseURL string) *Service {
	t.Helper()
	remote := common.NewDefaultConfig().Remote
	remote.BaseURL = baseURL
	remote.Username = "erp-user"
	remote.Password = "erp-pass"
	return NewService(httpclient.NewRemoteClient(remote), remote, arbor.NewLogger())
}

func TestFetch_Success(t *testing.T) {
	var gotPath, gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		w.Write([]byte("%PDF-1.4 body"))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	data, err := svc.Fetch(context.Background(), "300000123", "42")

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(data))
	assert.Equal(t, "/fscmRestApi/resources/11.13.18.05/omSalesOrders/300000123/child/attachments/42/enclosure/FileContents", gotPath)
	assert.Equal(t, "erp-user", gotUser)
	assert.Equal(t, "erp-pass", gotPass)
}

func TestFetch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	data, err := svc.Fetch(context.Background(), "1", "2")

	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, ErrRetrieval))

	var retrievalErr *RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	assert.Equal(t, http.StatusNotFound, retrievalErr.StatusCode)
	assert.True(t, strings.HasPrefix(err.Error(), "404 Client Error: Not Found for url: "+srv.URL))
}

func TestFetch_ServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL).Fetch(context.Background(), "1", "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502 Server Error: Bad Gateway for url:")
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	_, err := newTestService(t, baseURL).Fetch(context.Background(), "1", "2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetrieval))

	var retrievalErr *RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	assert.Zero(t, retrievalErr.StatusCode)
	assert.NotNil(t, retrievalErr.Cause)
}

func TestFetch_EscapesIdentifiers(t *testing.T) {
	var gotRawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL).Fetch(context.Background(), "a/b", "c d")

	require.NoError(t, err)
	assert.Contains(t, gotRawPath, "/omSalesOrders/a%2Fb/child/attachments/c%20d/")
}

func TestFetch_MissingBaseURL(t *testing.T) {
	_, err := newTestService(t, "").Fetch(context.Background(), "1", "2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetrieval))
}

func TestFetch_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestService(t, srv.URL).Fetch(ctx, "1", "2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetrieval))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFetch_RateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	remote := common.NewDefaultConfig().Remote
	remote.BaseURL = srv.URL
	remote.RateLimit = "1h"
	svc := NewService(httpclient.NewRemoteClient(remote), remote, arbor.NewLogger())

	_, err := svc.Fetch(context.Background(), "1", "2")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = svc.Fetch(ctx, "1", "3")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetrieval))
}
