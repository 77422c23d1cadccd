package ecb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rateserve/fx_rates_app/internal/apperrors"
	"github.com/rateserve/fx_rates_app/internal/ecb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchDaily_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL)
	body, err := client.FetchDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(sampleFeed), body)
}

func TestClient_FetchDaily_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := ecb.NewClient(server.URL)
	body, err := client.FetchDaily(context.Background())
	require.Error(t, err)
	assert.Nil(t, body)

	var fetchErr *apperrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestClient_FetchDaily_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := ecb.NewClient(server.URL)
	body, err := client.FetchDaily(context.Background())
	require.Error(t, err)
	assert.Nil(t, body)

	var connErr *apperrors.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestClient_FetchDaily_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := ecb.NewClient(server.URL)
	_, err := client.FetchDaily(ctx)
	require.Error(t, err)

	var connErr *apperrors.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}
