package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoBody struct {
	Text string `json:"text"`
}

func TestDoRequest_SendsJSONAndAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc", r.Header.Get("X-Request-ID"))

		var in echoBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(echoBody{Text: "echo: " + in.Text})
	}))
	defer srv.Close()

	c := NewConnector(
		&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()},
		WithRequestTimeout(5*time.Second),
		WithRequestLogging(),
		WithAPIKey("Api-Key", "secret"),
	)

	var out echoBody
	err := c.DoRequest(context.Background(), http.MethodPost, "/query", echoBody{Text: "merhaba"}, &out, WithHeader("X-Request-ID", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "echo: merhaba", out.Text)
}

func TestDoRequest_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()}, WithAuthToken("tkn"))
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil))
}

func TestDoRequest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()})
	err := c.DoRequest(context.Background(), http.MethodPost, "/query", echoBody{}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Message, "index not found")
}

func TestDoRequest_NetworkError(t *testing.T) {
	c := NewConnector(&ConnectorConfig{BaseURL: "http://127.0.0.1:1", Logger: zap.NewNop()}, WithConnClientTimeout(time.Second))
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestNewClient_AppliesTransports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	client := NewClient(WithAuthToken("sk-test"))
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
}
