package aichat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

func TestCompleteReturnsFirstDataElement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))

		var req map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"hello"}, req["data"])

		json.NewEncoder(w).Encode(map[string][]string{"data": {"hi there", "ignored"}})
	}))
	defer srv.Close()

	c := New(srv.URL, "hf-token")
	reply, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hi there", reply)
}

func TestCompleteErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, errs.ErrExternalService)
}

func TestCompleteErrorsOnEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string][]string{"data": {}})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, errs.ErrExternalService)
}

func TestCompleteErrorsWithoutEndpoint(t *testing.T) {
	c := New("", "")
	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, errs.ErrExternalService)
}
