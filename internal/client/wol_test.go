package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWakeOnLANClient_Available(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wol/321", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"wol": {"server_ip": "123.123.123.123", "server_number": 321}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		available, err := client.WakeOnLAN().Available(context.Background(), 321)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("not available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {
				"status": 404,
				"code": "WOL_NOT_AVAILABLE",
				"message": "Wake on LAN is not available for this server"
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		available, err := client.WakeOnLAN().Available(context.Background(), 321)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {
				"status": 404,
				"code": "SERVER_NOT_FOUND",
				"message": "Server not found"
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.WakeOnLAN().Available(context.Background(), 99999)
		require.Error(t, err)
	})
}

func TestWakeOnLANClient_Trigger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wol/321", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"wol": {"server_ip": "123.123.123.123", "server_number": 321}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.WakeOnLAN().Trigger(context.Background(), 321)
	require.NoError(t, err)
}
