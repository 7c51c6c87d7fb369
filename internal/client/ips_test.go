package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ip", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"ip": {
				"ip": "123.123.123.123",
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"locked": false,
				"separate_mac": null,
				"traffic_warnings": false,
				"traffic_hourly": 50,
				"traffic_daily": 50,
				"traffic_monthly": 8
			}},
			{"ip": {
				"ip": "124.124.124.124",
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"locked": false,
				"separate_mac": "00:21:85:62:3e:9c"
			}}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ips, err := client.IPs().List(context.Background())
	require.NoError(t, err)
	require.Len(t, ips, 2)
	assert.Nil(t, ips[0].SeparateMAC)
	require.NotNil(t, ips[0].TrafficWarnings)
	assert.False(t, *ips[0].TrafficWarnings)
	require.NotNil(t, ips[1].SeparateMAC)
	assert.Equal(t, "00:21:85:62:3e:9c", *ips[1].SeparateMAC)
}

func TestIPsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ip/123.123.123.123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip": {
			"ip": "123.123.123.123",
			"gateway": "123.123.123.97",
			"mask": 27,
			"broadcast": "123.123.123.127",
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"locked": false,
			"separate_mac": null
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ip, err := client.IPs().Get(context.Background(), "123.123.123.123")
	require.NoError(t, err)
	assert.Equal(t, "123.123.123.97", ip.Gateway)
	assert.Equal(t, 27, ip.Mask)
	assert.Equal(t, "123.123.123.127", ip.Broadcast)
}

func TestIPsClient_UpdateTrafficWarnings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ip/123.123.123.123", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "traffic_daily=500&traffic_hourly=100&traffic_monthly=10&traffic_warnings=true", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip": {
			"ip": "123.123.123.123",
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"locked": false,
			"traffic_warnings": true,
			"traffic_hourly": 100,
			"traffic_daily": 500,
			"traffic_monthly": 10
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ip, err := client.IPs().UpdateTrafficWarnings(context.Background(), "123.123.123.123", &hrobot.TrafficWarnings{
		Enabled:        true,
		TrafficHourly:  100,
		TrafficDaily:   500,
		TrafficMonthly: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, ip.TrafficWarnings)
	assert.True(t, *ip.TrafficWarnings)
	assert.Equal(t, 100, ip.TrafficHourly)
}

func TestIPsClient_MAC(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ip/124.124.124.124/mac", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mac": {"ip": "124.124.124.124", "mac": "00:21:85:62:3e:9c"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		mac, err := client.IPs().GetMAC(context.Background(), "124.124.124.124")
		require.NoError(t, err)
		assert.Equal(t, "00:21:85:62:3e:9c", mac.MAC)
	})

	t.Run("generate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ip/124.124.124.124/mac", r.URL.Path)
			assert.Equal(t, "PUT", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mac": {"ip": "124.124.124.124", "mac": "00:21:85:62:3e:9c"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		mac, err := client.IPs().GenerateMAC(context.Background(), "124.124.124.124")
		require.NoError(t, err)
		assert.Equal(t, "124.124.124.124", mac.IP)
	})

	t.Run("delete", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ip/124.124.124.124/mac", r.URL.Path)
			assert.Equal(t, "DELETE", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mac": {"ip": "124.124.124.124", "mac": null}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		mac, err := client.IPs().DeleteMAC(context.Background(), "124.124.124.124")
		require.NoError(t, err)
		assert.Empty(t, mac.MAC)
	})

	t.Run("not available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {
				"status": 404,
				"code": "MAC_NOT_AVAILABLE",
				"message": "A separate MAC address is not available for this IP"
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.IPs().GetMAC(context.Background(), "123.123.123.123")
		require.Error(t, err)

		apiErr := &hrobot.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, hrobot.ErrorCodeMacNotAvailable, apiErr.Code)
	})
}

func TestIPsClient_Cancellation(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ip/124.124.124.124/cancellation", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cancellation": {
				"ip": "124.124.124.124",
				"server_number": 321,
				"earliest_cancellation_date": "2025-09-01",
				"cancelled": false,
				"cancellation_date": null
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		cancellation, err := client.IPs().GetCancellation(context.Background(), "124.124.124.124")
		require.NoError(t, err)
		assert.False(t, cancellation.Cancelled)
		assert.Nil(t, cancellation.CancellationDate)
	})

	t.Run("cancel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ip/124.124.124.124/cancellation", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "cancellation_date=2025-09-30", string(body))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cancellation": {
				"ip": "124.124.124.124",
				"server_number": 321,
				"earliest_cancellation_date": "2025-09-01",
				"cancelled": true,
				"cancellation_date": "2025-09-30"
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		cancellation, err := client.IPs().Cancel(context.Background(), "124.124.124.124", "2025-09-30")
		require.NoError(t, err)
		assert.True(t, cancellation.Cancelled)
		require.NotNil(t, cancellation.CancellationDate)
		assert.Equal(t, "2025-09-30", *cancellation.CancellationDate)
	})

	t.Run("withdraw", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ip/124.124.124.124/cancellation", r.URL.Path)
			assert.Equal(t, "DELETE", r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		err := client.IPs().WithdrawCancellation(context.Background(), "124.124.124.124")
		require.NoError(t, err)
	})
}
