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

func TestBootClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boot/321", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"boot": {
			"rescue": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": false,
				"os": ["linux", "linuxold", "vkvm"]
			},
			"linux": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": false,
				"dist": ["Debian 12 base", "Ubuntu 24.04 LTS base"],
				"lang": ["en"]
			}
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	config, err := client.Boot().Get(context.Background(), 321)
	require.NoError(t, err)
	require.NotNil(t, config.Rescue)
	require.NotNil(t, config.Linux)
	assert.False(t, config.Rescue.Active)
	assert.Equal(t, []string{"Debian 12 base", "Ubuntu 24.04 LTS base"}, config.Linux.AvailableDist)
}

func TestBootClient_GetRescue(t *testing.T) {
	t.Run("inactive lists available systems", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/boot/321/rescue", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"rescue": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": false,
				"os": ["linux", "linuxold", "vkvm"],
				"password": null,
				"authorized_key": [],
				"host_key": []
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		rescue, err := client.Boot().GetRescue(context.Background(), 321)
		require.NoError(t, err)
		assert.False(t, rescue.Active)
		assert.Empty(t, rescue.OS)
		assert.Equal(t, []string{"linux", "linuxold", "vkvm"}, rescue.AvailableOS)
		assert.Nil(t, rescue.Password)
	})

	t.Run("active names the chosen system", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"rescue": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": true,
				"os": "linux",
				"password": "jEt3dtUvomlyOwRr",
				"authorized_key": [
					{"key": {
						"name": "deploy",
						"fingerprint": "cb:8b:ef:a7:fe:04:87:3f:e5:55:cd:12:e3:e8:9f:99",
						"type": "ED25519",
						"size": 256
					}}
				],
				"host_key": ["ed25519 SHA256:aGVsbG8gd29ybGQK"]
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		rescue, err := client.Boot().GetRescue(context.Background(), 321)
		require.NoError(t, err)
		assert.True(t, rescue.Active)
		assert.Equal(t, "linux", rescue.OS)
		assert.Empty(t, rescue.AvailableOS)
		require.NotNil(t, rescue.Password)
		assert.Equal(t, "jEt3dtUvomlyOwRr", *rescue.Password)
		require.Len(t, rescue.AuthorizedKeys, 1)
		assert.Equal(t, "deploy", rescue.AuthorizedKeys[0].Name)
		assert.Len(t, rescue.HostKeys, 1)
	})
}

func TestBootClient_EnableRescue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boot/321/rescue", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t,
			"authorized_key[]=cb%3A8b%3Aef%3Aa7%3Afe%3A04%3A87%3A3f%3Ae5%3A55%3Acd%3A12%3Ae3%3Ae8%3A9f%3A99&os=linux",
			string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rescue": {
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"active": true,
			"os": "linux",
			"password": null
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rescue, err := client.Boot().EnableRescue(context.Background(), 321, &hrobot.EnableRescueRequest{
		OS:             "linux",
		AuthorizedKeys: []string{"cb:8b:ef:a7:fe:04:87:3f:e5:55:cd:12:e3:e8:9f:99"},
	})
	require.NoError(t, err)
	assert.True(t, rescue.Active)
}

func TestBootClient_DisableRescue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boot/321/rescue", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rescue": {
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"active": false,
			"os": ["linux", "vkvm"]
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rescue, err := client.Boot().DisableRescue(context.Background(), 321)
	require.NoError(t, err)
	assert.False(t, rescue.Active)
}

func TestBootClient_GetLastRescue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boot/321/rescue/last", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rescue": {
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"active": false,
			"os": "linux",
			"password": null
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rescue, err := client.Boot().GetLastRescue(context.Background(), 321)
	require.NoError(t, err)
	assert.Equal(t, "linux", rescue.OS)
}

func TestBootClient_Linux(t *testing.T) {
	t.Run("get inactive", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/boot/321/linux", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"linux": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": false,
				"dist": ["Debian 12 base", "Ubuntu 24.04 LTS base"],
				"lang": ["en", "de"],
				"password": null
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		linux, err := client.Boot().GetLinux(context.Background(), 321)
		require.NoError(t, err)
		assert.False(t, linux.Active)
		assert.Empty(t, linux.Dist)
		assert.Len(t, linux.AvailableDist, 2)
		assert.Equal(t, []string{"en", "de"}, linux.AvailableLang)
	})

	t.Run("enable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/boot/321/linux", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "dist=Debian+12+base&lang=en", string(body))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"linux": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": true,
				"dist": "Debian 12 base",
				"lang": "en",
				"password": "jEt3dtUvomlyOwRr"
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		linux, err := client.Boot().EnableLinux(context.Background(), 321, &hrobot.EnableLinuxRequest{
			Dist: "Debian 12 base",
			Lang: "en",
		})
		require.NoError(t, err)
		assert.True(t, linux.Active)
		assert.Equal(t, "Debian 12 base", linux.Dist)
		require.NotNil(t, linux.Password)
	})

	t.Run("disable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/boot/321/linux", r.URL.Path)
			assert.Equal(t, "DELETE", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"linux": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": false,
				"dist": ["Debian 12 base"],
				"lang": ["en"]
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		linux, err := client.Boot().DisableLinux(context.Background(), 321)
		require.NoError(t, err)
		assert.False(t, linux.Active)
	})

	t.Run("last", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/boot/321/linux/last", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"linux": {
				"server_ip": "123.123.123.123",
				"server_number": 321,
				"active": false,
				"dist": "Debian 12 base",
				"lang": "en",
				"password": null
			}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		linux, err := client.Boot().GetLastLinux(context.Background(), 321)
		require.NoError(t, err)
		assert.Equal(t, "Debian 12 base", linux.Dist)
	})
}
