package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseDNSClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rdns", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"rdns": {"ip": "123.123.123.123", "ptr": "mail.example.com"}},
			{"rdns": {"ip": "124.124.124.124", "ptr": "www.example.com"}}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	entries, err := client.ReverseDNS().List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "mail.example.com", entries[0].PTR)
	assert.Equal(t, "124.124.124.124", entries[1].IP)
}

func TestReverseDNSClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rdns/123.123.123.123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rdns": {"ip": "123.123.123.123", "ptr": "mail.example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	entry, err := client.ReverseDNS().Get(context.Background(), "123.123.123.123")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", entry.PTR)
}

func TestReverseDNSClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rdns/123.123.123.123", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "ptr=mail.example.com", string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"rdns": {"ip": "123.123.123.123", "ptr": "mail.example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	entry, err := client.ReverseDNS().Create(context.Background(), "123.123.123.123", "mail.example.com")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", entry.PTR)
}

func TestReverseDNSClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rdns/123.123.123.123", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "ptr=smtp.example.com", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rdns": {"ip": "123.123.123.123", "ptr": "smtp.example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	entry, err := client.ReverseDNS().Update(context.Background(), "123.123.123.123", "smtp.example.com")
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", entry.PTR)
}

func TestReverseDNSClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rdns/123.123.123.123", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.ReverseDNS().Delete(context.Background(), "123.123.123.123")
	require.NoError(t, err)
}
