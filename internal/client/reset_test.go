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

func TestResetClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset/321", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reset": {
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"operating_status": "running",
			"type": ["sw", "hw", "man"]
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	options, err := client.Reset().Get(context.Background(), 321)
	require.NoError(t, err)
	assert.Equal(t, "running", options.OperatingStatus)
	assert.Equal(t, []hrobot.ResetType{
		hrobot.ResetTypeSoftware,
		hrobot.ResetTypeHardware,
		hrobot.ResetTypeManual,
	}, options.Types)
}

func TestResetClient_Trigger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset/321", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "type=hw", string(body))

		// This endpoint answers without an envelope.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"server_ip": "123.123.123.123", "server_number": 321, "type": "hw"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	executed, err := client.Reset().Trigger(context.Background(), 321, hrobot.ResetTypeHardware)
	require.NoError(t, err)
	assert.Equal(t, hrobot.ResetTypeHardware, executed)
}

func TestResetClient_Trigger_ManualActive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": {
			"status": 409,
			"code": "RESET_MANUAL_ACTIVE",
			"message": "There is already a manual reset in progress"
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Reset().Trigger(context.Background(), 321, hrobot.ResetTypeManual)
	require.Error(t, err)

	apiErr := &hrobot.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, hrobot.ErrorCodeResetManual, apiErr.Code)
	assert.Equal(t, 409, apiErr.Status)
}
