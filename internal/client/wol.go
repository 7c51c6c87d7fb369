package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// WakeOnLANClient implements hrobot.WakeOnLANClient.
type WakeOnLANClient struct {
	httpClient *http.Client
}

// NewWakeOnLANClient creates a new Wake-on-LAN client.
func NewWakeOnLANClient(httpClient *http.Client) *WakeOnLANClient {
	return &WakeOnLANClient{
		httpClient: httpClient,
	}
}

// Available implements hrobot.WakeOnLANClient.Available. The probe endpoint
// answers WOL_NOT_AVAILABLE for servers without Wake-on-LAN, which maps to
// false rather than an error.
func (c *WakeOnLANClient) Available(ctx context.Context, serverNumber int) (bool, error) {
	_, err := c.httpClient.Get(ctx, "/wol/"+strconv.Itoa(serverNumber), nil)
	if err != nil {
		apiErr := &hrobot.APIError{}
		if errors.As(err, &apiErr) && apiErr.Code == hrobot.ErrorCodeWolNotAvailable {
			return false, nil
		}

		return false, fmt.Errorf("probing wake-on-lan: %w", err)
	}

	return true, nil
}

// Trigger implements hrobot.WakeOnLANClient.Trigger.
func (c *WakeOnLANClient) Trigger(ctx context.Context, serverNumber int) error {
	_, err := c.httpClient.Post(ctx, "/wol/"+strconv.Itoa(serverNumber), "")
	if err != nil {
		return fmt.Errorf("triggering wake-on-lan: %w", err)
	}

	return nil
}
