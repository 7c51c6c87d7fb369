package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// ResetClient implements hrobot.ResetClient.
type ResetClient struct {
	httpClient *http.Client
}

// NewResetClient creates a new reset client.
func NewResetClient(httpClient *http.Client) *ResetClient {
	return &ResetClient{
		httpClient: httpClient,
	}
}

// Get implements hrobot.ResetClient.Get.
func (c *ResetClient) Get(ctx context.Context, serverNumber int) (*hrobot.ResetOptions, error) {
	resp, err := c.httpClient.Get(ctx, "/reset/"+strconv.Itoa(serverNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("getting reset options: %w", err)
	}

	return decodeSingle[hrobot.ResetOptions](resp.Body, "reset")
}

// Trigger implements hrobot.ResetClient.Trigger. The response is one of the
// few without an envelope and echoes the executed reset type.
func (c *ResetClient) Trigger(ctx context.Context, serverNumber int, resetType hrobot.ResetType) (hrobot.ResetType, error) {
	body, err := form.Encode(struct {
		Type string `url:"type"`
	}{Type: string(resetType)})
	if err != nil {
		return "", &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, "/reset/"+strconv.Itoa(serverNumber), body)
	if err != nil {
		return "", fmt.Errorf("triggering reset: %w", err)
	}

	var executed struct {
		Type hrobot.ResetType `json:"type"`
	}

	err = decodeBare(resp.Body, &executed)
	if err != nil {
		return "", err
	}

	return executed.Type, nil
}
