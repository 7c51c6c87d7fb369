package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// ServersClient implements hrobot.ServersClient.
type ServersClient struct {
	httpClient *http.Client
}

// NewServersClient creates a new servers client.
func NewServersClient(httpClient *http.Client) *ServersClient {
	return &ServersClient{
		httpClient: httpClient,
	}
}

func serverPath(serverNumber int) string {
	return "/server/" + strconv.Itoa(serverNumber)
}

// List implements hrobot.ServersClient.List.
func (c *ServersClient) List(ctx context.Context) ([]hrobot.Server, error) {
	resp, err := c.httpClient.Get(ctx, "/server", nil)
	if err != nil {
		return nil, fmt.Errorf("listing servers: %w", err)
	}

	return decodeList[hrobot.Server](resp.Body, "server")
}

// Get implements hrobot.ServersClient.Get.
func (c *ServersClient) Get(ctx context.Context, serverNumber int) (*hrobot.Server, error) {
	resp, err := c.httpClient.Get(ctx, serverPath(serverNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("getting server: %w", err)
	}

	return decodeSingle[hrobot.Server](resp.Body, "server")
}

// Rename implements hrobot.ServersClient.Rename.
func (c *ServersClient) Rename(ctx context.Context, serverNumber int, name string) (*hrobot.Server, error) {
	body, err := form.Encode(struct {
		Name string `url:"server_name"`
	}{Name: name})
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, serverPath(serverNumber), body)
	if err != nil {
		return nil, fmt.Errorf("renaming server: %w", err)
	}

	return decodeSingle[hrobot.Server](resp.Body, "server")
}

// GetCancellation implements hrobot.ServersClient.GetCancellation.
func (c *ServersClient) GetCancellation(ctx context.Context, serverNumber int) (*hrobot.Cancellation, error) {
	resp, err := c.httpClient.Get(ctx, serverPath(serverNumber)+"/cancellation", nil)
	if err != nil {
		return nil, fmt.Errorf("getting server cancellation: %w", err)
	}

	return decodeSingle[hrobot.Cancellation](resp.Body, "cancellation")
}

// Cancel implements hrobot.ServersClient.Cancel. An empty CancellationDate
// requests cancellation at the earliest possible date.
func (c *ServersClient) Cancel(ctx context.Context, serverNumber int, req *hrobot.CancelServerRequest) (*hrobot.Cancellation, error) {
	encoded := *req
	if encoded.CancellationDate == "" {
		encoded.CancellationDate = "now"
	}

	body, err := form.Encode(&encoded)
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, serverPath(serverNumber)+"/cancellation", body)
	if err != nil {
		return nil, fmt.Errorf("cancelling server: %w", err)
	}

	return decodeSingle[hrobot.Cancellation](resp.Body, "cancellation")
}

// WithdrawCancellation implements hrobot.ServersClient.WithdrawCancellation.
func (c *ServersClient) WithdrawCancellation(ctx context.Context, serverNumber int) error {
	resp, err := c.httpClient.Delete(ctx, serverPath(serverNumber)+"/cancellation", "")
	if err != nil {
		return fmt.Errorf("withdrawing server cancellation: %w", err)
	}

	return expectEmpty(resp.Body)
}
