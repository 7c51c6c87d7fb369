package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// BootClient implements hrobot.BootClient.
type BootClient struct {
	httpClient *http.Client
}

// NewBootClient creates a new boot configuration client.
func NewBootClient(httpClient *http.Client) *BootClient {
	return &BootClient{
		httpClient: httpClient,
	}
}

func bootPath(serverNumber int) string {
	return "/boot/" + strconv.Itoa(serverNumber)
}

// Get implements hrobot.BootClient.Get.
func (c *BootClient) Get(ctx context.Context, serverNumber int) (*hrobot.BootConfig, error) {
	resp, err := c.httpClient.Get(ctx, bootPath(serverNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("getting boot configuration: %w", err)
	}

	return decodeSingle[hrobot.BootConfig](resp.Body, "boot")
}

// GetRescue implements hrobot.BootClient.GetRescue.
func (c *BootClient) GetRescue(ctx context.Context, serverNumber int) (*hrobot.Rescue, error) {
	resp, err := c.httpClient.Get(ctx, bootPath(serverNumber)+"/rescue", nil)
	if err != nil {
		return nil, fmt.Errorf("getting rescue config: %w", err)
	}

	return decodeSingle[hrobot.Rescue](resp.Body, "rescue")
}

// EnableRescue implements hrobot.BootClient.EnableRescue.
func (c *BootClient) EnableRescue(ctx context.Context, serverNumber int, req *hrobot.EnableRescueRequest) (*hrobot.Rescue, error) {
	body, err := form.Encode(req)
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, bootPath(serverNumber)+"/rescue", body)
	if err != nil {
		return nil, fmt.Errorf("enabling rescue config: %w", err)
	}

	return decodeSingle[hrobot.Rescue](resp.Body, "rescue")
}

// DisableRescue implements hrobot.BootClient.DisableRescue.
func (c *BootClient) DisableRescue(ctx context.Context, serverNumber int) (*hrobot.Rescue, error) {
	resp, err := c.httpClient.Delete(ctx, bootPath(serverNumber)+"/rescue", "")
	if err != nil {
		return nil, fmt.Errorf("disabling rescue config: %w", err)
	}

	return decodeSingle[hrobot.Rescue](resp.Body, "rescue")
}

// GetLastRescue implements hrobot.BootClient.GetLastRescue.
func (c *BootClient) GetLastRescue(ctx context.Context, serverNumber int) (*hrobot.Rescue, error) {
	resp, err := c.httpClient.Get(ctx, bootPath(serverNumber)+"/rescue/last", nil)
	if err != nil {
		return nil, fmt.Errorf("getting last rescue config: %w", err)
	}

	return decodeSingle[hrobot.Rescue](resp.Body, "rescue")
}

// GetLinux implements hrobot.BootClient.GetLinux.
func (c *BootClient) GetLinux(ctx context.Context, serverNumber int) (*hrobot.Linux, error) {
	resp, err := c.httpClient.Get(ctx, bootPath(serverNumber)+"/linux", nil)
	if err != nil {
		return nil, fmt.Errorf("getting linux config: %w", err)
	}

	return decodeSingle[hrobot.Linux](resp.Body, "linux")
}

// EnableLinux implements hrobot.BootClient.EnableLinux.
func (c *BootClient) EnableLinux(ctx context.Context, serverNumber int, req *hrobot.EnableLinuxRequest) (*hrobot.Linux, error) {
	body, err := form.Encode(req)
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, bootPath(serverNumber)+"/linux", body)
	if err != nil {
		return nil, fmt.Errorf("enabling linux config: %w", err)
	}

	return decodeSingle[hrobot.Linux](resp.Body, "linux")
}

// DisableLinux implements hrobot.BootClient.DisableLinux.
func (c *BootClient) DisableLinux(ctx context.Context, serverNumber int) (*hrobot.Linux, error) {
	resp, err := c.httpClient.Delete(ctx, bootPath(serverNumber)+"/linux", "")
	if err != nil {
		return nil, fmt.Errorf("disabling linux config: %w", err)
	}

	return decodeSingle[hrobot.Linux](resp.Body, "linux")
}

// GetLastLinux implements hrobot.BootClient.GetLastLinux.
func (c *BootClient) GetLastLinux(ctx context.Context, serverNumber int) (*hrobot.Linux, error) {
	resp, err := c.httpClient.Get(ctx, bootPath(serverNumber)+"/linux/last", nil)
	if err != nil {
		return nil, fmt.Errorf("getting last linux config: %w", err)
	}

	return decodeSingle[hrobot.Linux](resp.Body, "linux")
}
