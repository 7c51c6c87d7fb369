package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// SubnetsClient implements hrobot.SubnetsClient.
type SubnetsClient struct {
	httpClient *http.Client
}

// NewSubnetsClient creates a new subnets client.
func NewSubnetsClient(httpClient *http.Client) *SubnetsClient {
	return &SubnetsClient{
		httpClient: httpClient,
	}
}

func subnetPath(ip string) string {
	return "/subnet/" + url.PathEscape(ip)
}

// List implements hrobot.SubnetsClient.List.
func (c *SubnetsClient) List(ctx context.Context) ([]hrobot.Subnet, error) {
	resp, err := c.httpClient.Get(ctx, "/subnet", nil)
	if err != nil {
		return nil, fmt.Errorf("listing subnets: %w", err)
	}

	return decodeList[hrobot.Subnet](resp.Body, "subnet")
}

// Get implements hrobot.SubnetsClient.Get.
func (c *SubnetsClient) Get(ctx context.Context, ip string) (*hrobot.Subnet, error) {
	resp, err := c.httpClient.Get(ctx, subnetPath(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("getting subnet: %w", err)
	}

	return decodeSingle[hrobot.Subnet](resp.Body, "subnet")
}

// UpdateTrafficWarnings implements hrobot.SubnetsClient.UpdateTrafficWarnings.
func (c *SubnetsClient) UpdateTrafficWarnings(ctx context.Context, ip string, req *hrobot.TrafficWarnings) (*hrobot.Subnet, error) {
	body, err := form.Encode(req)
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, subnetPath(ip), body)
	if err != nil {
		return nil, fmt.Errorf("updating subnet traffic warnings: %w", err)
	}

	return decodeSingle[hrobot.Subnet](resp.Body, "subnet")
}

// GetMAC implements hrobot.SubnetsClient.GetMAC.
func (c *SubnetsClient) GetMAC(ctx context.Context, ip string) (*hrobot.MAC, error) {
	return getMAC(ctx, c.httpClient, subnetPath(ip))
}

// GenerateMAC implements hrobot.SubnetsClient.GenerateMAC.
func (c *SubnetsClient) GenerateMAC(ctx context.Context, ip string) (*hrobot.MAC, error) {
	return generateMAC(ctx, c.httpClient, subnetPath(ip))
}

// DeleteMAC implements hrobot.SubnetsClient.DeleteMAC.
func (c *SubnetsClient) DeleteMAC(ctx context.Context, ip string) (*hrobot.MAC, error) {
	return deleteMAC(ctx, c.httpClient, subnetPath(ip))
}
