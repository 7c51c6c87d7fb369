package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// IPsClient implements hrobot.IPsClient.
type IPsClient struct {
	httpClient *http.Client
}

// NewIPsClient creates a new IPs client.
func NewIPsClient(httpClient *http.Client) *IPsClient {
	return &IPsClient{
		httpClient: httpClient,
	}
}

func ipPath(ip string) string {
	return "/ip/" + url.PathEscape(ip)
}

// List implements hrobot.IPsClient.List.
func (c *IPsClient) List(ctx context.Context) ([]hrobot.IP, error) {
	resp, err := c.httpClient.Get(ctx, "/ip", nil)
	if err != nil {
		return nil, fmt.Errorf("listing ips: %w", err)
	}

	return decodeList[hrobot.IP](resp.Body, "ip")
}

// Get implements hrobot.IPsClient.Get.
func (c *IPsClient) Get(ctx context.Context, ip string) (*hrobot.IP, error) {
	resp, err := c.httpClient.Get(ctx, ipPath(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("getting ip: %w", err)
	}

	return decodeSingle[hrobot.IP](resp.Body, "ip")
}

// UpdateTrafficWarnings implements hrobot.IPsClient.UpdateTrafficWarnings.
func (c *IPsClient) UpdateTrafficWarnings(ctx context.Context, ip string, req *hrobot.TrafficWarnings) (*hrobot.IP, error) {
	body, err := form.Encode(req)
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, ipPath(ip), body)
	if err != nil {
		return nil, fmt.Errorf("updating ip traffic warnings: %w", err)
	}

	return decodeSingle[hrobot.IP](resp.Body, "ip")
}

// GetMAC implements hrobot.IPsClient.GetMAC.
func (c *IPsClient) GetMAC(ctx context.Context, ip string) (*hrobot.MAC, error) {
	return getMAC(ctx, c.httpClient, ipPath(ip))
}

// GenerateMAC implements hrobot.IPsClient.GenerateMAC.
func (c *IPsClient) GenerateMAC(ctx context.Context, ip string) (*hrobot.MAC, error) {
	return generateMAC(ctx, c.httpClient, ipPath(ip))
}

// DeleteMAC implements hrobot.IPsClient.DeleteMAC.
func (c *IPsClient) DeleteMAC(ctx context.Context, ip string) (*hrobot.MAC, error) {
	return deleteMAC(ctx, c.httpClient, ipPath(ip))
}

// GetCancellation implements hrobot.IPsClient.GetCancellation.
func (c *IPsClient) GetCancellation(ctx context.Context, ip string) (*hrobot.IPCancellation, error) {
	resp, err := c.httpClient.Get(ctx, ipPath(ip)+"/cancellation", nil)
	if err != nil {
		return nil, fmt.Errorf("getting ip cancellation: %w", err)
	}

	return decodeSingle[hrobot.IPCancellation](resp.Body, "cancellation")
}

// Cancel implements hrobot.IPsClient.Cancel.
func (c *IPsClient) Cancel(ctx context.Context, ip, date string) (*hrobot.IPCancellation, error) {
	body, err := form.Encode(struct {
		Date string `url:"cancellation_date"`
	}{Date: date})
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, ipPath(ip)+"/cancellation", body)
	if err != nil {
		return nil, fmt.Errorf("cancelling ip: %w", err)
	}

	return decodeSingle[hrobot.IPCancellation](resp.Body, "cancellation")
}

// WithdrawCancellation implements hrobot.IPsClient.WithdrawCancellation.
func (c *IPsClient) WithdrawCancellation(ctx context.Context, ip string) error {
	resp, err := c.httpClient.Delete(ctx, ipPath(ip)+"/cancellation", "")
	if err != nil {
		return fmt.Errorf("withdrawing ip cancellation: %w", err)
	}

	return expectEmpty(resp.Body)
}
