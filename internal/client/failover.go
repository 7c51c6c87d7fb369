package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// FailoverClient implements hrobot.FailoverClient.
type FailoverClient struct {
	httpClient *http.Client
}

// NewFailoverClient creates a new failover client.
func NewFailoverClient(httpClient *http.Client) *FailoverClient {
	return &FailoverClient{
		httpClient: httpClient,
	}
}

func failoverPath(ip string) string {
	return "/failover/" + url.PathEscape(ip)
}

// List implements hrobot.FailoverClient.List.
func (c *FailoverClient) List(ctx context.Context) ([]hrobot.Failover, error) {
	resp, err := c.httpClient.Get(ctx, "/failover", nil)
	if err != nil {
		return nil, fmt.Errorf("listing failover ips: %w", err)
	}

	return decodeList[hrobot.Failover](resp.Body, "failover")
}

// Get implements hrobot.FailoverClient.Get.
func (c *FailoverClient) Get(ctx context.Context, ip string) (*hrobot.Failover, error) {
	resp, err := c.httpClient.Get(ctx, failoverPath(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("getting failover ip: %w", err)
	}

	return decodeSingle[hrobot.Failover](resp.Body, "failover")
}

// Switch implements hrobot.FailoverClient.Switch.
func (c *FailoverClient) Switch(ctx context.Context, ip, activeServerIP string) (*hrobot.Failover, error) {
	body, err := form.Encode(struct {
		ActiveServerIP string `url:"active_server_ip"`
	}{ActiveServerIP: activeServerIP})
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, failoverPath(ip), body)
	if err != nil {
		return nil, fmt.Errorf("switching failover routing: %w", err)
	}

	return decodeSingle[hrobot.Failover](resp.Body, "failover")
}

// Disable implements hrobot.FailoverClient.Disable.
func (c *FailoverClient) Disable(ctx context.Context, ip string) (*hrobot.Failover, error) {
	resp, err := c.httpClient.Delete(ctx, failoverPath(ip), "")
	if err != nil {
		return nil, fmt.Errorf("disabling failover routing: %w", err)
	}

	return decodeSingle[hrobot.Failover](resp.Body, "failover")
}
