package client

import (
	"context"
	"fmt"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// TrafficClient implements hrobot.TrafficClient.
type TrafficClient struct {
	httpClient *http.Client
}

// NewTrafficClient creates a new traffic statistics client.
func NewTrafficClient(httpClient *http.Client) *TrafficClient {
	return &TrafficClient{
		httpClient: httpClient,
	}
}

// Query implements hrobot.TrafficClient.Query. The query is a POST even
// though it only reads data; single_values is always requested so the
// result is keyed per aggregation slot.
func (c *TrafficClient) Query(ctx context.Context, req *hrobot.TrafficRequest) (*hrobot.TrafficData, error) {
	builder := form.NewBuilder()
	builder.Set("type", string(req.Type))
	builder.Set("from", req.From)
	builder.Set("to", req.To)

	for _, ip := range req.IPs {
		builder.Set("ip[]", ip)
	}

	for _, subnet := range req.Subnets {
		builder.Set("subnet[]", subnet)
	}

	builder.Set("single_values", "true")

	resp, err := c.httpClient.Post(ctx, "/traffic", builder.Encode())
	if err != nil {
		return nil, fmt.Errorf("querying traffic: %w", err)
	}

	return decodeSingle[hrobot.TrafficData](resp.Body, "traffic")
}
