package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// ReverseDNSClient implements hrobot.ReverseDNSClient.
type ReverseDNSClient struct {
	httpClient *http.Client
}

// NewReverseDNSClient creates a new reverse DNS client.
func NewReverseDNSClient(httpClient *http.Client) *ReverseDNSClient {
	return &ReverseDNSClient{
		httpClient: httpClient,
	}
}

func rdnsPath(ip string) string {
	return "/rdns/" + url.PathEscape(ip)
}

func ptrBody(ptr string) (string, error) {
	body, err := form.Encode(struct {
		PTR string `url:"ptr"`
	}{PTR: ptr})
	if err != nil {
		return "", &hrobot.EncodeError{Err: err}
	}

	return body, nil
}

// List implements hrobot.ReverseDNSClient.List.
func (c *ReverseDNSClient) List(ctx context.Context) ([]hrobot.ReverseDNS, error) {
	resp, err := c.httpClient.Get(ctx, "/rdns", nil)
	if err != nil {
		return nil, fmt.Errorf("listing rdns entries: %w", err)
	}

	return decodeList[hrobot.ReverseDNS](resp.Body, "rdns")
}

// Get implements hrobot.ReverseDNSClient.Get.
func (c *ReverseDNSClient) Get(ctx context.Context, ip string) (*hrobot.ReverseDNS, error) {
	resp, err := c.httpClient.Get(ctx, rdnsPath(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("getting rdns entry: %w", err)
	}

	return decodeSingle[hrobot.ReverseDNS](resp.Body, "rdns")
}

// Create implements hrobot.ReverseDNSClient.Create.
func (c *ReverseDNSClient) Create(ctx context.Context, ip, ptr string) (*hrobot.ReverseDNS, error) {
	body, err := ptrBody(ptr)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, rdnsPath(ip), body)
	if err != nil {
		return nil, fmt.Errorf("creating rdns entry: %w", err)
	}

	return decodeSingle[hrobot.ReverseDNS](resp.Body, "rdns")
}

// Update implements hrobot.ReverseDNSClient.Update.
func (c *ReverseDNSClient) Update(ctx context.Context, ip, ptr string) (*hrobot.ReverseDNS, error) {
	body, err := ptrBody(ptr)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, rdnsPath(ip), body)
	if err != nil {
		return nil, fmt.Errorf("updating rdns entry: %w", err)
	}

	return decodeSingle[hrobot.ReverseDNS](resp.Body, "rdns")
}

// Delete implements hrobot.ReverseDNSClient.Delete.
func (c *ReverseDNSClient) Delete(ctx context.Context, ip string) error {
	resp, err := c.httpClient.Delete(ctx, rdnsPath(ip), "")
	if err != nil {
		return fmt.Errorf("deleting rdns entry: %w", err)
	}

	return expectEmpty(resp.Body)
}
