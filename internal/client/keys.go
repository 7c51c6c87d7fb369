package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// SSHKeysClient implements hrobot.SSHKeysClient.
type SSHKeysClient struct {
	httpClient *http.Client
}

// NewSSHKeysClient creates a new SSH keys client.
func NewSSHKeysClient(httpClient *http.Client) *SSHKeysClient {
	return &SSHKeysClient{
		httpClient: httpClient,
	}
}

func keyPath(fingerprint string) string {
	return "/key/" + url.PathEscape(fingerprint)
}

// List implements hrobot.SSHKeysClient.List.
func (c *SSHKeysClient) List(ctx context.Context) ([]hrobot.SSHKey, error) {
	resp, err := c.httpClient.Get(ctx, "/key", nil)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}

	return decodeList[hrobot.SSHKey](resp.Body, "key")
}

// Get implements hrobot.SSHKeysClient.Get.
func (c *SSHKeysClient) Get(ctx context.Context, fingerprint string) (*hrobot.SSHKey, error) {
	resp, err := c.httpClient.Get(ctx, keyPath(fingerprint), nil)
	if err != nil {
		return nil, fmt.Errorf("getting key: %w", err)
	}

	return decodeSingle[hrobot.SSHKey](resp.Body, "key")
}

// Create implements hrobot.SSHKeysClient.Create.
func (c *SSHKeysClient) Create(ctx context.Context, name, data string) (*hrobot.SSHKey, error) {
	body, err := form.Encode(struct {
		Name string `url:"name"`
		Data string `url:"data"`
	}{Name: name, Data: data})
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, "/key", body)
	if err != nil {
		return nil, fmt.Errorf("creating key: %w", err)
	}

	return decodeSingle[hrobot.SSHKey](resp.Body, "key")
}

// Rename implements hrobot.SSHKeysClient.Rename.
func (c *SSHKeysClient) Rename(ctx context.Context, fingerprint, name string) (*hrobot.SSHKey, error) {
	body, err := form.Encode(struct {
		Name string `url:"name"`
	}{Name: name})
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, keyPath(fingerprint), body)
	if err != nil {
		return nil, fmt.Errorf("renaming key: %w", err)
	}

	return decodeSingle[hrobot.SSHKey](resp.Body, "key")
}

// Delete implements hrobot.SSHKeysClient.Delete.
func (c *SSHKeysClient) Delete(ctx context.Context, fingerprint string) error {
	resp, err := c.httpClient.Delete(ctx, keyPath(fingerprint), "")
	if err != nil {
		return fmt.Errorf("deleting key: %w", err)
	}

	return expectEmpty(resp.Body)
}
