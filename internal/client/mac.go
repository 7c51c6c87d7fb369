package client

import (
	"context"
	"fmt"

	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// Separate MAC management is shared between the IP and subnet families; the
// endpoints differ only in their base path.

func getMAC(ctx context.Context, httpClient *http.Client, basePath string) (*hrobot.MAC, error) {
	resp, err := httpClient.Get(ctx, basePath+"/mac", nil)
	if err != nil {
		return nil, fmt.Errorf("getting separate mac: %w", err)
	}

	return decodeSingle[hrobot.MAC](resp.Body, "mac")
}

func generateMAC(ctx context.Context, httpClient *http.Client, basePath string) (*hrobot.MAC, error) {
	resp, err := httpClient.Put(ctx, basePath+"/mac", "")
	if err != nil {
		return nil, fmt.Errorf("generating separate mac: %w", err)
	}

	return decodeSingle[hrobot.MAC](resp.Body, "mac")
}

func deleteMAC(ctx context.Context, httpClient *http.Client, basePath string) (*hrobot.MAC, error) {
	resp, err := httpClient.Delete(ctx, basePath+"/mac", "")
	if err != nil {
		return nil, fmt.Errorf("deleting separate mac: %w", err)
	}

	return decodeSingle[hrobot.MAC](resp.Body, "mac")
}
