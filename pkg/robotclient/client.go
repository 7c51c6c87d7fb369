// Package robotclient provides the main entry point for creating Robot API clients
package robotclient

import (
	"fmt"

	"github.com/hrobot-io/hrobot/internal/client"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// New creates a new Robot API client.
func New(config *hrobot.Config) (hrobot.Client, error) {
	robotClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return robotClient, nil
}

// NewWithCredentials creates a new client from a webservice credential pair,
// using defaults for everything else.
func NewWithCredentials(username, password string) (hrobot.Client, error) {
	return New(&hrobot.Config{
		Username: username,
		Password: password,
	})
}
