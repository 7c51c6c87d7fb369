package client

import (
	"github.com/hrobot-io/hrobot/internal/auth"
	internalhttp "github.com/hrobot-io/hrobot/internal/http"
)

// newTestClient creates a client against a test server with dummy
// credentials.
func newTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.New("#ws+test", "test-password"))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.servers = NewServersClient(httpClient)
	client.sshKeys = NewSSHKeysClient(httpClient)
	client.reset = NewResetClient(httpClient)
	client.wakeOnLAN = NewWakeOnLANClient(httpClient)
	client.boot = NewBootClient(httpClient)
	client.reverseDNS = NewReverseDNSClient(httpClient)
	client.ips = NewIPsClient(httpClient)
	client.subnets = NewSubnetsClient(httpClient)
	client.failover = NewFailoverClient(httpClient)
	client.firewall = NewFirewallClient(httpClient)
	client.vswitches = NewVSwitchesClient(httpClient)
	client.traffic = NewTrafficClient(httpClient)

	return client
}
