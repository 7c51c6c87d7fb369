// Package client implements the hrobot.Client interface on top of the
// request executor.
package client

import (
	"strings"

	"github.com/hrobot-io/hrobot/internal/auth"
	"github.com/hrobot-io/hrobot/internal/constants"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// Client implements the hrobot.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	servers    hrobot.ServersClient
	sshKeys    hrobot.SSHKeysClient
	reset      hrobot.ResetClient
	wakeOnLAN  hrobot.WakeOnLANClient
	boot       hrobot.BootClient
	reverseDNS hrobot.ReverseDNSClient
	ips        hrobot.IPsClient
	subnets    hrobot.SubnetsClient
	failover   hrobot.FailoverClient
	firewall   hrobot.FirewallClient
	vswitches  hrobot.VSwitchesClient
	traffic    hrobot.TrafficClient
}

// New creates a new Robot API client from the given configuration.
func New(config *hrobot.Config) (*Client, error) {
	if config == nil {
		return nil, hrobot.ErrConfigRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, hrobot.ErrCredentialsRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = hrobot.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	opts := make([]http.Option, 0, 5)

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	httpClient := http.NewClient(baseURL, auth.New(config.Username, config.Password), opts...)

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

	return client, nil
}

// Servers implements hrobot.Client.Servers.
func (c *Client) Servers() hrobot.ServersClient { return c.servers }

// SSHKeys implements hrobot.Client.SSHKeys.
func (c *Client) SSHKeys() hrobot.SSHKeysClient { return c.sshKeys }

// Reset implements hrobot.Client.Reset.
func (c *Client) Reset() hrobot.ResetClient { return c.reset }

// WakeOnLAN implements hrobot.Client.WakeOnLAN.
func (c *Client) WakeOnLAN() hrobot.WakeOnLANClient { return c.wakeOnLAN }

// Boot implements hrobot.Client.Boot.
func (c *Client) Boot() hrobot.BootClient { return c.boot }

// ReverseDNS implements hrobot.Client.ReverseDNS.
func (c *Client) ReverseDNS() hrobot.ReverseDNSClient { return c.reverseDNS }

// IPs implements hrobot.Client.IPs.
func (c *Client) IPs() hrobot.IPsClient { return c.ips }

// Subnets implements hrobot.Client.Subnets.
func (c *Client) Subnets() hrobot.SubnetsClient { return c.subnets }

// Failover implements hrobot.Client.Failover.
func (c *Client) Failover() hrobot.FailoverClient { return c.failover }

// Firewall implements hrobot.Client.Firewall.
func (c *Client) Firewall() hrobot.FirewallClient { return c.firewall }

// VSwitches implements hrobot.Client.VSwitches.
func (c *Client) VSwitches() hrobot.VSwitchesClient { return c.vswitches }

// Traffic implements hrobot.Client.Traffic.
func (c *Client) Traffic() hrobot.TrafficClient { return c.traffic }
