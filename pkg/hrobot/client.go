package hrobot

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// DefaultBaseURL is the production endpoint of the Robot webservice.
const DefaultBaseURL = "https://robot-ws.your-server.de"

// Static errors for err113 compliance.
var (
	ErrConfigRequired              = errors.New("config is required")
	ErrDeprecatedClientConstructor = errors.New("use github.com/hrobot-io/hrobot/pkg/robotclient.New to create a client")
)

// ServerResourceClients provides access to server lifecycle clients.
type ServerResourceClients interface {
	Servers() ServersClient
	Reset() ResetClient
	WakeOnLAN() WakeOnLANClient
	Boot() BootClient
}

// NetworkResourceClients provides access to addressing and routing clients.
type NetworkResourceClients interface {
	IPs() IPsClient
	Subnets() SubnetsClient
	ReverseDNS() ReverseDNSClient
	Failover() FailoverClient
	VSwitches() VSwitchesClient
	Traffic() TrafficClient
}

// SecurityResourceClients provides access to access-control clients.
type SecurityResourceClients interface {
	SSHKeys() SSHKeysClient
	Firewall() FirewallClient
}

// Client is the full Robot webservice client surface.
type Client interface {
	ServerResourceClients
	NetworkResourceClients
	SecurityResourceClients
}

// ServersClient manages dedicated server resources.
type ServersClient interface {
	List(ctx context.Context) ([]Server, error)
	Get(ctx context.Context, serverNumber int) (*Server, error)
	Rename(ctx context.Context, serverNumber int, name string) (*Server, error)
	GetCancellation(ctx context.Context, serverNumber int) (*Cancellation, error)
	Cancel(ctx context.Context, serverNumber int, req *CancelServerRequest) (*Cancellation, error)
	WithdrawCancellation(ctx context.Context, serverNumber int) error
}

// SSHKeysClient manages stored public SSH keys.
type SSHKeysClient interface {
	List(ctx context.Context) ([]SSHKey, error)
	Get(ctx context.Context, fingerprint string) (*SSHKey, error)
	Create(ctx context.Context, name, data string) (*SSHKey, error)
	Rename(ctx context.Context, fingerprint, name string) (*SSHKey, error)
	Delete(ctx context.Context, fingerprint string) error
}

// ResetClient manages server reset operations.
type ResetClient interface {
	Get(ctx context.Context, serverNumber int) (*ResetOptions, error)
	Trigger(ctx context.Context, serverNumber int, resetType ResetType) (ResetType, error)
}

// WakeOnLANClient manages Wake-on-LAN probes and triggers.
type WakeOnLANClient interface {
	Available(ctx context.Context, serverNumber int) (bool, error)
	Trigger(ctx context.Context, serverNumber int) error
}

// BootClient manages boot configurations (rescue and linux install).
type BootClient interface {
	Get(ctx context.Context, serverNumber int) (*BootConfig, error)

	GetRescue(ctx context.Context, serverNumber int) (*Rescue, error)
	EnableRescue(ctx context.Context, serverNumber int, req *EnableRescueRequest) (*Rescue, error)
	DisableRescue(ctx context.Context, serverNumber int) (*Rescue, error)
	GetLastRescue(ctx context.Context, serverNumber int) (*Rescue, error)

	GetLinux(ctx context.Context, serverNumber int) (*Linux, error)
	EnableLinux(ctx context.Context, serverNumber int, req *EnableLinuxRequest) (*Linux, error)
	DisableLinux(ctx context.Context, serverNumber int) (*Linux, error)
	GetLastLinux(ctx context.Context, serverNumber int) (*Linux, error)
}

// ReverseDNSClient manages PTR records.
type ReverseDNSClient interface {
	List(ctx context.Context) ([]ReverseDNS, error)
	Get(ctx context.Context, ip string) (*ReverseDNS, error)
	Create(ctx context.Context, ip, ptr string) (*ReverseDNS, error)
	Update(ctx context.Context, ip, ptr string) (*ReverseDNS, error)
	Delete(ctx context.Context, ip string) error
}

// IPsClient manages single IP addresses.
type IPsClient interface {
	List(ctx context.Context) ([]IP, error)
	Get(ctx context.Context, ip string) (*IP, error)
	UpdateTrafficWarnings(ctx context.Context, ip string, req *TrafficWarnings) (*IP, error)
	GetMAC(ctx context.Context, ip string) (*MAC, error)
	GenerateMAC(ctx context.Context, ip string) (*MAC, error)
	DeleteMAC(ctx context.Context, ip string) (*MAC, error)
	GetCancellation(ctx context.Context, ip string) (*IPCancellation, error)
	Cancel(ctx context.Context, ip, date string) (*IPCancellation, error)
	WithdrawCancellation(ctx context.Context, ip string) error
}

// SubnetsClient manages subnets.
type SubnetsClient interface {
	List(ctx context.Context) ([]Subnet, error)
	Get(ctx context.Context, ip string) (*Subnet, error)
	UpdateTrafficWarnings(ctx context.Context, ip string, req *TrafficWarnings) (*Subnet, error)
	GetMAC(ctx context.Context, ip string) (*MAC, error)
	GenerateMAC(ctx context.Context, ip string) (*MAC, error)
	DeleteMAC(ctx context.Context, ip string) (*MAC, error)
}

// FailoverClient manages failover IP routing.
type FailoverClient interface {
	List(ctx context.Context) ([]Failover, error)
	Get(ctx context.Context, ip string) (*Failover, error)
	Switch(ctx context.Context, ip, activeServerIP string) (*Failover, error)
	Disable(ctx context.Context, ip string) (*Failover, error)
}

// FirewallClient manages per-server firewalls and firewall templates.
type FirewallClient interface {
	Get(ctx context.Context, serverNumber int) (*Firewall, error)
	Set(ctx context.Context, serverNumber int, req *SetFirewallRequest) (*Firewall, error)
	ApplyTemplate(ctx context.Context, serverNumber int, templateID int) (*Firewall, error)
	Delete(ctx context.Context, serverNumber int) (*Firewall, error)

	ListTemplates(ctx context.Context) ([]FirewallTemplateRef, error)
	GetTemplate(ctx context.Context, templateID int) (*FirewallTemplate, error)
	CreateTemplate(ctx context.Context, req *FirewallTemplateRequest) (*FirewallTemplate, error)
	UpdateTemplate(ctx context.Context, templateID int, req *FirewallTemplateRequest) (*FirewallTemplate, error)
	DeleteTemplate(ctx context.Context, templateID int) error
}

// VSwitchesClient manages vSwitches.
type VSwitchesClient interface {
	List(ctx context.Context) ([]VSwitchRef, error)
	Get(ctx context.Context, id int) (*VSwitch, error)
	Create(ctx context.Context, name string, vlan int) (*VSwitch, error)
	Update(ctx context.Context, id int, name string, vlan int) error
	Cancel(ctx context.Context, id int, cancellationDate string) error
	AddServers(ctx context.Context, id int, serverNumbers []int) error
	RemoveServers(ctx context.Context, id int, serverNumbers []int) error
}

// TrafficClient queries traffic statistics.
type TrafficClient interface {
	Query(ctx context.Context, req *TrafficRequest) (*TrafficData, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a hrobot.Client.
//
// # Authentication
//
// The Robot webservice uses HTTP Basic authentication with dedicated
// webservice credentials (not the account password). Username and Password
// are required; they are attached to every request and are never logged.
// Invalid credentials are not detected locally and surface as a 401 APIError
// on the first call.
//
// # Timeouts and retries
//
// Per-request timeouts are controlled via the context passed to client
// methods. The client never retries on its own: some mutations (server
// cancellation, vSwitch orders) have billing consequences, so retry policy
// belongs to the caller. Setting RetryMax > 0 opts in to transport-level
// retries for idempotent failures, with RetryWaitMin/RetryWaitMax backoff.
type Config struct {
	// Required fields
	// Username: webservice username, e.g. "#ws+XXXXXXXX".
	Username string
	// Password: webservice password.
	Password string

	// Optional configurations
	// BaseURL: overrides DefaultBaseURL, mainly for tests and mocks. A
	// trailing slash is trimmed.
	BaseURL string
	// HTTPClient: custom transport, e.g. for proxies or TLS pinning. When
	// nil, a pooled keep-alive client is used.
	HTTPClient *http.Client
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// RetryMax: maximum number of transport-level retries. Zero (the
	// default) disables retrying entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}

// NewClient creates a new Robot API client.
// Deprecated: Use github.com/hrobot-io/hrobot/pkg/robotclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
