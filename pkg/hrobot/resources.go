package hrobot

import (
	"encoding/json"
	"fmt"
)

// ServerStatus indicates the provisioning state of a dedicated server.
type ServerStatus string

const (
	ServerStatusReady      ServerStatus = "ready"
	ServerStatusInProgress ServerStatus = "in progress"
)

// SubnetRef is a subnet reference as embedded in server payloads.
type SubnetRef struct {
	IP   string `json:"ip"   yaml:"ip"`
	Mask string `json:"mask" yaml:"mask"`
}

// Server represents a dedicated server.
//
// The add-on availability flags (Reset through LinkedStoragebox) are only
// populated when fetching a single server; list responses omit them.
type Server struct {
	ServerIP      string       `json:"server_ip"       yaml:"server_ip"`
	ServerIPv6Net string       `json:"server_ipv6_net" yaml:"server_ipv6_net"`
	ServerNumber  int          `json:"server_number"   yaml:"server_number"`
	Name          string       `json:"server_name"     yaml:"server_name"`
	Product       string       `json:"product"         yaml:"product"`
	DC            string       `json:"dc"              yaml:"dc"`
	Traffic       string       `json:"traffic"         yaml:"traffic"`
	Status        ServerStatus `json:"status"          yaml:"status"`
	Cancelled     bool         `json:"cancelled"       yaml:"cancelled"`
	PaidUntil     string       `json:"paid_until"      yaml:"paid_until"`
	IPs           []string     `json:"ip"              yaml:"ip"`
	Subnets       []SubnetRef  `json:"subnet"          yaml:"subnet"`

	Reset             *bool `json:"reset,omitempty"              yaml:"reset,omitempty"`
	Rescue            *bool `json:"rescue,omitempty"             yaml:"rescue,omitempty"`
	VNC               *bool `json:"vnc,omitempty"                yaml:"vnc,omitempty"`
	Windows           *bool `json:"windows,omitempty"            yaml:"windows,omitempty"`
	Plesk             *bool `json:"plesk,omitempty"              yaml:"plesk,omitempty"`
	CPanel            *bool `json:"cpanel,omitempty"             yaml:"cpanel,omitempty"`
	WOL               *bool `json:"wol,omitempty"                yaml:"wol,omitempty"`
	HotSwap           *bool `json:"hot_swap,omitempty"           yaml:"hot_swap,omitempty"`
	LinkedStoragebox  *int  `json:"linked_storagebox,omitempty"  yaml:"linked_storagebox,omitempty"`
}

// Validate checks that the decoded payload carries the server identity.
func (s *Server) Validate() error {
	if s.ServerNumber == 0 {
		return fmt.Errorf("%w: server_number", ErrMissingField)
	}

	return nil
}

// CancelServerRequest describes a server cancellation order. An empty
// CancellationDate cancels at the earliest possible date ("now").
type CancelServerRequest struct {
	CancellationDate   string `url:"cancellation_date"`
	CancellationReason string `url:"cancellation_reason,omitempty"`
	Reserved           bool   `url:"reserved"`
}

// Cancellation is the cancellation status of a server.
//
// The endpoint returns one of two shapes: a pending cancellation (Cancelled
// true, CancellationDate and CancellationReason set) or the terms under which
// the server could be cancelled (EarliestCancellationDate,
// ReservationPossible, CancellationReasons set). The wire type of
// "cancellation_reason" differs between the two (string vs list), which is
// why this type carries a custom unmarshaller.
type Cancellation struct {
	ServerIP                 string `yaml:"server_ip"`
	ServerNumber             int    `yaml:"server_number"`
	ServerName               string `yaml:"server_name"`
	Cancelled                bool   `yaml:"cancelled"`
	Reserved                 bool   `yaml:"reserved"`
	ReservationPossible      bool   `yaml:"reservation_possible"`
	CancellationDate         string `yaml:"cancellation_date,omitempty"`
	EarliestCancellationDate string `yaml:"earliest_cancellation_date,omitempty"`

	// CancellationReason is the reason attached to a pending cancellation.
	CancellationReason string `yaml:"cancellation_reason,omitempty"`
	// CancellationReasons lists the selectable reasons while not cancelled.
	CancellationReasons []string `yaml:"cancellation_reasons,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Cancellation) UnmarshalJSON(data []byte) error {
	var raw struct {
		ServerIP                 string          `json:"server_ip"`
		ServerNumber             int             `json:"server_number"`
		ServerName               string          `json:"server_name"`
		Cancelled                bool            `json:"cancelled"`
		Reserved                 bool            `json:"reserved"`
		ReservationPossible      bool            `json:"reservation_possible"`
		CancellationDate         *string         `json:"cancellation_date"`
		EarliestCancellationDate *string         `json:"earliest_cancellation_date"`
		CancellationReason       json.RawMessage `json:"cancellation_reason"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshaling cancellation: %w", err)
	}

	c.ServerIP = raw.ServerIP
	c.ServerNumber = raw.ServerNumber
	c.ServerName = raw.ServerName
	c.Cancelled = raw.Cancelled
	c.Reserved = raw.Reserved
	c.ReservationPossible = raw.ReservationPossible

	if raw.CancellationDate != nil {
		c.CancellationDate = *raw.CancellationDate
		c.Cancelled = true
	}

	if raw.EarliestCancellationDate != nil {
		c.EarliestCancellationDate = *raw.EarliestCancellationDate
	}

	if len(raw.CancellationReason) > 0 && string(raw.CancellationReason) != "null" {
		if raw.CancellationReason[0] == '[' {
			err = json.Unmarshal(raw.CancellationReason, &c.CancellationReasons)
		} else {
			err = json.Unmarshal(raw.CancellationReason, &c.CancellationReason)
		}

		if err != nil {
			return fmt.Errorf("unmarshaling cancellation_reason: %w", err)
		}
	}

	return nil
}

// SSHKey represents a stored public SSH key. Data is empty in list responses.
type SSHKey struct {
	Name        string `json:"name"           yaml:"name"`
	Fingerprint string `json:"fingerprint"    yaml:"fingerprint"`
	Type        string `json:"type"           yaml:"type"`
	Size        int    `json:"size"           yaml:"size"`
	Data        string `json:"data,omitempty" yaml:"data,omitempty"`
	CreatedAt   string `json:"created_at"     yaml:"created_at"`
}

// Validate checks that the decoded payload carries the key identity.
func (k *SSHKey) Validate() error {
	if k.Fingerprint == "" {
		return fmt.Errorf("%w: fingerprint", ErrMissingField)
	}

	return nil
}

// ResetType enumerates the supported reset methods.
type ResetType string

const (
	// ResetTypeSoftware sends CTRL+ALT+DEL to the server.
	ResetTypeSoftware ResetType = "sw"
	// ResetTypeHardware presses the hardware reset button.
	ResetTypeHardware ResetType = "hw"
	// ResetTypePower presses the power button.
	ResetTypePower ResetType = "power"
	// ResetTypePowerLong holds the power button down.
	ResetTypePowerLong ResetType = "power_long"
	// ResetTypeManual orders a manual reset by a technician.
	ResetTypeManual ResetType = "man"
)

// ResetOptions lists the reset methods available for a server.
type ResetOptions struct {
	ServerIP        string      `json:"server_ip"        yaml:"server_ip"`
	ServerNumber    int         `json:"server_number"    yaml:"server_number"`
	OperatingStatus string      `json:"operating_status" yaml:"operating_status"`
	Types           []ResetType `json:"type"             yaml:"type"`
}

// BootConfig is the combined boot configuration of a server.
type BootConfig struct {
	Rescue *Rescue `json:"rescue" yaml:"rescue"`
	Linux  *Linux  `json:"linux"  yaml:"linux"`
}

// Rescue is the rescue system configuration of a server.
//
// While inactive, OS is empty and AvailableOS lists the bootable systems;
// once activated, OS names the chosen system and Password carries the root
// password (which the service may null out on later reads).
type Rescue struct {
	ServerIP       string   `yaml:"server_ip"`
	ServerNumber   int      `yaml:"server_number"`
	Active         bool     `yaml:"active"`
	OS             string   `yaml:"os,omitempty"`
	AvailableOS    []string `yaml:"available_os,omitempty"`
	Keyboard       string   `yaml:"keyboard,omitempty"`
	Password       *string  `yaml:"password,omitempty"`
	HostKeys       []string `yaml:"host_key,omitempty"`
	AuthorizedKeys []SSHKey `yaml:"authorized_key,omitempty"`
}

// keyEnvelope is the wrapped key reference inside boot configurations.
type keyEnvelope struct {
	Key SSHKey `json:"key"`
}

// UnmarshalJSON implements json.Unmarshaler. The "os" field is a string on
// an active configuration and a list of choices on an inactive one.
func (r *Rescue) UnmarshalJSON(data []byte) error {
	var raw struct {
		ServerIP      string          `json:"server_ip"`
		ServerNumber  int             `json:"server_number"`
		Active        bool            `json:"active"`
		OS            json.RawMessage `json:"os"`
		Keyboard      string          `json:"keyboard"`
		Password      *string         `json:"password"`
		HostKey       []string        `json:"host_key"`
		AuthorizedKey []keyEnvelope   `json:"authorized_key"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshaling rescue config: %w", err)
	}

	r.ServerIP = raw.ServerIP
	r.ServerNumber = raw.ServerNumber
	r.Active = raw.Active
	r.Keyboard = raw.Keyboard
	r.Password = raw.Password
	r.HostKeys = raw.HostKey

	for _, env := range raw.AuthorizedKey {
		r.AuthorizedKeys = append(r.AuthorizedKeys, env.Key)
	}

	if len(raw.OS) > 0 && string(raw.OS) != "null" {
		if raw.OS[0] == '[' {
			err = json.Unmarshal(raw.OS, &r.AvailableOS)
		} else {
			err = json.Unmarshal(raw.OS, &r.OS)
		}

		if err != nil {
			return fmt.Errorf("unmarshaling rescue os: %w", err)
		}
	}

	return nil
}

// EnableRescueRequest activates the rescue system.
type EnableRescueRequest struct {
	OS             string   `url:"os"`
	AuthorizedKeys []string `url:"authorized_key,brackets,omitempty"`
	Keyboard       string   `url:"keyboard,omitempty"`
}

// Linux is the linux installation configuration of a server. The same
// active/available split as Rescue applies to Dist and Lang.
type Linux struct {
	ServerIP       string   `yaml:"server_ip"`
	ServerNumber   int      `yaml:"server_number"`
	Active         bool     `yaml:"active"`
	Dist           string   `yaml:"dist,omitempty"`
	AvailableDist  []string `yaml:"available_dist,omitempty"`
	Lang           string   `yaml:"lang,omitempty"`
	AvailableLang  []string `yaml:"available_lang,omitempty"`
	Password       *string  `yaml:"password,omitempty"`
	HostKeys       []string `yaml:"host_key,omitempty"`
	AuthorizedKeys []SSHKey `yaml:"authorized_key,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Linux) UnmarshalJSON(data []byte) error {
	var raw struct {
		ServerIP      string          `json:"server_ip"`
		ServerNumber  int             `json:"server_number"`
		Active        bool            `json:"active"`
		Dist          json.RawMessage `json:"dist"`
		Lang          json.RawMessage `json:"lang"`
		Password      *string         `json:"password"`
		HostKey       []string        `json:"host_key"`
		AuthorizedKey []keyEnvelope   `json:"authorized_key"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshaling linux config: %w", err)
	}

	l.ServerIP = raw.ServerIP
	l.ServerNumber = raw.ServerNumber
	l.Active = raw.Active
	l.Password = raw.Password
	l.HostKeys = raw.HostKey

	for _, env := range raw.AuthorizedKey {
		l.AuthorizedKeys = append(l.AuthorizedKeys, env.Key)
	}

	err = decodeStringOrList(raw.Dist, &l.Dist, &l.AvailableDist)
	if err != nil {
		return fmt.Errorf("unmarshaling linux dist: %w", err)
	}

	err = decodeStringOrList(raw.Lang, &l.Lang, &l.AvailableLang)
	if err != nil {
		return fmt.Errorf("unmarshaling linux lang: %w", err)
	}

	return nil
}

// decodeStringOrList decodes a field that is a single string on active
// configurations and a list of choices on inactive ones.
func decodeStringOrList(raw json.RawMessage, single *string, list *[]string) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if raw[0] == '[' {
		return json.Unmarshal(raw, list)
	}

	return json.Unmarshal(raw, single)
}

// EnableLinuxRequest activates a linux installation.
type EnableLinuxRequest struct {
	Dist           string   `url:"dist"`
	Lang           string   `url:"lang"`
	AuthorizedKeys []string `url:"authorized_key,brackets,omitempty"`
}

// ReverseDNS maps an IP address to a PTR record.
type ReverseDNS struct {
	IP  string `json:"ip"  yaml:"ip"`
	PTR string `json:"ptr" yaml:"ptr"`
}

// Validate checks that the decoded payload carries the entry identity.
func (r *ReverseDNS) Validate() error {
	if r.IP == "" {
		return fmt.Errorf("%w: ip", ErrMissingField)
	}

	return nil
}

// IP represents a single IP address. Gateway, Mask and Broadcast are only
// present on IPv4 main addresses; the traffic warning fields only when
// warnings are configured.
type IP struct {
	IP           string  `json:"ip"                     yaml:"ip"`
	ServerIP     string  `json:"server_ip"              yaml:"server_ip"`
	ServerNumber int     `json:"server_number"          yaml:"server_number"`
	Locked       bool    `json:"locked"                 yaml:"locked"`
	SeparateMAC  *string `json:"separate_mac"           yaml:"separate_mac,omitempty"`
	Gateway      string  `json:"gateway,omitempty"      yaml:"gateway,omitempty"`
	Mask         int     `json:"mask,omitempty"         yaml:"mask,omitempty"`
	Broadcast    string  `json:"broadcast,omitempty"    yaml:"broadcast,omitempty"`

	TrafficWarnings *bool `json:"traffic_warnings,omitempty" yaml:"traffic_warnings,omitempty"`
	TrafficHourly   int   `json:"traffic_hourly,omitempty"   yaml:"traffic_hourly,omitempty"`
	TrafficDaily    int   `json:"traffic_daily,omitempty"    yaml:"traffic_daily,omitempty"`
	TrafficMonthly  int   `json:"traffic_monthly,omitempty"  yaml:"traffic_monthly,omitempty"`
}

// Validate checks that the decoded payload carries the address identity.
func (i *IP) Validate() error {
	if i.IP == "" {
		return fmt.Errorf("%w: ip", ErrMissingField)
	}

	return nil
}

// TrafficWarnings configures traffic warning thresholds. Hourly and Daily
// are megabytes, Monthly is gigabytes.
type TrafficWarnings struct {
	Enabled        bool `url:"traffic_warnings"`
	TrafficHourly  int  `url:"traffic_hourly,omitempty"`
	TrafficDaily   int  `url:"traffic_daily,omitempty"`
	TrafficMonthly int  `url:"traffic_monthly,omitempty"`
}

// MAC is a separate MAC address assigned to an additional IP.
type MAC struct {
	IP  string `json:"ip"  yaml:"ip"`
	MAC string `json:"mac" yaml:"mac"`
}

// IPCancellation is the cancellation status of an IP or subnet.
type IPCancellation struct {
	IP                       string  `json:"ip"                         yaml:"ip"`
	ServerNumber             int     `json:"server_number"              yaml:"server_number"`
	EarliestCancellationDate string  `json:"earliest_cancellation_date" yaml:"earliest_cancellation_date"`
	Cancelled                bool    `json:"cancelled"                  yaml:"cancelled"`
	CancellationDate         *string `json:"cancellation_date"          yaml:"cancellation_date,omitempty"`
}

// Subnet represents an IPv4 or IPv6 subnet.
type Subnet struct {
	IP           string `json:"ip"            yaml:"ip"`
	Mask         int    `json:"mask"          yaml:"mask"`
	Gateway      string `json:"gateway"       yaml:"gateway"`
	ServerIP     string `json:"server_ip"     yaml:"server_ip"`
	ServerNumber int    `json:"server_number" yaml:"server_number"`
	Failover     bool   `json:"failover"      yaml:"failover"`
	Locked       bool   `json:"locked"        yaml:"locked"`

	TrafficWarnings *bool `json:"traffic_warnings,omitempty" yaml:"traffic_warnings,omitempty"`
	TrafficHourly   int   `json:"traffic_hourly,omitempty"   yaml:"traffic_hourly,omitempty"`
	TrafficDaily    int   `json:"traffic_daily,omitempty"    yaml:"traffic_daily,omitempty"`
	TrafficMonthly  int   `json:"traffic_monthly,omitempty"  yaml:"traffic_monthly,omitempty"`
}

// Validate checks that the decoded payload carries the subnet identity.
func (s *Subnet) Validate() error {
	if s.IP == "" {
		return fmt.Errorf("%w: ip", ErrMissingField)
	}

	return nil
}

// Failover represents a failover IP and its current routing target.
// ActiveServerIP is nil while routing is disabled.
type Failover struct {
	IP             string  `json:"ip"               yaml:"ip"`
	Mask           int     `json:"mask"             yaml:"mask"`
	ServerIP       string  `json:"server_ip"        yaml:"server_ip"`
	ServerNumber   int     `json:"server_number"    yaml:"server_number"`
	ActiveServerIP *string `json:"active_server_ip" yaml:"active_server_ip,omitempty"`
}

// Validate checks that the decoded payload carries the failover identity.
func (f *Failover) Validate() error {
	if f.IP == "" {
		return fmt.Errorf("%w: ip", ErrMissingField)
	}

	return nil
}

// FirewallStatus indicates the state of a server firewall.
type FirewallStatus string

const (
	FirewallStatusActive    FirewallStatus = "active"
	FirewallStatusInProcess FirewallStatus = "in process"
	FirewallStatusDisabled  FirewallStatus = "disabled"
)

// Firewall rule protocols.
const (
	ProtocolTCP  = "tcp"
	ProtocolUDP  = "udp"
	ProtocolGRE  = "gre"
	ProtocolICMP = "icmp"
	ProtocolIPIP = "ipip"
	ProtocolAH   = "ah"
	ProtocolESP  = "esp"
)

// Firewall rule actions.
const (
	ActionAccept  = "accept"
	ActionDiscard = "discard"
)

// FirewallRule is a single filter rule. All match fields are optional; an
// empty field matches anything. Ports are single values or ranges
// ("80", "32768-65535").
type FirewallRule struct {
	Name      string `json:"name"                 yaml:"name"`
	IPVersion string `json:"ip_version,omitempty" yaml:"ip_version,omitempty"`
	DstIP     string `json:"dst_ip,omitempty"     yaml:"dst_ip,omitempty"`
	SrcIP     string `json:"src_ip,omitempty"     yaml:"src_ip,omitempty"`
	DstPort   string `json:"dst_port,omitempty"   yaml:"dst_port,omitempty"`
	SrcPort   string `json:"src_port,omitempty"   yaml:"src_port,omitempty"`
	Protocol  string `json:"protocol,omitempty"   yaml:"protocol,omitempty"`
	TCPFlags  string `json:"tcp_flags,omitempty"  yaml:"tcp_flags,omitempty"`
	Action    string `json:"action"               yaml:"action"`
}

// FirewallRules groups rules by direction.
type FirewallRules struct {
	Input  []FirewallRule `json:"input"  yaml:"input"`
	Output []FirewallRule `json:"output" yaml:"output"`
}

// Firewall is the filter configuration of a server's switch port.
type Firewall struct {
	ServerIP     string         `json:"server_ip"     yaml:"server_ip"`
	ServerNumber int            `json:"server_number" yaml:"server_number"`
	Status       FirewallStatus `json:"status"        yaml:"status"`
	FilterIPv6   bool           `json:"filter_ipv6"   yaml:"filter_ipv6"`
	WhitelistHOS bool           `json:"whitelist_hos" yaml:"whitelist_hos"`
	Port         string         `json:"port"          yaml:"port"`
	Rules        FirewallRules  `json:"rules"         yaml:"rules"`
}

// SetFirewallRequest replaces the firewall configuration of a server.
type SetFirewallRequest struct {
	Status       FirewallStatus
	FilterIPv6   bool
	WhitelistHOS bool
	Rules        FirewallRules
}

// FirewallTemplateRef is firewall template metadata without the rules.
type FirewallTemplateRef struct {
	ID           int    `json:"id"            yaml:"id"`
	Name         string `json:"name"          yaml:"name"`
	FilterIPv6   bool   `json:"filter_ipv6"   yaml:"filter_ipv6"`
	WhitelistHOS bool   `json:"whitelist_hos" yaml:"whitelist_hos"`
	IsDefault    bool   `json:"is_default"    yaml:"is_default"`
}

// FirewallTemplate is a reusable firewall configuration.
type FirewallTemplate struct {
	ID           int           `json:"id"            yaml:"id"`
	Name         string        `json:"name"          yaml:"name"`
	FilterIPv6   bool          `json:"filter_ipv6"   yaml:"filter_ipv6"`
	WhitelistHOS bool          `json:"whitelist_hos" yaml:"whitelist_hos"`
	IsDefault    bool          `json:"is_default"    yaml:"is_default"`
	Rules        FirewallRules `json:"rules"         yaml:"rules"`
}

// FirewallTemplateRequest creates or replaces a firewall template.
type FirewallTemplateRequest struct {
	Name         string
	FilterIPv6   bool
	WhitelistHOS bool
	IsDefault    bool
	Rules        FirewallRules
}

// VSwitchConnectionStatus indicates the state of a server's vSwitch uplink.
type VSwitchConnectionStatus string

const (
	VSwitchConnectionReady     VSwitchConnectionStatus = "ready"
	VSwitchConnectionInProcess VSwitchConnectionStatus = "in process"
	VSwitchConnectionFailed    VSwitchConnectionStatus = "failed"
)

// VSwitchRef is vSwitch metadata as returned by the list endpoint.
type VSwitchRef struct {
	ID        int    `json:"id"        yaml:"id"`
	Name      string `json:"name"      yaml:"name"`
	VLAN      int    `json:"vlan"      yaml:"vlan"`
	Cancelled bool   `json:"cancelled" yaml:"cancelled"`
}

// Validate checks that the decoded payload carries the vSwitch identity.
func (v *VSwitchRef) Validate() error {
	if v.ID == 0 {
		return fmt.Errorf("%w: id", ErrMissingField)
	}

	return nil
}

// VSwitchServer is a server attached to a vSwitch.
type VSwitchServer struct {
	ServerNumber int                     `json:"server_number" yaml:"server_number"`
	Status       VSwitchConnectionStatus `json:"status"        yaml:"status"`
}

// VSwitchSubnet is a subnet routed to a vSwitch.
type VSwitchSubnet struct {
	IP      string `json:"ip"      yaml:"ip"`
	Mask    int    `json:"mask"    yaml:"mask"`
	Gateway string `json:"gateway" yaml:"gateway"`
}

// VSwitchCloudNetwork is a cloud network connected to a vSwitch.
type VSwitchCloudNetwork struct {
	ID      int    `json:"id"      yaml:"id"`
	IP      string `json:"ip"      yaml:"ip"`
	Mask    int    `json:"mask"    yaml:"mask"`
	Gateway string `json:"gateway" yaml:"gateway"`
}

// VSwitch is a vSwitch with its attached servers and networks.
type VSwitch struct {
	ID            int                   `json:"id"            yaml:"id"`
	Name          string                `json:"name"          yaml:"name"`
	VLAN          int                   `json:"vlan"          yaml:"vlan"`
	Cancelled     bool                  `json:"cancelled"     yaml:"cancelled"`
	Servers       []VSwitchServer       `json:"server"        yaml:"server"`
	Subnets       []VSwitchSubnet       `json:"subnet"        yaml:"subnet"`
	CloudNetworks []VSwitchCloudNetwork `json:"cloud_network" yaml:"cloud_network"`
}

// Validate checks that the decoded payload carries the vSwitch identity.
func (v *VSwitch) Validate() error {
	if v.ID == 0 {
		return fmt.Errorf("%w: id", ErrMissingField)
	}

	return nil
}

// TrafficType selects the aggregation granularity of a traffic query.
type TrafficType string

const (
	// TrafficTypeDay aggregates per hour within a day.
	TrafficTypeDay TrafficType = "day"
	// TrafficTypeMonth aggregates per day within a month.
	TrafficTypeMonth TrafficType = "month"
	// TrafficTypeYear aggregates per month within a year.
	TrafficTypeYear TrafficType = "year"
)

// TrafficRequest queries traffic statistics for a set of addresses.
//
// From and To bound the range in the type's granularity: "2023-07-01T00" and
// "2023-07-01T24" for day queries, "2023-07-01"/"2023-07-31" for month
// queries, "2023-01"/"2023-12" for year queries.
type TrafficRequest struct {
	Type    TrafficType
	From    string
	To      string
	IPs     []string
	Subnets []string
}

// TrafficFlow is the traffic of a single aggregation slot, in gigabytes.
type TrafficFlow struct {
	In  float64 `json:"in"  yaml:"in"`
	Out float64 `json:"out" yaml:"out"`
	Sum float64 `json:"sum" yaml:"sum"`
}

// TrafficData is the result of a traffic query, keyed by address and then by
// aggregation slot ("00".."23" for day, day-of-month for month, month for
// year).
type TrafficData struct {
	Type TrafficType                       `json:"type" yaml:"type"`
	From string                            `json:"from" yaml:"from"`
	To   string                            `json:"to"   yaml:"to"`
	Data map[string]map[string]TrafficFlow `json:"data" yaml:"data"`
}
