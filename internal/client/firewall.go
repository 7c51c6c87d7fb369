package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// FirewallClient implements hrobot.FirewallClient.
type FirewallClient struct {
	httpClient *http.Client
}

// NewFirewallClient creates a new firewall client.
func NewFirewallClient(httpClient *http.Client) *FirewallClient {
	return &FirewallClient{
		httpClient: httpClient,
	}
}

func firewallPath(serverNumber int) string {
	return "/firewall/" + strconv.Itoa(serverNumber)
}

func templatePath(templateID int) string {
	return "/firewall/template/" + strconv.Itoa(templateID)
}

// encodeRules writes the indexed bracket encoding the endpoint expects:
// rules[input][0][name]=..., rules[input][0][action]=..., rules[output][0]...
func encodeRules(builder *form.Builder, rules hrobot.FirewallRules) {
	scope := builder.Child("rules")

	input := scope.Child("input")
	for i, rule := range rules.Input {
		encodeRule(input.Child(strconv.Itoa(i)), rule)
	}

	output := scope.Child("output")
	for i, rule := range rules.Output {
		encodeRule(output.Child(strconv.Itoa(i)), rule)
	}
}

func encodeRule(builder *form.Builder, rule hrobot.FirewallRule) {
	if rule.IPVersion != "" {
		builder.Set("ip_version", rule.IPVersion)
	}

	builder.Set("name", rule.Name)

	if rule.DstIP != "" {
		builder.Set("dst_ip", rule.DstIP)
	}

	if rule.SrcIP != "" {
		builder.Set("src_ip", rule.SrcIP)
	}

	if rule.DstPort != "" {
		builder.Set("dst_port", rule.DstPort)
	}

	if rule.SrcPort != "" {
		builder.Set("src_port", rule.SrcPort)
	}

	if rule.Protocol != "" {
		builder.Set("protocol", rule.Protocol)
	}

	if rule.TCPFlags != "" {
		builder.Set("tcp_flags", rule.TCPFlags)
	}

	builder.Set("action", rule.Action)
}

// Get implements hrobot.FirewallClient.Get.
func (c *FirewallClient) Get(ctx context.Context, serverNumber int) (*hrobot.Firewall, error) {
	resp, err := c.httpClient.Get(ctx, firewallPath(serverNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("getting firewall: %w", err)
	}

	return decodeSingle[hrobot.Firewall](resp.Body, "firewall")
}

// Set implements hrobot.FirewallClient.Set.
func (c *FirewallClient) Set(ctx context.Context, serverNumber int, req *hrobot.SetFirewallRequest) (*hrobot.Firewall, error) {
	builder := form.NewBuilder()
	builder.Set("status", string(req.Status))
	builder.Set("filter_ipv6", req.FilterIPv6)
	builder.Set("whitelist_hos", req.WhitelistHOS)
	encodeRules(builder, req.Rules)

	resp, err := c.httpClient.Post(ctx, firewallPath(serverNumber), builder.Encode())
	if err != nil {
		return nil, fmt.Errorf("setting firewall: %w", err)
	}

	return decodeSingle[hrobot.Firewall](resp.Body, "firewall")
}

// ApplyTemplate implements hrobot.FirewallClient.ApplyTemplate.
func (c *FirewallClient) ApplyTemplate(ctx context.Context, serverNumber int, templateID int) (*hrobot.Firewall, error) {
	body, err := form.Encode(struct {
		TemplateID int `url:"template_id"`
	}{TemplateID: templateID})
	if err != nil {
		return nil, &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Post(ctx, firewallPath(serverNumber), body)
	if err != nil {
		return nil, fmt.Errorf("applying firewall template: %w", err)
	}

	return decodeSingle[hrobot.Firewall](resp.Body, "firewall")
}

// Delete implements hrobot.FirewallClient.Delete. The response reports the
// firewall transitioning to "in process" while the rules are cleared.
func (c *FirewallClient) Delete(ctx context.Context, serverNumber int) (*hrobot.Firewall, error) {
	resp, err := c.httpClient.Delete(ctx, firewallPath(serverNumber), "")
	if err != nil {
		return nil, fmt.Errorf("deleting firewall: %w", err)
	}

	return decodeSingle[hrobot.Firewall](resp.Body, "firewall")
}

// ListTemplates implements hrobot.FirewallClient.ListTemplates.
func (c *FirewallClient) ListTemplates(ctx context.Context) ([]hrobot.FirewallTemplateRef, error) {
	resp, err := c.httpClient.Get(ctx, "/firewall/template", nil)
	if err != nil {
		return nil, fmt.Errorf("listing firewall templates: %w", err)
	}

	return decodeList[hrobot.FirewallTemplateRef](resp.Body, "firewall_template")
}

// GetTemplate implements hrobot.FirewallClient.GetTemplate.
func (c *FirewallClient) GetTemplate(ctx context.Context, templateID int) (*hrobot.FirewallTemplate, error) {
	resp, err := c.httpClient.Get(ctx, templatePath(templateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting firewall template: %w", err)
	}

	return decodeSingle[hrobot.FirewallTemplate](resp.Body, "firewall_template")
}

func templateBody(req *hrobot.FirewallTemplateRequest) string {
	builder := form.NewBuilder()
	builder.Set("name", req.Name)
	builder.Set("filter_ipv6", req.FilterIPv6)
	builder.Set("whitelist_hos", req.WhitelistHOS)
	builder.Set("is_default", req.IsDefault)
	encodeRules(builder, req.Rules)

	return builder.Encode()
}

// CreateTemplate implements hrobot.FirewallClient.CreateTemplate.
func (c *FirewallClient) CreateTemplate(ctx context.Context, req *hrobot.FirewallTemplateRequest) (*hrobot.FirewallTemplate, error) {
	resp, err := c.httpClient.Post(ctx, "/firewall/template", templateBody(req))
	if err != nil {
		return nil, fmt.Errorf("creating firewall template: %w", err)
	}

	return decodeSingle[hrobot.FirewallTemplate](resp.Body, "firewall_template")
}

// UpdateTemplate implements hrobot.FirewallClient.UpdateTemplate.
func (c *FirewallClient) UpdateTemplate(ctx context.Context, templateID int, req *hrobot.FirewallTemplateRequest) (*hrobot.FirewallTemplate, error) {
	resp, err := c.httpClient.Post(ctx, templatePath(templateID), templateBody(req))
	if err != nil {
		return nil, fmt.Errorf("updating firewall template: %w", err)
	}

	return decodeSingle[hrobot.FirewallTemplate](resp.Body, "firewall_template")
}

// DeleteTemplate implements hrobot.FirewallClient.DeleteTemplate.
func (c *FirewallClient) DeleteTemplate(ctx context.Context, templateID int) error {
	resp, err := c.httpClient.Delete(ctx, templatePath(templateID), "")
	if err != nil {
		return fmt.Errorf("deleting firewall template: %w", err)
	}

	return expectEmpty(resp.Body)
}
