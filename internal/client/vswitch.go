package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hrobot-io/hrobot/internal/form"
	"github.com/hrobot-io/hrobot/internal/http"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// VSwitchesClient implements hrobot.VSwitchesClient. The vSwitch family is
// the one part of the webservice that skips the single-key envelope
// convention, so every payload here decodes bare.
type VSwitchesClient struct {
	httpClient *http.Client
}

// NewVSwitchesClient creates a new vSwitches client.
func NewVSwitchesClient(httpClient *http.Client) *VSwitchesClient {
	return &VSwitchesClient{
		httpClient: httpClient,
	}
}

func vswitchPath(id int) string {
	return "/vswitch/" + strconv.Itoa(id)
}

// List implements hrobot.VSwitchesClient.List.
func (c *VSwitchesClient) List(ctx context.Context) ([]hrobot.VSwitchRef, error) {
	resp, err := c.httpClient.Get(ctx, "/vswitch", nil)
	if err != nil {
		return nil, fmt.Errorf("listing vswitches: %w", err)
	}

	return decodeBareList[hrobot.VSwitchRef](resp.Body)
}

// Get implements hrobot.VSwitchesClient.Get.
func (c *VSwitchesClient) Get(ctx context.Context, id int) (*hrobot.VSwitch, error) {
	resp, err := c.httpClient.Get(ctx, vswitchPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting vswitch: %w", err)
	}

	var vswitch hrobot.VSwitch

	err = decodeBare(resp.Body, &vswitch)
	if err != nil {
		return nil, err
	}

	return &vswitch, nil
}

func vswitchBody(name string, vlan int) (string, error) {
	body, err := form.Encode(struct {
		Name string `url:"name"`
		VLAN int    `url:"vlan"`
	}{Name: name, VLAN: vlan})
	if err != nil {
		return "", &hrobot.EncodeError{Err: err}
	}

	return body, nil
}

// Create implements hrobot.VSwitchesClient.Create.
func (c *VSwitchesClient) Create(ctx context.Context, name string, vlan int) (*hrobot.VSwitch, error) {
	body, err := vswitchBody(name, vlan)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/vswitch", body)
	if err != nil {
		return nil, fmt.Errorf("creating vswitch: %w", err)
	}

	var vswitch hrobot.VSwitch

	err = decodeBare(resp.Body, &vswitch)
	if err != nil {
		return nil, err
	}

	return &vswitch, nil
}

// Update implements hrobot.VSwitchesClient.Update.
func (c *VSwitchesClient) Update(ctx context.Context, id int, name string, vlan int) error {
	body, err := vswitchBody(name, vlan)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(ctx, vswitchPath(id), body)
	if err != nil {
		return fmt.Errorf("updating vswitch: %w", err)
	}

	return expectEmpty(resp.Body)
}

// Cancel implements hrobot.VSwitchesClient.Cancel.
func (c *VSwitchesClient) Cancel(ctx context.Context, id int, cancellationDate string) error {
	body, err := form.Encode(struct {
		Date string `url:"cancellation_date"`
	}{Date: cancellationDate})
	if err != nil {
		return &hrobot.EncodeError{Err: err}
	}

	resp, err := c.httpClient.Delete(ctx, vswitchPath(id), body)
	if err != nil {
		return fmt.Errorf("cancelling vswitch: %w", err)
	}

	return expectEmpty(resp.Body)
}

// serverListBody produces the repeated bracket key form the endpoint
// expects: server[]=1&server[]=2&server[]=3, in argument order.
func serverListBody(serverNumbers []int) string {
	builder := form.NewBuilder()
	for _, serverNumber := range serverNumbers {
		builder.Set("server[]", serverNumber)
	}

	return builder.Encode()
}

// AddServers implements hrobot.VSwitchesClient.AddServers.
func (c *VSwitchesClient) AddServers(ctx context.Context, id int, serverNumbers []int) error {
	resp, err := c.httpClient.Post(ctx, vswitchPath(id)+"/server", serverListBody(serverNumbers))
	if err != nil {
		return fmt.Errorf("adding vswitch servers: %w", err)
	}

	return expectEmpty(resp.Body)
}

// RemoveServers implements hrobot.VSwitchesClient.RemoveServers.
func (c *VSwitchesClient) RemoveServers(ctx context.Context, id int, serverNumbers []int) error {
	resp, err := c.httpClient.Delete(ctx, vswitchPath(id)+"/server", serverListBody(serverNumbers))
	if err != nil {
		return fmt.Errorf("removing vswitch servers: %w", err)
	}

	return expectEmpty(resp.Body)
}
