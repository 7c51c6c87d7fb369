package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/hrobot-io/hrobot/pkg/robotclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output format constants.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const yamlIndent = 2

// Static errors for err113 compliance.
var (
	ErrNotLoggedIn = errors.New(
		"webservice credentials are not configured, run 'hrobot login' or set HROBOT_USERNAME and HROBOT_PASSWORD")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrPasswordViaLogin   = errors.New("the password is only stored via 'hrobot login'")
	ErrRulesFileRequired  = errors.New("a rules file is required")
	ErrNoAddressSelected  = errors.New("at least one --ip or --subnet is required")
	ErrInvalidResetType   = errors.New("invalid reset type")
	ErrInvalidTrafficType = errors.New("invalid traffic type")
)

// CreateClient builds a Robot client from the effective CLI configuration.
// Credentials come from the config file, environment variables or flags, in
// viper's usual precedence order.
func CreateClient() (hrobot.Client, error) {
	username := viper.GetString("username")
	password := viper.GetString("password")

	if username == "" || password == "" {
		return nil, ErrNotLoggedIn
	}

	client, err := robotclient.New(&hrobot.Config{
		Username: username,
		Password: password,
		BaseURL:  viper.GetString("base_url"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// parseServerNumber parses a positional server number argument.
func parseServerNumber(arg string) (int, error) {
	number, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid server number %q: %w", arg, err)
	}

	return number, nil
}

// parseID parses a positional numeric ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}

	return id, nil
}

// yesNo renders a boolean for table cells.
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// yesNoPtr renders an optional boolean for table cells.
func yesNoPtr(value *bool) string {
	if value == nil {
		return "-"
	}

	return yesNo(*value)
}

// stringPtr renders an optional string for table cells.
func stringPtr(value *string) string {
	if value == nil {
		return "-"
	}

	return *value
}
