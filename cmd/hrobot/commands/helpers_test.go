package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerNumber(t *testing.T) {
	number, err := parseServerNumber("321")
	require.NoError(t, err)
	assert.Equal(t, 321, number)

	_, err = parseServerNumber("server-321")
	require.Error(t, err)
}

func TestCreateClient_RequiresCredentials(t *testing.T) {
	viper.Reset()

	_, err := CreateClient()
	require.ErrorIs(t, err, ErrNotLoggedIn)

	viper.Set("username", "#ws+test")

	_, err = CreateClient()
	require.ErrorIs(t, err, ErrNotLoggedIn)

	viper.Set("password", "test-password")

	client, err := CreateClient()
	require.NoError(t, err)
	assert.NotNil(t, client)

	viper.Reset()
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	viper.Set("username", "#ws+test")
	viper.Set("base_url", "https://example.com")
	viper.Set("output", "json")

	config := loadConfig()
	assert.Equal(t, "#ws+test", config.Username)
	assert.Equal(t, "https://example.com", config.BaseURL)
	assert.Equal(t, "json", config.Output)
	assert.Empty(t, config.Password)

	viper.Reset()
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))

	assert.Equal(t, "-", yesNoPtr(nil))

	enabled := true
	assert.Equal(t, "yes", yesNoPtr(&enabled))

	assert.Equal(t, "-", stringPtr(nil))

	mac := "00:21:85:62:3e:9c"
	assert.Equal(t, mac, stringPtr(&mac))
}
