package hrobot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellation_UnmarshalJSON(t *testing.T) {
	t.Run("cancellable terms", func(t *testing.T) {
		var cancellation Cancellation

		err := json.Unmarshal([]byte(`{
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"server_name": "server1",
			"earliest_cancellation_date": "2025-10-31",
			"cancelled": false,
			"reservation_possible": true,
			"reserved": false,
			"cancellation_date": null,
			"cancellation_reason": ["Upgrade to a new server", "Server no longer necessary"]
		}`), &cancellation)
		require.NoError(t, err)
		assert.False(t, cancellation.Cancelled)
		assert.Equal(t, "2025-10-31", cancellation.EarliestCancellationDate)
		assert.Empty(t, cancellation.CancellationDate)
		assert.Empty(t, cancellation.CancellationReason)
		assert.Len(t, cancellation.CancellationReasons, 2)
	})

	t.Run("pending cancellation", func(t *testing.T) {
		var cancellation Cancellation

		err := json.Unmarshal([]byte(`{
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"server_name": "server1",
			"cancelled": true,
			"reserved": true,
			"cancellation_date": "2025-10-31",
			"cancellation_reason": "Server no longer necessary"
		}`), &cancellation)
		require.NoError(t, err)
		assert.True(t, cancellation.Cancelled)
		assert.True(t, cancellation.Reserved)
		assert.Equal(t, "2025-10-31", cancellation.CancellationDate)
		assert.Equal(t, "Server no longer necessary", cancellation.CancellationReason)
		assert.Empty(t, cancellation.CancellationReasons)
	})

	t.Run("null reason", func(t *testing.T) {
		var cancellation Cancellation

		err := json.Unmarshal([]byte(`{
			"server_number": 321,
			"cancelled": true,
			"cancellation_date": "2025-10-31",
			"cancellation_reason": null
		}`), &cancellation)
		require.NoError(t, err)
		assert.Empty(t, cancellation.CancellationReason)
		assert.Empty(t, cancellation.CancellationReasons)
	})
}

func TestRescue_UnmarshalJSON(t *testing.T) {
	t.Run("inactive", func(t *testing.T) {
		var rescue Rescue

		err := json.Unmarshal([]byte(`{
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"active": false,
			"os": ["linux", "linuxold", "vkvm"],
			"password": null
		}`), &rescue)
		require.NoError(t, err)
		assert.False(t, rescue.Active)
		assert.Empty(t, rescue.OS)
		assert.Equal(t, []string{"linux", "linuxold", "vkvm"}, rescue.AvailableOS)
		assert.Nil(t, rescue.Password)
	})

	t.Run("active", func(t *testing.T) {
		var rescue Rescue

		err := json.Unmarshal([]byte(`{
			"server_ip": "123.123.123.123",
			"server_number": 321,
			"active": true,
			"os": "linux",
			"password": "jEt3dtUvomlyOwRr",
			"host_key": ["ed25519 SHA256:aGVsbG8K"],
			"authorized_key": [{"key": {"name": "deploy", "fingerprint": "aa:bb", "type": "ED25519", "size": 256}}]
		}`), &rescue)
		require.NoError(t, err)
		assert.True(t, rescue.Active)
		assert.Equal(t, "linux", rescue.OS)
		assert.Empty(t, rescue.AvailableOS)
		require.NotNil(t, rescue.Password)
		require.Len(t, rescue.AuthorizedKeys, 1)
		assert.Equal(t, "aa:bb", rescue.AuthorizedKeys[0].Fingerprint)
		assert.Len(t, rescue.HostKeys, 1)
	})
}

func TestLinux_UnmarshalJSON(t *testing.T) {
	t.Run("inactive", func(t *testing.T) {
		var linux Linux

		err := json.Unmarshal([]byte(`{
			"server_number": 321,
			"active": false,
			"dist": ["Debian 12 base", "Ubuntu 24.04 LTS base"],
			"lang": ["en", "de"]
		}`), &linux)
		require.NoError(t, err)
		assert.Empty(t, linux.Dist)
		assert.Len(t, linux.AvailableDist, 2)
		assert.Equal(t, []string{"en", "de"}, linux.AvailableLang)
	})

	t.Run("active", func(t *testing.T) {
		var linux Linux

		err := json.Unmarshal([]byte(`{
			"server_number": 321,
			"active": true,
			"dist": "Debian 12 base",
			"lang": "en",
			"password": "jEt3dtUvomlyOwRr"
		}`), &linux)
		require.NoError(t, err)
		assert.Equal(t, "Debian 12 base", linux.Dist)
		assert.Equal(t, "en", linux.Lang)
		assert.Empty(t, linux.AvailableDist)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Server{ServerNumber: 321}).Validate())
	assert.ErrorIs(t, (&Server{}).Validate(), ErrMissingField)

	assert.NoError(t, (&SSHKey{Fingerprint: "aa:bb"}).Validate())
	assert.ErrorIs(t, (&SSHKey{}).Validate(), ErrMissingField)

	assert.NoError(t, (&VSwitch{ID: 421}).Validate())
	assert.ErrorIs(t, (&VSwitchRef{}).Validate(), ErrMissingField)

	assert.ErrorIs(t, (&IP{}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&Subnet{}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&Failover{}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&ReverseDNS{}).Validate(), ErrMissingField)
}
