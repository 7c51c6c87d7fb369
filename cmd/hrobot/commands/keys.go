package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewKeysCommand creates the SSH keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key", "ssh-keys"},
		Short:   "Manage stored SSH public keys",
	}

	cmd.AddCommand(newKeysListCommand())
	cmd.AddCommand(newKeysGetCommand())
	cmd.AddCommand(newKeysAddCommand())
	cmd.AddCommand(newKeysRenameCommand())
	cmd.AddCommand(newKeysRemoveCommand())

	return cmd
}

func newKeysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			keys, err := client.SSHKeys().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list keys: %w", err)
			}

			return outputKeys(keys)
		},
	}
}

func outputKeys(keys []hrobot.SSHKey) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(keys)
	case OutputFormatYAML:
		return StandardYAMLRenderer(keys)
	default:
		if len(keys) == 0 {
			_, _ = os.Stdout.WriteString("No keys found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Fingerprint", "Type", "Size", "Created")

		for _, key := range keys {
			_ = table.Append(key.Name, key.Fingerprint, key.Type,
				fmt.Sprintf("%d", key.Size), key.CreatedAt)
		}

		_ = table.Render()

		return nil
	}
}

func outputKey(key *hrobot.SSHKey) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(key)
	case OutputFormatYAML:
		return StandardYAMLRenderer(key)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Name", key.Name)
		_ = table.Append("Fingerprint", key.Fingerprint)
		_ = table.Append("Type", key.Type)
		_ = table.Append("Size", fmt.Sprintf("%d", key.Size))
		_ = table.Append("Created", key.CreatedAt)
		_ = table.Render()

		return nil
	}
}

func newKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FINGERPRINT",
		Short: "Get a stored SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			key, err := client.SSHKeys().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get key: %w", err)
			}

			return outputKey(key)
		},
	}
}

func newKeysAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME FILE",
		Short: "Store a new SSH public key",
		Long:  "Store the OpenSSH public key read from FILE under the given name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read key file: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			key, err := client.SSHKeys().Create(ctx, args[0], strings.TrimSpace(string(data)))
			if err != nil {
				return fmt.Errorf("failed to store key: %w", err)
			}

			return outputKey(key)
		},
	}
}

func newKeysRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename FINGERPRINT NAME",
		Short: "Rename a stored SSH key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			key, err := client.SSHKeys().Rename(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to rename key: %w", err)
			}

			fmt.Printf("Renamed key %s to '%s'\n", key.Fingerprint, key.Name)

			return nil
		},
	}
}

func newKeysRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove FINGERPRINT",
		Aliases: []string{"delete"},
		Short:   "Remove a stored SSH key",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.SSHKeys().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to remove key: %w", err)
			}

			fmt.Printf("Removed key %s\n", args[0])

			return nil
		},
	}
}
