package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRDNSCommand creates the reverse DNS command group.
func NewRDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rdns",
		Short: "Manage reverse DNS entries",
	}

	cmd.AddCommand(newRDNSListCommand())
	cmd.AddCommand(newRDNSGetCommand())
	cmd.AddCommand(newRDNSCreateCommand())
	cmd.AddCommand(newRDNSUpdateCommand())
	cmd.AddCommand(newRDNSDeleteCommand())

	return cmd
}

func outputRDNSEntries(entries []hrobot.ReverseDNS) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(entries)
	case OutputFormatYAML:
		return StandardYAMLRenderer(entries)
	default:
		if len(entries) == 0 {
			_, _ = os.Stdout.WriteString("No reverse DNS entries found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("IP", "PTR")

		for _, entry := range entries {
			_ = table.Append(entry.IP, entry.PTR)
		}

		_ = table.Render()

		return nil
	}
}

func newRDNSListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reverse DNS entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			entries, err := client.ReverseDNS().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list reverse DNS entries: %w", err)
			}

			return outputRDNSEntries(entries)
		},
	}
}

func newRDNSGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IP",
		Short: "Get the reverse DNS entry of an IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			entry, err := client.ReverseDNS().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get reverse DNS entry: %w", err)
			}

			return outputRDNSEntries([]hrobot.ReverseDNS{*entry})
		},
	}
}

func newRDNSCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create IP PTR",
		Short: "Create a reverse DNS entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			entry, err := client.ReverseDNS().Create(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to create reverse DNS entry: %w", err)
			}

			fmt.Printf("Created reverse DNS entry %s -> %s\n", entry.IP, entry.PTR)

			return nil
		},
	}
}

func newRDNSUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update IP PTR",
		Short: "Update a reverse DNS entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			entry, err := client.ReverseDNS().Update(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to update reverse DNS entry: %w", err)
			}

			fmt.Printf("Updated reverse DNS entry %s -> %s\n", entry.IP, entry.PTR)

			return nil
		},
	}
}

func newRDNSDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete IP",
		Short: "Delete a reverse DNS entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.ReverseDNS().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete reverse DNS entry: %w", err)
			}

			fmt.Printf("Deleted reverse DNS entry for %s\n", args[0])

			return nil
		},
	}
}
