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

// NewFailoverCommand creates the failover command group.
func NewFailoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "failover",
		Short: "Manage failover IPs",
		Long:  "List failover IPs and switch their routing between servers",
	}

	cmd.AddCommand(newFailoverListCommand())
	cmd.AddCommand(newFailoverGetCommand())
	cmd.AddCommand(newFailoverSwitchCommand())
	cmd.AddCommand(newFailoverDisableCommand())

	return cmd
}

func outputFailovers(failovers []hrobot.Failover) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(failovers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(failovers)
	default:
		if len(failovers) == 0 {
			_, _ = os.Stdout.WriteString("No failover IPs found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("IP", "Mask", "Booked On", "Routed To")

		for _, failover := range failovers {
			_ = table.Append(
				failover.IP,
				fmt.Sprintf("%d", failover.Mask),
				failover.ServerIP,
				stringPtr(failover.ActiveServerIP))
		}

		_ = table.Render()

		return nil
	}
}

func newFailoverListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List failover IPs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			failovers, err := client.Failover().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list failover IPs: %w", err)
			}

			return outputFailovers(failovers)
		},
	}
}

func newFailoverGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IP",
		Short: "Get a failover IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			failover, err := client.Failover().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get failover IP: %w", err)
			}

			return outputFailovers([]hrobot.Failover{*failover})
		},
	}
}

func newFailoverSwitchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "switch IP TARGET_SERVER_IP",
		Short: "Switch failover routing to another server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			failover, err := client.Failover().Switch(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to switch failover routing: %w", err)
			}

			fmt.Printf("Failover %s now routes to %s\n", failover.IP, stringPtr(failover.ActiveServerIP))

			return nil
		},
	}
}

func newFailoverDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable IP",
		Short: "Disable failover routing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			failover, err := client.Failover().Disable(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to disable failover routing: %w", err)
			}

			fmt.Printf("Disabled routing of failover %s\n", failover.IP)

			return nil
		},
	}
}
