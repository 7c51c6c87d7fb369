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

// NewSubnetCommand creates the subnet command group.
func NewSubnetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subnet",
		Aliases: []string{"subnets"},
		Short:   "Manage subnets",
	}

	cmd.AddCommand(newSubnetListCommand())
	cmd.AddCommand(newSubnetGetCommand())
	cmd.AddCommand(newSubnetWarningsCommand())
	cmd.AddCommand(newSubnetMACCommand())

	return cmd
}

func newSubnetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all subnets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			subnets, err := client.Subnets().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list subnets: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(subnets)
			case OutputFormatYAML:
				return StandardYAMLRenderer(subnets)
			default:
				if len(subnets) == 0 {
					_, _ = os.Stdout.WriteString("No subnets found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Subnet", "Mask", "Gateway", "Server", "Failover", "Locked")

				for _, subnet := range subnets {
					_ = table.Append(
						subnet.IP,
						fmt.Sprintf("%d", subnet.Mask),
						subnet.Gateway,
						fmt.Sprintf("%d", subnet.ServerNumber),
						yesNo(subnet.Failover),
						yesNo(subnet.Locked))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func outputSubnet(subnet *hrobot.Subnet) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(subnet)
	case OutputFormatYAML:
		return StandardYAMLRenderer(subnet)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Subnet", subnet.IP)
		_ = table.Append("Mask", fmt.Sprintf("%d", subnet.Mask))
		_ = table.Append("Gateway", subnet.Gateway)
		_ = table.Append("Server", fmt.Sprintf("%d", subnet.ServerNumber))
		_ = table.Append("Server IP", subnet.ServerIP)
		_ = table.Append("Failover", yesNo(subnet.Failover))
		_ = table.Append("Locked", yesNo(subnet.Locked))
		_ = table.Append("Traffic Warnings", yesNoPtr(subnet.TrafficWarnings))
		_ = table.Render()

		return nil
	}
}

func newSubnetGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IP",
		Short: "Get details of a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			subnet, err := client.Subnets().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get subnet: %w", err)
			}

			return outputSubnet(subnet)
		},
	}
}

func newSubnetWarningsCommand() *cobra.Command {
	var (
		enabled bool
		hourly  int
		daily   int
		monthly int
	)

	cmd := &cobra.Command{
		Use:   "warnings IP",
		Short: "Configure traffic warnings for a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			subnet, err := client.Subnets().UpdateTrafficWarnings(ctx, args[0], &hrobot.TrafficWarnings{
				Enabled:        enabled,
				TrafficHourly:  hourly,
				TrafficDaily:   daily,
				TrafficMonthly: monthly,
			})
			if err != nil {
				return fmt.Errorf("failed to update traffic warnings: %w", err)
			}

			return outputSubnet(subnet)
		},
	}

	cmd.Flags().BoolVar(&enabled, "enabled", true, "enable traffic warnings")
	cmd.Flags().IntVar(&hourly, "hourly", 0, "hourly threshold in MB")
	cmd.Flags().IntVar(&daily, "daily", 0, "daily threshold in MB")
	cmd.Flags().IntVar(&monthly, "monthly", 0, "monthly threshold in GB")

	return cmd
}

func newSubnetMACCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mac",
		Short: "Manage separate MAC addresses of subnets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show IP",
		Short: "Show the separate MAC address of a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMACCommand(args[0], func(ctx context.Context, client hrobot.Client, ip string) (*hrobot.MAC, error) {
				return client.Subnets().GetMAC(ctx, ip)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "generate IP",
		Short: "Generate a separate MAC address for a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMACCommand(args[0], func(ctx context.Context, client hrobot.Client, ip string) (*hrobot.MAC, error) {
				return client.Subnets().GenerateMAC(ctx, ip)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove IP",
		Short: "Remove the separate MAC address of a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMACCommand(args[0], func(ctx context.Context, client hrobot.Client, ip string) (*hrobot.MAC, error) {
				return client.Subnets().DeleteMAC(ctx, ip)
			})
		},
	})

	return cmd
}
