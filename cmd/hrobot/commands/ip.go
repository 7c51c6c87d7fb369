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

// NewIPCommand creates the IP command group.
func NewIPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ip",
		Aliases: []string{"ips"},
		Short:   "Manage single IP addresses",
	}

	cmd.AddCommand(newIPListCommand())
	cmd.AddCommand(newIPGetCommand())
	cmd.AddCommand(newIPWarningsCommand())
	cmd.AddCommand(newIPMACCommand())
	cmd.AddCommand(newIPCancellationCommand())
	cmd.AddCommand(newIPCancelCommand())
	cmd.AddCommand(newIPWithdrawCommand())

	return cmd
}

func newIPListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all single IP addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			ips, err := client.IPs().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list IPs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(ips)
			case OutputFormatYAML:
				return StandardYAMLRenderer(ips)
			default:
				if len(ips) == 0 {
					_, _ = os.Stdout.WriteString("No IPs found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("IP", "Server", "Locked", "Separate MAC", "Traffic Warnings")

				for _, address := range ips {
					_ = table.Append(
						address.IP,
						fmt.Sprintf("%d", address.ServerNumber),
						yesNo(address.Locked),
						stringPtr(address.SeparateMAC),
						yesNoPtr(address.TrafficWarnings))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func outputIP(address *hrobot.IP) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(address)
	case OutputFormatYAML:
		return StandardYAMLRenderer(address)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("IP", address.IP)
		_ = table.Append("Server", fmt.Sprintf("%d", address.ServerNumber))
		_ = table.Append("Server IP", address.ServerIP)
		_ = table.Append("Locked", yesNo(address.Locked))
		_ = table.Append("Separate MAC", stringPtr(address.SeparateMAC))

		if address.Gateway != "" {
			_ = table.Append("Gateway", address.Gateway)
			_ = table.Append("Mask", fmt.Sprintf("%d", address.Mask))
			_ = table.Append("Broadcast", address.Broadcast)
		}

		_ = table.Append("Traffic Warnings", yesNoPtr(address.TrafficWarnings))
		_ = table.Render()

		return nil
	}
}

func newIPGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IP",
		Short: "Get details of a single IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			address, err := client.IPs().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get IP: %w", err)
			}

			return outputIP(address)
		},
	}
}

func newIPWarningsCommand() *cobra.Command {
	var (
		enabled bool
		hourly  int
		daily   int
		monthly int
	)

	cmd := &cobra.Command{
		Use:   "warnings IP",
		Short: "Configure traffic warnings for an IP",
		Long:  "Configure traffic warning thresholds; hourly and daily are MB, monthly is GB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			address, err := client.IPs().UpdateTrafficWarnings(ctx, args[0], &hrobot.TrafficWarnings{
				Enabled:        enabled,
				TrafficHourly:  hourly,
				TrafficDaily:   daily,
				TrafficMonthly: monthly,
			})
			if err != nil {
				return fmt.Errorf("failed to update traffic warnings: %w", err)
			}

			return outputIP(address)
		},
	}

	cmd.Flags().BoolVar(&enabled, "enabled", true, "enable traffic warnings")
	cmd.Flags().IntVar(&hourly, "hourly", 0, "hourly threshold in MB")
	cmd.Flags().IntVar(&daily, "daily", 0, "daily threshold in MB")
	cmd.Flags().IntVar(&monthly, "monthly", 0, "monthly threshold in GB")

	return cmd
}

func newIPMACCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mac",
		Short: "Manage separate MAC addresses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show IP",
		Short: "Show the separate MAC address of an IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMACCommand(args[0], func(ctx context.Context, client hrobot.Client, ip string) (*hrobot.MAC, error) {
				return client.IPs().GetMAC(ctx, ip)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "generate IP",
		Short: "Generate a separate MAC address for an IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMACCommand(args[0], func(ctx context.Context, client hrobot.Client, ip string) (*hrobot.MAC, error) {
				return client.IPs().GenerateMAC(ctx, ip)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove IP",
		Short: "Remove the separate MAC address of an IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMACCommand(args[0], func(ctx context.Context, client hrobot.Client, ip string) (*hrobot.MAC, error) {
				return client.IPs().DeleteMAC(ctx, ip)
			})
		},
	})

	return cmd
}

func runMACCommand(ip string, operation func(context.Context, hrobot.Client, string) (*hrobot.MAC, error)) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	mac, err := operation(ctx, client, ip)
	if err != nil {
		return fmt.Errorf("failed MAC operation: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(mac)
	case OutputFormatYAML:
		return StandardYAMLRenderer(mac)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("IP", "MAC")
		_ = table.Append(mac.IP, mac.MAC)
		_ = table.Render()

		return nil
	}
}

func outputIPCancellation(cancellation *hrobot.IPCancellation) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(cancellation)
	case OutputFormatYAML:
		return StandardYAMLRenderer(cancellation)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("IP", cancellation.IP)
		_ = table.Append("Server", fmt.Sprintf("%d", cancellation.ServerNumber))
		_ = table.Append("Cancelled", yesNo(cancellation.Cancelled))
		_ = table.Append("Cancellation Date", stringPtr(cancellation.CancellationDate))
		_ = table.Append("Earliest Date", cancellation.EarliestCancellationDate)
		_ = table.Render()

		return nil
	}
}

func newIPCancellationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancellation IP",
		Short: "Show the cancellation status of an IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			cancellation, err := client.IPs().GetCancellation(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get cancellation status: %w", err)
			}

			return outputIPCancellation(cancellation)
		},
	}
}

func newIPCancelCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "cancel IP",
		Short: "Cancel an IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			cancellation, err := client.IPs().Cancel(ctx, args[0], date)
			if err != nil {
				return fmt.Errorf("failed to cancel IP: %w", err)
			}

			return outputIPCancellation(cancellation)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "cancellation date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newIPWithdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw IP",
		Short: "Withdraw a pending IP cancellation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.IPs().WithdrawCancellation(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to withdraw cancellation: %w", err)
			}

			fmt.Printf("Withdrew cancellation of %s\n", args[0])

			return nil
		},
	}
}
