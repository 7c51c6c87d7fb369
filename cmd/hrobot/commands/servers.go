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

// NewServersCommand creates the servers command group.
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "servers",
		Aliases: []string{"server"},
		Short:   "Manage dedicated servers",
		Long:    "List, inspect, rename and cancel dedicated servers",
	}

	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersGetCommand())
	cmd.AddCommand(newServersRenameCommand())
	cmd.AddCommand(newServersCancellationCommand())
	cmd.AddCommand(newServersCancelCommand())
	cmd.AddCommand(newServersWithdrawCommand())

	return cmd
}

func newServersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dedicated servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			servers, err := client.Servers().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			return outputServers(servers)
		},
	}
}

func outputServers(servers []hrobot.Server) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(servers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(servers)
	default:
		return renderServerTable(servers)
	}
}

func renderServerTable(servers []hrobot.Server) error {
	if len(servers) == 0 {
		_, _ = os.Stdout.WriteString("No servers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Number", "Name", "IP", "Product", "DC", "Status", "Paid Until", "Cancelled")

	for _, server := range servers {
		_ = table.Append(
			fmt.Sprintf("%d", server.ServerNumber),
			server.Name,
			server.ServerIP,
			server.Product,
			server.DC,
			string(server.Status),
			server.PaidUntil,
			yesNo(server.Cancelled))
	}

	_ = table.Render()

	return nil
}

func newServersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVER_NUMBER",
		Short: "Get server details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := client.Servers().Get(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get server: %w", err)
			}

			return outputServer(server)
		},
	}
}

func outputServer(server *hrobot.Server) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(server)
	case OutputFormatYAML:
		return StandardYAMLRenderer(server)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Number", fmt.Sprintf("%d", server.ServerNumber))
		_ = table.Append("Name", server.Name)
		_ = table.Append("IP", server.ServerIP)
		_ = table.Append("IPv6 Net", server.ServerIPv6Net)
		_ = table.Append("Product", server.Product)
		_ = table.Append("DC", server.DC)
		_ = table.Append("Traffic", server.Traffic)
		_ = table.Append("Status", string(server.Status))
		_ = table.Append("Paid Until", server.PaidUntil)
		_ = table.Append("Cancelled", yesNo(server.Cancelled))
		_ = table.Append("Reset", yesNoPtr(server.Reset))
		_ = table.Append("Rescue", yesNoPtr(server.Rescue))
		_ = table.Append("WOL", yesNoPtr(server.WOL))
		_ = table.Append("Hot Swap", yesNoPtr(server.HotSwap))
		_ = table.Render()

		return nil
	}
}

func newServersRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename SERVER_NUMBER NAME",
		Short: "Rename a server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := client.Servers().Rename(ctx, serverNumber, args[1])
			if err != nil {
				return fmt.Errorf("failed to rename server: %w", err)
			}

			fmt.Printf("Renamed server %d to '%s'\n", server.ServerNumber, server.Name)

			return nil
		},
	}
}

func newServersCancellationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancellation SERVER_NUMBER",
		Short: "Show the cancellation status of a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			cancellation, err := client.Servers().GetCancellation(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get cancellation status: %w", err)
			}

			return outputCancellation(cancellation)
		},
	}
}

func outputCancellation(cancellation *hrobot.Cancellation) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(cancellation)
	case OutputFormatYAML:
		return StandardYAMLRenderer(cancellation)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Number", fmt.Sprintf("%d", cancellation.ServerNumber))
		_ = table.Append("Name", cancellation.ServerName)
		_ = table.Append("Cancelled", yesNo(cancellation.Cancelled))
		_ = table.Append("Reserved", yesNo(cancellation.Reserved))

		if cancellation.Cancelled {
			_ = table.Append("Cancellation Date", cancellation.CancellationDate)
			_ = table.Append("Reason", cancellation.CancellationReason)
		} else {
			_ = table.Append("Earliest Date", cancellation.EarliestCancellationDate)
			_ = table.Append("Reservation Possible", yesNo(cancellation.ReservationPossible))
			_ = table.Append("Reasons", strings.Join(cancellation.CancellationReasons, "; "))
		}

		_ = table.Render()

		return nil
	}
}

func newServersCancelCommand() *cobra.Command {
	var (
		date     string
		reason   string
		reserved bool
	)

	cmd := &cobra.Command{
		Use:   "cancel SERVER_NUMBER",
		Short: "Cancel a server",
		Long:  "Order the cancellation of a server, at the given date or the earliest possible one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			cancellation, err := client.Servers().Cancel(ctx, serverNumber, &hrobot.CancelServerRequest{
				CancellationDate:   date,
				CancellationReason: reason,
				Reserved:           reserved,
			})
			if err != nil {
				return fmt.Errorf("failed to cancel server: %w", err)
			}

			return outputCancellation(cancellation)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "cancellation date (YYYY-MM-DD, empty for earliest)")
	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	cmd.Flags().BoolVar(&reserved, "reserve", false, "reserve the location after cancellation")

	return cmd
}

func newServersWithdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw SERVER_NUMBER",
		Short: "Withdraw a pending server cancellation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.Servers().WithdrawCancellation(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to withdraw cancellation: %w", err)
			}

			fmt.Printf("Withdrew cancellation of server %d\n", serverNumber)

			return nil
		},
	}
}
