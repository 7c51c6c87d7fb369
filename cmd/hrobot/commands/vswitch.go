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

// NewVSwitchCommand creates the vSwitch command group.
func NewVSwitchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vswitch",
		Aliases: []string{"vswitches"},
		Short:   "Manage vSwitches",
	}

	cmd.AddCommand(newVSwitchListCommand())
	cmd.AddCommand(newVSwitchGetCommand())
	cmd.AddCommand(newVSwitchCreateCommand())
	cmd.AddCommand(newVSwitchUpdateCommand())
	cmd.AddCommand(newVSwitchCancelCommand())
	cmd.AddCommand(newVSwitchAddServersCommand())
	cmd.AddCommand(newVSwitchRemoveServersCommand())

	return cmd
}

func newVSwitchListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vSwitches",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			vswitches, err := client.VSwitches().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list vSwitches: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(vswitches)
			case OutputFormatYAML:
				return StandardYAMLRenderer(vswitches)
			default:
				if len(vswitches) == 0 {
					_, _ = os.Stdout.WriteString("No vSwitches found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "VLAN", "Cancelled")

				for _, vswitch := range vswitches {
					_ = table.Append(
						fmt.Sprintf("%d", vswitch.ID),
						vswitch.Name,
						fmt.Sprintf("%d", vswitch.VLAN),
						yesNo(vswitch.Cancelled))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newVSwitchGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a vSwitch with its attached servers and networks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			vswitch, err := client.VSwitches().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get vSwitch: %w", err)
			}

			return outputVSwitch(vswitch)
		},
	}
}

func outputVSwitch(vswitch *hrobot.VSwitch) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(vswitch)
	case OutputFormatYAML:
		return StandardYAMLRenderer(vswitch)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", fmt.Sprintf("%d", vswitch.ID))
		_ = table.Append("Name", vswitch.Name)
		_ = table.Append("VLAN", fmt.Sprintf("%d", vswitch.VLAN))
		_ = table.Append("Cancelled", yesNo(vswitch.Cancelled))
		_ = table.Render()

		if len(vswitch.Servers) > 0 {
			serverTable := tablewriter.NewWriter(os.Stdout)
			serverTable.Header("Server", "Status")

			for _, server := range vswitch.Servers {
				_ = serverTable.Append(fmt.Sprintf("%d", server.ServerNumber), string(server.Status))
			}

			_ = serverTable.Render()
		}

		if len(vswitch.Subnets) > 0 {
			subnetTable := tablewriter.NewWriter(os.Stdout)
			subnetTable.Header("Subnet", "Mask", "Gateway")

			for _, subnet := range vswitch.Subnets {
				_ = subnetTable.Append(subnet.IP, fmt.Sprintf("%d", subnet.Mask), subnet.Gateway)
			}

			_ = subnetTable.Render()
		}

		return nil
	}
}

func newVSwitchCreateCommand() *cobra.Command {
	var (
		name string
		vlan int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vSwitch",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			vswitch, err := client.VSwitches().Create(ctx, name, vlan)
			if err != nil {
				return fmt.Errorf("failed to create vSwitch: %w", err)
			}

			return outputVSwitch(vswitch)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "vSwitch name")
	cmd.Flags().IntVar(&vlan, "vlan", 0, "VLAN ID (4000-4091)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("vlan")

	return cmd
}

func newVSwitchUpdateCommand() *cobra.Command {
	var (
		name string
		vlan int
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update the name and VLAN of a vSwitch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.VSwitches().Update(ctx, id, name, vlan)
			if err != nil {
				return fmt.Errorf("failed to update vSwitch: %w", err)
			}

			fmt.Printf("Updated vSwitch %d\n", id)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "vSwitch name")
	cmd.Flags().IntVar(&vlan, "vlan", 0, "VLAN ID (4000-4091)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("vlan")

	return cmd
}

func newVSwitchCancelCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a vSwitch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.VSwitches().Cancel(ctx, id, date)
			if err != nil {
				return fmt.Errorf("failed to cancel vSwitch: %w", err)
			}

			fmt.Printf("Cancelled vSwitch %d\n", id)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "cancellation date (YYYY-MM-DD, empty for earliest)")

	return cmd
}

func parseServerNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))

	for _, arg := range args {
		number, err := parseServerNumber(arg)
		if err != nil {
			return nil, err
		}

		numbers = append(numbers, number)
	}

	return numbers, nil
}

func newVSwitchAddServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-servers ID SERVER_NUMBER...",
		Short: "Attach servers to a vSwitch",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			serverNumbers, err := parseServerNumbers(args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.VSwitches().AddServers(ctx, id, serverNumbers)
			if err != nil {
				return fmt.Errorf("failed to attach servers: %w", err)
			}

			fmt.Printf("Attached %d server(s) to vSwitch %d\n", len(serverNumbers), id)

			return nil
		},
	}
}

func newVSwitchRemoveServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-servers ID SERVER_NUMBER...",
		Short: "Detach servers from a vSwitch",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			serverNumbers, err := parseServerNumbers(args[1:])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.VSwitches().RemoveServers(ctx, id, serverNumbers)
			if err != nil {
				return fmt.Errorf("failed to detach servers: %w", err)
			}

			fmt.Printf("Detached %d server(s) from vSwitch %d\n", len(serverNumbers), id)

			return nil
		},
	}
}
