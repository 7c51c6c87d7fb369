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

// NewResetCommand creates the reset command group.
func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset servers",
		Long:  "Query reset options and trigger server resets",
	}

	cmd.AddCommand(newResetOptionsCommand())
	cmd.AddCommand(newResetTriggerCommand())

	return cmd
}

func newResetOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options SERVER_NUMBER",
		Short: "Show the reset options of a server",
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

			options, err := client.Reset().Get(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get reset options: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(options)
			case OutputFormatYAML:
				return StandardYAMLRenderer(options)
			default:
				types := make([]string, 0, len(options.Types))
				for _, resetType := range options.Types {
					types = append(types, string(resetType))
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Number", fmt.Sprintf("%d", options.ServerNumber))
				_ = table.Append("IP", options.ServerIP)
				_ = table.Append("Operating Status", options.OperatingStatus)
				_ = table.Append("Types", strings.Join(types, ", "))
				_ = table.Render()

				return nil
			}
		},
	}
}

func newResetTriggerCommand() *cobra.Command {
	var resetType string

	cmd := &cobra.Command{
		Use:   "trigger SERVER_NUMBER",
		Short: "Trigger a server reset",
		Long:  "Trigger a reset: sw (CTRL+ALT+DEL), hw (reset button), power, power_long or man",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			switch hrobot.ResetType(resetType) {
			case hrobot.ResetTypeSoftware, hrobot.ResetTypeHardware, hrobot.ResetTypePower,
				hrobot.ResetTypePowerLong, hrobot.ResetTypeManual:
			default:
				return fmt.Errorf("%w: %s", ErrInvalidResetType, resetType)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			triggered, err := client.Reset().Trigger(ctx, serverNumber, hrobot.ResetType(resetType))
			if err != nil {
				return fmt.Errorf("failed to trigger reset: %w", err)
			}

			fmt.Printf("Triggered %s reset of server %d\n", triggered, serverNumber)

			return nil
		},
	}

	cmd.Flags().StringVarP(&resetType, "type", "t", string(hrobot.ResetTypeHardware), "reset type")

	return cmd
}
