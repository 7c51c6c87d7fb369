package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewWOLCommand creates the Wake-on-LAN command group.
func NewWOLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wol",
		Short: "Wake servers via Wake-on-LAN",
	}

	cmd.AddCommand(newWOLStatusCommand())
	cmd.AddCommand(newWOLSendCommand())

	return cmd
}

func newWOLStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status SERVER_NUMBER",
		Short: "Check whether Wake-on-LAN is available",
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

			available, err := client.WakeOnLAN().Available(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to check Wake-on-LAN: %w", err)
			}

			if available {
				fmt.Printf("Wake-on-LAN is available for server %d\n", serverNumber)
			} else {
				fmt.Printf("Wake-on-LAN is not available for server %d\n", serverNumber)
			}

			return nil
		},
	}
}

func newWOLSendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "send SERVER_NUMBER",
		Short: "Send a Wake-on-LAN packet",
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

			err = client.WakeOnLAN().Trigger(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to send Wake-on-LAN packet: %w", err)
			}

			fmt.Printf("Sent Wake-on-LAN packet to server %d\n", serverNumber)

			return nil
		},
	}
}
