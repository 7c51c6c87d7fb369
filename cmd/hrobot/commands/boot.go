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

// NewBootCommand creates the boot configuration command group.
func NewBootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Manage boot configurations",
		Long:  "Inspect and switch rescue system and linux installation configurations",
	}

	cmd.AddCommand(newBootShowCommand())
	cmd.AddCommand(newBootRescueCommand())
	cmd.AddCommand(newBootLinuxCommand())

	return cmd
}

func newBootShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show SERVER_NUMBER",
		Short: "Show the combined boot configuration",
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

			config, err := client.Boot().Get(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get boot configuration: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(config)
			case OutputFormatYAML:
				return StandardYAMLRenderer(config)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("System", "Active", "Selection")

				if config.Rescue != nil {
					_ = table.Append("rescue", yesNo(config.Rescue.Active), config.Rescue.OS)
				}

				if config.Linux != nil {
					_ = table.Append("linux", yesNo(config.Linux.Active), config.Linux.Dist)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

// --- rescue ---

func newBootRescueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescue",
		Short: "Manage the rescue system",
	}

	cmd.AddCommand(newRescueShowCommand())
	cmd.AddCommand(newRescueEnableCommand())
	cmd.AddCommand(newRescueDisableCommand())
	cmd.AddCommand(newRescueLastCommand())

	return cmd
}

func outputRescue(rescue *hrobot.Rescue) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(rescue)
	case OutputFormatYAML:
		return StandardYAMLRenderer(rescue)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Number", fmt.Sprintf("%d", rescue.ServerNumber))
		_ = table.Append("Active", yesNo(rescue.Active))

		if rescue.Active {
			_ = table.Append("OS", rescue.OS)
			_ = table.Append("Password", stringPtr(rescue.Password))
			_ = table.Append("Host Keys", strings.Join(rescue.HostKeys, "; "))
		} else {
			_ = table.Append("Available OS", strings.Join(rescue.AvailableOS, ", "))
		}

		_ = table.Render()

		return nil
	}
}

func newRescueShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show SERVER_NUMBER",
		Short: "Show the rescue system configuration",
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

			rescue, err := client.Boot().GetRescue(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get rescue configuration: %w", err)
			}

			return outputRescue(rescue)
		},
	}
}

func newRescueEnableCommand() *cobra.Command {
	var (
		osName   string
		keys     []string
		keyboard string
	)

	cmd := &cobra.Command{
		Use:   "enable SERVER_NUMBER",
		Short: "Activate the rescue system",
		Long:  "Activate the rescue system; the server boots into it on the next reset",
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

			rescue, err := client.Boot().EnableRescue(ctx, serverNumber, &hrobot.EnableRescueRequest{
				OS:             osName,
				AuthorizedKeys: keys,
				Keyboard:       keyboard,
			})
			if err != nil {
				return fmt.Errorf("failed to enable rescue system: %w", err)
			}

			return outputRescue(rescue)
		},
	}

	cmd.Flags().StringVar(&osName, "os", "linux", "rescue operating system")
	cmd.Flags().StringSliceVar(&keys, "key", nil, "fingerprint of an authorized key (repeatable)")
	cmd.Flags().StringVar(&keyboard, "keyboard", "", "keyboard layout")

	return cmd
}

func newRescueDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable SERVER_NUMBER",
		Short: "Deactivate the rescue system",
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

			_, err = client.Boot().DisableRescue(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to disable rescue system: %w", err)
			}

			fmt.Printf("Disabled rescue system for server %d\n", serverNumber)

			return nil
		},
	}
}

func newRescueLastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "last SERVER_NUMBER",
		Short: "Show the most recent rescue activation",
		Long:  "Show the most recent rescue activation, including its root password",
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

			rescue, err := client.Boot().GetLastRescue(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get last rescue activation: %w", err)
			}

			return outputRescue(rescue)
		},
	}
}

// --- linux ---

func newBootLinuxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linux",
		Short: "Manage linux installations",
	}

	cmd.AddCommand(newLinuxShowCommand())
	cmd.AddCommand(newLinuxEnableCommand())
	cmd.AddCommand(newLinuxDisableCommand())
	cmd.AddCommand(newLinuxLastCommand())

	return cmd
}

func outputLinux(linux *hrobot.Linux) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(linux)
	case OutputFormatYAML:
		return StandardYAMLRenderer(linux)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Number", fmt.Sprintf("%d", linux.ServerNumber))
		_ = table.Append("Active", yesNo(linux.Active))

		if linux.Active {
			_ = table.Append("Dist", linux.Dist)
			_ = table.Append("Lang", linux.Lang)
			_ = table.Append("Password", stringPtr(linux.Password))
		} else {
			_ = table.Append("Available Dist", strings.Join(linux.AvailableDist, ", "))
			_ = table.Append("Available Lang", strings.Join(linux.AvailableLang, ", "))
		}

		_ = table.Render()

		return nil
	}
}

func newLinuxShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show SERVER_NUMBER",
		Short: "Show the linux installation configuration",
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

			linux, err := client.Boot().GetLinux(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get linux configuration: %w", err)
			}

			return outputLinux(linux)
		},
	}
}

func newLinuxEnableCommand() *cobra.Command {
	var (
		dist string
		lang string
		keys []string
	)

	cmd := &cobra.Command{
		Use:   "enable SERVER_NUMBER",
		Short: "Activate a linux installation",
		Long:  "Activate a linux installation; it runs on the next boot and wipes the disks",
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

			linux, err := client.Boot().EnableLinux(ctx, serverNumber, &hrobot.EnableLinuxRequest{
				Dist:           dist,
				Lang:           lang,
				AuthorizedKeys: keys,
			})
			if err != nil {
				return fmt.Errorf("failed to enable linux installation: %w", err)
			}

			return outputLinux(linux)
		},
	}

	cmd.Flags().StringVar(&dist, "dist", "", "distribution image")
	cmd.Flags().StringVar(&lang, "lang", "en", "installation language")
	cmd.Flags().StringSliceVar(&keys, "key", nil, "fingerprint of an authorized key (repeatable)")
	_ = cmd.MarkFlagRequired("dist")

	return cmd
}

func newLinuxDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable SERVER_NUMBER",
		Short: "Deactivate a pending linux installation",
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

			_, err = client.Boot().DisableLinux(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to disable linux installation: %w", err)
			}

			fmt.Printf("Disabled linux installation for server %d\n", serverNumber)

			return nil
		},
	}
}

func newLinuxLastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "last SERVER_NUMBER",
		Short: "Show the most recent linux installation",
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

			linux, err := client.Boot().GetLastLinux(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get last linux installation: %w", err)
			}

			return outputLinux(linux)
		},
	}
}
