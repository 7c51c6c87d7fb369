package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTrafficCommand creates the traffic command group.
func NewTrafficCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traffic",
		Short: "Query traffic statistics",
	}

	cmd.AddCommand(newTrafficQueryCommand())

	return cmd
}

func newTrafficQueryCommand() *cobra.Command {
	var (
		trafficType string
		from        string
		to          string
		ips         []string
		subnets     []string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query traffic statistics for IPs and subnets",
		Long: `Query traffic statistics for a set of IPs and subnets.

The range format depends on the granularity: "2025-07-01T00".."2025-07-01T24"
for day queries, "2025-07-01".."2025-07-31" for month queries and
"2025-01".."2025-12" for year queries. Values are gigabytes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch hrobot.TrafficType(trafficType) {
			case hrobot.TrafficTypeDay, hrobot.TrafficTypeMonth, hrobot.TrafficTypeYear:
			default:
				return fmt.Errorf("%w: %s", ErrInvalidTrafficType, trafficType)
			}

			if len(ips) == 0 && len(subnets) == 0 {
				return ErrNoAddressSelected
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			data, err := client.Traffic().Query(ctx, &hrobot.TrafficRequest{
				Type:    hrobot.TrafficType(trafficType),
				From:    from,
				To:      to,
				IPs:     ips,
				Subnets: subnets,
			})
			if err != nil {
				return fmt.Errorf("failed to query traffic: %w", err)
			}

			return outputTrafficData(data)
		},
	}

	cmd.Flags().StringVar(&trafficType, "type", string(hrobot.TrafficTypeMonth), "granularity (day, month, year)")
	cmd.Flags().StringVar(&from, "from", "", "start of the range")
	cmd.Flags().StringVar(&to, "to", "", "end of the range")
	cmd.Flags().StringSliceVar(&ips, "ip", nil, "IP address to include (repeatable)")
	cmd.Flags().StringSliceVar(&subnets, "subnet", nil, "subnet to include (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func outputTrafficData(data *hrobot.TrafficData) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Address", "Slot", "In (GB)", "Out (GB)", "Sum (GB)")

		addresses := make([]string, 0, len(data.Data))
		for address := range data.Data {
			addresses = append(addresses, address)
		}

		sort.Strings(addresses)

		for _, address := range addresses {
			slots := make([]string, 0, len(data.Data[address]))
			for slot := range data.Data[address] {
				slots = append(slots, slot)
			}

			sort.Strings(slots)

			for _, slot := range slots {
				flow := data.Data[address][slot]
				_ = table.Append(address, slot,
					fmt.Sprintf("%.3f", flow.In),
					fmt.Sprintf("%.3f", flow.Out),
					fmt.Sprintf("%.3f", flow.Sum))
			}
		}

		_ = table.Render()

		return nil
	}
}
