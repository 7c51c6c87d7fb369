package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewFirewallCommand creates the firewall command group.
func NewFirewallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firewall",
		Short: "Manage server firewalls and firewall templates",
	}

	cmd.AddCommand(newFirewallGetCommand())
	cmd.AddCommand(newFirewallSetCommand())
	cmd.AddCommand(newFirewallApplyTemplateCommand())
	cmd.AddCommand(newFirewallDeleteCommand())
	cmd.AddCommand(newFirewallTemplatesCommand())

	return cmd
}

func outputFirewall(firewall *hrobot.Firewall) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(firewall)
	case OutputFormatYAML:
		return StandardYAMLRenderer(firewall)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Server", fmt.Sprintf("%d", firewall.ServerNumber))
		_ = table.Append("Status", string(firewall.Status))
		_ = table.Append("Port", firewall.Port)
		_ = table.Append("Filter IPv6", yesNo(firewall.FilterIPv6))
		_ = table.Append("Whitelist HOS", yesNo(firewall.WhitelistHOS))
		_ = table.Render()

		renderRuleTable("input", firewall.Rules.Input)
		renderRuleTable("output", firewall.Rules.Output)

		return nil
	}
}

func renderRuleTable(direction string, rules []hrobot.FirewallRule) {
	if len(rules) == 0 {
		return
	}

	fmt.Printf("\n%s rules:\n", direction)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Ver", "Src IP", "Dst IP", "Src Port", "Dst Port", "Proto", "Action")

	for _, rule := range rules {
		_ = table.Append(rule.Name, rule.IPVersion, rule.SrcIP, rule.DstIP,
			rule.SrcPort, rule.DstPort, rule.Protocol, rule.Action)
	}

	_ = table.Render()
}

func newFirewallGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVER_NUMBER",
		Short: "Show the firewall of a server",
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

			firewall, err := client.Firewall().Get(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to get firewall: %w", err)
			}

			return outputFirewall(firewall)
		},
	}
}

// loadRulesFile reads a FirewallRules document from a YAML file.
func loadRulesFile(path string) (*hrobot.FirewallRules, error) {
	if path == "" {
		return nil, ErrRulesFileRequired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules hrobot.FirewallRules

	err = yaml.Unmarshal(data, &rules)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	return &rules, nil
}

func newFirewallSetCommand() *cobra.Command {
	var (
		status       string
		filterIPv6   bool
		whitelistHOS bool
		rulesFile    string
	)

	cmd := &cobra.Command{
		Use:   "set SERVER_NUMBER",
		Short: "Replace the firewall configuration of a server",
		Long: `Replace the firewall configuration of a server.

The rules are read from a YAML file with "input" and "output" rule lists,
using the same field names as the API (name, ip_version, dst_port, protocol,
action, ...).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			rules, err := loadRulesFile(rulesFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			firewall, err := client.Firewall().Set(ctx, serverNumber, &hrobot.SetFirewallRequest{
				Status:       hrobot.FirewallStatus(status),
				FilterIPv6:   filterIPv6,
				WhitelistHOS: whitelistHOS,
				Rules:        *rules,
			})
			if err != nil {
				return fmt.Errorf("failed to set firewall: %w", err)
			}

			return outputFirewall(firewall)
		},
	}

	cmd.Flags().StringVar(&status, "status", string(hrobot.FirewallStatusActive), "firewall status (active, disabled)")
	cmd.Flags().BoolVar(&filterIPv6, "filter-ipv6", false, "also filter IPv6 traffic")
	cmd.Flags().BoolVar(&whitelistHOS, "whitelist-hos", true, "whitelist Hetzner online services")
	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "YAML file with the rule set")
	_ = cmd.MarkFlagRequired("rules-file")

	return cmd
}

func newFirewallApplyTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply-template SERVER_NUMBER TEMPLATE_ID",
		Short: "Apply a firewall template to a server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverNumber, err := parseServerNumber(args[0])
			if err != nil {
				return err
			}

			templateID, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			firewall, err := client.Firewall().ApplyTemplate(ctx, serverNumber, templateID)
			if err != nil {
				return fmt.Errorf("failed to apply template: %w", err)
			}

			return outputFirewall(firewall)
		},
	}
}

func newFirewallDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SERVER_NUMBER",
		Short: "Clear the firewall of a server",
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

			firewall, err := client.Firewall().Delete(ctx, serverNumber)
			if err != nil {
				return fmt.Errorf("failed to delete firewall: %w", err)
			}

			fmt.Printf("Firewall of server %d is now %s\n", firewall.ServerNumber, firewall.Status)

			return nil
		},
	}
}

// --- templates ---

func newFirewallTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage firewall templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesGetCommand())
	cmd.AddCommand(newTemplatesCreateCommand())
	cmd.AddCommand(newTemplatesUpdateCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List firewall templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			templates, err := client.Firewall().ListTemplates(ctx)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(templates)
			case OutputFormatYAML:
				return StandardYAMLRenderer(templates)
			default:
				if len(templates) == 0 {
					_, _ = os.Stdout.WriteString("No templates found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Filter IPv6", "Whitelist HOS", "Default")

				for _, template := range templates {
					_ = table.Append(
						fmt.Sprintf("%d", template.ID),
						template.Name,
						yesNo(template.FilterIPv6),
						yesNo(template.WhitelistHOS),
						yesNo(template.IsDefault))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func outputTemplate(template *hrobot.FirewallTemplate) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(template)
	case OutputFormatYAML:
		return StandardYAMLRenderer(template)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", fmt.Sprintf("%d", template.ID))
		_ = table.Append("Name", template.Name)
		_ = table.Append("Filter IPv6", yesNo(template.FilterIPv6))
		_ = table.Append("Whitelist HOS", yesNo(template.WhitelistHOS))
		_ = table.Append("Default", yesNo(template.IsDefault))
		_ = table.Render()

		renderRuleTable("input", template.Rules.Input)
		renderRuleTable("output", template.Rules.Output)

		return nil
	}
}

func newTemplatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEMPLATE_ID",
		Short: "Get a firewall template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			template, err := client.Firewall().GetTemplate(ctx, templateID)
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}

			return outputTemplate(template)
		},
	}
}

func templateFlags(cmd *cobra.Command, name, rulesFile *string, filterIPv6, whitelistHOS, isDefault *bool) {
	cmd.Flags().StringVar(name, "name", "", "template name")
	cmd.Flags().BoolVar(filterIPv6, "filter-ipv6", false, "also filter IPv6 traffic")
	cmd.Flags().BoolVar(whitelistHOS, "whitelist-hos", true, "whitelist Hetzner online services")
	cmd.Flags().BoolVar(isDefault, "default", false, "mark as the default template")
	cmd.Flags().StringVar(rulesFile, "rules-file", "", "YAML file with the rule set")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("rules-file")
}

func newTemplatesCreateCommand() *cobra.Command {
	var (
		name         string
		rulesFile    string
		filterIPv6   bool
		whitelistHOS bool
		isDefault    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a firewall template",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRulesFile(rulesFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			template, err := client.Firewall().CreateTemplate(ctx, &hrobot.FirewallTemplateRequest{
				Name:         name,
				FilterIPv6:   filterIPv6,
				WhitelistHOS: whitelistHOS,
				IsDefault:    isDefault,
				Rules:        *rules,
			})
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			return outputTemplate(template)
		},
	}

	templateFlags(cmd, &name, &rulesFile, &filterIPv6, &whitelistHOS, &isDefault)

	return cmd
}

func newTemplatesUpdateCommand() *cobra.Command {
	var (
		name         string
		rulesFile    string
		filterIPv6   bool
		whitelistHOS bool
		isDefault    bool
	)

	cmd := &cobra.Command{
		Use:   "update TEMPLATE_ID",
		Short: "Replace a firewall template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := parseID(args[0])
			if err != nil {
				return err
			}

			rules, err := loadRulesFile(rulesFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			template, err := client.Firewall().UpdateTemplate(ctx, templateID, &hrobot.FirewallTemplateRequest{
				Name:         name,
				FilterIPv6:   filterIPv6,
				WhitelistHOS: whitelistHOS,
				IsDefault:    isDefault,
				Rules:        *rules,
			})
			if err != nil {
				return fmt.Errorf("failed to update template: %w", err)
			}

			return outputTemplate(template)
		},
	}

	templateFlags(cmd, &name, &rulesFile, &filterIPv6, &whitelistHOS, &isDefault)

	return cmd
}

func newTemplatesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TEMPLATE_ID",
		Short: "Delete a firewall template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.Firewall().DeleteTemplate(ctx, templateID)
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			fmt.Printf("Deleted template %d\n", templateID)

			return nil
		},
	}
}
