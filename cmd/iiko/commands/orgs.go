package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List the organizations available to the configured apiLogin",
	}

	cmd.AddCommand(newOrgsListCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		includeDisabled bool
		additionalInfo  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations the apiLogin has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsListCommand(includeDisabled, additionalInfo)
		},
	}

	cmd.Flags().BoolVar(&includeDisabled, "include-disabled", false, "include disabled organizations")
	cmd.Flags().BoolVar(&additionalInfo, "additional-info", false, "return address, timezone, and currency details")

	return cmd
}

func runOrgsListCommand(includeDisabled, additionalInfo bool) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	orgs, err := client.Organizations().List(ctx, &iiko.OrganizationsRequest{
		ReturnAdditionalInfo: additionalInfo,
		IncludeDisabled:      includeDisabled,
	})
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	return outputOrganizations(orgs)
}

func outputOrganizations(orgs *iiko.OrganizationsResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(orgs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orgs)
	default:
		return renderOrganizationTable(orgs.Organizations)
	}
}

func renderOrganizationTable(orgs []iiko.Organization) error {
	if len(orgs) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "Address", "Timezone")

	for _, org := range orgs {
		address := ""
		if org.RestaurantAddress != nil {
			address = *org.RestaurantAddress
		}

		timezone := ""
		if org.TimeZone != nil {
			timezone = *org.TimeZone
		}

		_ = table.Append(org.Name, org.ID, address, timezone)
	}

	_ = table.Render()

	return nil
}
