package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

// NewMenusCommand creates the menus command group.
func NewMenusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "menus",
		Aliases: []string{"menu"},
		Short:   "Manage external menus",
		Long:    "List external menus and fetch full menu documents",
	}

	cmd.AddCommand(newMenusListCommand())
	cmd.AddCommand(newMenusGetCommand())

	return cmd
}

func newMenusListCommand() *cobra.Command {
	var organizationIDs []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List external menus",
		Long:  "List the external menus and price categories of the given organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenusListCommand(organizationIDs)
		},
	}

	cmd.Flags().StringSliceVar(&organizationIDs, "org", nil, "organization id (repeatable)")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func runMenusListCommand(organizationIDs []string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	menus, err := client.Menus().List(ctx, &iiko.MenusRequest{
		OrganizationIDs: organizationIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to list menus: %w", err)
	}

	return outputMenus(menus)
}

func outputMenus(menus *iiko.MenusResponse) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(menus)
	case OutputFormatYAML:
		return StandardYAMLRenderer(menus)
	default:
		return renderMenusTable(menus)
	}
}

func renderMenusTable(menus *iiko.MenusResponse) error {
	if len(menus.ExternalMenus) == 0 {
		_, _ = os.Stdout.WriteString("No external menus found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, menu := range menus.ExternalMenus {
		_ = table.Append(menu.ID, menu.Name)
	}

	_ = table.Render()

	if len(menus.PriceCategories) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "\nPrice categories:\n")

		categoriesTable := tablewriter.NewWriter(os.Stdout)
		categoriesTable.Header("ID", "Name")

		for _, category := range menus.PriceCategories {
			_ = categoriesTable.Append(category.ID, category.Name)
		}

		_ = categoriesTable.Render()
	}

	return nil
}

func newMenusGetCommand() *cobra.Command {
	var (
		organizationIDs []string
		priceCategoryID string
	)

	cmd := &cobra.Command{
		Use:   "get MENU_ID",
		Short: "Get a full menu document",
		Long:  "Fetch a full external menu by id, including categories, items, sizes, and prices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenusGetCommand(args[0], organizationIDs, priceCategoryID)
		},
	}

	cmd.Flags().StringSliceVar(&organizationIDs, "org", nil, "organization id (repeatable)")
	cmd.Flags().StringVar(&priceCategoryID, "price-category", "", "price category id")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func runMenusGetCommand(menuID string, organizationIDs []string, priceCategoryID string) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	menu, err := client.Menus().GetByID(ctx, &iiko.MenuByIDRequest{
		ExternalMenuID:  menuID,
		OrganizationIDs: organizationIDs,
		PriceCategoryID: priceCategoryID,
	})
	if err != nil {
		return fmt.Errorf("failed to get menu: %w", err)
	}

	return outputMenu(menu)
}

func outputMenu(menu *iiko.Menu) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(menu)
	case OutputFormatYAML:
		return StandardYAMLRenderer(menu)
	default:
		return renderMenuTable(menu)
	}
}

func renderMenuTable(menu *iiko.Menu) error {
	_, _ = fmt.Fprintf(os.Stdout, "%s (id: %d, revision: %d)\n\n", menu.Name, menu.ID, menu.Revision)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Category", "Item", "SKU", "Size", "Price")

	for _, category := range menu.ItemCategories {
		for _, item := range category.Items {
			for _, size := range item.ItemSizes {
				sizeName := ""
				if size.SizeName != nil {
					sizeName = *size.SizeName
				}

				price := ""
				if len(size.Prices) > 0 {
					price = strconv.FormatFloat(size.Prices[0].Price, 'f', 2, 64)
				}

				_ = table.Append(category.Name, item.Name, size.SKU, sizeName, price)
			}
		}
	}

	_ = table.Render()

	return nil
}
