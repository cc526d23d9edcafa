package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Inspect the tracking catalog",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracked products",
		Example: `  ctrack products list
  ctrack products list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, err := c.ListProducts(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("No tracked products found.")
				return nil
			}
			return printItemTable(items)
		},
	}
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <canonical-url>",
		Short: "Show tracked product details",
		Example: `  ctrack products get "https://www.amazon.in/dp/B0CHX1W1XY"
  ctrack products get "https://www.amazon.in/dp/B0CHX1W1XY" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			item, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(item)
			}
			return printItemDetail(item)
		},
	}
}
