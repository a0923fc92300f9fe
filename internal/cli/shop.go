package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var productDescription string

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage and buy store products",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List store products",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		products, err := app.Clients.ListProducts(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%s  %s  %.2f\n", p.ID, color.CyanString(p.Name), p.Price)
		}
		return nil
	},
}

var productCreateCmd = &cobra.Command{
	Use:   "create [name] [price]",
	Short: "Add a product to the store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", args[1])
		}

		p, err := app.Trainers.CreateProduct(cmd.Context(), args[0], price, productDescription)
		if err != nil {
			return err
		}
		color.Green("✅ Product %s created (%s)", p.Name, p.ID)
		return nil
	},
}

var productBuyCmd = &cobra.Command{
	Use:   "buy [product-id]",
	Short: "Purchase a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Clients.PurchaseProduct(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Green("✅ Purchased")
		return nil
	},
}

func init() {
	productCreateCmd.Flags().StringVar(&productDescription, "desc", "", "product description")
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productCreateCmd)
	productCmd.AddCommand(productBuyCmd)
	rootCmd.AddCommand(productCmd)
}
