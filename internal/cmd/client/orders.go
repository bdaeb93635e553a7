package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewmaci/KebabManager/internal/order"
)

// NewOrderCommand constructs the `order` command group and subcommands.
func NewOrderCommand(baseURL BaseURLFunc) *cobra.Command {
	orderCmd := &cobra.Command{Use: "order", Short: "Order operations"}

	orderCmd.AddCommand(
		newOrderListCommand(baseURL),
		newOrderCreateCommand(baseURL),
		newOrderUpdateCommand(baseURL),
		newOrderDeleteCommand(baseURL),
		newOrderWatchCommand(baseURL),
		newOrderReportCommand(baseURL),
	)

	return orderCmd
}

func dataFromFlags(cmd *cobra.Command) order.Data {
	var d order.Data
	d.CustomerName, _ = cmd.Flags().GetString("customer")
	d.KebabType, _ = cmd.Flags().GetString("kebab")
	d.Size, _ = cmd.Flags().GetString("size")
	d.Sauce, _ = cmd.Flags().GetString("sauce")
	d.MeatType, _ = cmd.Flags().GetString("meat")
	d.Date, _ = cmd.Flags().GetString("date")
	return d
}

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("customer", "", "Customer name")
	cmd.Flags().String("kebab", "", "Kebab type")
	cmd.Flags().String("size", "", "Size")
	cmd.Flags().String("sauce", "", "Sauce")
	cmd.Flags().String("meat", "", "Meat type")
	cmd.Flags().String("date", "", "Order date (YYYY-MM-DD)")
}

// newOrderListCommand constructs the `order list` subcommand.
func newOrderListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, optionally filtered by date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, _ := cmd.Flags().GetString("date")
			u := baseURL() + "/api/orders"
			if date != "" {
				u += "?date=" + url.QueryEscape(date)
			}
			var orders []order.Order
			if err := doJSON(cmd.Context(), "GET", u, nil, &orders); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(orders)
		},
	}
	listCmd.Flags().String("date", "", "Only orders for this date (YYYY-MM-DD)")
	return listCmd
}

// newOrderCreateCommand constructs the `order create` subcommand.
func newOrderCreateCommand(baseURL BaseURLFunc) *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := dataFromFlags(cmd)
			if err := d.Validate(); err != nil {
				return err
			}
			var created order.Order
			if err := doJSON(cmd.Context(), "POST", baseURL()+"/api/orders", d, &created); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(created)
		},
	}
	addDataFlags(createCmd)
	return createCmd
}

// newOrderUpdateCommand constructs the `order update` subcommand.
func newOrderUpdateCommand(baseURL BaseURLFunc) *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an order's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dataFromFlags(cmd)
			if err := d.Validate(); err != nil {
				return err
			}
			var updated order.Order
			u := baseURL() + "/api/orders/" + url.PathEscape(args[0])
			if err := doJSON(cmd.Context(), "PUT", u, d, &updated); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(updated)
		},
	}
	addDataFlags(updateCmd)
	return updateCmd
}

// newOrderDeleteCommand constructs the `order delete` subcommand.
func newOrderDeleteCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := baseURL() + "/api/orders/" + url.PathEscape(args[0])
			if err := doJSON(cmd.Context(), "DELETE", u, nil, nil); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "status:", "OK")
			return nil
		},
	}
}

// newOrderReportCommand constructs the `order report` subcommand. It fetches
// the orders for a date and writes the rendered PDF to a file.
func newOrderReportCommand(baseURL BaseURLFunc) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Download a PDF report of orders for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, _ := cmd.Flags().GetString("date")
			out, _ := cmd.Flags().GetString("out")

			u := baseURL() + "/api/orders"
			if date != "" {
				u += "?date=" + url.QueryEscape(date)
			}
			var orders []order.Order
			if err := doJSON(cmd.Context(), "GET", u, nil, &orders); err != nil {
				return err
			}
			rows := make([]order.Data, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, o.Data)
			}

			pu := baseURL() + "/api/orders/pdf"
			if date != "" {
				pu += "?date=" + url.QueryEscape(date)
			}
			pdf, err := fetchPDF(cmd.Context(), pu, rows)
			if err != nil {
				return err
			}
			if out == "" {
				out = "kebab-order-report.pdf"
				if date != "" {
					out = "kebab-order-report-" + date + ".pdf"
				}
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "written:", out)
			return nil
		},
	}
	reportCmd.Flags().String("date", "", "Only orders for this date (YYYY-MM-DD)")
	reportCmd.Flags().String("out", "", "Output file path")
	return reportCmd
}
