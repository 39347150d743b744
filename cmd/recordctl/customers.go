package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"customer-matrix/internal/customer"
	"customer-matrix/pkg/table"
)

func newCustomersCmd(opts *viewOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Print one page of the local customer list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := customer.LoadFile(file)
			if err != nil {
				return err
			}
			ds := table.NewDataSource(svc.Customers(), customerColumns()...)
			return render(cmd.OutOrStdout(), ds, opts)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with customers and units")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func customerColumns() []table.Column[customer.Customer] {
	return []table.Column[customer.Customer]{
		{Header: "name", Value: func(c customer.Customer) string { return c.Name }},
		{Header: "role", Value: func(c customer.Customer) string { return c.Role }},
		{Header: "email", Value: func(c customer.Customer) string { return c.Email }},
		{Header: "number", Value: func(c customer.Customer) string { return strconv.FormatInt(c.Number, 10) }},
		{Header: "movingDate", Value: func(c customer.Customer) string { return c.MovingDate.String() }},
		{Header: "lastContactDate", Value: func(c customer.Customer) string { return c.LastContactDate.String() }},
	}
}
