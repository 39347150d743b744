package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"customer-matrix/internal/client"
	"customer-matrix/internal/dto"
	"customer-matrix/pkg/table"
)

const defaultServer = "http://localhost:3000"

func newListCmd(opts *viewOptions) *cobra.Command {
	var (
		server   string
		populate bool
	)

	cmd := &cobra.Command{
		Use:       "list <locations|bases|units>",
		Short:     "Fetch a collection once and print one page of it",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"locations", "bases", "units"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(server, nil)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "locations":
				rows, err := c.ListLocations(ctx)
				if err != nil {
					return err
				}
				return render(out, table.NewDataSource(rows, locationColumns()...), opts)
			case "bases":
				rows, err := c.ListBases(ctx, populate)
				if err != nil {
					return err
				}
				return render(out, table.NewDataSource(rows, baseColumns()...), opts)
			case "units":
				rows, err := c.ListUnits(ctx, populate)
				if err != nil {
					return err
				}
				return render(out, table.NewDataSource(rows, unitColumns()...), opts)
			default:
				return fmt.Errorf("unknown collection %q", args[0])
			}
		},
	}

	if env := os.Getenv("MATRIX_SERVER"); env != "" {
		server = env
	} else {
		server = defaultServer
	}
	cmd.Flags().StringVar(&server, "server", server, "record service base URL (env MATRIX_SERVER)")
	cmd.Flags().BoolVar(&populate, "populate", false, "resolve parent records")
	return cmd
}

func locationColumns() []table.Column[dto.LocationResponse] {
	return []table.Column[dto.LocationResponse]{
		{Header: "name", Value: func(l dto.LocationResponse) string { return l.Name }},
		{Header: "createdAt", Value: func(l dto.LocationResponse) string { return l.CreatedAt }},
	}
}

func baseColumns() []table.Column[dto.BaseResponse] {
	return []table.Column[dto.BaseResponse]{
		{Header: "name", Value: func(b dto.BaseResponse) string { return b.Name }},
		{Header: "location", Value: func(b dto.BaseResponse) string { return b.LocationName }},
		{Header: "locationId", Value: func(b dto.BaseResponse) string {
			if b.Location == nil {
				return "-"
			}
			return b.Location.ID
		}},
	}
}

func unitColumns() []table.Column[dto.UnitResponse] {
	return []table.Column[dto.UnitResponse]{
		{Header: "name", Value: func(u dto.UnitResponse) string { return u.Name }},
		{Header: "base", Value: func(u dto.UnitResponse) string { return u.BaseName }},
		{Header: "location", Value: func(u dto.UnitResponse) string { return u.LocationName }},
		{Header: "baseId", Value: func(u dto.UnitResponse) string {
			if u.Base == nil {
				return "-"
			}
			return u.Base.ID
		}},
	}
}
