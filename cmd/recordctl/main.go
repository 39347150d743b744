package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"customer-matrix/pkg/table"
)

// viewOptions 过滤与分页参数，所有子命令共用
type viewOptions struct {
	filter   string
	page     int // 从 1 开始
	pageSize int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &viewOptions{}

	root := &cobra.Command{
		Use:          "recordctl",
		Short:        "Browse locations, bases, units and local customers as paged tables",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.filter, "filter", "", "case-insensitive substring filter over displayed columns")
	flags.IntVar(&opts.page, "page", 1, "page number, clamped to the last page")
	flags.IntVar(&opts.pageSize, "page-size", table.DefaultPageSize, "rows per page")

	root.AddCommand(newListCmd(opts), newCustomersCmd(opts))
	return root
}

// render 应用过滤与分页后输出
func render[T any](w io.Writer, ds *table.DataSource[T], opts *viewOptions) error {
	if opts.page < 1 {
		return fmt.Errorf("--page must be at least 1")
	}
	ds.SetFilter(opts.filter)
	ds.SetPageSize(opts.pageSize)
	ds.SetPageIndex(opts.page - 1)
	return ds.Render(w)
}
