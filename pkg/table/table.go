// Package table 提供内存数据源：一次载入全部记录，按文本过滤并分页
package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// DefaultPageSize 默认每页条数
const DefaultPageSize = 10

// Column 表格列：表头与取值函数
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Page 当前页切片及分页状态
type Page[T any] struct {
	Rows   []T
	Index  int // 从 0 开始
	Size   int
	Length int // 过滤后的总条数
	Pages  int
}

// DataSource 持有完整结果集，过滤与分页均在内存中完成
// 非并发安全，由单个调用方持有
type DataSource[T any] struct {
	rows      []T
	columns   []Column[T]
	filter    string
	pageIndex int
	pageSize  int
}

// NewDataSource 创建数据源
func NewDataSource[T any](rows []T, columns ...Column[T]) *DataSource[T] {
	return &DataSource[T]{
		rows:     rows,
		columns:  columns,
		pageSize: DefaultPageSize,
	}
}

// SetData 替换结果集，分页回到首页
func (d *DataSource[T]) SetData(rows []T) {
	d.rows = rows
	d.pageIndex = 0
}

// SetFilter 设置过滤文本（去首尾空白并转小写），分页回到首页
func (d *DataSource[T]) SetFilter(text string) {
	d.filter = strings.ToLower(strings.TrimSpace(text))
	d.pageIndex = 0
}

// Filter 返回规范化后的过滤文本
func (d *DataSource[T]) Filter() string { return d.filter }

// SetPageSize 设置每页条数，<=0 时使用默认值
func (d *DataSource[T]) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	d.pageSize = size
}

// SetPageIndex 设置页码（从 0 开始），越界时在 Page 中收敛到末页
func (d *DataSource[T]) SetPageIndex(index int) {
	if index < 0 {
		index = 0
	}
	d.pageIndex = index
}

// Filtered 返回匹配过滤文本的全部记录
// 各列取值拼接后转小写，包含过滤文本即视为匹配
func (d *DataSource[T]) Filtered() []T {
	if d.filter == "" {
		return d.rows
	}
	out := make([]T, 0, len(d.rows))
	for _, row := range d.rows {
		if strings.Contains(d.rowText(row), d.filter) {
			out = append(out, row)
		}
	}
	return out
}

// Page 返回当前页
func (d *DataSource[T]) Page() Page[T] {
	filtered := d.Filtered()
	length := len(filtered)

	pages := (length + d.pageSize - 1) / d.pageSize
	if pages == 0 {
		pages = 1
	}
	index := d.pageIndex
	if index > pages-1 {
		index = pages - 1
	}

	start := index * d.pageSize
	end := start + d.pageSize
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}

	return Page[T]{
		Rows:   filtered[start:end],
		Index:  index,
		Size:   d.pageSize,
		Length: length,
		Pages:  pages,
	}
}

// Render 以对齐文本输出当前页，末行为分页信息
func (d *DataSource[T]) Render(w io.Writer) error {
	page := d.Page()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, len(d.columns))
	for i, col := range d.columns {
		headers[i] = strings.ToUpper(col.Header)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	cells := make([]string, len(d.columns))
	for _, row := range page.Rows {
		for i, col := range d.columns {
			cells[i] = sanitize(col.Value(row))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "page %d/%d (%d rows)\n", page.Index+1, page.Pages, page.Length)
	return err
}

func (d *DataSource[T]) rowText(row T) string {
	var b strings.Builder
	for i, col := range d.columns {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(col.Value(row))
	}
	return strings.ToLower(b.String())
}

// sanitize 去除会破坏列对齐的制表符与换行
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
