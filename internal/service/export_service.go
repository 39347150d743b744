package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"customer-matrix/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("failed to generate workbook")
)

// ExportService 导出业务接口
//
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入
//   - 每类记录一个 Sheet，首行为表头
type ExportService interface {
	// ExportRecords 导出全部地点、基地、单位为 Excel
	ExportRecords(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// sheet 单个工作表的表头与数据行
type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]string
}

// ═══════════════════════════════════════════════════════════
// ExportRecords 导出记录为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Locations": _id | name | createdAt | updatedAt
//   - Sheet "Bases":     _id | name | locationName | createdAt | updatedAt
//   - Sheet "Units":     _id | name | baseName | locationName | createdAt | updatedAt
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportRecords(ctx context.Context) (*bytes.Buffer, string, error) {
	// 1. 读取三类记录
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("导出时查询地点失败", zap.Error(err))
		return nil, "", err
	}
	bases, err := s.repo.Base.List(ctx)
	if err != nil {
		s.logger.Error("导出时查询基地失败", zap.Error(err))
		return nil, "", err
	}
	units, err := s.repo.Unit.List(ctx)
	if err != nil {
		s.logger.Error("导出时查询单位失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 组装工作表
	sheets := []sheet{
		{name: "Locations", headers: []string{"_id", "name", "createdAt", "updatedAt"},
			widths: []float64{38, 28, 22, 22}},
		{name: "Bases", headers: []string{"_id", "name", "locationName", "createdAt", "updatedAt"},
			widths: []float64{38, 28, 28, 22, 22}},
		{name: "Units", headers: []string{"_id", "name", "baseName", "locationName", "createdAt", "updatedAt"},
			widths: []float64{38, 28, 28, 28, 22, 22}},
	}
	for _, l := range locations {
		sheets[0].rows = append(sheets[0].rows, []string{
			l.ID, l.Name, formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
		})
	}
	for _, b := range bases {
		sheets[1].rows = append(sheets[1].rows, []string{
			b.ID, b.Name, b.LocationName, formatTime(b.CreatedAt), formatTime(b.UpdatedAt),
		})
	}
	for _, u := range units {
		sheets[2].rows = append(sheets[2].rows, []string{
			u.ID, u.Name, u.BaseName, u.LocationName, formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
		})
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, sh := range sheets {
		idx, err := f.NewSheet(sh.name)
		if err != nil {
			s.logger.Error("创建工作表失败", zap.String("sheet", sh.name), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := writeSheet(f, sh, headerStyle); err != nil {
			s.logger.Error("写入工作表失败", zap.String("sheet", sh.name), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 4. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("records_%s.xlsx", s.now().UTC().Format("20060102"))
	s.logger.Info("记录已导出",
		zap.Int("locations", len(locations)),
		zap.Int("bases", len(bases)),
		zap.Int("units", len(units)),
	)
	return buf, filename, nil
}

// ── 辅助函数 ──

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	for i, w := range sh.widths {
		col := colName(i)
		if err := f.SetColWidth(sh.name, col, col, w); err != nil {
			return err
		}
	}

	if err := f.SetSheetRow(sh.name, "A1", &sh.headers); err != nil {
		return err
	}
	last := cell(colName(len(sh.headers)-1), 1)
	if err := f.SetCellStyle(sh.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range sh.rows {
		if err := f.SetSheetRow(sh.name, cell("A", r+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
