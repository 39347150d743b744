package service

import (
	"time"

	"go.uber.org/zap"

	"customer-matrix/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Location LocationService
	Base     BaseService
	Unit     UnitService
	Export   ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Location: NewLocationService(repo, logger),
		Base:     NewBaseService(repo, logger),
		Unit:     NewUnitService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}

// ── 通用错误 ──

// RequiredFieldError 必填字段缺失或为空白
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return e.Field + " is required"
}

// WriteError 创建记录时存储写入失败（含唯一冲突），保留底层错误原文
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }

// formatTime 统一时间输出格式
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
