package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"customer-matrix/internal/dto"
	"customer-matrix/internal/model"
	"customer-matrix/internal/repository"
	pkgerrors "customer-matrix/pkg/errors"
)

// ── 地点模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("location not found")
)

// LocationService 地点业务接口
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id string) error
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &RequiredFieldError{Field: "Name"}
	}

	loc := &model.Location{Name: name}
	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("创建地点失败", zap.String("name", name), zap.Error(err))
		return nil, &WriteError{Err: err}
	}

	s.logger.Info("地点已创建", zap.String("id", loc.ID), zap.String("name", name))
	return toLocationResponse(loc), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toLocationResponse(loc), nil
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("列出地点失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *toLocationResponse(&locations[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &RequiredFieldError{Field: "Name"}
	}

	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 重命名不级联：引用旧名称的基地与单位保持不变
	loc.Name = name

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("更新地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toLocationResponse(loc), nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Location.Delete(ctx, id); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("删除地点失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("地点已删除", zap.String("id", id))
	return nil
}

// ── 内部辅助方法 ──

func toLocationResponse(loc *model.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		CreatedAt: formatTime(loc.CreatedAt),
		UpdatedAt: formatTime(loc.UpdatedAt),
	}
}
