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

// ── 基地模块业务错误 ──

var (
	ErrBaseNotFound = errors.New("base not found")
)

// BaseService 基地业务接口
type BaseService interface {
	Create(ctx context.Context, req *dto.CreateBaseRequest) (*dto.BaseResponse, error)
	GetByID(ctx context.Context, id string, populate bool) (*dto.BaseResponse, error)
	List(ctx context.Context, populate bool) ([]dto.BaseResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateBaseRequest) (*dto.BaseResponse, error)
	Delete(ctx context.Context, id string) error
}

type baseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBaseService 创建 BaseService 实例
func NewBaseService(repo *repository.Repository, logger *zap.Logger) BaseService {
	return &baseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 先按名称查找所属地点，存在时才写入基地
// 查找与写入之间无事务，期间地点被删除会留下孤立记录
func (s *baseService) Create(ctx context.Context, req *dto.CreateBaseRequest) (*dto.BaseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &RequiredFieldError{Field: "Name"}
	}
	locationName := strings.TrimSpace(req.LocationName)
	if locationName == "" {
		return nil, &RequiredFieldError{Field: "LocationName"}
	}

	if _, err := s.lookupLocation(ctx, locationName); err != nil {
		return nil, err
	}

	base := &model.Base{Name: name, LocationName: locationName}
	if err := s.repo.Base.Create(ctx, base); err != nil {
		s.logger.Error("创建基地失败", zap.String("name", name), zap.Error(err))
		return nil, &WriteError{Err: err}
	}

	s.logger.Info("基地已创建", zap.String("id", base.ID), zap.String("location", locationName))
	return toBaseResponse(base, nil), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *baseService) GetByID(ctx context.Context, id string, populate bool) (*dto.BaseResponse, error) {
	base, err := s.repo.Base.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrBaseNotFound
		}
		s.logger.Error("查询基地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !populate {
		return toBaseResponse(base, nil), nil
	}

	loc, err := s.repo.Location.GetByName(ctx, base.LocationName)
	switch {
	case err == nil:
		return toBaseResponse(base, toLocationResponse(loc)), nil
	case errors.Is(err, pkgerrors.ErrNotFound):
		return toBaseResponse(base, nil), nil
	default:
		s.logger.Error("解析基地所属地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
}

// ────────────────────── List ──────────────────────

func (s *baseService) List(ctx context.Context, populate bool) ([]dto.BaseResponse, error) {
	bases, err := s.repo.Base.List(ctx)
	if err != nil {
		s.logger.Error("列出基地失败", zap.Error(err))
		return nil, err
	}

	// 一次性加载全部地点，避免 N+1 查询
	var locByName map[string]*dto.LocationResponse
	if populate {
		locations, err := s.repo.Location.List(ctx)
		if err != nil {
			s.logger.Error("列出地点失败", zap.Error(err))
			return nil, err
		}
		locByName = make(map[string]*dto.LocationResponse, len(locations))
		for i := range locations {
			locByName[locations[i].Name] = toLocationResponse(&locations[i])
		}
	}

	result := make([]dto.BaseResponse, 0, len(bases))
	for i := range bases {
		result = append(result, *toBaseResponse(&bases[i], locByName[bases[i].LocationName]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *baseService) Update(ctx context.Context, id string, req *dto.UpdateBaseRequest) (*dto.BaseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &RequiredFieldError{Field: "Name"}
	}

	base, err := s.repo.Base.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrBaseNotFound
		}
		s.logger.Error("查询基地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.LocationName != nil {
		locationName := strings.TrimSpace(*req.LocationName)
		if locationName == "" {
			return nil, &RequiredFieldError{Field: "LocationName"}
		}
		if locationName != base.LocationName {
			if _, err := s.lookupLocation(ctx, locationName); err != nil {
				return nil, err
			}
			base.LocationName = locationName
		}
	}
	base.Name = name

	if err := s.repo.Base.Update(ctx, base); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrBaseNotFound
		}
		s.logger.Error("更新基地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toBaseResponse(base, nil), nil
}

// ────────────────────── Delete ──────────────────────

func (s *baseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Base.Delete(ctx, id); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return ErrBaseNotFound
		}
		s.logger.Error("删除基地失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("基地已删除", zap.String("id", id))
	return nil
}

// ── 内部辅助方法 ──

func (s *baseService) lookupLocation(ctx context.Context, name string) (*model.Location, error) {
	loc, err := s.repo.Location.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return loc, nil
}

func toBaseResponse(base *model.Base, loc *dto.LocationResponse) *dto.BaseResponse {
	return &dto.BaseResponse{
		ID:           base.ID,
		Name:         base.Name,
		LocationName: base.LocationName,
		Location:     loc,
		CreatedAt:    formatTime(base.CreatedAt),
		UpdatedAt:    formatTime(base.UpdatedAt),
	}
}
