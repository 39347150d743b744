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

// ── 单位模块业务错误 ──

var (
	ErrUnitNotFound = errors.New("unit not found")
)

// UnitService 单位业务接口
type UnitService interface {
	Create(ctx context.Context, req *dto.CreateUnitRequest) (*dto.UnitResponse, error)
	GetByID(ctx context.Context, id string, populate bool) (*dto.UnitResponse, error)
	List(ctx context.Context, populate bool) ([]dto.UnitResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUnitRequest) (*dto.UnitResponse, error)
	Delete(ctx context.Context, id string) error
}

type unitService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUnitService 创建 UnitService 实例
func NewUnitService(repo *repository.Repository, logger *zap.Logger) UnitService {
	return &unitService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *unitService) Create(ctx context.Context, req *dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &RequiredFieldError{Field: "Name"}
	}
	baseName := strings.TrimSpace(req.BaseName)
	if baseName == "" {
		return nil, &RequiredFieldError{Field: "BaseName"}
	}

	base, err := s.lookupBase(ctx, baseName)
	if err != nil {
		return nil, err
	}

	unit := &model.Unit{
		Name:         name,
		BaseName:     base.Name,
		LocationName: base.LocationName,
	}
	if err := s.repo.Unit.Create(ctx, unit); err != nil {
		s.logger.Error("创建单位失败", zap.String("name", name), zap.Error(err))
		return nil, &WriteError{Err: err}
	}

	s.logger.Info("单位已创建", zap.String("id", unit.ID), zap.String("base", baseName))
	return toUnitResponse(unit, nil), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *unitService) GetByID(ctx context.Context, id string, populate bool) (*dto.UnitResponse, error) {
	unit, err := s.repo.Unit.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("查询单位失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !populate {
		return toUnitResponse(unit, nil), nil
	}

	base, err := s.repo.Base.GetByName(ctx, unit.BaseName)
	switch {
	case err == nil:
		return toUnitResponse(unit, toBaseResponse(base, nil)), nil
	case errors.Is(err, pkgerrors.ErrNotFound):
		return toUnitResponse(unit, nil), nil
	default:
		s.logger.Error("解析单位所属基地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
}

// ────────────────────── List ──────────────────────

func (s *unitService) List(ctx context.Context, populate bool) ([]dto.UnitResponse, error) {
	units, err := s.repo.Unit.List(ctx)
	if err != nil {
		s.logger.Error("列出单位失败", zap.Error(err))
		return nil, err
	}

	var baseByName map[string]*dto.BaseResponse
	if populate {
		bases, err := s.repo.Base.List(ctx)
		if err != nil {
			s.logger.Error("列出基地失败", zap.Error(err))
			return nil, err
		}
		baseByName = make(map[string]*dto.BaseResponse, len(bases))
		for i := range bases {
			// 同名基地取首条，与 GetByName 的语义保持一致
			if _, seen := baseByName[bases[i].Name]; !seen {
				baseByName[bases[i].Name] = toBaseResponse(&bases[i], nil)
			}
		}
	}

	result := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		result = append(result, *toUnitResponse(&units[i], baseByName[units[i].BaseName]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *unitService) Update(ctx context.Context, id string, req *dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &RequiredFieldError{Field: "Name"}
	}

	unit, err := s.repo.Unit.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("查询单位失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.BaseName != nil {
		baseName := strings.TrimSpace(*req.BaseName)
		if baseName == "" {
			return nil, &RequiredFieldError{Field: "BaseName"}
		}
		base, err := s.lookupBase(ctx, baseName)
		if err != nil {
			return nil, err
		}
		unit.BaseName = base.Name
		unit.LocationName = base.LocationName
	}
	unit.Name = name

	if err := s.repo.Unit.Update(ctx, unit); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("更新单位失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toUnitResponse(unit, nil), nil
}

// ────────────────────── Delete ──────────────────────

func (s *unitService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Unit.Delete(ctx, id); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return ErrUnitNotFound
		}
		s.logger.Error("删除单位失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("单位已删除", zap.String("id", id))
	return nil
}

// ── 内部辅助方法 ──

func (s *unitService) lookupBase(ctx context.Context, name string) (*model.Base, error) {
	base, err := s.repo.Base.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrBaseNotFound
		}
		s.logger.Error("查询基地失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return base, nil
}

func toUnitResponse(unit *model.Unit, base *dto.BaseResponse) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:           unit.ID,
		Name:         unit.Name,
		BaseName:     unit.BaseName,
		LocationName: unit.LocationName,
		Base:         base,
		CreatedAt:    formatTime(unit.CreatedAt),
		UpdatedAt:    formatTime(unit.UpdatedAt),
	}
}
